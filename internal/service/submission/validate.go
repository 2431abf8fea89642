package submission

import (
	"regexp"
	"strings"
)

// emailPattern is a shape check only: local@domain.tld. No DNS/MX lookup,
// no normalization beyond trimming.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type field struct {
	name  string
	value string
}

// validate checks every required field (no short-circuit) so the caller
// sees all violations at once, then checks the email shape. The format
// check runs whenever the raw value is non-empty, so a missing email
// reports only the required-field error while a whitespace-only one
// fails both checks.
func validate(required []field, emailValue string) []string {
	var errs []string

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, f.name+" is required")
		}
	}

	if emailValue != "" && !emailPattern.MatchString(strings.TrimSpace(emailValue)) {
		errs = append(errs, "Invalid email format")
	}

	return errs
}
