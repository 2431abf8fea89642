package submission

import (
	"errors"
	"strings"
)

// ErrPersistence means the store rejected the write. No record exists and
// no notifications were attempted. Detail is logged, never surfaced.
var ErrPersistence = errors.New("failed to persist submission")

// ValidationError carries every violation found, in required-field order.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
