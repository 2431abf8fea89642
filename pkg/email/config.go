package email

import (
	"time"

	"github.com/the11eximoverseas/exim_backend/config"
)

// Config holds email service configuration
type Config struct {
	Enabled bool
	From    string

	// SMTP settings
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPUseTLS         bool
	SMTPTimeoutSeconds int
}

// DefaultConfig returns sensible defaults for email configuration
func DefaultConfig() Config {
	return Config{
		Enabled:            false,
		SMTPHost:           "smtp.gmail.com",
		SMTPPort:           587,
		SMTPUseTLS:         false,
		SMTPTimeoutSeconds: 30,
	}
}

// SMTPTimeout returns the SMTP timeout as a duration
func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.EmailConfig to package Config,
// filling unset SMTP values from DefaultConfig
func FromCentralConfig(c config.EmailConfig) Config {
	cfg := Config{
		Enabled:            c.Enabled,
		From:               c.From,
		SMTPHost:           c.SMTP.Host,
		SMTPPort:           c.SMTP.Port,
		SMTPUsername:       c.SMTP.Username,
		SMTPPassword:       c.SMTP.Password,
		SMTPUseTLS:         c.SMTP.UseTLS,
		SMTPTimeoutSeconds: c.SMTP.TimeoutSeconds,
	}

	def := DefaultConfig()
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = def.SMTPHost
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = def.SMTPPort
	}
	if cfg.SMTPTimeoutSeconds <= 0 {
		cfg.SMTPTimeoutSeconds = def.SMTPTimeoutSeconds
	}

	return cfg
}
