package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		Database: DatabaseConfig{
			URI:  "mongodb://localhost:27017",
			Name: "the11eximoverseas",
		},
		Email: EmailConfig{
			Enabled: true,
			From:    "noreply@example.com",
			SMTP: SMTPConfig{
				Host:     "smtp.gmail.com",
				Port:     587,
				Username: "mailer",
				Password: "secret",
			},
		},
		Notifications: NotificationsConfig{
			AdminEmail: "admin@example.com",
		},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing database uri",
			mutate:  func(c *Config) { c.Database.URI = "" },
			wantErr: "database.uri",
		},
		{
			name:    "missing database name",
			mutate:  func(c *Config) { c.Database.Name = "" },
			wantErr: "database.name",
		},
		{
			name:    "email enabled without credentials",
			mutate:  func(c *Config) { c.Email.SMTP.Password = "" },
			wantErr: "email.smtp",
		},
		{
			name:    "email enabled without admin address",
			mutate:  func(c *Config) { c.Notifications.AdminEmail = "" },
			wantErr: "notifications.admin_email",
		},
		{
			name: "email disabled skips smtp checks",
			mutate: func(c *Config) {
				c.Email = EmailConfig{Enabled: false}
				c.Notifications.AdminEmail = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
