package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/the11eximoverseas/exim_backend/config"
)

func TestBuildMessageValidation(t *testing.T) {
	valid := Message{
		To:       []string{"to@example.com"},
		Subject:  "Hello",
		TextBody: "body",
	}

	tests := []struct {
		name    string
		from    string
		mutate  func(m *Message)
		wantErr string
	}{
		{
			name:   "valid message",
			from:   "noreply@example.com",
			mutate: func(m *Message) {},
		},
		{
			name:    "missing from",
			from:    "  ",
			mutate:  func(m *Message) {},
			wantErr: "from is required",
		},
		{
			name:    "missing subject",
			from:    "noreply@example.com",
			mutate:  func(m *Message) { m.Subject = " " },
			wantErr: "subject is required",
		},
		{
			name:    "missing body",
			from:    "noreply@example.com",
			mutate:  func(m *Message) { m.TextBody = ""; m.HTMLBody = "" },
			wantErr: "either TextBody or HTMLBody is required",
		},
		{
			name: "html only is fine",
			from: "noreply@example.com",
			mutate: func(m *Message) {
				m.TextBody = ""
				m.HTMLBody = "<p>hi</p>"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)

			_, err := buildMessage(tt.from, m)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("buildMessage() error = %v", err)
				}
				return
			}

			var ierr ErrInvalidMessage
			if !errors.As(err, &ierr) {
				t.Fatalf("buildMessage() error = %v, want ErrInvalidMessage", err)
			}
			if ierr.Reason != tt.wantErr {
				t.Errorf("reason = %q, want %q", ierr.Reason, tt.wantErr)
			}
		})
	}
}

func TestSendDisabled(t *testing.T) {
	c, err := New(Config{Enabled: false, From: "noreply@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	err = c.Send(context.Background(), Message{
		To:       []string{"to@example.com"},
		Subject:  "s",
		TextBody: "b",
	})

	var derr ErrDisabled
	if !errors.As(err, &derr) {
		t.Fatalf("Send() error = %v, want ErrDisabled", err)
	}
}

func TestCleanAddrs(t *testing.T) {
	got := cleanAddrs([]string{" a@b.com ", "", "  ", "c@d.com"})
	want := []string{"a@b.com", "c@d.com"}
	if len(got) != len(want) {
		t.Fatalf("cleanAddrs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cleanAddrs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFromCentralConfigDefaults(t *testing.T) {
	def := DefaultConfig()

	cfg := FromCentralConfig(config.EmailConfig{Enabled: true, From: "noreply@example.com"})
	if cfg.SMTPHost != def.SMTPHost {
		t.Errorf("host = %q, want default %q", cfg.SMTPHost, def.SMTPHost)
	}
	if cfg.SMTPPort != def.SMTPPort {
		t.Errorf("port = %d, want default %d", cfg.SMTPPort, def.SMTPPort)
	}
	if cfg.SMTPTimeoutSeconds != def.SMTPTimeoutSeconds {
		t.Errorf("timeout = %d, want default %d", cfg.SMTPTimeoutSeconds, def.SMTPTimeoutSeconds)
	}

	cfg = FromCentralConfig(config.EmailConfig{SMTP: config.SMTPConfig{
		Host:           "mail.example.com",
		Port:           2525,
		TimeoutSeconds: 10,
	}})
	if cfg.SMTPHost != "mail.example.com" || cfg.SMTPPort != 2525 || cfg.SMTPTimeoutSeconds != 10 {
		t.Errorf("explicit values overridden: %+v", cfg)
	}
}

func TestSMTPTimeoutDefault(t *testing.T) {
	if got := (Config{}).SMTPTimeout(); got != 30*time.Second {
		t.Errorf("SMTPTimeout() = %v, want 30s default", got)
	}
	if got := (Config{SMTPTimeoutSeconds: 5}).SMTPTimeout(); got != 5*time.Second {
		t.Errorf("SMTPTimeout() = %v, want 5s", got)
	}
}

func TestContactTemplates(t *testing.T) {
	data := ContactEmailData{
		Name:        "Asha",
		Email:       "asha@example.com",
		Subject:     "Bulk pricing",
		Message:     "Need <monthly> supply",
		Reference:   "CF-0A1B2C",
		IPAddress:   "203.0.113.9",
		SubmittedAt: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		CompanyName: "The11EximOverSeas",
	}

	admin := BuildContactAdminEmail("admin@example.com", data)
	if admin.To[0] != "admin@example.com" {
		t.Errorf("admin To = %v", admin.To)
	}
	if want := "New Contact Form: Bulk pricing"; admin.Subject != want {
		t.Errorf("admin subject = %q, want %q", admin.Subject, want)
	}
	if !strings.Contains(admin.TextBody, "CF-0A1B2C") {
		t.Error("admin text body missing reference")
	}
	// Omitted optional fields fall back to a placeholder.
	if !strings.Contains(admin.TextBody, "Not provided") {
		t.Error("admin text body missing placeholder for empty phone/company")
	}
	// User-controlled content must be escaped in the HTML part.
	if strings.Contains(admin.HTMLBody, "<monthly>") {
		t.Error("admin HTML body contains unescaped user input")
	}
	if !strings.Contains(admin.HTMLBody, "&lt;monthly&gt;") {
		t.Error("admin HTML body missing escaped user input")
	}

	ack := BuildContactAckEmail(data)
	if ack.To[0] != "asha@example.com" {
		t.Errorf("ack To = %v", ack.To)
	}
	if want := "Thank you for contacting The11EximOverSeas"; ack.Subject != want {
		t.Errorf("ack subject = %q, want %q", ack.Subject, want)
	}
	if !strings.Contains(ack.TextBody, "CF-0A1B2C") {
		t.Error("ack text body missing reference")
	}
}

func TestQuoteTemplates(t *testing.T) {
	data := QuoteEmailData{
		Name:        "Ravi",
		Email:       "ravi@example.com",
		Product:     "Basmati Rice",
		Quantity:    "20 MT",
		Reference:   "QR-3D4E5F",
		IPAddress:   "203.0.113.10",
		SubmittedAt: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}

	admin := BuildQuoteAdminEmail("admin@example.com", data)
	if want := "New Quote Request: Basmati Rice"; admin.Subject != want {
		t.Errorf("admin subject = %q, want %q", admin.Subject, want)
	}
	if !strings.Contains(admin.TextBody, "None specified") {
		t.Error("admin text body missing placeholder for empty requirements")
	}

	ack := BuildQuoteAckEmail(data)
	if ack.To[0] != "ravi@example.com" {
		t.Errorf("ack To = %v", ack.To)
	}
	// Empty company name falls back to the default brand.
	if want := "Quote Request Received - The11EximOverSeas"; ack.Subject != want {
		t.Errorf("ack subject = %q, want %q", ack.Subject, want)
	}
	if !strings.Contains(ack.TextBody, "QR-3D4E5F") {
		t.Error("ack text body missing reference")
	}
}
