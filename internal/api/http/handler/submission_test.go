package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/the11eximoverseas/exim_backend/internal/api/http/middleware"
	"github.com/the11eximoverseas/exim_backend/internal/service/submission"
	"github.com/the11eximoverseas/exim_backend/pkg/reqctx"
)

// stubSubmissionService returns canned results for both operations.
type stubSubmissionService struct {
	result *submission.Result
	err    error

	lastContact   submission.ContactRequest
	lastQuote     submission.QuoteRequest
	lastRequestID string
}

func (s *stubSubmissionService) SubmitContact(ctx context.Context, req submission.ContactRequest) (*submission.Result, error) {
	s.lastContact = req
	if meta, ok := reqctx.RequestMetaFromContext(ctx); ok {
		s.lastRequestID = meta.RequestID
	}
	return s.result, s.err
}

func (s *stubSubmissionService) SubmitQuote(ctx context.Context, req submission.QuoteRequest) (*submission.Result, error) {
	s.lastQuote = req
	return s.result, s.err
}

type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func newTestApp(svc submission.Service) *fiber.App {
	app := fiber.New()
	h := NewSubmissionHandler(svc)
	app.Post("/api/contact", h.Contact)
	app.Post("/api/quote", h.Quote)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp.StatusCode, env
}

func TestContactSuccess(t *testing.T) {
	svc := &stubSubmissionService{
		result: &submission.Result{ID: "abc", AdminSent: true, UserSent: true},
	}
	app := newTestApp(svc)

	status, env := postJSON(t, app, "/api/contact",
		`{"name":"A","email":"a@b.com","subject":"S","message":"M"}`)

	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !env.Success {
		t.Error("success = false, want true")
	}
	want := "Contact form submitted successfully. We will get back to you within 24 hours."
	if env.Message != want {
		t.Errorf("message = %q, want %q", env.Message, want)
	}
	if svc.lastContact.Name != "A" || svc.lastContact.Email != "a@b.com" {
		t.Errorf("service received %+v", svc.lastContact)
	}
	if svc.lastContact.IPAddress == "" {
		t.Error("client IP not forwarded to service")
	}
}

func TestContactForwardedClientIP(t *testing.T) {
	svc := &stubSubmissionService{
		result: &submission.Result{ID: "abc", AdminSent: true, UserSent: true},
	}

	// Trust the test connection's remote address so X-Forwarded-For is
	// honored, mirroring the server's trusted_proxies configuration.
	app := fiber.New(fiber.Config{
		ProxyHeader:      fiber.HeaderXForwardedFor,
		TrustProxy:       true,
		TrustProxyConfig: fiber.TrustProxyConfig{Proxies: []string{"0.0.0.0"}},
	})
	app.Use(middleware.RequestID())
	app.Post("/api/contact", NewSubmissionHandler(svc).Contact)

	req := httptest.NewRequest("POST", "/api/contact",
		strings.NewReader(`{"name":"A","email":"a@b.com","subject":"S","message":"M"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "198.51.100.7")
	req.Header.Set("User-Agent", "site-frontend/1.0")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if svc.lastContact.IPAddress != "198.51.100.7" {
		t.Errorf("recorded IP = %q, want the forwarded client IP", svc.lastContact.IPAddress)
	}
	if svc.lastContact.UserAgent != "site-frontend/1.0" {
		t.Errorf("recorded user agent = %q", svc.lastContact.UserAgent)
	}
	if svc.lastRequestID == "" {
		t.Error("request metadata not attached to the service context")
	}
}

func TestContactDelayedNotice(t *testing.T) {
	svc := &stubSubmissionService{
		result: &submission.Result{ID: "abc", AdminSent: false, UserSent: true},
	}
	app := newTestApp(svc)

	status, env := postJSON(t, app, "/api/contact",
		`{"name":"A","email":"a@b.com","subject":"S","message":"M"}`)

	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 even when notifications failed", status)
	}
	if !env.Success {
		t.Error("success = false, want true")
	}
	if !strings.HasSuffix(env.Message, "(Note: Email notifications may be delayed)") {
		t.Errorf("message missing delay notice: %q", env.Message)
	}
}

func TestContactValidationFailure(t *testing.T) {
	svc := &stubSubmissionService{
		err: &submission.ValidationError{Errors: []string{"name is required", "Invalid email format"}},
	}
	app := newTestApp(svc)

	status, env := postJSON(t, app, "/api/contact", `{"email":"nope"}`)

	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if env.Success {
		t.Error("success = true, want false")
	}
	if env.Message != "Validation failed" {
		t.Errorf("message = %q, want Validation failed", env.Message)
	}
	if len(env.Errors) != 2 || env.Errors[0] != "name is required" {
		t.Errorf("errors = %v", env.Errors)
	}
}

func TestContactServerError(t *testing.T) {
	svc := &stubSubmissionService{err: submission.ErrPersistence}
	app := newTestApp(svc)

	status, env := postJSON(t, app, "/api/contact",
		`{"name":"A","email":"a@b.com","subject":"S","message":"M"}`)

	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if env.Success {
		t.Error("success = true, want false")
	}
	want := "Error submitting contact form. Please try again."
	if env.Message != want {
		t.Errorf("message = %q, want %q", env.Message, want)
	}
}

func TestContactMalformedBody(t *testing.T) {
	svc := &stubSubmissionService{result: &submission.Result{AdminSent: true, UserSent: true}}
	app := newTestApp(svc)

	status, env := postJSON(t, app, "/api/contact", `{"name": `)

	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if env.Success {
		t.Error("success = true, want false")
	}
}

func TestQuoteSuccess(t *testing.T) {
	svc := &stubSubmissionService{
		result: &submission.Result{ID: "abc", AdminSent: true, UserSent: true},
	}
	app := newTestApp(svc)

	status, env := postJSON(t, app, "/api/quote",
		`{"name":"B","email":"b@c.com","product":"Rice","quantity":"20 MT"}`)

	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	want := "Quote request submitted successfully. We will get back to you within 24 hours."
	if env.Message != want {
		t.Errorf("message = %q, want %q", env.Message, want)
	}
	if svc.lastQuote.Product != "Rice" || svc.lastQuote.Quantity != "20 MT" {
		t.Errorf("service received %+v", svc.lastQuote)
	}
}

func TestQuoteServerError(t *testing.T) {
	svc := &stubSubmissionService{err: submission.ErrPersistence}
	app := newTestApp(svc)

	status, env := postJSON(t, app, "/api/quote",
		`{"name":"B","email":"b@c.com","product":"Rice","quantity":"20 MT"}`)

	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	want := "Error submitting quote request. Please try again."
	if env.Message != want {
		t.Errorf("message = %q, want %q", env.Message, want)
	}
}
