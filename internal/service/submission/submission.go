package submission

import (
	"context"
	"log/slog"

	"github.com/the11eximoverseas/exim_backend/internal/service/notify"
	"github.com/the11eximoverseas/exim_backend/internal/store"
	"github.com/the11eximoverseas/exim_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ContactRequest struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Subject string
	Message string

	// Server-derived, never client-supplied.
	IPAddress string
	UserAgent string
}

type QuoteRequest struct {
	Name         string
	Email        string
	Phone        string
	Company      string
	Product      string
	Quantity     string
	Requirements string

	IPAddress string
	UserAgent string
}

// Result reports the outcome of a persisted submission. The record is
// saved regardless of the notification booleans.
type Result struct {
	ID        string
	AdminSent bool
	UserSent  bool
}

// Delayed reports whether the response should carry the delay notice.
func (r *Result) Delayed() bool { return !r.AdminSent || !r.UserSent }

// ---------------------------------------------------------------------------
// Collaborators
// ---------------------------------------------------------------------------

// Store is the persistence surface this service needs. *store.Store
// satisfies it.
type Store interface {
	CreateContact(ctx context.Context, c *store.ContactSubmission) (*store.ContactSubmission, error)
	CreateQuote(ctx context.Context, q *store.QuoteSubmission) (*store.QuoteSubmission, error)
}

// Notifier dispatches the post-persistence notification pair.
type Notifier interface {
	ContactSubmitted(ctx context.Context, rec *store.ContactSubmission) notify.Outcome
	QuoteSubmitted(ctx context.Context, rec *store.QuoteSubmission) notify.Outcome
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	SubmitContact(ctx context.Context, req ContactRequest) (*Result, error)
	SubmitQuote(ctx context.Context, req QuoteRequest) (*Result, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type submissionService struct {
	store    Store
	notifier Notifier
}

func New(st Store, n Notifier) Service {
	return &submissionService{store: st, notifier: n}
}

func (s *submissionService) SubmitContact(ctx context.Context, req ContactRequest) (*Result, error) {
	log := logger(ctx)

	errs := validate([]field{
		{"name", req.Name},
		{"email", req.Email},
		{"subject", req.Subject},
		{"message", req.Message},
	}, req.Email)
	if len(errs) > 0 {
		log.Debug("contact submission rejected", "errors", errs)
		return nil, &ValidationError{Errors: errs}
	}

	rec, err := s.store.CreateContact(ctx, &store.ContactSubmission{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: clientIPOrUnknown(req.IPAddress),
		UserAgent: req.UserAgent,
	})
	if err != nil {
		log.Error("contact submission: persist failed", "err", err)
		return nil, ErrPersistence
	}
	log.Info("contact submission saved", "id", rec.ID.Hex())

	out := s.notifier.ContactSubmitted(ctx, rec)
	if !out.AllSent() {
		log.Warn("contact submission: some notifications failed, record kept",
			"id", rec.ID.Hex(), "admin_sent", out.AdminSent, "user_sent", out.UserSent)
	}

	return &Result{ID: rec.ID.Hex(), AdminSent: out.AdminSent, UserSent: out.UserSent}, nil
}

func (s *submissionService) SubmitQuote(ctx context.Context, req QuoteRequest) (*Result, error) {
	log := logger(ctx)

	errs := validate([]field{
		{"name", req.Name},
		{"email", req.Email},
		{"product", req.Product},
		{"quantity", req.Quantity},
	}, req.Email)
	if len(errs) > 0 {
		log.Debug("quote request rejected", "errors", errs)
		return nil, &ValidationError{Errors: errs}
	}

	rec, err := s.store.CreateQuote(ctx, &store.QuoteSubmission{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		Product:      req.Product,
		Quantity:     req.Quantity,
		Requirements: req.Requirements,
		IPAddress:    clientIPOrUnknown(req.IPAddress),
		UserAgent:    req.UserAgent,
	})
	if err != nil {
		log.Error("quote request: persist failed", "err", err)
		return nil, ErrPersistence
	}
	log.Info("quote request saved", "id", rec.ID.Hex())

	out := s.notifier.QuoteSubmitted(ctx, rec)
	if !out.AllSent() {
		log.Warn("quote request: some notifications failed, record kept",
			"id", rec.ID.Hex(), "admin_sent", out.AdminSent, "user_sent", out.UserSent)
	}

	return &Result{ID: rec.ID.Hex(), AdminSent: out.AdminSent, UserSent: out.UserSent}, nil
}

func clientIPOrUnknown(ip string) string {
	if ip == "" {
		return "Unknown"
	}
	return ip
}

// logger returns the default logger enriched with the request ID when the
// HTTP layer attached request metadata to the context.
func logger(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if meta, ok := reqctx.RequestMetaFromContext(ctx); ok {
		log = log.With("request_id", meta.RequestID)
	}
	return log
}
