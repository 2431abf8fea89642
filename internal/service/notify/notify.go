package notify

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/the11eximoverseas/exim_backend/config"
	"github.com/the11eximoverseas/exim_backend/internal/store"
	"github.com/the11eximoverseas/exim_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Outcome reports the per-recipient delivery results for one submission.
// A false value means the transport rejected or failed that send; it is
// informational only and never turns into an error.
type Outcome struct {
	AdminSent bool
	UserSent  bool
}

// AllSent reports whether both notifications were accepted by the transport.
func (o Outcome) AllSent() bool { return o.AdminSent && o.UserSent }

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Mailer delivers a single message. *email.Client satisfies this.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
}

type Service interface {
	ContactSubmitted(ctx context.Context, rec *store.ContactSubmission) Outcome
	QuoteSubmitted(ctx context.Context, rec *store.QuoteSubmission) Outcome
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type dispatcher struct {
	mailer  Mailer
	admin   string
	company string
}

func New(mailer Mailer, cfg config.NotificationsConfig) Service {
	return &dispatcher{
		mailer:  mailer,
		admin:   cfg.AdminEmail,
		company: cfg.CompanyName,
	}
}

func (d *dispatcher) ContactSubmitted(ctx context.Context, rec *store.ContactSubmission) Outcome {
	data := email.ContactEmailData{
		Name:        rec.Name,
		Email:       rec.Email,
		Phone:       rec.Phone,
		Company:     rec.Company,
		Subject:     rec.Subject,
		Message:     rec.Message,
		Reference:   ContactReference(rec.ID),
		IPAddress:   rec.IPAddress,
		SubmittedAt: rec.Timestamp,
		CompanyName: d.company,
	}

	return d.deliver(ctx,
		email.BuildContactAdminEmail(d.admin, data),
		email.BuildContactAckEmail(data),
	)
}

func (d *dispatcher) QuoteSubmitted(ctx context.Context, rec *store.QuoteSubmission) Outcome {
	data := email.QuoteEmailData{
		Name:         rec.Name,
		Email:        rec.Email,
		Phone:        rec.Phone,
		Company:      rec.Company,
		Product:      rec.Product,
		Quantity:     rec.Quantity,
		Requirements: rec.Requirements,
		Reference:    QuoteReference(rec.ID),
		IPAddress:    rec.IPAddress,
		SubmittedAt:  rec.Timestamp,
		CompanyName:  d.company,
	}

	return d.deliver(ctx,
		email.BuildQuoteAdminEmail(d.admin, data),
		email.BuildQuoteAckEmail(data),
	)
}

// deliver attempts both sends concurrently and joins before returning.
// Each address is attempted exactly once; no retry, no queueing.
func (d *dispatcher) deliver(ctx context.Context, adminMsg, userMsg email.Message) Outcome {
	var out Outcome
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		out.AdminSent = d.send(ctx, adminMsg)
	}()
	go func() {
		defer wg.Done()
		out.UserSent = d.send(ctx, userMsg)
	}()
	wg.Wait()

	return out
}

func (d *dispatcher) send(ctx context.Context, m email.Message) bool {
	if err := d.mailer.Send(ctx, m); err != nil {
		slog.Warn("notification send failed",
			"to", strings.Join(m.To, ","),
			"subject", m.Subject,
			"err", err,
		)
		return false
	}
	return true
}

// ---------------------------------------------------------------------------
// Reference IDs
// ---------------------------------------------------------------------------

// ContactReference derives the CF-XXXXXX reference shown in both emails.
// The suffix comes from the record's ObjectID, so it is unique per record.
func ContactReference(id primitive.ObjectID) string {
	return "CF-" + referenceSuffix(id)
}

// QuoteReference derives the QR-XXXXXX reference for quote requests.
func QuoteReference(id primitive.ObjectID) string {
	return "QR-" + referenceSuffix(id)
}

func referenceSuffix(id primitive.ObjectID) string {
	hex := id.Hex()
	return strings.ToUpper(hex[len(hex)-6:])
}
