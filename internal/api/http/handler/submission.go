package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/the11eximoverseas/exim_backend/internal/api/http/middleware"
	"github.com/the11eximoverseas/exim_backend/internal/service/submission"
)

type SubmissionHandler struct {
	svc submission.Service
}

func NewSubmissionHandler(svc submission.Service) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

type contactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type quoteForm struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	Product      string `json:"product"`
	Quantity     string `json:"quantity"`
	Requirements string `json:"requirements"`
}

func (h *SubmissionHandler) Contact(c fiber.Ctx) error {
	var req contactForm
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	ctx, ip, ua := requestContext(c)
	res, err := h.svc.SubmitContact(ctx, submission.ContactRequest{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: ip,
		UserAgent: ua,
	})
	if err != nil {
		var verr *submission.ValidationError
		if errors.As(err, &verr) {
			return validationFailed(c, verr.Errors)
		}
		return serverError(c, "Error submitting contact form. Please try again.")
	}

	msg := "Contact form submitted successfully. We will get back to you within 24 hours."
	if res.Delayed() {
		msg += " (Note: Email notifications may be delayed)"
	}
	return submitted(c, msg)
}

func (h *SubmissionHandler) Quote(c fiber.Ctx) error {
	var req quoteForm
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	ctx, ip, ua := requestContext(c)
	res, err := h.svc.SubmitQuote(ctx, submission.QuoteRequest{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		Product:      req.Product,
		Quantity:     req.Quantity,
		Requirements: req.Requirements,
		IPAddress:    ip,
		UserAgent:    ua,
	})
	if err != nil {
		var verr *submission.ValidationError
		if errors.As(err, &verr) {
			return validationFailed(c, verr.Errors)
		}
		return serverError(c, "Error submitting quote request. Please try again.")
	}

	msg := "Quote request submitted successfully. We will get back to you within 24 hours."
	if res.Delayed() {
		msg += " (Note: Email notifications may be delayed)"
	}
	return submitted(c, msg)
}

// requestContext pulls the proxy-aware client IP and user agent captured
// by the request ID middleware and attaches the metadata to the context
// handed to the service, falling back to the connection values.
func requestContext(c fiber.Ctx) (ctx context.Context, ip, userAgent string) {
	if meta, ok := middleware.RequestMetaFromFiber(c); ok {
		return middleware.WithRequestMeta(c.Context(), meta), meta.ClientIP, meta.UserAgent
	}
	return c.Context(), c.IP(), c.Get("User-Agent")
}
