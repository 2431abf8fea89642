package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/the11eximoverseas/exim_backend/internal/api/http/handler"
)

func (r *Router) registerSubmissionRoutes(api fiber.Router, h *handler.SubmissionHandler) {
	api.Post("/contact", h.Contact)
	api.Post("/quote", h.Quote)
}
