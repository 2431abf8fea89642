package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/the11eximoverseas/exim_backend/internal/api/http/handler"
)

func (r *Router) registerAPIRoutes(api fiber.Router, h *handler.SystemHandler) {
	api.Get("/", h.Index)
	api.Get("/health", h.Health)
}
