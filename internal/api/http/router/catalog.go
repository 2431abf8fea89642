package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/the11eximoverseas/exim_backend/internal/api/http/handler"
)

func (r *Router) registerCatalogRoutes(api fiber.Router, h *handler.CatalogHandler) {
	api.Get("/documents", h.Documents)
	api.Get("/team", h.Team)
}
