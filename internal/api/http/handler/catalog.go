package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/the11eximoverseas/exim_backend/internal/service/catalog"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) Documents(c fiber.Ctx) error {
	return listing(c, h.svc.Documents())
}

func (h *CatalogHandler) Team(c fiber.Ctx) error {
	return listing(c, h.svc.Team())
}
