package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
)

// Pinger reports whether the backing store is reachable. *store.Store
// satisfies this.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	db      Pinger
	version string
}

func NewSystemHandler(db Pinger, version string) *SystemHandler {
	if version == "" {
		version = "1.0.0"
	}
	return &SystemHandler{db: db, version: version}
}

func (h *SystemHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	database := "Connected"
	if err := h.db.Ping(ctx); err != nil {
		database = "Disconnected"
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "The11EximOverSeas API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.version,
		"database":  database,
	})
}

func (h *SystemHandler) Index(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "The11EximOverSeas API",
		"version": h.version,
		"endpoints": fiber.Map{
			"health":    "/api/health",
			"contact":   "/api/contact",
			"quote":     "/api/quote",
			"documents": "/api/documents",
			"team":      "/api/team",
		},
	})
}
