package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/the11eximoverseas/exim_backend/internal/service/catalog"
)

func TestCatalogEndpoints(t *testing.T) {
	app := fiber.New()
	h := NewCatalogHandler(catalog.New())
	app.Get("/api/documents", h.Documents)
	app.Get("/api/team", h.Team)

	t.Run("documents", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/documents", nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var body struct {
			Success bool               `json:"success"`
			Data    []catalog.Document `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if !body.Success {
			t.Error("success = false")
		}
		if len(body.Data) != 3 {
			t.Fatalf("got %d documents, want 3", len(body.Data))
		}
		if body.Data[0].Category != "certifications" {
			t.Errorf("first document category = %q", body.Data[0].Category)
		}
	})

	t.Run("team", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/team", nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var body struct {
			Success bool                 `json:"success"`
			Data    []catalog.TeamMember `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(body.Data) != 2 {
			t.Fatalf("got %d team members, want 2", len(body.Data))
		}
		for _, m := range body.Data {
			if m.Position != "Director" {
				t.Errorf("member %q position = %q", m.Name, m.Position)
			}
		}
	})
}
