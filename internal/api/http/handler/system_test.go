package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func TestHealthReportsDatabaseState(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		want    string
	}{
		{"database up", nil, "Connected"},
		{"database down", errors.New("no reachable servers"), "Disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			h := NewSystemHandler(stubPinger{err: tt.pingErr}, "")
			app.Get("/api/health", h.Health)

			resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}

			var body struct {
				Success   bool   `json:"success"`
				Message   string `json:"message"`
				Timestamp string `json:"timestamp"`
				Version   string `json:"version"`
				Database  string `json:"database"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if !body.Success {
				t.Error("success = false")
			}
			if body.Database != tt.want {
				t.Errorf("database = %q, want %q", body.Database, tt.want)
			}
			if body.Version != "1.0.0" {
				t.Errorf("version = %q, want default 1.0.0", body.Version)
			}
			if body.Timestamp == "" {
				t.Error("timestamp missing")
			}
		})
	}
}

func TestIndexListsEndpoints(t *testing.T) {
	app := fiber.New()
	h := NewSystemHandler(stubPinger{}, "2.1.0")
	app.Get("/api", h.Index)

	resp, err := app.Test(httptest.NewRequest("GET", "/api", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Success   bool              `json:"success"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Version != "2.1.0" {
		t.Errorf("version = %q", body.Version)
	}
	for _, key := range []string{"health", "contact", "quote", "documents", "team"} {
		if _, ok := body.Endpoints[key]; !ok {
			t.Errorf("endpoints missing %q", key)
		}
	}
}
