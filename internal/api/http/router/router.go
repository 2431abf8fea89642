package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/the11eximoverseas/exim_backend/config"
	"github.com/the11eximoverseas/exim_backend/internal/api/http/handler"
	"github.com/the11eximoverseas/exim_backend/internal/service/catalog"
	"github.com/the11eximoverseas/exim_backend/internal/service/submission"
	"github.com/the11eximoverseas/exim_backend/internal/store"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	DB            *store.Store
	SubmissionSvc submission.Service
	CatalogSvc    catalog.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Handlers
	submissionH := handler.NewSubmissionHandler(r.p.SubmissionSvc)
	catalogH := handler.NewCatalogHandler(r.p.CatalogSvc)
	systemH := handler.NewSystemHandler(r.p.DB, r.p.Cfg.Observability.ServiceVersion)

	api := app.Group("/api")

	// 3. Delegate to sub-files
	r.registerSubmissionRoutes(api, submissionH)
	r.registerCatalogRoutes(api, catalogH)
	r.registerAPIRoutes(api, systemH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
			defer cancel()
			return r.p.DB.Ping(ctx) == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
