package app

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"github.com/the11eximoverseas/exim_backend/config"
	"github.com/the11eximoverseas/exim_backend/internal/service/catalog"
	"github.com/the11eximoverseas/exim_backend/internal/service/notify"
	"github.com/the11eximoverseas/exim_backend/internal/service/submission"
	"github.com/the11eximoverseas/exim_backend/internal/store"
	"github.com/the11eximoverseas/exim_backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideStore,
		ProvideNotifyService,
		ProvideSubmissionService,
		ProvideCatalogService,
	),
)

func ProvideStore(client *mongo.Client, cfg *config.Config) *store.Store {
	return store.New(client, cfg.Database.Name)
}

func ProvideNotifyService(emailClient *email.Client, cfg *config.Config) notify.Service {
	return notify.New(emailClient, cfg.Notifications)
}

func ProvideSubmissionService(st *store.Store, notifier notify.Service) submission.Service {
	return submission.New(st, notifier)
}

func ProvideCatalogService() catalog.Service {
	return catalog.New()
}
