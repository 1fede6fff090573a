// Package persistence selects the store/address datastore adapter.
package persistence

import (
	"log/slog"
	"net/http"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/infra/persistence/rest"

	"go.uber.org/fx"
)

// RepositoryParams holds dependencies for the store location repository, injected by Fx
type RepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStoreLocationRepository creates a StoreLocationRepository based on configuration
func NewStoreLocationRepository(params RepositoryParams) (repository.StoreLocationRepository, error) {
	if params.Config.Datastore == nil {
		params.Config.ApplyDefaults()
	}
	cfg := params.Config.Datastore
	logger := params.Logger

	switch cfg.Provider {
	case constants.DatastoreProviderPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL store datastore")

		return postgres.NewStoreLocationRepository(db), nil

	case constants.DatastoreProviderREST:
		if cfg.RESTBaseURL == "" {
			return nil, errors.New("REST base URL is required for rest datastore")
		}
		logger.Info("Using REST store datastore",
			slog.String("endpoint", cfg.RESTBaseURL),
		)

		client := &http.Client{Timeout: cfg.RESTTimeout}

		return rest.NewStoreLocationRepository(cfg.RESTBaseURL, cfg.RESTAPIKey, client, logger), nil

	default:
		return nil, errors.Errorf("unknown datastore provider: %s", cfg.Provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStoreLocationRepository),
)
