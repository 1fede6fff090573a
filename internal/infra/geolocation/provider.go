// Package geolocation provides the platform location capabilities.
package geolocation

import (
	"log/slog"
	"net/http"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the position provider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Client *http.Client `optional:"true"`
}

// NewPositionProvider creates a PositionProvider based on configuration. A nil
// provider is returned when no location capability is configured.
func NewPositionProvider(params ProviderParams) (service.PositionProvider, error) {
	cfg := params.Config.Geolocation
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Geolocation not configured, current location is unsupported")

		return nil, nil
	}

	switch cfg.Provider {
	case constants.GeolocationProviderStatic:
		position := entity.NewCoordinate(cfg.Latitude, cfg.Longitude)
		if !position.IsValid() {
			return nil, errors.Errorf("static position (%f, %f) is out of range", cfg.Latitude, cfg.Longitude)
		}
		logger.Info("Using static position provider",
			slog.Float64("latitude", position.Latitude),
			slog.Float64("longitude", position.Longitude),
		)

		return NewStaticProvider(position), nil

	case constants.GeolocationProviderIPAPI:
		if cfg.IPAPIBaseURL == "" {
			return nil, errors.New("ipapi base URL is required for ipapi provider")
		}
		logger.Info("Using IP based position provider",
			slog.String("endpoint", cfg.IPAPIBaseURL),
		)

		client := params.Client
		if client == nil {
			client = &http.Client{}
		}

		return NewIPAPIProvider(cfg.IPAPIBaseURL, client, logger), nil

	default:
		return nil, errors.Errorf("unknown geolocation provider: %s", cfg.Provider)
	}
}

// Module provides the geolocation FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPositionProvider),
)
