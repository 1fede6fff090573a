// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

const (
	outcomeSuccess     = "success"
	outcomeDenied      = "permission_denied"
	outcomeUnavailable = "position_unavailable"
	outcomeTimeout     = "timeout"
	outcomeUnsupported = "unsupported"
	outcomeFailed      = "failed"
)

// GeoLocatorServiceParams holds dependencies for the geolocator, injected by Fx.
type GeoLocatorServiceParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Provider service.PositionProvider `optional:"true"`
	Observer service.LocationObserver `optional:"true"`
}

type geoLocatorService struct {
	provider service.PositionProvider
	options  service.PositionOptions
	observer service.LocationObserver
	logger   *slog.Logger
}

// NewGeoLocatorService creates a geolocator. A nil provider means the
// platform has no location capability at all.
func NewGeoLocatorService(params GeoLocatorServiceParams) usecase.GeoLocatorUsecase {
	if params.Config.Geolocation == nil {
		params.Config.ApplyDefaults()
	}
	geoCfg := params.Config.Geolocation

	observer := params.Observer
	if observer == nil {
		observer = service.NoopLocationObserver{}
	}

	return &geoLocatorService{
		provider: params.Provider,
		options: service.PositionOptions{
			EnableHighAccuracy: geoCfg.HighAccuracyEnabled(),
			Timeout:            geoCfg.Timeout,
			MaximumAge:         geoCfg.MaximumAge,
		},
		observer: observer,
		logger:   params.Logger,
	}
}

func (s *geoLocatorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetCurrentLocation requests a fresh fix. No retry is attempted.
func (s *geoLocatorService) GetCurrentLocation(ctx context.Context) (entity.Coordinate, error) {
	if s.provider == nil {
		s.observer.LocationRequestCompleted(outcomeUnsupported)

		return entity.Coordinate{}, domainerrors.ErrLocationUnsupported
	}

	fixCtx := ctx
	if s.options.Timeout > 0 {
		var cancel context.CancelFunc
		fixCtx, cancel = context.WithTimeout(ctx, s.options.Timeout)
		defer cancel()
	}

	coord, err := s.provider.GetCurrentPosition(fixCtx, s.options)
	if err != nil {
		outcome, mapped := s.mapPositionError(fixCtx, err)
		s.observer.LocationRequestCompleted(outcome)
		s.log(ctx).Warn("Current location unavailable",
			slog.String("outcome", outcome),
			slog.Any("error", err),
		)

		return entity.Coordinate{}, mapped
	}

	if !coord.IsValid() {
		s.observer.LocationRequestCompleted(outcomeUnavailable)

		return entity.Coordinate{}, domainerrors.ErrPositionUnavailable.Wrap(
			errors.Errorf("provider returned out of range position (%f, %f)", coord.Latitude, coord.Longitude),
		)
	}

	s.observer.LocationRequestCompleted(outcomeSuccess)

	return coord, nil
}

// mapPositionError translates platform failure codes into semantic errors.
func (s *geoLocatorService) mapPositionError(fixCtx context.Context, err error) (string, error) {
	var posErr *service.PositionError
	if errors.As(err, &posErr) {
		switch posErr.Code {
		case service.PositionPermissionDenied:
			return outcomeDenied, domainerrors.ErrPermissionDenied.Wrap(err)
		case service.PositionUnavailable:
			return outcomeUnavailable, domainerrors.ErrPositionUnavailable.Wrap(err)
		case service.PositionTimeout:
			return outcomeTimeout, domainerrors.ErrLocationTimeout.Wrap(err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(fixCtx.Err(), context.DeadlineExceeded) {
		return outcomeTimeout, domainerrors.ErrLocationTimeout.Wrap(err)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return outcomeFailed, err
	}

	return outcomeUnavailable, domainerrors.ErrPositionUnavailable.Wrap(err)
}
