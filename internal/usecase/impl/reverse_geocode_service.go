package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

// Provider locality keys in priority order; the first non-empty value wins.
var (
	line1Keys      = []string{"road", "neighbourhood", "suburb", "hamlet"}
	line2Keys      = []string{"house_number"}
	cityKeys       = []string{"city", "town", "village", "municipality", "county"}
	stateKeys      = []string{"state", "region"}
	postalCodeKeys = []string{"postcode"}
	countryKeys    = []string{"country"}
)

// ReverseGeocodeServiceParams holds dependencies for the reverse geocoder, injected by Fx.
type ReverseGeocodeServiceParams struct {
	fx.In

	Geocoder service.ReverseGeocoder
	Logger   *slog.Logger
	Observer service.LocationObserver `optional:"true"`
}

type reverseGeocodeService struct {
	geocoder service.ReverseGeocoder
	observer service.LocationObserver
	logger   *slog.Logger
}

// NewReverseGeocodeService creates a reverse geocoding use case.
func NewReverseGeocodeService(params ReverseGeocodeServiceParams) usecase.ReverseGeocoderUsecase {
	observer := params.Observer
	if observer == nil {
		observer = service.NoopLocationObserver{}
	}

	return &reverseGeocodeService{
		geocoder: params.Geocoder,
		observer: observer,
		logger:   params.Logger,
	}
}

func (s *reverseGeocodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ReverseGeocode resolves a coordinate to a postal address. Every call is a
// fresh lookup; failures are not retried.
func (s *reverseGeocodeService) ReverseGeocode(ctx context.Context, coord entity.Coordinate) (entity.PostalAddress, error) {
	if !coord.IsValid() {
		return entity.PostalAddress{}, domainerrors.ErrInvalidCoordinate
	}

	start := time.Now()
	details, err := s.geocoder.ReverseGeocode(ctx, coord)
	if err != nil {
		s.observer.ReverseGeocodeCompleted(outcomeFailed, time.Since(start))
		s.log(ctx).Warn("Reverse geocoding failed",
			slog.Float64("latitude", coord.Latitude),
			slog.Float64("longitude", coord.Longitude),
			slog.Any("error", err),
		)

		if errors.Is(err, domainerrors.ErrGeocodingFailed) {
			return entity.PostalAddress{}, err
		}

		return entity.PostalAddress{}, domainerrors.ErrGeocodingFailed.Wrap(err)
	}

	s.observer.ReverseGeocodeCompleted(outcomeSuccess, time.Since(start))

	return MapPostalAddress(details), nil
}

// MapPostalAddress maps provider locality details onto a postal address,
// preferring more specific locality names over broader ones.
func MapPostalAddress(details map[string]string) entity.PostalAddress {
	return entity.PostalAddress{
		Line1:      firstNonEmpty(details, line1Keys),
		Line2:      firstNonEmpty(details, line2Keys),
		City:       firstNonEmpty(details, cityKeys),
		State:      firstNonEmpty(details, stateKeys),
		PostalCode: firstNonEmpty(details, postalCodeKeys),
		Country:    firstNonEmpty(details, countryKeys),
	}
}

func firstNonEmpty(details map[string]string, keys []string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(details[key]); v != "" {
			return v
		}
	}

	return ""
}
