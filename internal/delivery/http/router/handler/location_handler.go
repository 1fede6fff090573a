package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"
	"marketplace/internal/geo"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	GeoLocator      usecase.GeoLocatorUsecase
	ReverseGeocoder usecase.ReverseGeocoderUsecase
	Logger          *slog.Logger
}

// LocationHandler serves current position, reverse geocoding and distance lookups.
type LocationHandler struct {
	geoLocator      usecase.GeoLocatorUsecase
	reverseGeocoder usecase.ReverseGeocoderUsecase
	logger          *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		geoLocator:      params.GeoLocator,
		reverseGeocoder: params.ReverseGeocoder,
		logger:          params.Logger,
	}
}

// ReverseGeocodeRequest is the query of GET /location/reverse
type ReverseGeocodeRequest struct {
	Latitude  float64 `query:"lat" validate:"min=-90,max=90"`
	Longitude float64 `query:"lng" validate:"min=-180,max=180"`
}

// DistanceRequest is the query of GET /location/distance
type DistanceRequest struct {
	FromLatitude  float64 `query:"from_lat" validate:"min=-90,max=90"`
	FromLongitude float64 `query:"from_lng" validate:"min=-180,max=180"`
	ToLatitude    float64 `query:"to_lat" validate:"min=-90,max=90"`
	ToLongitude   float64 `query:"to_lng" validate:"min=-180,max=180"`
}

// ReverseGeocodeResponse carries the resolved address. Resolved is false when
// the geocoder failed and the address was left empty.
type ReverseGeocodeResponse struct {
	Address  entity.PostalAddress `json:"address"`
	Resolved bool                 `json:"resolved"`
}

// DistanceResponse carries a great-circle distance.
type DistanceResponse struct {
	From       entity.Coordinate `json:"from"`
	To         entity.Coordinate `json:"to"`
	DistanceKm float64           `json:"distance_km"`
}

// GetCurrentLocation handles GET /location/current
func (h *LocationHandler) GetCurrentLocation(c echo.Context) error {
	coord, err := h.geoLocator.GetCurrentLocation(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coord, "Current location resolved")
}

// ReverseGeocode handles GET /location/reverse. A geocoding failure is not an
// error for the caller; the address is returned empty instead.
func (h *LocationHandler) ReverseGeocode(c echo.Context) error {
	var req ReverseGeocodeRequest
	bindErr := echo.QueryParamsBinder(c).
		MustFloat64("lat", &req.Latitude).
		MustFloat64("lng", &req.Longitude).
		BindError()
	if err := validateQuery(c, bindErr, &req); err != nil {
		return handleAppError(c, err)
	}

	ctx := c.Request().Context()
	coord := entity.NewCoordinate(req.Latitude, req.Longitude)

	address, err := h.reverseGeocoder.ReverseGeocode(ctx, coord)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrGeocodingFailed) {
			return handleAppError(c, err)
		}

		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Returning empty address after geocoding failure",
			slog.Any("error", err),
		)

		return response.Success(c, http.StatusOK, ReverseGeocodeResponse{}, "Address unavailable")
	}

	return response.Success(c, http.StatusOK, ReverseGeocodeResponse{Address: address, Resolved: true}, "Address resolved")
}

// Distance handles GET /location/distance
func (h *LocationHandler) Distance(c echo.Context) error {
	var req DistanceRequest
	bindErr := echo.QueryParamsBinder(c).
		MustFloat64("from_lat", &req.FromLatitude).
		MustFloat64("from_lng", &req.FromLongitude).
		MustFloat64("to_lat", &req.ToLatitude).
		MustFloat64("to_lng", &req.ToLongitude).
		BindError()
	if err := validateQuery(c, bindErr, &req); err != nil {
		return handleAppError(c, err)
	}

	from := entity.NewCoordinate(req.FromLatitude, req.FromLongitude)
	to := entity.NewCoordinate(req.ToLatitude, req.ToLongitude)

	km, err := geo.CheckedDistanceKm(from, to)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DistanceResponse{From: from, To: to, DistanceKm: km}, "Distance computed")
}
