package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	Config     *config.Config
	Filter     usecase.LocationFilterUsecase
	GeoLocator usecase.GeoLocatorUsecase
	Logger     *slog.Logger
}

// ListingHandler serves the proximity filtered listing and store endpoints.
type ListingHandler struct {
	filter        usecase.LocationFilterUsecase
	geoLocator    usecase.GeoLocatorUsecase
	defaultRadius float64
	maxRadius     float64
	logger        *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	if params.Config.StoreFilter == nil {
		params.Config.ApplyDefaults()
	}

	return &ListingHandler{
		filter:        params.Filter,
		geoLocator:    params.GeoLocator,
		defaultRadius: params.Config.StoreFilter.DefaultRadiusKm,
		maxRadius:     params.Config.StoreFilter.MaxRadiusKm,
		logger:        params.Logger,
	}
}

// PositionInput is a client supplied position.
type PositionInput struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// NearbyListingsRequest is the body of POST /listings/nearby
type NearbyListingsRequest struct {
	Items    []entity.ListingItem `json:"items" validate:"dive"`
	Position *PositionInput       `json:"position" validate:"omitempty"`
	// UseDeviceLocation asks the server to resolve the position when none is given.
	UseDeviceLocation bool     `json:"use_device_location"`
	RadiusKm          *float64 `json:"radius_km"`
}

// NearbyListingsResponse is the filtered listing.
type NearbyListingsResponse struct {
	Items     []entity.ListingItem        `json:"items"`
	Filtered  bool                        `json:"filtered"`
	RadiusKm  float64                     `json:"radius_km"`
	Position  *entity.Coordinate          `json:"position,omitempty"`
	Distances map[entity.StoreRef]float64 `json:"distances,omitempty"`
}

// NearbyStoresRequest is the body of POST /stores/nearby
type NearbyStoresRequest struct {
	StoreIDs []entity.StoreRef `json:"store_ids" validate:"required,min=1,dive,required"`
	Position *PositionInput    `json:"position" validate:"required"`
	RadiusKm *float64          `json:"radius_km"`
}

// NearbyListings handles POST /listings/nearby. Without a position, or when
// store locations cannot be resolved, the items are returned unfiltered.
func (h *ListingHandler) NearbyListings(c echo.Context) error {
	var req NearbyListingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleAppError(c, err)
	}

	radius, err := h.resolveRadius(req.RadiusKm)
	if err != nil {
		return handleAppError(c, err)
	}

	ctx := c.Request().Context()
	current := h.currentPosition(ctx, req.Position, req.UseDeviceLocation)

	items := req.Items
	if items == nil {
		items = []entity.ListingItem{}
	}

	result := usecase.FilterWithDistances(ctx, h.filter, items, entity.ListingStoreRef, current, radius)

	return response.Success(c, http.StatusOK, NearbyListingsResponse{
		Items:     result.Items,
		Filtered:  result.Applied,
		RadiusKm:  radius,
		Position:  current,
		Distances: result.Distances,
	}, "Listings retrieved")
}

// NearbyStores handles POST /stores/nearby and renders the stores within the
// radius as a GeoJSON FeatureCollection ordered by distance.
func (h *ListingHandler) NearbyStores(c echo.Context) error {
	var req NearbyStoresRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleAppError(c, err)
	}

	radius, err := h.resolveRadius(req.RadiusKm)
	if err != nil {
		return handleAppError(c, err)
	}

	origin := entity.NewCoordinate(req.Position.Latitude, req.Position.Longitude)
	nearby, err := h.filter.NearbyStores(c.Request().Context(), origin, req.StoreIDs, radius)
	if err != nil {
		return handleAppError(c, err)
	}

	fc := geojson.NewFeatureCollection()
	for _, store := range nearby {
		feature := geojson.NewFeature(store.Coordinate.Point())
		feature.ID = store.StoreID.String()
		feature.Properties["store_id"] = store.StoreID.String()
		feature.Properties["distance_km"] = store.DistanceKm
		fc.Append(feature)
	}
	fc.ExtraMembers = geojson.Properties{
		"origin":    origin.Point(),
		"radius_km": radius,
	}

	return c.JSON(http.StatusOK, fc)
}

// resolveRadius applies the configured default and bounds.
func (h *ListingHandler) resolveRadius(requested *float64) (float64, error) {
	if requested == nil {
		return h.defaultRadius, nil
	}

	radius := *requested
	if radius < 0 || radius > h.maxRadius {
		return 0, domainerrors.ErrRadiusOutOfRange.WithDetails(
			fmt.Sprintf("radius_km must be between 0 and %g", h.maxRadius),
		)
	}

	return radius, nil
}

// currentPosition prefers the client supplied position and otherwise asks the
// geolocator when allowed. A failed fix leaves the position unknown.
func (h *ListingHandler) currentPosition(ctx context.Context, input *PositionInput, useDevice bool) *entity.Coordinate {
	if input != nil {
		coord := entity.NewCoordinate(input.Latitude, input.Longitude)

		return &coord
	}

	if !useDevice || h.geoLocator == nil {
		return nil
	}

	coord, err := h.geoLocator.GetCurrentLocation(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Listing shown unfiltered, no current location",
			slog.Any("error", err),
		)

		return nil
	}

	return &coord
}
