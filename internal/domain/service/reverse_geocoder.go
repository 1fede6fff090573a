package service

import (
	"context"

	"marketplace/internal/domain/entity"
)

// ReverseGeocoder resolves coordinates to provider-specific address details.
type ReverseGeocoder interface {
	// ReverseGeocode returns the raw locality details for a coordinate,
	// keyed by the provider's field names (road, city, town, postcode, ...).
	ReverseGeocode(ctx context.Context, coord entity.Coordinate) (map[string]string, error)
}
