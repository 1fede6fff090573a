package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// GeoLocatorUsecase obtains the current position of the caller.
type GeoLocatorUsecase interface {
	// GetCurrentLocation requests a fresh fix from the location platform.
	// Failures are one of ErrPermissionDenied, ErrPositionUnavailable,
	// ErrLocationTimeout or ErrLocationUnsupported and are never retried.
	GetCurrentLocation(ctx context.Context) (entity.Coordinate, error)
}

// ReverseGeocoderUsecase resolves coordinates to postal addresses.
type ReverseGeocoderUsecase interface {
	// ReverseGeocode returns the postal address of a coordinate. On
	// ErrGeocodingFailed the caller falls back to an empty address.
	ReverseGeocode(ctx context.Context, coord entity.Coordinate) (entity.PostalAddress, error)
}

// StoreLocationIndex resolves store references to warehouse locations.
type StoreLocationIndex interface {
	// Resolve looks up all ids in a single batch. Stores without a usable
	// coordinate are omitted from the result.
	Resolve(ctx context.Context, ids []entity.StoreRef) (map[entity.StoreRef]entity.StoreLocation, error)

	// Distances resolves ids and scores every located store against origin.
	Distances(ctx context.Context, origin entity.Coordinate, ids []entity.StoreRef) (map[entity.StoreRef]entity.StoreDistance, error)
}

// LocationFilterUsecase decides which stores are within a radius of a position.
type LocationFilterUsecase interface {
	// StoresWithinRadius returns the stores among refs that have a registered
	// coordinate within maxDistanceKm (inclusive) of current. Resolution
	// failures are reported to the observability sink and returned.
	StoresWithinRadius(ctx context.Context, current entity.Coordinate, refs []entity.StoreRef, maxDistanceKm float64) (map[entity.StoreRef]entity.StoreDistance, error)

	// NearbyStores returns located stores within maxDistanceKm ordered by distance.
	NearbyStores(ctx context.Context, current entity.Coordinate, refs []entity.StoreRef, maxDistanceKm float64) ([]entity.StoreDistance, error)
}
