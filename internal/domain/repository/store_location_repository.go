// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// StoreLocationRepository reads registered warehouse locations of stores.
type StoreLocationRepository interface {
	// FindWarehouseLocations returns, in a single round trip, the warehouse
	// address rows of the given stores. Stores without a warehouse address are
	// not returned. Coordinates are passed through as stored, unparsed.
	FindWarehouseLocations(ctx context.Context, storeIDs []entity.StoreRef) ([]entity.WarehouseLocationRow, error)
}
