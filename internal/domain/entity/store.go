package entity

// StoreRef is the opaque identifier of a store. It joins listing items with
// the store's registered warehouse location.
type StoreRef string

// String returns the string representation of the StoreRef.
func (r StoreRef) String() string {
	return string(r)
}

// StoreLocation is the warehouse coordinate registered for a store.
// A nil Coordinate means the location is unknown, never (0, 0).
type StoreLocation struct {
	StoreID    StoreRef    `json:"store_id"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}

// HasCoordinate reports whether the store registered a warehouse coordinate.
func (l StoreLocation) HasCoordinate() bool {
	return l.Coordinate != nil
}

// StoreDistance is a resolved entry of the per-request store distance map.
type StoreDistance struct {
	StoreID    StoreRef   `json:"store_id"`
	Coordinate Coordinate `json:"coordinate"`
	DistanceKm float64    `json:"distance_km"`
}

// WarehouseLocationRow is the raw row returned by the store/address datastore.
// Coordinates may arrive as strings, or be missing entirely.
type WarehouseLocationRow struct {
	StoreID            StoreRef
	WarehouseAddressID string
	Lat                *string
	Lng                *string
}
