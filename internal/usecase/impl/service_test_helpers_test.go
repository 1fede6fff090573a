package impl

import (
	"io"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
)

// Bangalore fixtures: storeA is ~5 km and storeB ~50 km due east of bangalore.
var (
	bangalore = entity.NewCoordinate(12.97, 77.59)
	storeA    = entity.StoreRef("store-a")
	storeB    = entity.StoreRef("store-b")
	storeC    = entity.StoreRef("store-c")
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(timeout time.Duration) *config.Config {
	return &config.Config{
		Geolocation: &config.GeolocationConfig{Timeout: timeout},
	}
}

func strPtr(s string) *string {
	return &s
}

func warehouseRow(id entity.StoreRef, lat, lng string) entity.WarehouseLocationRow {
	return entity.WarehouseLocationRow{
		StoreID:            id,
		WarehouseAddressID: "addr-" + id.String(),
		Lat:                strPtr(lat),
		Lng:                strPtr(lng),
	}
}

func bangaloreRows() []entity.WarehouseLocationRow {
	return []entity.WarehouseLocationRow{
		warehouseRow(storeA, "12.97", "77.636145"),
		warehouseRow(storeB, "12.97", "78.05145"),
	}
}

type recordingObserver struct {
	resolutionFailures []string
	filterRuns         [][3]int
	malformed          int
	geocodeOutcomes    []string
	locationOutcomes   []string
}

func (o *recordingObserver) StoreResolutionFailed(reason string) {
	o.resolutionFailures = append(o.resolutionFailures, reason)
}

func (o *recordingObserver) StoreFilterApplied(requested, located, withinRadius int) {
	o.filterRuns = append(o.filterRuns, [3]int{requested, located, withinRadius})
}

func (o *recordingObserver) MalformedStoreLocation() {
	o.malformed++
}

func (o *recordingObserver) ReverseGeocodeCompleted(outcome string, _ time.Duration) {
	o.geocodeOutcomes = append(o.geocodeOutcomes, outcome)
}

func (o *recordingObserver) LocationRequestCompleted(outcome string) {
	o.locationOutcomes = append(o.locationOutcomes, outcome)
}
