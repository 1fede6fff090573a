// Package geo provides great-circle distance calculations.
package geo

import (
	"math"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm calculates the great circle distance between two coordinates in kilometers.
// Identical points yield 0.
func DistanceKm(a, b entity.Coordinate) float64 {
	lat1Rad := degreesToRadians(a.Latitude)
	lat2Rad := degreesToRadians(b.Latitude)
	deltaLat := degreesToRadians(b.Latitude - a.Latitude)
	deltaLng := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// CheckedDistanceKm is DistanceKm with both coordinates validated first.
func CheckedDistanceKm(a, b entity.Coordinate) (float64, error) {
	if !a.IsValid() || !b.IsValid() {
		return 0, domainerrors.ErrInvalidCoordinate
	}

	return DistanceKm(a, b), nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
