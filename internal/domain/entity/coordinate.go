// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Coordinate is an immutable geographic position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate builds a Coordinate from a latitude/longitude pair.
func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{Latitude: lat, Longitude: lng}
}

// IsValid reports whether the coordinate is finite and within Earth bounds.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Point converts the coordinate to an orb point, which is ordered [lng, lat].
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
