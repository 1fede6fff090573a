// Package service defines interfaces for external capabilities used by the use cases.
package service

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/domain/entity"
)

// PositionErrorCode mirrors the error codes of the browser Geolocation API.
type PositionErrorCode int

const (
	// PositionPermissionDenied means the user declined location access.
	PositionPermissionDenied PositionErrorCode = 1
	// PositionUnavailable means the device cannot determine its position.
	PositionUnavailable PositionErrorCode = 2
	// PositionTimeout means no fix was obtained within the requested window.
	PositionTimeout PositionErrorCode = 3
)

// PositionError is returned by a PositionProvider when a fix cannot be obtained.
type PositionError struct {
	Code    PositionErrorCode
	Message string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position error %d: %s", e.Code, e.Message)
}

// PositionOptions are the fix options handed to the location platform.
type PositionOptions struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// PositionProvider is the platform location capability.
type PositionProvider interface {
	// GetCurrentPosition resolves the current position of the caller.
	GetCurrentPosition(ctx context.Context, opts PositionOptions) (entity.Coordinate, error)
}
