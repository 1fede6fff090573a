package geolocation

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
)

// StaticProvider always reports the same configured position.
type StaticProvider struct {
	position entity.Coordinate
}

// NewStaticProvider creates a provider fixed at position.
func NewStaticProvider(position entity.Coordinate) *StaticProvider {
	return &StaticProvider{position: position}
}

// GetCurrentPosition returns the configured position unless ctx is already done.
func (p *StaticProvider) GetCurrentPosition(ctx context.Context, _ service.PositionOptions) (entity.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinate{}, err
	}

	return p.position, nil
}
