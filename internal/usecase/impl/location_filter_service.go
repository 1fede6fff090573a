package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

// LocationFilterServiceParams holds dependencies for the location filter, injected by Fx.
type LocationFilterServiceParams struct {
	fx.In

	Index    usecase.StoreLocationIndex
	Logger   *slog.Logger
	Observer service.LocationObserver `optional:"true"`
}

type locationFilterService struct {
	index    usecase.StoreLocationIndex
	observer service.LocationObserver
	logger   *slog.Logger
}

// NewLocationFilterService creates the store proximity filter.
func NewLocationFilterService(params LocationFilterServiceParams) usecase.LocationFilterUsecase {
	observer := params.Observer
	if observer == nil {
		observer = service.NoopLocationObserver{}
	}

	return &locationFilterService{
		index:    params.Index,
		observer: observer,
		logger:   params.Logger,
	}
}

func (s *locationFilterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// StoresWithinRadius resolves refs in one batch and keeps the stores whose
// distance from current is at most maxDistanceKm.
func (s *locationFilterService) StoresWithinRadius(
	ctx context.Context,
	current entity.Coordinate,
	refs []entity.StoreRef,
	maxDistanceKm float64,
) (map[entity.StoreRef]entity.StoreDistance, error) {
	// Resolution completes before any distance is compared.
	distances, err := s.index.Distances(ctx, current, refs)
	if err != nil {
		s.reportFailure(ctx, err, len(refs))

		return nil, err
	}

	within := make(map[entity.StoreRef]entity.StoreDistance, len(distances))
	for id, d := range distances {
		if d.DistanceKm <= maxDistanceKm {
			within[id] = d
		}
	}

	s.observer.StoreFilterApplied(len(refs), len(distances), len(within))
	s.log(ctx).Debug("Store proximity filter applied",
		slog.Int("requested", len(refs)),
		slog.Int("located", len(distances)),
		slog.Int("within_radius", len(within)),
		slog.Float64("max_distance_km", maxDistanceKm),
	)

	return within, nil
}

// NearbyStores returns located stores within maxDistanceKm, nearest first.
func (s *locationFilterService) NearbyStores(
	ctx context.Context,
	current entity.Coordinate,
	refs []entity.StoreRef,
	maxDistanceKm float64,
) ([]entity.StoreDistance, error) {
	within, err := s.StoresWithinRadius(ctx, current, refs, maxDistanceKm)
	if err != nil {
		return nil, err
	}

	nearby := make([]entity.StoreDistance, 0, len(within))
	for _, d := range within {
		nearby = append(nearby, d)
	}

	slices.SortFunc(nearby, func(a, b entity.StoreDistance) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}

		return cmp.Compare(a.StoreID, b.StoreID)
	})

	return nearby, nil
}

func (s *locationFilterService) reportFailure(ctx context.Context, err error, requested int) {
	reason := "lookup_failed"
	if errors.Is(err, domainerrors.ErrInvalidCoordinate) {
		reason = "invalid_origin"
	}

	s.observer.StoreResolutionFailed(reason)
	s.log(ctx).Error("Store location resolution failed, proximity filter skipped",
		slog.String("reason", reason),
		slog.Int("requested", requested),
		slog.Any("error", err),
	)
}
