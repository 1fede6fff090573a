package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/geo"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

// StoreLocationIndexParams holds dependencies for the store location index, injected by Fx.
type StoreLocationIndexParams struct {
	fx.In

	Repo     repository.StoreLocationRepository
	Logger   *slog.Logger
	Observer service.LocationObserver `optional:"true"`
}

type storeLocationIndex struct {
	repo     repository.StoreLocationRepository
	observer service.LocationObserver
	logger   *slog.Logger
}

// NewStoreLocationIndex creates a store location index backed by repo.
func NewStoreLocationIndex(params StoreLocationIndexParams) usecase.StoreLocationIndex {
	observer := params.Observer
	if observer == nil {
		observer = service.NoopLocationObserver{}
	}

	return &storeLocationIndex{
		repo:     params.Repo,
		observer: observer,
		logger:   params.Logger,
	}
}

func (idx *storeLocationIndex) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, idx.logger)
}

// Resolve looks up every id with a single repository call.
func (idx *storeLocationIndex) Resolve(ctx context.Context, ids []entity.StoreRef) (map[entity.StoreRef]entity.StoreLocation, error) {
	uniq := uniqueStoreRefs(ids)
	if len(uniq) == 0 {
		return map[entity.StoreRef]entity.StoreLocation{}, nil
	}

	rows, err := idx.repo.FindWarehouseLocations(ctx, uniq)
	if err != nil {
		return nil, domainerrors.ErrResolutionFailed.Wrap(err)
	}

	requested := make(map[entity.StoreRef]struct{}, len(uniq))
	for _, id := range uniq {
		requested[id] = struct{}{}
	}

	locations := make(map[entity.StoreRef]entity.StoreLocation, len(rows))
	for _, row := range rows {
		if _, ok := requested[row.StoreID]; !ok {
			continue
		}

		coord, ok := parseWarehouseCoordinate(row)
		if !ok {
			idx.observer.MalformedStoreLocation()
			idx.log(ctx).Debug("Skipping store with unusable warehouse coordinate",
				slog.String("store_id", row.StoreID.String()),
				slog.String("warehouse_address_id", row.WarehouseAddressID),
			)

			continue
		}

		locations[row.StoreID] = entity.StoreLocation{
			StoreID:    row.StoreID,
			Coordinate: &coord,
		}
	}

	return locations, nil
}

// Distances resolves ids and computes the distance of every located store
// from origin. The map is built per call and never cached.
func (idx *storeLocationIndex) Distances(
	ctx context.Context,
	origin entity.Coordinate,
	ids []entity.StoreRef,
) (map[entity.StoreRef]entity.StoreDistance, error) {
	if !origin.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	locations, err := idx.Resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	distances := make(map[entity.StoreRef]entity.StoreDistance, len(locations))
	for id, location := range locations {
		if !location.HasCoordinate() {
			continue
		}

		distances[id] = entity.StoreDistance{
			StoreID:    id,
			Coordinate: *location.Coordinate,
			DistanceKm: geo.DistanceKm(origin, *location.Coordinate),
		}
	}

	return distances, nil
}

// parseWarehouseCoordinate parses the string coordinate fields of a row.
// Missing, malformed or out of range values make the location unknown.
func parseWarehouseCoordinate(row entity.WarehouseLocationRow) (entity.Coordinate, bool) {
	if row.Lat == nil || row.Lng == nil {
		return entity.Coordinate{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(*row.Lat), 64)
	if err != nil {
		return entity.Coordinate{}, false
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(*row.Lng), 64)
	if err != nil {
		return entity.Coordinate{}, false
	}

	coord := entity.NewCoordinate(lat, lng)
	if !coord.IsValid() {
		return entity.Coordinate{}, false
	}

	return coord, true
}

func uniqueStoreRefs(ids []entity.StoreRef) []entity.StoreRef {
	seen := make(map[entity.StoreRef]struct{}, len(ids))
	uniq := make([]entity.StoreRef, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}

	return uniq
}
