// Package usecase defines the application use cases and the store proximity filter pipeline.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// StoreRefFunc extracts the store an item belongs to. ok is false when the
// item does not reference any store.
type StoreRefFunc[T any] func(item T) (ref entity.StoreRef, ok bool)

// FilterResult is the outcome of a proximity filter run.
type FilterResult[T any] struct {
	// Items are the surviving items in input order.
	Items []T
	// Distances holds the distance of every store that passed the filter.
	Distances map[entity.StoreRef]float64
	// Applied is false when filtering was skipped, either because there was
	// no current location or because store resolution failed.
	Applied bool
	// Err is the resolution error that caused filtering to be skipped.
	Err error
}

// FilterByLocation reduces items to those whose store lies within
// maxDistanceKm of current, preserving input order.
//
// A nil current location returns items unchanged. A failed batch resolution
// also returns items unchanged, while items whose store has no registered
// coordinate are dropped.
func FilterByLocation[T any](
	ctx context.Context,
	filter LocationFilterUsecase,
	items []T,
	storeRef StoreRefFunc[T],
	current *entity.Coordinate,
	maxDistanceKm float64,
) []T {
	return FilterWithDistances(ctx, filter, items, storeRef, current, maxDistanceKm).Items
}

// FilterWithDistances is FilterByLocation that also reports per-store
// distances and whether the filter was actually applied.
func FilterWithDistances[T any](
	ctx context.Context,
	filter LocationFilterUsecase,
	items []T,
	storeRef StoreRefFunc[T],
	current *entity.Coordinate,
	maxDistanceKm float64,
) FilterResult[T] {
	if current == nil || filter == nil {
		return FilterResult[T]{Items: items}
	}

	refs := distinctStoreRefs(items, storeRef)

	within, err := filter.StoresWithinRadius(ctx, *current, refs, maxDistanceKm)
	if err != nil {
		// Fail open: a broken lookup must not empty the listing.
		return FilterResult[T]{Items: items, Err: err}
	}

	kept := make([]T, 0, len(items))
	distances := make(map[entity.StoreRef]float64, len(within))
	for _, item := range items {
		ref, ok := storeRef(item)
		if !ok {
			continue
		}

		store, found := within[ref]
		if !found {
			continue
		}

		kept = append(kept, item)
		distances[ref] = store.DistanceKm
	}

	return FilterResult[T]{
		Items:     kept,
		Distances: distances,
		Applied:   true,
	}
}

func distinctStoreRefs[T any](items []T, storeRef StoreRefFunc[T]) []entity.StoreRef {
	seen := make(map[entity.StoreRef]struct{}, len(items))
	refs := make([]entity.StoreRef, 0, len(items))
	for _, item := range items {
		ref, ok := storeRef(item)
		if !ok || ref == "" {
			continue
		}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}

	return refs
}
