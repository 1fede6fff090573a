package impl

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStoreLocationIndex(t *testing.T) (*storeLocationIndex, *mockRepo.MockStoreLocationRepository, *recordingObserver) {
	t.Helper()

	repo := mockRepo.NewMockStoreLocationRepository(t)
	observer := &recordingObserver{}
	idx := NewStoreLocationIndex(StoreLocationIndexParams{
		Repo:     repo,
		Logger:   newDiscardLogger(),
		Observer: observer,
	})

	return idx.(*storeLocationIndex), repo, observer
}

func TestStoreLocationIndex_Resolve_SingleBatchCall(t *testing.T) {
	idx, repo, _ := newTestStoreLocationIndex(t)

	ctx := context.Background()
	repo.EXPECT().
		FindWarehouseLocations(ctx, []entity.StoreRef{storeA, storeB, storeC}).
		Return(bangaloreRows(), nil).
		Once()

	locations, err := idx.Resolve(ctx, []entity.StoreRef{storeA, storeB, storeA, "", storeC, storeB})
	require.NoError(t, err)
	require.Len(t, locations, 2)

	require.True(t, locations[storeA].HasCoordinate())
	assert.Equal(t, entity.NewCoordinate(12.97, 77.636145), *locations[storeA].Coordinate)
	assert.Equal(t, storeB, locations[storeB].StoreID)

	_, ok := locations[storeC]
	assert.False(t, ok, "store without a warehouse must be absent")
}

func TestStoreLocationIndex_Resolve_EmptyInputSkipsRepository(t *testing.T) {
	idx, _, _ := newTestStoreLocationIndex(t)

	locations, err := idx.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, locations)

	locations, err = idx.Resolve(context.Background(), []entity.StoreRef{"", ""})
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestStoreLocationIndex_Resolve_MalformedRows(t *testing.T) {
	idx, repo, observer := newTestStoreLocationIndex(t)

	rows := []entity.WarehouseLocationRow{
		warehouseRow(storeA, "12.97", "77.636145"),
		warehouseRow(storeB, "not-a-number", "78.05"),
		{StoreID: storeC, WarehouseAddressID: "addr-store-c"},
		warehouseRow("store-d", "95.0", "10.0"),
		warehouseRow("store-e", " 13.0 ", " 77.6 "),
	}
	repo.EXPECT().
		FindWarehouseLocations(mock.Anything, mock.Anything).
		Return(rows, nil)

	locations, err := idx.Resolve(context.Background(),
		[]entity.StoreRef{storeA, storeB, storeC, "store-d", "store-e"})
	require.NoError(t, err)

	assert.Len(t, locations, 2)
	assert.Contains(t, locations, storeA)
	assert.Contains(t, locations, entity.StoreRef("store-e"))
	assert.Equal(t, 3, observer.malformed)
}

func TestStoreLocationIndex_Resolve_IgnoresUnrequestedRows(t *testing.T) {
	idx, repo, _ := newTestStoreLocationIndex(t)

	repo.EXPECT().
		FindWarehouseLocations(mock.Anything, []entity.StoreRef{storeA}).
		Return(bangaloreRows(), nil)

	locations, err := idx.Resolve(context.Background(), []entity.StoreRef{storeA})
	require.NoError(t, err)
	assert.Len(t, locations, 1)
	assert.Contains(t, locations, storeA)
}

func TestStoreLocationIndex_Resolve_RepositoryError(t *testing.T) {
	idx, repo, _ := newTestStoreLocationIndex(t)

	repo.EXPECT().
		FindWarehouseLocations(mock.Anything, mock.Anything).
		Return(nil, errors.New("network down"))

	locations, err := idx.Resolve(context.Background(), []entity.StoreRef{storeA})
	assert.Nil(t, locations)
	assert.ErrorIs(t, err, domainerrors.ErrResolutionFailed)
	assert.Contains(t, err.Error(), "network down")
}

func TestStoreLocationIndex_Distances(t *testing.T) {
	idx, repo, _ := newTestStoreLocationIndex(t)

	repo.EXPECT().
		FindWarehouseLocations(mock.Anything, mock.Anything).
		Return(bangaloreRows(), nil)

	distances, err := idx.Distances(context.Background(), bangalore, []entity.StoreRef{storeA, storeB, storeC})
	require.NoError(t, err)
	require.Len(t, distances, 2)

	assert.InDelta(t, 5.0, distances[storeA].DistanceKm, 0.01)
	assert.InDelta(t, 50.0, distances[storeB].DistanceKm, 0.01)
	assert.Equal(t, storeB, distances[storeB].StoreID)
}

func TestStoreLocationIndex_Distances_InvalidOrigin(t *testing.T) {
	idx, _, _ := newTestStoreLocationIndex(t)

	distances, err := idx.Distances(context.Background(), entity.NewCoordinate(-91, 0), []entity.StoreRef{storeA})
	assert.Nil(t, distances)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}
