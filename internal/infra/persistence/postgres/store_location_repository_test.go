package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWarehouseLocationRows(t *testing.T) {
	lat, lng := "12.97", "77.59"
	got := toWarehouseLocationRows([]model.WarehouseLocationModel{
		{StoreID: "store-a", WarehouseAddressID: "w-a", Lat: &lat, Lng: &lng},
		{StoreID: "store-b", WarehouseAddressID: "w-b"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, entity.StoreRef("store-a"), got[0].StoreID)
	assert.Equal(t, "w-a", got[0].WarehouseAddressID)
	assert.Equal(t, &lat, got[0].Lat)
	assert.Nil(t, got[1].Lat)
	assert.Nil(t, got[1].Lng)
}

func TestStoreIDStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, storeIDStrings([]entity.StoreRef{"a", "b"}))
}

func TestStoreLocationRepository_EmptyInput(t *testing.T) {
	repo := NewStoreLocationRepository(nil)

	rows, err := repo.FindWarehouseLocations(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
