package postgres

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const warehouseLocationsQuery = `SELECT stores\.id AS store_id, stores\.warehouse_address_id, addresses\.lat, addresses\.lng ` +
	`FROM "stores" LEFT JOIN addresses ON addresses\.id = stores\.warehouse_address_id ` +
	`WHERE stores\.id IN \(\$1,\$2\) AND stores\.warehouse_address_id IS NOT NULL`

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestStoreLocationRepository_FindWarehouseLocations_SingleQuery(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(warehouseLocationsQuery).
		WithArgs("store-a", "store-b").
		WillReturnRows(sqlmock.NewRows([]string{"store_id", "warehouse_address_id", "lat", "lng"}).
			AddRow("store-a", "w-a", "12.97", "77.636145").
			AddRow("store-b", "w-b", nil, nil))

	repo := NewStoreLocationRepository(db)
	rows, err := repo.FindWarehouseLocations(context.Background(), []entity.StoreRef{"store-a", "store-b"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, entity.StoreRef("store-a"), rows[0].StoreID)
	assert.Equal(t, "w-a", rows[0].WarehouseAddressID)
	require.NotNil(t, rows[0].Lat)
	assert.Equal(t, "12.97", *rows[0].Lat)
	assert.Nil(t, rows[1].Lat)
	assert.Nil(t, rows[1].Lng)

	// Any statement beyond the expected one fails the call above.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreLocationRepository_FindWarehouseLocations_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(warehouseLocationsQuery).
		WithArgs("store-a", "store-b").
		WillReturnError(errors.New("connection reset"))

	repo := NewStoreLocationRepository(db)
	rows, err := repo.FindWarehouseLocations(context.Background(), []entity.StoreRef{"store-a", "store-b"})
	require.Error(t, err)
	assert.Nil(t, rows)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}
