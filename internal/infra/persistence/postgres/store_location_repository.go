// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// storeLocationRepository implements the domain.StoreLocationRepository interface.
type storeLocationRepository struct {
	db *gorm.DB
}

// NewStoreLocationRepository is the constructor for storeLocationRepository.
func NewStoreLocationRepository(db *gorm.DB) repository.StoreLocationRepository {
	return &storeLocationRepository{db: db}
}

// FindWarehouseLocations loads the warehouse coordinates of all stores in a
// single query. Stores without a warehouse address are not returned.
func (repo *storeLocationRepository) FindWarehouseLocations(ctx context.Context, storeIDs []entity.StoreRef) ([]entity.WarehouseLocationRow, error) {
	if len(storeIDs) == 0 {
		return []entity.WarehouseLocationRow{}, nil
	}

	var rows []model.WarehouseLocationModel
	err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Select("stores.id AS store_id, stores.warehouse_address_id, addresses.lat, addresses.lng").
		Joins("LEFT JOIN addresses ON addresses.id = stores.warehouse_address_id").
		Where("stores.id IN ?", storeIDStrings(storeIDs)).
		Where("stores.warehouse_address_id IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find warehouse locations")
	}

	return toWarehouseLocationRows(rows), nil
}

func storeIDStrings(ids []entity.StoreRef) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

func toWarehouseLocationRows(models []model.WarehouseLocationModel) []entity.WarehouseLocationRow {
	rows := make([]entity.WarehouseLocationRow, 0, len(models))
	for _, m := range models {
		rows = append(rows, entity.WarehouseLocationRow{
			StoreID:            entity.StoreRef(m.StoreID),
			WarehouseAddressID: m.WarehouseAddressID,
			Lat:                m.Lat,
			Lng:                m.Lng,
		})
	}

	return rows
}
