package model

import (
	"time"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
type StoreModel struct {
	ID                 string        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID            string        `gorm:"type:uuid;not null;index"`
	Name               string        `gorm:"type:varchar(255);not null"`
	WarehouseAddressID *string       `gorm:"type:uuid;index"`
	WarehouseAddress   *AddressModel `gorm:"foreignKey:WarehouseAddressID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// WarehouseLocationModel is the projection of a store joined with its warehouse address.
type WarehouseLocationModel struct {
	StoreID            string  `gorm:"column:store_id"`
	WarehouseAddressID string  `gorm:"column:warehouse_address_id"`
	Lat                *string `gorm:"column:lat"`
	Lng                *string `gorm:"column:lng"`
}
