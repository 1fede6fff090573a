// Package model contains the GORM models of the store/address datastore.
package model

import (
	"time"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Coordinates are stored as text by the hosted backend and may be null.
type AddressModel struct {
	ID         string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Line1      string  `gorm:"type:text"`
	Line2      string  `gorm:"type:text"`
	City       string  `gorm:"type:varchar(255)"`
	State      string  `gorm:"type:varchar(255)"`
	PostalCode string  `gorm:"type:varchar(32)"`
	Country    string  `gorm:"type:varchar(255)"`
	Lat        *string `gorm:"type:text"`
	Lng        *string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
