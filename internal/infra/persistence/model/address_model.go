package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'user_addresses' table.
// The partial unique index keeps at most one default address per user.
type AddressModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_addresses_user_id;uniqueIndex:idx_user_addresses_one_default,where:is_default = true"`
	CountryID      uuid.UUID  `gorm:"type:uuid;not null"`
	StateID        uuid.UUID  `gorm:"type:uuid;not null"`
	CityID         uuid.UUID  `gorm:"type:uuid;not null"`
	DistrictID     *uuid.UUID `gorm:"type:uuid"`
	AddressLineOne string     `gorm:"type:text;not null"`
	AddressLineTwo *string    `gorm:"type:text"`
	ZipCode        *string    `gorm:"type:varchar(20)"`
	IsDefault      bool       `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "user_addresses"
}
