package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a user's shipping address. At most one address per user has IsDefault set.
type Address struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	CountryID      uuid.UUID
	StateID        uuid.UUID
	CityID         uuid.UUID
	DistrictID     *uuid.UUID
	AddressLineOne string
	AddressLineTwo *string
	ZipCode        *string
	IsDefault      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
