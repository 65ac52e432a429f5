package model

import "github.com/google/uuid"

// CountryModel is the GORM-specific struct for the 'countries' table.
type CountryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	ShortName string    `gorm:"type:varchar(10);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// StateModel is the GORM-specific struct for the 'states' table.
type StateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	CountryID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (StateModel) TableName() string {
	return "states"
}

// CityModel is the GORM-specific struct for the 'cities' table.
type CityModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name    string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_cities_state_name"`
	StateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cities_state_name"`
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}

// DistrictModel is the GORM-specific struct for the 'districts' table.
type DistrictModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name   string    `gorm:"type:varchar(100);not null"`
	CityID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (DistrictModel) TableName() string {
	return "districts"
}
