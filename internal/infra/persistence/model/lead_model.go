package model

import (
	"time"

	"github.com/google/uuid"
)

// LeadModel is the GORM-specific struct for the 'leads' table.
type LeadModel struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID             uuid.UUID     `gorm:"type:uuid;not null;index"`
	ProductID          uuid.UUID     `gorm:"type:uuid;not null;index"`
	Product            *ProductModel `gorm:"foreignKey:ProductID"`
	BusinessCategoryID uuid.UUID     `gorm:"type:uuid;not null;index"`
	VendorID           *uuid.UUID    `gorm:"type:uuid;index"`
	RequiredUnits      int           `gorm:"not null"`
	Description        *string       `gorm:"type:text"`
	PossibleOrderValue string        `gorm:"type:varchar(100);not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "leads"
}
