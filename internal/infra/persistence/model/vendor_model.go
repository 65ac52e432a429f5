package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorModel is the GORM-specific struct for the 'vendors' table.
type VendorModel struct {
	ID                 uuid.UUID              `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID             uuid.UUID              `gorm:"type:uuid;not null;index"`
	AddressID          *uuid.UUID             `gorm:"type:uuid;index"`
	Name               string                 `gorm:"type:varchar(255);not null"`
	BusinessCategoryID *uuid.UUID             `gorm:"type:uuid;index"`
	BusinessCategory   *BusinessCategoryModel `gorm:"foreignKey:BusinessCategoryID"`
	TaxID              *string                `gorm:"type:varchar(64)"`
	VendorStatus       string                 `gorm:"type:varchar(20);not null;default:'trial'"`
	PaymentStatus      string                 `gorm:"type:varchar(20);not null;default:'unpaid'"`
	LeadsCount         int                    `gorm:"not null;default:0;check:chk_vendors_leads_count,leads_count >= 0"`
	LeadsConsumed      int                    `gorm:"not null;default:0"`
	RegisteredAt       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
