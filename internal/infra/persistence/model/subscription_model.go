package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
type SubscriptionModel struct {
	ID          uuid.UUID               `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string                  `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string                  `gorm:"type:text;not null;default:''"`
	LeadsCount  int                     `gorm:"not null"`
	Price       decimal.Decimal         `gorm:"type:decimal(12,2);not null"`
	Items       []SubscriptionItemModel `gorm:"foreignKey:SubscriptionID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// SubscriptionItemModel is the GORM-specific struct for the 'subscription_items' table.
type SubscriptionItemModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionItemModel) TableName() string {
	return "subscription_items"
}

// VendorSubscriptionModel is the GORM-specific struct for the append-only 'vendor_subscriptions' table.
type VendorSubscriptionModel struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VendorID       uuid.UUID          `gorm:"type:uuid;not null;index"`
	SubscriptionID uuid.UUID          `gorm:"type:uuid;not null;index"`
	Subscription   *SubscriptionModel `gorm:"foreignKey:SubscriptionID"`
	LeadsGranted   int                `gorm:"not null"`
	Price          decimal.Decimal    `gorm:"type:decimal(12,2);not null"`
	PurchasedAt    time.Time          `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (VendorSubscriptionModel) TableName() string {
	return "vendor_subscriptions"
}
