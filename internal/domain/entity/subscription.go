package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subscription is a purchasable plan that grants LeadsCount credits.
type Subscription struct {
	ID          uuid.UUID
	Name        string
	Description string
	LeadsCount  int
	Price       decimal.Decimal
	Items       []SubscriptionItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SubscriptionItem is one marketing bullet of a plan.
type SubscriptionItem struct {
	ID             uuid.UUID
	SubscriptionID uuid.UUID
	Name           string
}

// VendorSubscription is the append-only receipt written for every grant or purchase.
type VendorSubscription struct {
	ID             uuid.UUID
	VendorID       uuid.UUID
	SubscriptionID uuid.UUID
	LeadsGranted   int
	Price          decimal.Decimal
	PurchasedAt    time.Time
	Subscription   *Subscription
}
