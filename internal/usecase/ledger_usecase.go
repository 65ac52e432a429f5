package usecase

import (
	"context"
	"time"

	"leadhub/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterVendorInput represents the input for opening a vendor account on a plan.
type RegisterVendorInput struct {
	UserID             uuid.UUID
	AddressID          *uuid.UUID
	SubscriptionID     uuid.UUID
	BusinessCategoryID *uuid.UUID
	Name               string
	TaxID              *string
	VendorStatus       entity.VendorStatus
	PaymentStatus      entity.PaymentStatus
	RegisteredAt       *time.Time
}

// LedgerUsecase defines the credit economy: grants, purchases and lead contacts.
type LedgerUsecase interface {
	// RegisterVendor creates a vendor holding the plan's credits and one receipt.
	RegisterVendor(ctx context.Context, caller *entity.Caller, input *RegisterVendorInput) (*entity.Vendor, error)

	// PurchaseSubscription adds the plan's credits to the vendor balance and appends a receipt.
	PurchaseSubscription(ctx context.Context, caller *entity.Caller, vendorID, subscriptionID uuid.UUID) (*entity.Vendor, error)

	// ContactLead spends one credit to claim an unclaimed lead for the vendor.
	ContactLead(ctx context.Context, caller *entity.Caller, vendorID, leadID uuid.UUID) (*entity.Lead, error)

	// PurchaseHistory lists the vendor's receipts newest first.
	PurchaseHistory(ctx context.Context, caller *entity.Caller, vendorID uuid.UUID) ([]*entity.VendorSubscription, error)

	// ListPlans returns the purchasable plans, cheapest first.
	ListPlans(ctx context.Context) ([]*entity.Subscription, error)

	// ListVendors returns the user's vendor accounts with their current balances, newest first.
	ListVendors(ctx context.Context, caller *entity.Caller, userID uuid.UUID) ([]*entity.Vendor, error)

	// GetVendor returns one vendor account with its current balance.
	GetVendor(ctx context.Context, caller *entity.Caller, vendorID uuid.UUID) (*entity.Vendor, error)
}
