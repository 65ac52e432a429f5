package repository

import (
	"context"

	"leadhub/internal/domain/entity"
	"leadhub/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrSubscriptionNotFound is returned when a plan is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscription is returned when a plan name is already taken.
	ErrDuplicateSubscription = errors.New("subscription name already exists")
)

// SubscriptionRepository defines the interface for plans and purchase receipts.
type SubscriptionRepository interface {
	// CreateSubscription persists a plan together with its items.
	CreateSubscription(ctx context.Context, subscription *entity.Subscription) error

	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	FindSubscriptionByName(ctx context.Context, name string) (*entity.Subscription, error)

	// EnsureSubscription inserts the plan when no plan with the same name exists.
	// The stored plan is written back into subscription and created reports whether it was inserted.
	EnsureSubscription(ctx context.Context, subscription *entity.Subscription) (created bool, err error)

	ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error)

	// CreateReceipt appends a purchase or grant receipt.
	CreateReceipt(ctx context.Context, receipt *entity.VendorSubscription) error

	// FindReceiptsByVendor returns the vendor's receipts newest first, with plans attached.
	FindReceiptsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorSubscription, error)
}
