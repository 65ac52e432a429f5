package repository

import (
	"context"

	"leadhub/internal/domain/entity"
	"leadhub/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrVendorNotFound is returned when a vendor is not found.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrInsufficientCredits is returned when a debit would take the balance below zero.
	ErrInsufficientCredits = errors.New("vendor has no lead credits left")
)

// VendorRepository defines the interface for vendor accounts and their credit balance.
// Balance changes are expressed as relative updates so concurrent writers never lose an increment.
type VendorRepository interface {
	CreateVendor(ctx context.Context, vendor *entity.Vendor) error

	FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	FindVendorsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vendor, error)

	// AddCredits increments the balance by credits.
	AddCredits(ctx context.Context, id uuid.UUID, credits int) error

	// ConsumeCredit moves one credit from the balance to the consumed counter.
	// It returns ErrInsufficientCredits when the balance is zero.
	ConsumeCredit(ctx context.Context, id uuid.UUID) error
}
