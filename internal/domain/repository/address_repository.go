package repository

import (
	"context"

	"leadhub/internal/domain/entity"
	"leadhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrDefaultAddressConflict is returned when a second default address would be stored for a user.
	ErrDefaultAddressConflict = errors.New("user already has a default address")
)

// AddressRepository defines the interface for shipping address database operations.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address *entity.Address) error

	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByUser returns the user's addresses, newest first.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// FindDefaultAddressByUser returns ErrAddressNotFound when the user has no default address.
	FindDefaultAddressByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error)

	UpdateAddress(ctx context.Context, address *entity.Address) error

	// SetDefault sets or clears the default flag of a single address.
	SetDefault(ctx context.Context, id uuid.UUID, isDefault bool) error

	DeleteAddress(ctx context.Context, id uuid.UUID) error
}
