package usecase

import (
	"context"

	"leadhub/internal/domain/entity"
	"leadhub/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateAddressInput represents the input for adding a shipping address.
// A new address always becomes the user's default.
type CreateAddressInput struct {
	UserID         uuid.UUID
	CountryID      uuid.UUID
	StateID        uuid.UUID
	CityID         uuid.UUID
	DistrictID     *uuid.UUID
	AddressLineOne string
	AddressLineTwo *string
	ZipCode        *string
}

// UpdateAddressInput represents the input for replacing an address.
// A nil IsDefault leaves the flag unchanged.
type UpdateAddressInput struct {
	CountryID      uuid.UUID
	StateID        uuid.UUID
	CityID         uuid.UUID
	DistrictID     *uuid.UUID
	AddressLineOne string
	AddressLineTwo *string
	ZipCode        *string
	IsDefault      *bool
}

// DefaultAddressManager keeps at most one default address per user.
// It must run on the repositories of the transaction that writes the address.
type DefaultAddressManager interface {
	// EnsureDefault demotes the user's current default unless it is candidateID
	// and reports whether the candidate should be stored as default.
	EnsureDefault(ctx context.Context, repos repository.RepositoryFactory, userID uuid.UUID, candidateID *uuid.UUID) (bool, error)
}

// AddressUsecase defines the interface for shipping address management.
type AddressUsecase interface {
	CreateAddress(ctx context.Context, caller *entity.Caller, input *CreateAddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, caller *entity.Caller, addressID uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)
	ListAddresses(ctx context.Context, caller *entity.Caller, userID uuid.UUID) ([]*entity.Address, error)
	DeleteAddress(ctx context.Context, caller *entity.Caller, addressID uuid.UUID) error
}
