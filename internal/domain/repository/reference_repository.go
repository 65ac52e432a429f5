package repository

import (
	"context"

	"leadhub/internal/domain/entity"
	"leadhub/internal/errors"

	"github.com/google/uuid"
)

// ErrReferenceNotFound is returned when a country, state, city or district lookup misses.
var ErrReferenceNotFound = errors.New("reference data not found")

// ReferenceRepository defines lookups and idempotent upserts for reference data
// keyed by natural names. Every Ensure method returns the existing row when present.
type ReferenceRepository interface {
	EnsureRole(ctx context.Context, name entity.Role) (*entity.RoleRecord, error)

	EnsureCountry(ctx context.Context, name, shortName string) (*entity.Country, error)

	EnsureState(ctx context.Context, name string, countryID uuid.UUID) (*entity.State, error)

	// EnsureCity matches by name within the state.
	EnsureCity(ctx context.Context, name string, stateID uuid.UUID) (*entity.City, error)

	EnsureBusinessCategory(ctx context.Context, name string) (*entity.BusinessCategory, error)

	FindCountryByID(ctx context.Context, id uuid.UUID) (*entity.Country, error)

	FindStateByID(ctx context.Context, id uuid.UUID) (*entity.State, error)

	FindCityByID(ctx context.Context, id uuid.UUID) (*entity.City, error)

	FindDistrictByID(ctx context.Context, id uuid.UUID) (*entity.District, error)
}
