package postgres

import (
	"context"

	"leadhub/internal/domain/entity"
	"leadhub/internal/domain/repository"
	"leadhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// referenceRepository implements the repository.ReferenceRepository interface.
type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository is the constructor for referenceRepository.
func NewReferenceRepository(db *gorm.DB) repository.ReferenceRepository {
	return &referenceRepository{
		db: db,
	}
}

// ensureRow inserts row unless its natural key already exists, then reads back the stored row.
// ON CONFLICT DO NOTHING keeps an enclosing transaction usable when another writer won the race.
func ensureRow[T any](ctx context.Context, db *gorm.DB, row *T, conflictColumns []string, where string, args ...any) (*T, error) {
	columns := make([]clause.Column, 0, len(conflictColumns))
	for _, name := range conflictColumns {
		columns = append(columns, clause.Column{Name: name})
	}

	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: columns, DoNothing: true}).
		Create(row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to upsert reference row")
	}

	stored := new(T)
	if err := db.WithContext(ctx).Where(where, args...).First(stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read upserted reference row")
	}

	return stored, nil
}

func findRow[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) (*T, error) {
	row := new(T)
	if err := db.WithContext(ctx).Where("id = ?", id).First(row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find reference row")
	}

	return row, nil
}

// EnsureRole upserts a role by name.
func (repo *referenceRepository) EnsureRole(ctx context.Context, name entity.Role) (*entity.RoleRecord, error) {
	roleM, err := ensureRow(ctx, repo.db, &model.RoleModel{Name: name.String()}, []string{"name"}, "name = ?", name.String())
	if err != nil {
		return nil, err
	}

	return &entity.RoleRecord{ID: roleM.ID, Name: entity.Role(roleM.Name)}, nil
}

// EnsureCountry upserts a country by name.
func (repo *referenceRepository) EnsureCountry(ctx context.Context, name, shortName string) (*entity.Country, error) {
	countryM, err := ensureRow(ctx, repo.db, &model.CountryModel{Name: name, ShortName: shortName}, []string{"name"}, "name = ?", name)
	if err != nil {
		return nil, err
	}

	return toCountryDomain(countryM), nil
}

// EnsureState upserts a state by name.
func (repo *referenceRepository) EnsureState(ctx context.Context, name string, countryID uuid.UUID) (*entity.State, error) {
	stateM, err := ensureRow(ctx, repo.db, &model.StateModel{Name: name, CountryID: countryID}, []string{"name"}, "name = ?", name)
	if err != nil {
		return nil, err
	}

	return toStateDomain(stateM), nil
}

// EnsureCity finds or creates a city by name within a state.
func (repo *referenceRepository) EnsureCity(ctx context.Context, name string, stateID uuid.UUID) (*entity.City, error) {
	cityM, err := ensureRow(ctx, repo.db, &model.CityModel{Name: name, StateID: stateID}, []string{"name", "state_id"}, "name = ? AND state_id = ?", name, stateID)
	if err != nil {
		return nil, err
	}

	return toCityDomain(cityM), nil
}

// EnsureBusinessCategory upserts a business category by name.
func (repo *referenceRepository) EnsureBusinessCategory(ctx context.Context, name string) (*entity.BusinessCategory, error) {
	categoryM, err := ensureRow(ctx, repo.db, &model.BusinessCategoryModel{Name: name}, []string{"name"}, "name = ?", name)
	if err != nil {
		return nil, err
	}

	return &entity.BusinessCategory{ID: categoryM.ID, Name: categoryM.Name}, nil
}

func (repo *referenceRepository) FindCountryByID(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	countryM, err := findRow[model.CountryModel](ctx, repo.db, id)
	if err != nil {
		return nil, err
	}

	return toCountryDomain(countryM), nil
}

func (repo *referenceRepository) FindStateByID(ctx context.Context, id uuid.UUID) (*entity.State, error) {
	stateM, err := findRow[model.StateModel](ctx, repo.db, id)
	if err != nil {
		return nil, err
	}

	return toStateDomain(stateM), nil
}

func (repo *referenceRepository) FindCityByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	cityM, err := findRow[model.CityModel](ctx, repo.db, id)
	if err != nil {
		return nil, err
	}

	return toCityDomain(cityM), nil
}

func (repo *referenceRepository) FindDistrictByID(ctx context.Context, id uuid.UUID) (*entity.District, error) {
	districtM, err := findRow[model.DistrictModel](ctx, repo.db, id)
	if err != nil {
		return nil, err
	}

	return &entity.District{ID: districtM.ID, Name: districtM.Name, CityID: districtM.CityID}, nil
}

// --- Mapper Functions ---

func toCountryDomain(data *model.CountryModel) *entity.Country {
	return &entity.Country{ID: data.ID, Name: data.Name, ShortName: data.ShortName}
}

func toStateDomain(data *model.StateModel) *entity.State {
	return &entity.State{ID: data.ID, Name: data.Name, CountryID: data.CountryID}
}

func toCityDomain(data *model.CityModel) *entity.City {
	return &entity.City{ID: data.ID, Name: data.Name, StateID: data.StateID}
}
