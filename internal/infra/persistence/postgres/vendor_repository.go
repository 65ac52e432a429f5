package postgres

import (
	"context"

	"leadhub/internal/domain/entity"
	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/domain/repository"
	"leadhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// CreateVendor persists a new vendor account.
func (repo *vendorRepository) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user or business category reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("vendor credit balance cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor")
	}

	vendor.ID = vendorM.ID
	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// FindVendorByID retrieves a vendor by its unique ID.
func (repo *vendorRepository) FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by ID")
	}

	return toVendorDomain(&vendorM), nil
}

// FindVendorsByUser retrieves every vendor account owned by a user.
func (repo *vendorRepository) FindVendorsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vendor, error) {
	var vendorModels []*model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vendors by user")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, nil
}

// AddCredits increments the credit balance in a single UPDATE so concurrent purchases add up.
func (repo *vendorRepository) AddCredits(ctx context.Context, id uuid.UUID, credits int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		Update("leads_count", gorm.Expr("leads_count + ?", credits))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add credits")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// ConsumeCredit debits one credit only while the balance is positive.
func (repo *vendorRepository) ConsumeCredit(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ? AND leads_count >= ?", id, 1).
		Updates(map[string]any{
			"leads_count":    gorm.Expr("leads_count - ?", 1),
			"leads_consumed": gorm.Expr("leads_consumed + ?", 1),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume credit")
	}

	if result.RowsAffected == 1 {
		return nil
	}

	// Nothing matched: tell a missing vendor apart from an empty balance.
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check vendor existence")
	}

	if count == 0 {
		return repository.ErrVendorNotFound
	}

	return repository.ErrInsufficientCredits
}

// --- Mapper Functions ---

func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:                 data.ID,
		UserID:             data.UserID,
		AddressID:          data.AddressID,
		Name:               data.Name,
		BusinessCategoryID: data.BusinessCategoryID,
		TaxID:              data.TaxID,
		VendorStatus:       entity.VendorStatus(data.VendorStatus),
		PaymentStatus:      entity.PaymentStatus(data.PaymentStatus),
		LeadsCount:         data.LeadsCount,
		LeadsConsumed:      data.LeadsConsumed,
		RegisteredAt:       data.RegisteredAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	return &model.VendorModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		AddressID:          data.AddressID,
		Name:               data.Name,
		BusinessCategoryID: data.BusinessCategoryID,
		TaxID:              data.TaxID,
		VendorStatus:       string(data.VendorStatus),
		PaymentStatus:      string(data.PaymentStatus),
		LeadsCount:         data.LeadsCount,
		LeadsConsumed:      data.LeadsConsumed,
		RegisteredAt:       data.RegisteredAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
