package postgres

import (
	"context"
	"strings"
	"time"

	"leadhub/internal/domain/entity"
	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/domain/repository"
	"leadhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// leadRepository implements the repository.LeadRepository interface.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{
		db: db,
	}
}

// CreateLead persists a new lead.
func (repo *leadRepository) CreateLead(ctx context.Context, lead *entity.Lead) error {
	leadM := fromLeadDomain(lead)

	if err := repo.db.WithContext(ctx).Omit("Product").Create(leadM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid user, product or business category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lead")
	}

	lead.ID = leadM.ID
	lead.CreatedAt = leadM.CreatedAt
	lead.UpdatedAt = leadM.UpdatedAt

	return nil
}

// FindLeadByID retrieves a lead by its unique ID.
func (repo *leadRepository) FindLeadByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var leadM model.LeadModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&leadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by ID")
	}

	return toLeadDomain(&leadM), nil
}

// ClaimLead assigns the vendor only while the lead is still unclaimed.
func (repo *leadRepository) ClaimLead(ctx context.Context, id, vendorID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("id = ? AND vendor_id IS NULL", id).
		Updates(map[string]any{
			"vendor_id":  vendorID,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim lead")
	}

	if result.RowsAffected == 1 {
		return nil
	}

	if _, err := repo.FindLeadByID(ctx, id); err != nil {
		return err
	}

	return repository.ErrLeadAlreadyClaimed
}

// ListLeads returns one page of leads matching the filter and the total match count.
func (repo *leadRepository) ListLeads(ctx context.Context, filter repository.LeadFilter, page repository.Pagination) ([]*entity.Lead, int64, error) {
	page = page.Normalize(repository.LeadOrderColumns...)

	base := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Joins("JOIN products ON products.id = leads.product_id").
		Joins("JOIN categories ON categories.id = products.category_id").
		Joins("JOIN business_categories ON business_categories.id = leads.business_category_id").
		Joins("LEFT JOIN vendors ON vendors.id = leads.vendor_id")

	if filter.VendorID != nil {
		base = base.Where("leads.vendor_id = ?", *filter.VendorID)
	} else {
		base = base.Where("leads.vendor_id IS NULL")
	}

	if filter.BusinessCategoryID != nil {
		base = base.Where("leads.business_category_id = ?", *filter.BusinessCategoryID)
	}

	if strings.TrimSpace(filter.Search) != "" {
		pattern := containsPattern(filter.Search)
		base = base.Where(
			"(products.name ILIKE ? OR products.description ILIKE ? OR categories.name ILIKE ? OR business_categories.name ILIKE ? OR vendors.name ILIKE ?)",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count leads")
	}

	var leadModels []*model.LeadModel
	if err := paginate(base.Select("leads.*"), "leads", page).
		Find(&leadModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list leads")
	}

	leads := make([]*entity.Lead, 0, len(leadModels))
	for _, leadM := range leadModels {
		leads = append(leads, toLeadDomain(leadM))
	}

	return leads, total, nil
}

// --- Mapper Functions ---

func toLeadDomain(data *model.LeadModel) *entity.Lead {
	if data == nil {
		return nil
	}

	return &entity.Lead{
		ID:                 data.ID,
		UserID:             data.UserID,
		ProductID:          data.ProductID,
		BusinessCategoryID: data.BusinessCategoryID,
		VendorID:           data.VendorID,
		RequiredUnits:      data.RequiredUnits,
		Description:        data.Description,
		PossibleOrderValue: data.PossibleOrderValue,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromLeadDomain(data *entity.Lead) *model.LeadModel {
	if data == nil {
		return nil
	}

	return &model.LeadModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		ProductID:          data.ProductID,
		BusinessCategoryID: data.BusinessCategoryID,
		VendorID:           data.VendorID,
		RequiredUnits:      data.RequiredUnits,
		Description:        data.Description,
		PossibleOrderValue: data.PossibleOrderValue,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
