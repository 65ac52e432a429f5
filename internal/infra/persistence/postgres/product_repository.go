package postgres

import (
	"context"

	"leadhub/internal/domain/entity"
	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/domain/repository"
	"leadhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct persists a new product with its attributes and image URLs.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid vendor or category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product with its category.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindCategoryByID retrieves a product category.
func (repo *productRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// PriceRangeByCategory aggregates MIN and MAX price over the category.
func (repo *productRepository) PriceRangeByCategory(ctx context.Context, categoryID uuid.UUID) (*repository.PriceRange, error) {
	var row struct {
		MinPrice decimal.NullDecimal
		MaxPrice decimal.NullDecimal
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("MIN(price) AS min_price, MAX(price) AS max_price").
		Where("category_id = ?", categoryID).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate category prices")
	}

	if !row.MinPrice.Valid || !row.MaxPrice.Valid {
		return nil, repository.ErrProductNotFound
	}

	return &repository.PriceRange{
		Min: row.MinPrice.Decimal,
		Max: row.MaxPrice.Decimal,
	}, nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:                 data.ID,
		Name:               data.Name,
		BusinessCategoryID: data.BusinessCategoryID,
	}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	attributes := make([]entity.ProductAttribute, 0, len(data.Attributes))
	for _, attribute := range data.Attributes {
		attributes = append(attributes, entity.ProductAttribute{Name: attribute.Name, Value: attribute.Value})
	}

	return &entity.Product{
		ID:          data.ID,
		VendorID:    data.VendorID,
		CategoryID:  data.CategoryID,
		Category:    toCategoryDomain(data.Category),
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Quantity:    data.Quantity,
		Attributes:  attributes,
		Images:      append([]string(nil), data.Images...),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	attributes := make([]model.ProductAttribute, 0, len(data.Attributes))
	for _, attribute := range data.Attributes {
		attributes = append(attributes, model.ProductAttribute{Name: attribute.Name, Value: attribute.Value})
	}

	return &model.ProductModel{
		ID:          data.ID,
		VendorID:    data.VendorID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Quantity:    data.Quantity,
		Attributes:  attributes,
		Images:      append([]string(nil), data.Images...),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
