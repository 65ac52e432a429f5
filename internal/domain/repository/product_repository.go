package repository

import (
	"context"

	"leadhub/internal/domain/entity"
	"leadhub/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// PriceRange is the cheapest and the most expensive price within a category.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// ProductRepository defines the interface for the product catalog.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID returns the product with its category attached.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// PriceRangeByCategory aggregates min and max price over every product in the category.
	// It returns ErrProductNotFound when the category has no products.
	PriceRangeByCategory(ctx context.Context, categoryID uuid.UUID) (*PriceRange, error)
}
