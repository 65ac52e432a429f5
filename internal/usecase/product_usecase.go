package usecase

import (
	"context"

	"leadhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput represents a product with its images as base64 data URLs.
type CreateProductInput struct {
	CategoryID  uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Attributes  []entity.ProductAttribute
	Images      []string
}

// ProductUsecase defines catalog writes that involve image storage.
type ProductUsecase interface {
	// CreateProducts uploads every image first and then stores all products atomically.
	CreateProducts(ctx context.Context, caller *entity.Caller, vendorID uuid.UUID, inputs []*CreateProductInput) ([]*entity.Product, error)
}
