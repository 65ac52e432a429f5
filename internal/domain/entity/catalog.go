package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BusinessCategory groups vendors and leads by line of business.
type BusinessCategory struct {
	ID   uuid.UUID
	Name string
}

// Category is a product category nested under a business category.
type Category struct {
	ID                 uuid.UUID
	Name               string
	BusinessCategoryID uuid.UUID
}

// ProductAttribute is a free-form name/value pair shown on a product page.
type ProductAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product is an item listed by a vendor.
type Product struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	CategoryID  uuid.UUID
	Category    *Category
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Attributes  []ProductAttribute
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
