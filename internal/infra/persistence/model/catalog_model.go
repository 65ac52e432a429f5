package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BusinessCategoryModel is the GORM-specific struct for the 'business_categories' table.
type BusinessCategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(150);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessCategoryModel) TableName() string {
	return "business_categories"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID                 uuid.UUID              `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name               string                 `gorm:"type:varchar(150);not null"`
	BusinessCategoryID uuid.UUID              `gorm:"type:uuid;not null;index"`
	BusinessCategory   *BusinessCategoryModel `gorm:"foreignKey:BusinessCategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductAttribute is stored inline in the products.attributes JSON column.
type ProductAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID                             `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VendorID    uuid.UUID                             `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID                             `gorm:"type:uuid;not null;index"`
	Category    *CategoryModel                        `gorm:"foreignKey:CategoryID"`
	Name        string                                `gorm:"type:varchar(255);not null"`
	Description string                                `gorm:"type:text;not null;default:''"`
	Price       decimal.Decimal                       `gorm:"type:decimal(12,2);not null"`
	Quantity    int                                   `gorm:"not null;default:0"`
	Attributes  datatypes.JSONSlice[ProductAttribute] `gorm:"type:jsonb"`
	Images      datatypes.JSONSlice[string]           `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
