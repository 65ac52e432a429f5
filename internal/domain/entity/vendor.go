package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorStatus is the commercial lifecycle state of a vendor account.
type VendorStatus string

const (
	VendorStatusTrial    VendorStatus = "trial"
	VendorStatusActive   VendorStatus = "active"
	VendorStatusInactive VendorStatus = "inactive"
)

// PaymentStatus records whether the vendor has paid for its current plan.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// Vendor is a business account owned by a user. LeadsCount is the spendable
// credit balance and never goes below zero; LeadsConsumed only grows.
type Vendor struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	AddressID          *uuid.UUID
	Name               string
	BusinessCategoryID *uuid.UUID
	TaxID              *string
	VendorStatus       VendorStatus
	PaymentStatus      PaymentStatus
	LeadsCount         int
	LeadsConsumed      int
	RegisteredAt       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
