package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a buyer's expression of interest in a product. VendorID is nil until
// a vendor spends a credit to contact the buyer.
type Lead struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	ProductID          uuid.UUID
	BusinessCategoryID uuid.UUID
	VendorID           *uuid.UUID
	RequiredUnits      int
	Description        *string
	PossibleOrderValue string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsClaimed reports whether a vendor has already contacted the buyer.
func (l *Lead) IsClaimed() bool {
	return l.VendorID != nil
}
