package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Caller is the authenticated identity a request runs as.
// It is resolved by the transport layer and passed explicitly to every use case.
type Caller struct {
	UserID    uuid.UUID
	Role      Role
	VendorIDs []uuid.UUID
}

// IsAdmin reports whether the caller has the admin role.
func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// CanActForUser reports whether the caller may read or change data owned by userID.
func (c *Caller) CanActForUser(userID uuid.UUID) bool {
	if c == nil {
		return false
	}

	return c.IsAdmin() || c.UserID == userID
}

// CanActForVendor reports whether the caller may spend or grant credits for vendorID.
func (c *Caller) CanActForVendor(vendorID uuid.UUID) bool {
	if c == nil {
		return false
	}

	return c.IsAdmin() || slices.Contains(c.VendorIDs, vendorID)
}
