// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin manages reference data, imports and any vendor account.
	RoleAdmin Role = "Admin"
	// RoleVendor sells products and consumes lead credits.
	RoleVendor Role = "Vendor"
	// RoleUser is a buyer that raises leads.
	RoleUser Role = "User"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleUser:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RoleRecord is the persisted row behind a Role name.
type RoleRecord struct {
	ID   uuid.UUID
	Name Role
}
