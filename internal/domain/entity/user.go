// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a person with an account: a buyer, a vendor owner or an admin.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        *string
	MobileNumber string
	PasswordHash string
	RoleID       uuid.UUID
	IsActive     bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the first and last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
