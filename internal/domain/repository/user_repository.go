// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"leadhub/internal/domain/entity"
	"leadhub/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the mobile number or email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error

	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByMobileNumber returns ErrUserNotFound when no user has the number.
	FindUserByMobileNumber(ctx context.Context, mobileNumber string) (*entity.User, error)
}
