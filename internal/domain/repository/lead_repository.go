package repository

import (
	"context"

	"leadhub/internal/domain/entity"
	"leadhub/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrLeadNotFound is returned when a lead is not found.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrLeadAlreadyClaimed is returned when a lead already has a vendor.
	ErrLeadAlreadyClaimed = errors.New("lead already claimed")
)

// LeadRepository defines the interface for lead persistence.
type LeadRepository interface {
	CreateLead(ctx context.Context, lead *entity.Lead) error

	FindLeadByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)

	// ClaimLead assigns vendorID to an unclaimed lead. It returns ErrLeadAlreadyClaimed
	// when another vendor got there first and ErrLeadNotFound when the lead is missing.
	ClaimLead(ctx context.Context, id, vendorID uuid.UUID) error

	ListLeads(ctx context.Context, filter LeadFilter, page Pagination) ([]*entity.Lead, int64, error)
}
