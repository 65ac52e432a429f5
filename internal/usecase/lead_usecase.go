package usecase

import (
	"context"

	"leadhub/internal/domain/entity"
	"leadhub/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateLeadInput represents a buyer's interest in a product.
type CreateLeadInput struct {
	UserID        uuid.UUID
	ProductID     uuid.UUID
	RequiredUnits int
	Description   *string
}

// LeadPage is one page of leads plus the total number of matches.
type LeadPage struct {
	TotalCount int64          `json:"totalCount"`
	Leads      []*entity.Lead `json:"leads"`
}

// LeadUsecase defines lead creation with valuation and lead listing.
type LeadUsecase interface {
	// CreateLead prices the lead from its product category and stores it unclaimed.
	CreateLead(ctx context.Context, caller *entity.Caller, input *CreateLeadInput) (*entity.Lead, error)

	// ListLeads lists the vendor's claimed leads, or the unclaimed pool when filter.VendorID is nil.
	ListLeads(ctx context.Context, caller *entity.Caller, filter repository.LeadFilter, page repository.Pagination) (*LeadPage, error)
}
