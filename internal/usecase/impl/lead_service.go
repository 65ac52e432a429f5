package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "leadhub/internal/delivery/context"
	"leadhub/internal/domain/entity"
	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/domain/repository"
	"leadhub/internal/domain/service"
	"leadhub/internal/usecase"
	"leadhub/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// leadService implements the LeadUsecase interface.
type leadService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	leadRepo    repository.LeadRepository
	metrics     service.MetricsRecorder
	logger      *slog.Logger
}

// LeadServiceParams holds dependencies for LeadService, injected by Fx.
type LeadServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	LeadRepo    repository.LeadRepository
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewLeadService creates a new lead service instance
func NewLeadService(params LeadServiceParams) usecase.LeadUsecase {
	return &leadService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		leadRepo:    params.LeadRepo,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *leadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateLead freezes the category's current price range on the lead and files it
// under the category's business category.
func (srv *leadService) CreateLead(ctx context.Context, caller *entity.Caller, input *usecase.CreateLeadInput) (*entity.Lead, error) {
	if !caller.CanActForUser(input.UserID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot raise a lead for another user")
	}
	if input.RequiredUnits < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("required units must be at least 1")
	}

	if _, err := srv.userRepo.FindUserByID(ctx, input.UserID); err != nil {
		return nil, mapUserError(err)
	}

	product, err := srv.productRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		return nil, mapProductError(err)
	}

	category := product.Category
	if category == nil {
		category, err = srv.productRepo.FindCategoryByID(ctx, product.CategoryID)
		if err != nil {
			return nil, mapProductError(err)
		}
	}

	priceRange, err := srv.productRepo.PriceRangeByCategory(ctx, product.CategoryID)
	if err != nil {
		return nil, mapProductError(err)
	}

	now := time.Now()
	lead := &entity.Lead{
		ID:                 uuid.New(),
		UserID:             input.UserID,
		ProductID:          product.ID,
		BusinessCategoryID: category.BusinessCategoryID,
		RequiredUnits:      input.RequiredUnits,
		Description:        input.Description,
		PossibleOrderValue: util.FormatPriceRange(priceRange.Min, priceRange.Max),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := srv.leadRepo.CreateLead(ctx, lead); err != nil {
		srv.log(ctx).Error("Failed to create lead", slog.Any("productID", product.ID), slog.Any("error", err))

		return nil, mapLeadError(err)
	}

	srv.metrics.LeadCreated()
	srv.log(ctx).Info("Lead created",
		slog.Any("leadID", lead.ID),
		slog.Any("productID", lead.ProductID),
		slog.String("possibleOrderValue", lead.PossibleOrderValue),
	)

	return lead, nil
}

// ListLeads pages through a vendor's claimed leads or the unclaimed pool.
// The pool is visible to admins and to callers owning at least one vendor.
func (srv *leadService) ListLeads(ctx context.Context, caller *entity.Caller, filter repository.LeadFilter, page repository.Pagination) (*usecase.LeadPage, error) {
	switch {
	case filter.VendorID != nil:
		if !caller.CanActForVendor(*filter.VendorID) {
			return nil, domainerrors.ErrForbidden.WrapMessage("cannot list another vendor's leads")
		}
	case caller == nil || (!caller.IsAdmin() && len(caller.VendorIDs) == 0):
		return nil, domainerrors.ErrForbidden.WrapMessage("only vendors can browse unclaimed leads")
	}

	leads, total, err := srv.leadRepo.ListLeads(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	return &usecase.LeadPage{TotalCount: total, Leads: leads}, nil
}
