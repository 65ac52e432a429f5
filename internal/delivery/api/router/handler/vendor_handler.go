package handler

import (
	"log/slog"
	"net/http"
	"time"

	"leadhub/internal/delivery/api/response"
	"leadhub/internal/domain/entity"
	"leadhub/internal/domain/repository"
	"leadhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	LedgerUC usecase.LedgerUsecase
	LeadUC   usecase.LeadUsecase
	Logger   *slog.Logger
}

// VendorHandler serves vendor accounts, subscriptions and lead contacts.
type VendorHandler struct {
	ledgerUC usecase.LedgerUsecase
	leadUC   usecase.LeadUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		ledgerUC: params.LedgerUC,
		leadUC:   params.LeadUC,
		logger:   params.Logger,
	}
}

// RegisterVendorRequest opens a vendor account on a plan.
type RegisterVendorRequest struct {
	UserID             *uuid.UUID `json:"user_id,omitempty"`
	AddressID          *uuid.UUID `json:"address_id,omitempty"`
	SubscriptionID     uuid.UUID  `json:"subscription_id" validate:"required"`
	BusinessCategoryID *uuid.UUID `json:"business_category_id,omitempty"`
	Name               string     `json:"name" validate:"notblank,max=255"`
	TaxID              *string    `json:"tax_id,omitempty" validate:"omitempty,max=64"`
	VendorStatus       string     `json:"vendor_status" validate:"omitempty,oneof=trial active inactive"`
	PaymentStatus      string     `json:"payment_status" validate:"omitempty,oneof=paid unpaid"`
	RegisteredAt       *time.Time `json:"registered_at,omitempty"`
}

// PurchaseRequest selects the plan to buy.
type PurchaseRequest struct {
	SubscriptionID uuid.UUID `json:"subscription_id" validate:"required"`
}

// RegisterVendor creates a vendor with the plan's opening credits.
func (h *VendorHandler) RegisterVendor(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		var req RegisterVendorRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
		}
		if err := c.Validate(&req); err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}

		userID := caller.UserID
		if req.UserID != nil {
			userID = *req.UserID
		}

		vendor, err := h.ledgerUC.RegisterVendor(c.Request().Context(), caller, &usecase.RegisterVendorInput{
			UserID:             userID,
			AddressID:          req.AddressID,
			SubscriptionID:     req.SubscriptionID,
			BusinessCategoryID: req.BusinessCategoryID,
			Name:               req.Name,
			TaxID:              req.TaxID,
			VendorStatus:       entity.VendorStatus(req.VendorStatus),
			PaymentStatus:      entity.PaymentStatus(req.PaymentStatus),
			RegisteredAt:       req.RegisteredAt,
		})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, toVendorResponse(vendor))
	})
}

// ListPlans lists the purchasable subscription plans, cheapest first.
func (h *VendorHandler) ListPlans(c echo.Context) error {
	plans, err := h.ledgerUC.ListPlans(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(plans, toPlanResponse))
}

// ListVendors lists the vendor accounts of a user with their credit balances.
// Admins may pass user_id to look at another user.
func (h *VendorHandler) ListVendors(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		userID, err := optionalUUIDQuery(c, "user_id")
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid user ID")
		}
		if userID == nil {
			userID = &caller.UserID
		}

		vendors, err := h.ledgerUC.ListVendors(c.Request().Context(), caller, *userID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, mapSlice(vendors, toVendorResponse))
	})
}

func (h *VendorHandler) GetVendor(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		vendorID, err := parseIDParam(c, "id")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
		}

		vendor, err := h.ledgerUC.GetVendor(c.Request().Context(), caller, vendorID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, toVendorResponse(vendor))
	})
}

// PurchaseSubscription tops up the vendor's credits with a plan.
func (h *VendorHandler) PurchaseSubscription(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		vendorID, err := parseIDParam(c, "id")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
		}

		var req PurchaseRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
		}
		if err := c.Validate(&req); err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}

		vendor, err := h.ledgerUC.PurchaseSubscription(c.Request().Context(), caller, vendorID, req.SubscriptionID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, toVendorResponse(vendor))
	})
}

// PurchaseHistory lists the vendor's receipts.
func (h *VendorHandler) PurchaseHistory(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		vendorID, err := parseIDParam(c, "id")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
		}

		receipts, err := h.ledgerUC.PurchaseHistory(c.Request().Context(), caller, vendorID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, mapSlice(receipts, toReceiptResponse))
	})
}

// ContactLead spends one credit to claim a lead.
func (h *VendorHandler) ContactLead(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		vendorID, err := parseIDParam(c, "id")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
		}
		leadID, err := parseIDParam(c, "leadId")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid lead ID")
		}

		lead, err := h.ledgerUC.ContactLead(c.Request().Context(), caller, vendorID, leadID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, toLeadResponse(lead))
	})
}

// ListClaimedLeads lists the leads the vendor has already contacted.
func (h *VendorHandler) ListClaimedLeads(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		vendorID, err := parseIDParam(c, "id")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
		}

		page, err := bindPage(c)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid paging parameters")
		}

		result, err := h.leadUC.ListLeads(c.Request().Context(), caller, repository.LeadFilter{
			VendorID: &vendorID,
			Search:   c.QueryParam("search"),
		}, page)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, PageResponse[LeadResponse]{
			TotalCount: result.TotalCount,
			Items:      mapSlice(result.Leads, toLeadResponse),
		})
	})
}
