package handler

import (
	"log/slog"
	"net/http"

	"leadhub/internal/delivery/api/response"
	"leadhub/internal/domain/entity"
	"leadhub/internal/domain/repository"
	"leadhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LeadHandlerParams holds dependencies for LeadHandler, injected by Fx.
type LeadHandlerParams struct {
	fx.In

	LeadUC usecase.LeadUsecase
	Logger *slog.Logger
}

// LeadHandler serves lead creation and the unclaimed lead pool.
type LeadHandler struct {
	leadUC usecase.LeadUsecase
	logger *slog.Logger
}

// NewLeadHandler is the constructor for LeadHandler
func NewLeadHandler(params LeadHandlerParams) *LeadHandler {
	return &LeadHandler{
		leadUC: params.LeadUC,
		logger: params.Logger,
	}
}

// CreateLeadRequest records a buyer's interest in a product.
type CreateLeadRequest struct {
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	ProductID     uuid.UUID  `json:"product_id" validate:"required"`
	RequiredUnits int        `json:"required_units" validate:"required,min=1"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// CreateLead stores a valued, unclaimed lead.
func (h *LeadHandler) CreateLead(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		var req CreateLeadRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid lead input")
		}
		if err := c.Validate(&req); err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}

		userID := caller.UserID
		if req.UserID != nil {
			userID = *req.UserID
		}

		lead, err := h.leadUC.CreateLead(c.Request().Context(), caller, &usecase.CreateLeadInput{
			UserID:        userID,
			ProductID:     req.ProductID,
			RequiredUnits: req.RequiredUnits,
			Description:   req.Description,
		})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, toLeadResponse(lead))
	})
}

// ListLeadPool lists unclaimed leads, optionally narrowed by ?business_category_id and ?search.
func (h *LeadHandler) ListLeadPool(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		categoryID, err := optionalUUIDQuery(c, "business_category_id")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid business category ID")
		}

		page, err := bindPage(c)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid paging parameters")
		}

		result, err := h.leadUC.ListLeads(c.Request().Context(), caller, repository.LeadFilter{
			BusinessCategoryID: categoryID,
			Search:             c.QueryParam("search"),
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
