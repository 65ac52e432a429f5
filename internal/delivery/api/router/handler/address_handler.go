package handler

import (
	"log/slog"
	"net/http"

	"leadhub/internal/delivery/api/response"
	"leadhub/internal/domain/entity"
	"leadhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the address book endpoints.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressRequest is the body for creating and replacing an address.
// UserID defaults to the caller; only admins may set it to someone else.
type AddressRequest struct {
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	CountryID      uuid.UUID  `json:"country_id" validate:"required"`
	StateID        uuid.UUID  `json:"state_id" validate:"required"`
	CityID         uuid.UUID  `json:"city_id" validate:"required"`
	DistrictID     *uuid.UUID `json:"district_id,omitempty"`
	AddressLineOne string     `json:"address_line_one" validate:"notblank,max=255"`
	AddressLineTwo *string    `json:"address_line_two,omitempty" validate:"omitempty,max=255"`
	ZipCode        *string    `json:"zip_code,omitempty" validate:"omitempty,max=20"`
	IsDefault      *bool      `json:"is_default,omitempty"`
}

// CreateAddress adds an address and makes it the user's default.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		var req AddressRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
		}
		if err := c.Validate(&req); err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}

		userID := caller.UserID
		if req.UserID != nil {
			userID = *req.UserID
		}

		address, err := h.addressUC.CreateAddress(c.Request().Context(), caller, &usecase.CreateAddressInput{
			UserID:         userID,
			CountryID:      req.CountryID,
			StateID:        req.StateID,
			CityID:         req.CityID,
			DistrictID:     req.DistrictID,
			AddressLineOne: req.AddressLineOne,
			AddressLineTwo: req.AddressLineTwo,
			ZipCode:        req.ZipCode,
		})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, toAddressResponse(address))
	})
}

// ListAddresses returns the addresses of ?user_id, or the caller's own.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		userID, err := optionalUUIDQuery(c, "user_id")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
		}
		if userID == nil {
			userID = &caller.UserID
		}

		addresses, err := h.addressUC.ListAddresses(c.Request().Context(), caller, *userID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, mapSlice(addresses, toAddressResponse))
	})
}

// UpdateAddress replaces an address; is_default=true promotes it.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		addressID, err := parseIDParam(c, "id")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
		}

		var req AddressRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
		}
		if err := c.Validate(&req); err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}

		address, err := h.addressUC.UpdateAddress(c.Request().Context(), caller, addressID, &usecase.UpdateAddressInput{
			CountryID:      req.CountryID,
			StateID:        req.StateID,
			CityID:         req.CityID,
			DistrictID:     req.DistrictID,
			AddressLineOne: req.AddressLineOne,
			AddressLineTwo: req.AddressLineTwo,
			ZipCode:        req.ZipCode,
			IsDefault:      req.IsDefault,
		})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, toAddressResponse(address))
	})
}

// DeleteAddress removes an address.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		addressID, err := parseIDParam(c, "id")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
		}

		if err := h.addressUC.DeleteAddress(c.Request().Context(), caller, addressID); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, map[string]string{"message": "Address deleted successfully"})
	})
}
