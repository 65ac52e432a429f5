package handler

import (
	"log/slog"
	"net/http"

	"leadhub/internal/delivery/api/response"
	"leadhub/internal/domain/entity"
	"leadhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves catalog writes.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductAttributeRequest is a name/value pair shown on the product page.
type ProductAttributeRequest struct {
	Name  string `json:"name" validate:"notblank,max=100"`
	Value string `json:"value" validate:"max=255"`
}

// ProductRequest is one product; images are base64 data URLs.
type ProductRequest struct {
	CategoryID  uuid.UUID                 `json:"category_id" validate:"required"`
	Name        string                    `json:"name" validate:"notblank,max=255"`
	Description string                    `json:"description" validate:"max=4000"`
	Price       decimal.Decimal           `json:"price" validate:"nonnegative"`
	Quantity    int                       `json:"quantity" validate:"min=0"`
	Attributes  []ProductAttributeRequest `json:"attributes" validate:"dive"`
	Images      []string                  `json:"images" validate:"max=10,dive,notblank"`
}

// CreateProductsRequest is a batch stored atomically.
type CreateProductsRequest struct {
	Products []ProductRequest `json:"products" validate:"required,min=1,dive"`
}

// CreateProducts uploads the images and stores the batch for the vendor.
func (h *ProductHandler) CreateProducts(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		vendorID, err := parseIDParam(c, "id")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
		}

		var req CreateProductsRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
		}
		if err := c.Validate(&req); err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}

		inputs := make([]*usecase.CreateProductInput, 0, len(req.Products))
		for _, p := range req.Products {
			attributes := make([]entity.ProductAttribute, 0, len(p.Attributes))
			for _, a := range p.Attributes {
				attributes = append(attributes, entity.ProductAttribute{Name: a.Name, Value: a.Value})
			}

			inputs = append(inputs, &usecase.CreateProductInput{
				CategoryID:  p.CategoryID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Quantity:    p.Quantity,
				Attributes:  attributes,
				Images:      p.Images,
			})
		}

		products, err := h.productUC.CreateProducts(c.Request().Context(), caller, vendorID, inputs)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, mapSlice(products, toProductResponse))
	})
}
