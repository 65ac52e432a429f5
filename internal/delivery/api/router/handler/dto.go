package handler

import (
	"time"

	"leadhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PageResponse wraps one page of a listing with the unpaged total.
type PageResponse[T any] struct {
	TotalCount int64 `json:"total_count"`
	Items      []T   `json:"items"`
}

// mapSlice converts entities with fn.
func mapSlice[E any, T any](items []E, fn func(E) T) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}

	return result
}

type AddressResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	CountryID      uuid.UUID  `json:"country_id"`
	StateID        uuid.UUID  `json:"state_id"`
	CityID         uuid.UUID  `json:"city_id"`
	DistrictID     *uuid.UUID `json:"district_id,omitempty"`
	AddressLineOne string     `json:"address_line_one"`
	AddressLineTwo *string    `json:"address_line_two,omitempty"`
	ZipCode        *string    `json:"zip_code,omitempty"`
	IsDefault      bool       `json:"is_default"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toAddressResponse(a *entity.Address) AddressResponse {
	return AddressResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		CountryID:      a.CountryID,
		StateID:        a.StateID,
		CityID:         a.CityID,
		DistrictID:     a.DistrictID,
		AddressLineOne: a.AddressLineOne,
		AddressLineTwo: a.AddressLineTwo,
		ZipCode:        a.ZipCode,
		IsDefault:      a.IsDefault,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

type VendorResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	AddressID          *uuid.UUID `json:"address_id,omitempty"`
	Name               string     `json:"name"`
	BusinessCategoryID *uuid.UUID `json:"business_category_id,omitempty"`
	TaxID              *string    `json:"tax_id,omitempty"`
	VendorStatus       string     `json:"vendor_status"`
	PaymentStatus      string     `json:"payment_status"`
	LeadsCount         int        `json:"leads_count"`
	LeadsConsumed      int        `json:"leads_consumed"`
	RegisteredAt       *time.Time `json:"registered_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func toVendorResponse(v *entity.Vendor) VendorResponse {
	return VendorResponse{
		ID:                 v.ID,
		UserID:             v.UserID,
		AddressID:          v.AddressID,
		Name:               v.Name,
		BusinessCategoryID: v.BusinessCategoryID,
		TaxID:              v.TaxID,
		VendorStatus:       string(v.VendorStatus),
		PaymentStatus:      string(v.PaymentStatus),
		LeadsCount:         v.LeadsCount,
		LeadsConsumed:      v.LeadsConsumed,
		RegisteredAt:       v.RegisteredAt,
		CreatedAt:          v.CreatedAt,
	}
}

type PlanResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	LeadsCount  int             `json:"leads_count"`
	Price       decimal.Decimal `json:"price"`
	Items       []string        `json:"items"`
}

func toPlanResponse(s *entity.Subscription) PlanResponse {
	items := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, item.Name)
	}

	return PlanResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		LeadsCount:  s.LeadsCount,
		Price:       s.Price,
		Items:       items,
	}
}

type ReceiptResponse struct {
	ID               uuid.UUID       `json:"id"`
	VendorID         uuid.UUID       `json:"vendor_id"`
	SubscriptionID   uuid.UUID       `json:"subscription_id"`
	SubscriptionName string          `json:"subscription_name,omitempty"`
	LeadsGranted     int             `json:"leads_granted"`
	Price            decimal.Decimal `json:"price"`
	PurchasedAt      time.Time       `json:"purchased_at"`
}

func toReceiptResponse(r *entity.VendorSubscription) ReceiptResponse {
	resp := ReceiptResponse{
		ID:             r.ID,
		VendorID:       r.VendorID,
		SubscriptionID: r.SubscriptionID,
		LeadsGranted:   r.LeadsGranted,
		Price:          r.Price,
		PurchasedAt:    r.PurchasedAt,
	}
	if r.Subscription != nil {
		resp.SubscriptionName = r.Subscription.Name
	}

	return resp
}

type LeadResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	ProductID          uuid.UUID  `json:"product_id"`
	BusinessCategoryID uuid.UUID  `json:"business_category_id"`
	VendorID           *uuid.UUID `json:"vendor_id,omitempty"`
	RequiredUnits      int        `json:"required_units"`
	Description        *string    `json:"description,omitempty"`
	PossibleOrderValue string     `json:"possible_order_value"`
	CreatedAt          time.Time  `json:"created_at"`
}

func toLeadResponse(l *entity.Lead) LeadResponse {
	return LeadResponse{
		ID:                 l.ID,
		UserID:             l.UserID,
		ProductID:          l.ProductID,
		BusinessCategoryID: l.BusinessCategoryID,
		VendorID:           l.VendorID,
		RequiredUnits:      l.RequiredUnits,
		Description:        l.Description,
		PossibleOrderValue: l.PossibleOrderValue,
		CreatedAt:          l.CreatedAt,
	}
}

type MessageResponse struct {
	ID              uuid.UUID `json:"id"`
	SenderUserID    uuid.UUID `json:"sender_user_id"`
	RecipientUserID uuid.UUID `json:"recipient_user_id"`
	SenderName      string    `json:"sender_name,omitempty"`
	RecipientName   string    `json:"recipient_name,omitempty"`
	Message         string    `json:"message"`
	CreatedAt       time.Time `json:"created_at"`
}

func toMessageResponse(m *entity.Message) MessageResponse {
	resp := MessageResponse{
		ID:              m.ID,
		SenderUserID:    m.SenderUserID,
		RecipientUserID: m.RecipientUserID,
		Message:         m.Message,
		CreatedAt:       m.CreatedAt,
	}
	if m.Sender != nil {
		resp.SenderName = m.Sender.FullName()
	}
	if m.Recipient != nil {
		resp.RecipientName = m.Recipient.FullName()
	}

	return resp
}

type ProductResponse struct {
	ID          uuid.UUID                 `json:"id"`
	VendorID    uuid.UUID                 `json:"vendor_id"`
	CategoryID  uuid.UUID                 `json:"category_id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Price       decimal.Decimal           `json:"price"`
	Quantity    int                       `json:"quantity"`
	Attributes  []entity.ProductAttribute `json:"attributes"`
	Images      []string                  `json:"images"`
	CreatedAt   time.Time                 `json:"created_at"`
}

func toProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Attributes:  p.Attributes,
		Images:      p.Images,
		CreatedAt:   p.CreatedAt,
	}
}
