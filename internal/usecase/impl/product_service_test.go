package impl

import (
	"context"
	"strings"
	"testing"

	"leadhub/internal/domain/entity"
	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const pngDataURL = "data:image/png;base64,iVBORw0KGgo="

type productFixture struct {
	store    *memStore
	storage  *mockImageStorage
	service  usecase.ProductUsecase
	vendorID uuid.UUID
	caller   *entity.Caller
	category entity.Category
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()

	store := newMemStore()
	storage := &mockImageStorage{}

	owner := store.seedUser("5550103")
	vendor := entity.Vendor{ID: uuid.New(), UserID: owner.ID, Name: "Acme"}
	store.vendors[vendor.ID] = vendor

	category := entity.Category{ID: uuid.New(), Name: "Valves", BusinessCategoryID: uuid.New()}
	store.categories[category.ID] = category

	return &productFixture{
		store:   store,
		storage: storage,
		service: NewProductService(ProductServiceParams{
			TxManager:    store,
			VendorRepo:   store,
			ProductRepo:  store,
			ImageStorage: storage,
			Logger:       newDiscardLogger(),
		}),
		vendorID: vendor.ID,
		caller:   &entity.Caller{UserID: owner.ID, Role: entity.RoleVendor, VendorIDs: []uuid.UUID{vendor.ID}},
		category: category,
	}
}

func (f *productFixture) input(name string, images ...string) *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		CategoryID: f.category.ID,
		Name:       name,
		Price:      decimal.RequireFromString("12.50"),
		Quantity:   100,
		Attributes: []entity.ProductAttribute{{Name: "material", Value: "brass"}},
		Images:     images,
	}
}

func TestProductService_CreateProducts(t *testing.T) {
	f := newProductFixture(t)
	f.storage.On("Upload", mock.Anything, pngDataURL, mock.AnythingOfType("string"), productImageFolder).
		Return("https://cdn.example.com/products/a.png", nil).Twice()

	products, err := f.service.CreateProducts(context.Background(), f.caller, f.vendorID, []*usecase.CreateProductInput{
		f.input("ball valve", pngDataURL, pngDataURL),
		f.input("gate valve"),
	})

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Ball Valve", products[0].Name)
	assert.Len(t, products[0].Images, 2)
	assert.Empty(t, products[1].Images)
	assert.Len(t, f.store.products, 2)
	f.storage.AssertExpectations(t)

	prefix := products[0].ID.String() + "-" + f.category.ID.String() + "-" + f.vendorID.String() + "-"
	first, second := f.storage.Calls[0].Arguments.String(2), f.storage.Calls[1].Arguments.String(2)
	assert.True(t, strings.HasPrefix(first, prefix), first)
	assert.Equal(t, prefix+"0", first)
	assert.Equal(t, prefix+"1", second)
	assert.NotEqual(t, first, second)
}

func TestProductService_CreateProducts_UploadFailureCleansUp(t *testing.T) {
	f := newProductFixture(t)
	f.storage.On("Upload", mock.Anything, "first", mock.Anything, productImageFolder).
		Return("https://cdn.example.com/products/first.png", nil).Once()
	f.storage.On("Upload", mock.Anything, "second", mock.Anything, productImageFolder).
		Return("", domainerrors.ErrInvalidImage).Once()
	f.storage.On("Delete", mock.Anything, "https://cdn.example.com/products/first.png").Return(nil).Once()

	products, err := f.service.CreateProducts(context.Background(), f.caller, f.vendorID, []*usecase.CreateProductInput{
		f.input("valve", "first", "second"),
	})

	require.Error(t, err)
	assert.Nil(t, products)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidImage))
	assert.Empty(t, f.store.products)
	f.storage.AssertExpectations(t)
}

func TestProductService_CreateProducts_StoreFailureCleansUp(t *testing.T) {
	f := newProductFixture(t)
	f.store.failOn("CreateProduct", errors.New("insert failed"))
	f.storage.On("Upload", mock.Anything, pngDataURL, mock.Anything, productImageFolder).
		Return("https://cdn.example.com/products/x.png", nil).Once()
	f.storage.On("Delete", mock.Anything, "https://cdn.example.com/products/x.png").
		Return(errors.New("already gone")).Once()

	_, err := f.service.CreateProducts(context.Background(), f.caller, f.vendorID, []*usecase.CreateProductInput{
		f.input("valve", pngDataURL),
	})

	require.Error(t, err)
	assert.Empty(t, f.store.products)
	f.storage.AssertExpectations(t)
}

func TestProductService_CreateProducts_Validation(t *testing.T) {
	tests := []struct {
		name     string
		caller   func(f *productFixture) *entity.Caller
		inputs   func(f *productFixture) []*usecase.CreateProductInput
		expected error
	}{
		{
			name:     "foreign vendor",
			caller:   func(f *productFixture) *entity.Caller { return &entity.Caller{UserID: uuid.New(), Role: entity.RoleVendor} },
			inputs:   func(f *productFixture) []*usecase.CreateProductInput { return []*usecase.CreateProductInput{f.input("x")} },
			expected: domainerrors.ErrForbidden,
		},
		{
			name:     "empty batch",
			inputs:   func(f *productFixture) []*usecase.CreateProductInput { return nil },
			expected: domainerrors.ErrValidationFailed,
		},
		{
			name: "negative price",
			inputs: func(f *productFixture) []*usecase.CreateProductInput {
				input := f.input("x")
				input.Price = decimal.NewFromInt(-1)

				return []*usecase.CreateProductInput{input}
			},
			expected: domainerrors.ErrValidationFailed,
		},
		{
			name: "unknown category",
			inputs: func(f *productFixture) []*usecase.CreateProductInput {
				input := f.input("x")
				input.CategoryID = uuid.New()

				return []*usecase.CreateProductInput{input}
			},
			expected: domainerrors.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProductFixture(t)
			caller := f.caller
			if tt.caller != nil {
				caller = tt.caller(f)
			}

			_, err := f.service.CreateProducts(context.Background(), caller, f.vendorID, tt.inputs(f))

			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
			assert.Empty(t, f.store.products)
			f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
