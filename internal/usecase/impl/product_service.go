package impl

import (
	"context"
	"fmt"
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
	"go.uber.org/fx"
)

const productImageFolder = "products"

// productService implements the ProductUsecase interface.
type productService struct {
	txManager    repository.TransactionManager
	vendorRepo   repository.VendorRepository
	productRepo  repository.ProductRepository
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	VendorRepo   repository.VendorRepository
	ProductRepo  repository.ProductRepository
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		vendorRepo:   params.VendorRepo,
		productRepo:  params.ProductRepo,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProducts uploads all images before opening the transaction and stores only
// the resulting URLs. Uploaded objects are removed again when anything fails.
func (srv *productService) CreateProducts(ctx context.Context, caller *entity.Caller, vendorID uuid.UUID, inputs []*usecase.CreateProductInput) ([]*entity.Product, error) {
	if !caller.CanActForVendor(vendorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot list products for another vendor")
	}
	if len(inputs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one product is required")
	}

	if _, err := srv.vendorRepo.FindVendorByID(ctx, vendorID); err != nil {
		return nil, mapVendorError(err)
	}

	now := time.Now()
	products := make([]*entity.Product, 0, len(inputs))
	for _, input := range inputs {
		if input.Price.IsNegative() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}

		category, err := srv.productRepo.FindCategoryByID(ctx, input.CategoryID)
		if err != nil {
			return nil, mapProductError(err)
		}

		products = append(products, &entity.Product{
			ID:          uuid.New(),
			VendorID:    vendorID,
			CategoryID:  category.ID,
			Category:    category,
			Name:        util.CapitalizeWords(input.Name),
			Description: input.Description,
			Price:       input.Price,
			Quantity:    input.Quantity,
			Attributes:  input.Attributes,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	var uploaded []string
	for i, product := range products {
		for j, image := range inputs[i].Images {
			key := fmt.Sprintf("%s-%s-%s-%d", product.ID, product.CategoryID, vendorID, j)

			url, err := srv.imageStorage.Upload(ctx, image, key, productImageFolder)
			if err != nil {
				srv.log(ctx).Warn("Failed to upload product image", slog.Any("productID", product.ID), slog.Any("error", err))
				srv.discardImages(ctx, uploaded)

				return nil, err
			}

			uploaded = append(uploaded, url)
			product.Images = append(product.Images, url)
		}
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		for _, product := range products {
			if err := repos.ProductRepo().CreateProduct(ctx, product); err != nil {
				return mapProductError(err)
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store products", slog.Any("vendorID", vendorID), slog.Any("error", err))
		srv.discardImages(ctx, uploaded)

		return nil, err
	}

	srv.log(ctx).Info("Products created",
		slog.Any("vendorID", vendorID),
		slog.Int("products", len(products)),
		slog.Int("images", len(uploaded)),
	)

	return products, nil
}

// discardImages deletes uploaded objects best effort.
func (srv *productService) discardImages(ctx context.Context, urls []string) {
	cleanupCtx := context.WithoutCancel(ctx)

	for _, url := range urls {
		if err := srv.imageStorage.Delete(cleanupCtx, url); err != nil {
			srv.log(ctx).Warn("Failed to delete orphaned image", slog.String("url", url), slog.Any("error", err))
		}
	}
}
