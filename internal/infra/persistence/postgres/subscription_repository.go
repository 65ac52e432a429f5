package postgres

import (
	"context"

	"leadhub/internal/domain/entity"
	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/domain/repository"
	"leadhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// CreateSubscription persists a plan; GORM inserts the items through the association.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscription
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	*subscription = *toSubscriptionDomain(subscriptionM)

	return nil
}

// FindSubscriptionByID retrieves a plan with its items.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindSubscriptionByName retrieves a plan by its unique name.
func (repo *subscriptionRepository) FindSubscriptionByName(ctx context.Context, name string) (*entity.Subscription, error) {
	return repo.findOne(ctx, "name = ?", name)
}

func (repo *subscriptionRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where(cond, arg).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// EnsureSubscription returns the plan with the same name, creating it with its items when absent.
func (repo *subscriptionRepository) EnsureSubscription(ctx context.Context, subscription *entity.Subscription) (bool, error) {
	existing, err := repo.FindSubscriptionByName(ctx, subscription.Name)
	if err == nil {
		*subscription = *existing

		return false, nil
	}
	if !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return false, err
	}

	// The savepoint keeps an enclosing transaction usable after a unique violation.
	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return NewSubscriptionRepository(tx).CreateSubscription(ctx, subscription)
	})
	if err != nil {
		if !errors.Is(err, repository.ErrDuplicateSubscription) {
			return false, err
		}

		// Lost a race with a concurrent import; the winner's row is the plan.
		existing, err = repo.FindSubscriptionByName(ctx, subscription.Name)
		if err != nil {
			return false, err
		}
		*subscription = *existing

		return false, nil
	}

	return true, nil
}

// ListSubscriptions returns every plan, cheapest first.
func (repo *subscriptionRepository) ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("price ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// CreateReceipt appends a purchase receipt.
func (repo *subscriptionRepository) CreateReceipt(ctx context.Context, receipt *entity.VendorSubscription) error {
	receiptM := fromReceiptDomain(receipt)

	if err := repo.db.WithContext(ctx).Omit("Subscription").Create(receiptM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSubscriptionNotFound.WrapMessage("invalid vendor or subscription reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription receipt")
	}

	receipt.ID = receiptM.ID
	receipt.PurchasedAt = receiptM.PurchasedAt

	return nil
}

// FindReceiptsByVendor returns the vendor's receipts newest first.
func (repo *subscriptionRepository) FindReceiptsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorSubscription, error) {
	var receiptModels []*model.VendorSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Preload("Subscription").
		Preload("Subscription.Items").
		Where("vendor_id = ?", vendorID).
		Order("purchased_at DESC").
		Find(&receiptModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find receipts by vendor")
	}

	receipts := make([]*entity.VendorSubscription, 0, len(receiptModels))
	for _, receiptM := range receiptModels {
		receipts = append(receipts, toReceiptDomain(receiptM))
	}

	return receipts, nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	items := make([]entity.SubscriptionItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.SubscriptionItem{
			ID:             item.ID,
			SubscriptionID: item.SubscriptionID,
			Name:           item.Name,
		})
	}

	return &entity.Subscription{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LeadsCount:  data.LeadsCount,
		Price:       data.Price,
		Items:       items,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	items := make([]model.SubscriptionItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.SubscriptionItemModel{
			ID:             item.ID,
			SubscriptionID: item.SubscriptionID,
			Name:           item.Name,
		})
	}

	return &model.SubscriptionModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LeadsCount:  data.LeadsCount,
		Price:       data.Price,
		Items:       items,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toReceiptDomain(data *model.VendorSubscriptionModel) *entity.VendorSubscription {
	if data == nil {
		return nil
	}

	return &entity.VendorSubscription{
		ID:             data.ID,
		VendorID:       data.VendorID,
		SubscriptionID: data.SubscriptionID,
		LeadsGranted:   data.LeadsGranted,
		Price:          data.Price,
		PurchasedAt:    data.PurchasedAt,
		Subscription:   toSubscriptionDomain(data.Subscription),
	}
}

func fromReceiptDomain(data *entity.VendorSubscription) *model.VendorSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.VendorSubscriptionModel{
		ID:             data.ID,
		VendorID:       data.VendorID,
		SubscriptionID: data.SubscriptionID,
		LeadsGranted:   data.LeadsGranted,
		Price:          data.Price,
		PurchasedAt:    data.PurchasedAt,
	}
}
