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

// ledgerService implements the LedgerUsecase interface. Every balance change is a
// relative update executed in the same transaction as its receipt or lead claim.
type ledgerService struct {
	txManager        repository.TransactionManager
	vendorRepo       repository.VendorRepository
	subscriptionRepo repository.SubscriptionRepository
	publisher        service.EventPublisher
	metrics          service.MetricsRecorder
	logger           *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	VendorRepo       repository.VendorRepository
	SubscriptionRepo repository.SubscriptionRepository
	Publisher        service.EventPublisher
	Metrics          service.MetricsRecorder
	Logger           *slog.Logger
}

// NewLedgerService creates a new ledger service instance
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:        params.TxManager,
		vendorRepo:       params.VendorRepo,
		subscriptionRepo: params.SubscriptionRepo,
		publisher:        params.Publisher,
		metrics:          params.Metrics,
		logger:           params.Logger,
	}
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterVendor opens a vendor account funded with the chosen plan's credits.
func (srv *ledgerService) RegisterVendor(ctx context.Context, caller *entity.Caller, input *usecase.RegisterVendorInput) (*entity.Vendor, error) {
	if !caller.CanActForUser(input.UserID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot register a vendor for another user")
	}

	now := time.Now()
	vendor := &entity.Vendor{
		ID:                 uuid.New(),
		UserID:             input.UserID,
		AddressID:          input.AddressID,
		Name:               util.CapitalizeWords(input.Name),
		BusinessCategoryID: input.BusinessCategoryID,
		TaxID:              input.TaxID,
		VendorStatus:       input.VendorStatus,
		PaymentStatus:      input.PaymentStatus,
		RegisteredAt:       input.RegisteredAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if vendor.VendorStatus == "" {
		vendor.VendorStatus = entity.VendorStatusTrial
	}
	if vendor.PaymentStatus == "" {
		vendor.PaymentStatus = entity.PaymentStatusUnpaid
	}

	var granted int
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.UserRepo().FindUserByID(ctx, input.UserID); err != nil {
			return mapUserError(err)
		}

		if input.AddressID != nil {
			address, err := repos.AddressRepo().FindAddressByID(ctx, *input.AddressID)
			if err != nil {
				return mapAddressError(err)
			}
			if address.UserID != input.UserID {
				return domainerrors.ErrAddressOwnershipViolation
			}
		}

		subscription, err := repos.SubscriptionRepo().FindSubscriptionByID(ctx, input.SubscriptionID)
		if err != nil {
			return mapSubscriptionError(err)
		}

		vendor.LeadsCount = subscription.LeadsCount
		if err := repos.VendorRepo().CreateVendor(ctx, vendor); err != nil {
			return mapVendorError(err)
		}

		receipt := &entity.VendorSubscription{
			ID:             uuid.New(),
			VendorID:       vendor.ID,
			SubscriptionID: subscription.ID,
			LeadsGranted:   subscription.LeadsCount,
			Price:          subscription.Price,
			PurchasedAt:    now,
		}
		if err := repos.SubscriptionRepo().CreateReceipt(ctx, receipt); err != nil {
			return mapSubscriptionError(err)
		}

		granted = subscription.LeadsCount

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to register vendor", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.CreditsPurchased(granted)
	srv.log(ctx).Info("Vendor registered",
		slog.Any("vendorID", vendor.ID),
		slog.Any("userID", vendor.UserID),
		slog.Int("leadsCount", vendor.LeadsCount),
	)

	return vendor, nil
}

// PurchaseSubscription credits the plan's leads to the vendor and records the receipt.
func (srv *ledgerService) PurchaseSubscription(ctx context.Context, caller *entity.Caller, vendorID, subscriptionID uuid.UUID) (*entity.Vendor, error) {
	if !caller.CanActForVendor(vendorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot purchase for another vendor")
	}

	var (
		vendor       *entity.Vendor
		subscription *entity.Subscription
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		subscription, err = repos.SubscriptionRepo().FindSubscriptionByID(ctx, subscriptionID)
		if err != nil {
			return mapSubscriptionError(err)
		}

		if err := repos.VendorRepo().AddCredits(ctx, vendorID, subscription.LeadsCount); err != nil {
			return mapVendorError(err)
		}

		receipt := &entity.VendorSubscription{
			ID:             uuid.New(),
			VendorID:       vendorID,
			SubscriptionID: subscription.ID,
			LeadsGranted:   subscription.LeadsCount,
			Price:          subscription.Price,
			PurchasedAt:    time.Now(),
		}
		if err := repos.SubscriptionRepo().CreateReceipt(ctx, receipt); err != nil {
			return mapSubscriptionError(err)
		}

		vendor, err = repos.VendorRepo().FindVendorByID(ctx, vendorID)
		if err != nil {
			return mapVendorError(err)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to purchase subscription",
			slog.Any("vendorID", vendorID),
			slog.Any("subscriptionID", subscriptionID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.metrics.CreditsPurchased(subscription.LeadsCount)
	srv.log(ctx).Info("Subscription purchased",
		slog.Any("vendorID", vendorID),
		slog.String("subscription", subscription.Name),
		slog.Int("leadsCount", vendor.LeadsCount),
	)

	return vendor, nil
}

// ContactLead claims the lead and debits one credit atomically. A lead that is
// already claimed or a vendor without credits leaves both rows untouched.
func (srv *ledgerService) ContactLead(ctx context.Context, caller *entity.Caller, vendorID, leadID uuid.UUID) (*entity.Lead, error) {
	if !caller.CanActForVendor(vendorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot contact leads for another vendor")
	}

	var lead *entity.Lead
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		leadRepo := repos.LeadRepo()

		var err error
		lead, err = leadRepo.FindLeadByID(ctx, leadID)
		if err != nil {
			return mapLeadError(err)
		}

		if err := leadRepo.ClaimLead(ctx, leadID, vendorID); err != nil {
			return mapLeadError(err)
		}

		if err := repos.VendorRepo().ConsumeCredit(ctx, vendorID); err != nil {
			return mapVendorError(err)
		}

		lead.VendorID = &vendorID
		lead.UpdatedAt = time.Now()

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrInsufficientCredits):
			srv.metrics.ContactRejected(service.RejectionInsufficientCredits)
		case errors.Is(err, domainerrors.ErrLeadAlreadyClaimed):
			srv.metrics.ContactRejected(service.RejectionAlreadyClaimed)
		}
		srv.log(ctx).Warn("Lead contact rejected",
			slog.Any("vendorID", vendorID),
			slog.Any("leadID", leadID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.metrics.CreditConsumed()
	srv.log(ctx).Info("Lead contacted", slog.Any("vendorID", vendorID), slog.Any("leadID", leadID))

	enqueueJob(ctx, srv.publisher, srv.log(ctx), service.JobLeadContacted, service.LeadContactedPayload{
		LeadID:    lead.ID.String(),
		VendorID:  vendorID.String(),
		BuyerID:   lead.UserID.String(),
		ProductID: lead.ProductID.String(),
	})

	return lead, nil
}

// PurchaseHistory returns the vendor's receipts newest first.
func (srv *ledgerService) PurchaseHistory(ctx context.Context, caller *entity.Caller, vendorID uuid.UUID) ([]*entity.VendorSubscription, error) {
	if !caller.CanActForVendor(vendorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot read another vendor's purchases")
	}

	if _, err := srv.vendorRepo.FindVendorByID(ctx, vendorID); err != nil {
		return nil, mapVendorError(err)
	}

	receipts, err := srv.subscriptionRepo.FindReceiptsByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find receipts by vendor")
	}

	return receipts, nil
}

// ListPlans returns every plan a vendor can buy.
func (srv *ledgerService) ListPlans(ctx context.Context) ([]*entity.Subscription, error) {
	plans, err := srv.subscriptionRepo.ListSubscriptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	return plans, nil
}

// ListVendors returns the vendor accounts owned by userID.
func (srv *ledgerService) ListVendors(ctx context.Context, caller *entity.Caller, userID uuid.UUID) ([]*entity.Vendor, error) {
	if !caller.CanActForUser(userID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot list another user's vendors")
	}

	vendors, err := srv.vendorRepo.FindVendorsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendors by user")
	}

	return vendors, nil
}

// GetVendor returns the vendor with its leads_count and leads_consumed balance.
func (srv *ledgerService) GetVendor(ctx context.Context, caller *entity.Caller, vendorID uuid.UUID) (*entity.Vendor, error) {
	if !caller.CanActForVendor(vendorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot read another vendor")
	}

	vendor, err := srv.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, mapVendorError(err)
	}

	return vendor, nil
}
