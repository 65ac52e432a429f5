package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "leadhub/internal/delivery/context"
	"leadhub/internal/domain/entity"
	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/domain/repository"
	"leadhub/internal/usecase"
	"leadhub/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager      repository.TransactionManager
	addressRepo    repository.AddressRepository
	defaultManager usecase.DefaultAddressManager
	logger         *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AddressRepo    repository.AddressRepository
	DefaultManager usecase.DefaultAddressManager
	Logger         *slog.Logger
}

// NewAddressService creates a new address service instance
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:      params.TxManager,
		addressRepo:    params.AddressRepo,
		defaultManager: params.DefaultManager,
		logger:         params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAddress validates the references and stores the address as the user's new default.
func (srv *addressService) CreateAddress(ctx context.Context, caller *entity.Caller, input *usecase.CreateAddressInput) (*entity.Address, error) {
	if !caller.CanActForUser(input.UserID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot add an address for another user")
	}

	now := time.Now()
	address := &entity.Address{
		ID:             uuid.New(),
		UserID:         input.UserID,
		CountryID:      input.CountryID,
		StateID:        input.StateID,
		CityID:         input.CityID,
		DistrictID:     input.DistrictID,
		AddressLineOne: util.CapitalizeWords(input.AddressLineOne),
		AddressLineTwo: util.CapitalizeWordsPtr(input.AddressLineTwo),
		ZipCode:        input.ZipCode,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.UserRepo().FindUserByID(ctx, input.UserID); err != nil {
			return mapUserError(err)
		}

		if err := checkAddressLocation(ctx, repos.ReferenceRepo(), address); err != nil {
			return err
		}

		isDefault, err := srv.defaultManager.EnsureDefault(ctx, repos, address.UserID, nil)
		if err != nil {
			return err
		}
		address.IsDefault = isDefault

		if err := repos.AddressRepo().CreateAddress(ctx, address); err != nil {
			return mapAddressError(err)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create address", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Address created", slog.Any("userID", address.UserID), slog.Any("addressID", address.ID))

	return address, nil
}

// UpdateAddress replaces the address fields. Requesting isDefault=true promotes the row;
// clearing the flag on the current default is refused so the user keeps a default.
func (srv *addressService) UpdateAddress(ctx context.Context, caller *entity.Caller, addressID uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	var updated *entity.Address

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		address, err := repos.AddressRepo().FindAddressByID(ctx, addressID)
		if err != nil {
			return mapAddressError(err)
		}

		if !caller.CanActForUser(address.UserID) {
			return domainerrors.ErrAddressOwnershipViolation
		}

		address.CountryID = input.CountryID
		address.StateID = input.StateID
		address.CityID = input.CityID
		address.DistrictID = input.DistrictID
		address.AddressLineOne = util.CapitalizeWords(input.AddressLineOne)
		address.AddressLineTwo = util.CapitalizeWordsPtr(input.AddressLineTwo)
		address.ZipCode = input.ZipCode
		address.UpdatedAt = time.Now()

		if err := checkAddressLocation(ctx, repos.ReferenceRepo(), address); err != nil {
			return err
		}

		if input.IsDefault != nil {
			switch {
			case *input.IsDefault:
				isDefault, err := srv.defaultManager.EnsureDefault(ctx, repos, address.UserID, &address.ID)
				if err != nil {
					return err
				}
				address.IsDefault = isDefault
			case address.IsDefault:
				return domainerrors.ErrDefaultAddressRequired
			}
		}

		if err := repos.AddressRepo().UpdateAddress(ctx, address); err != nil {
			return mapAddressError(err)
		}

		updated = address

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update address", slog.Any("addressID", addressID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// ListAddresses returns the user's addresses, newest first.
func (srv *addressService) ListAddresses(ctx context.Context, caller *entity.Caller, userID uuid.UUID) ([]*entity.Address, error) {
	if !caller.CanActForUser(userID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot list addresses of another user")
	}

	addresses, err := srv.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	return addresses, nil
}

// DeleteAddress removes the address. When it was the default, the most recently
// created remaining address inherits the flag.
func (srv *addressService) DeleteAddress(ctx context.Context, caller *entity.Caller, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		addressRepo := repos.AddressRepo()

		address, err := addressRepo.FindAddressByID(ctx, addressID)
		if err != nil {
			return mapAddressError(err)
		}

		if !caller.CanActForUser(address.UserID) {
			return domainerrors.ErrAddressOwnershipViolation
		}

		if err := addressRepo.DeleteAddress(ctx, addressID); err != nil {
			return mapAddressError(err)
		}

		if !address.IsDefault {
			return nil
		}

		remaining, err := addressRepo.FindAddressesByUser(ctx, address.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find remaining addresses")
		}
		if len(remaining) == 0 {
			return nil
		}

		if err := addressRepo.SetDefault(ctx, remaining[0].ID, true); err != nil {
			return mapAddressError(err)
		}

		srv.log(ctx).Debug("Promoted default address", slog.Any("userID", address.UserID), slog.Any("addressID", remaining[0].ID))

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete address", slog.Any("addressID", addressID), slog.Any("error", err))

		return err
	}

	return nil
}

func checkAddressLocation(ctx context.Context, refRepo repository.ReferenceRepository, address *entity.Address) error {
	if _, err := refRepo.FindCountryByID(ctx, address.CountryID); err != nil {
		return mapReferenceError(err, "country")
	}
	if _, err := refRepo.FindStateByID(ctx, address.StateID); err != nil {
		return mapReferenceError(err, "state")
	}
	if _, err := refRepo.FindCityByID(ctx, address.CityID); err != nil {
		return mapReferenceError(err, "city")
	}
	if address.DistrictID != nil {
		if _, err := refRepo.FindDistrictByID(ctx, *address.DistrictID); err != nil {
			return mapReferenceError(err, "district")
		}
	}

	return nil
}
