package impl

import (
	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/domain/repository"

	"github.com/pkg/errors"
)

// Repository sentinels are translated into domain errors here; anything else is
// wrapped so the error middleware can still find an AppError further down the chain.

func mapUserError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if errors.Is(err, repository.ErrUserAlreadyExists) {
		return domainerrors.ErrDuplicateName.WrapMessage("mobile number already registered")
	}

	return errors.Wrap(err, "user lookup failed")
}

func mapAddressError(err error) error {
	if errors.Is(err, repository.ErrAddressNotFound) {
		return domainerrors.ErrAddressNotFound
	}
	if errors.Is(err, repository.ErrDefaultAddressConflict) {
		return domainerrors.ErrDefaultAddressConflict
	}

	return errors.Wrap(err, "address write failed")
}

func mapReferenceError(err error, kind string) error {
	if errors.Is(err, repository.ErrReferenceNotFound) {
		return domainerrors.ErrLocationNotFound.WrapMessage(kind + " not found")
	}

	return errors.Wrapf(err, "failed to find %s", kind)
}

func mapVendorError(err error) error {
	if errors.Is(err, repository.ErrVendorNotFound) {
		return domainerrors.ErrVendorNotFound
	}
	if errors.Is(err, repository.ErrInsufficientCredits) {
		return domainerrors.ErrInsufficientCredits
	}

	return errors.Wrap(err, "vendor write failed")
}

func mapSubscriptionError(err error) error {
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		return domainerrors.ErrSubscriptionNotFound
	}
	if errors.Is(err, repository.ErrDuplicateSubscription) {
		return domainerrors.ErrDuplicateName.WrapMessage("subscription name already exists")
	}

	return errors.Wrap(err, "subscription write failed")
}

func mapLeadError(err error) error {
	if errors.Is(err, repository.ErrLeadNotFound) {
		return domainerrors.ErrLeadNotFound
	}
	if errors.Is(err, repository.ErrLeadAlreadyClaimed) {
		return domainerrors.ErrLeadAlreadyClaimed
	}

	return errors.Wrap(err, "lead write failed")
}

func mapProductError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound
	}

	return errors.Wrap(err, "product lookup failed")
}
