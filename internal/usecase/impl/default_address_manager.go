package impl

import (
	"context"
	"log/slog"

	deliverycontext "leadhub/internal/delivery/context"
	"leadhub/internal/domain/repository"
	"leadhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type defaultAddressManager struct {
	logger *slog.Logger
}

// NewDefaultAddressManager is the constructor for the default address resolver.
func NewDefaultAddressManager(logger *slog.Logger) usecase.DefaultAddressManager {
	return &defaultAddressManager{logger: logger}
}

// EnsureDefault looks up the user's current default under a row lock. A default that
// is not the candidate gets demoted, so the candidate can always be stored as default.
func (m *defaultAddressManager) EnsureDefault(ctx context.Context, repos repository.RepositoryFactory, userID uuid.UUID, candidateID *uuid.UUID) (bool, error) {
	addressRepo := repos.AddressRepo()

	current, err := addressRepo.FindDefaultAddressByUser(ctx, userID)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find default address")
	}

	if candidateID != nil && current.ID == *candidateID {
		return true, nil
	}

	if err := addressRepo.SetDefault(ctx, current.ID, false); err != nil {
		return false, errors.Wrap(err, "failed to demote default address")
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Demoted default address",
		slog.Any("userID", userID),
		slog.Any("addressID", current.ID),
	)

	return true, nil
}
