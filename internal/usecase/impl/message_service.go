package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"leadhub/config"
	deliverycontext "leadhub/internal/delivery/context"
	"leadhub/internal/domain/constants"
	"leadhub/internal/domain/entity"
	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/domain/repository"
	"leadhub/internal/domain/service"
	"leadhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	publisher   service.EventPublisher
	historyMode string
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	MessageRepo repository.MessageRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMessageService creates a new message service instance
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	historyMode := constants.HistoryModeCounterparty
	if params.Config != nil && params.Config.Messaging != nil {
		switch params.Config.Messaging.HistoryMode {
		case constants.HistoryModePairwise:
			historyMode = constants.HistoryModePairwise
		case "", constants.HistoryModeCounterparty:
		default:
			params.Logger.Warn("Unknown history mode, using counterparty",
				slog.String("historyMode", params.Config.Messaging.HistoryMode))
		}
	}

	return &messageService{
		userRepo:    params.UserRepo,
		messageRepo: params.MessageRepo,
		publisher:   params.Publisher,
		historyMode: historyMode,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage stores the message and hands it to the relay queue.
func (srv *messageService) SendMessage(ctx context.Context, caller *entity.Caller, input *usecase.SendMessageInput) (*entity.Message, error) {
	if !caller.CanActForUser(input.SenderUserID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot send messages as another user")
	}

	text := strings.TrimSpace(input.Message)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message must not be empty")
	}
	if input.SenderUserID == input.RecipientUserID {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("sender and recipient must differ")
	}

	if _, err := srv.userRepo.FindUserByID(ctx, input.RecipientUserID); err != nil {
		return nil, mapUserError(err)
	}

	message := &entity.Message{
		ID:              uuid.New(),
		SenderUserID:    input.SenderUserID,
		RecipientUserID: input.RecipientUserID,
		Message:         text,
		CreatedAt:       time.Now(),
	}

	if err := srv.messageRepo.CreateMessage(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to create message", slog.Any("senderID", input.SenderUserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create message")
	}

	enqueueJob(ctx, srv.publisher, srv.log(ctx), service.JobChatMessageCreated, service.ChatMessagePayload{
		MessageID:       message.ID.String(),
		SenderUserID:    message.SenderUserID.String(),
		RecipientUserID: message.RecipientUserID.String(),
		Message:         message.Message,
		CreatedAt:       message.CreatedAt.UTC().Format(time.RFC3339Nano),
	})

	return message, nil
}

// FetchHistory builds the inbox view: one message per conversation, newest first.
func (srv *messageService) FetchHistory(ctx context.Context, caller *entity.Caller, partyID *uuid.UUID, skip, take int) ([]*entity.Message, error) {
	if partyID == nil && !caller.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only admins can read every conversation")
	}
	if partyID != nil && !caller.CanActForUser(*partyID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot read another user's conversations")
	}

	filter := repository.HistoryFilter{PartyID: partyID}
	page := repository.Pagination{Skip: skip, Take: take}.Normalize(repository.MessageOrderColumns...)

	if srv.historyMode == constants.HistoryModePairwise {
		heads, err := srv.messageRepo.LatestPerDirectedPair(ctx, filter, page)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch conversation heads")
		}

		return CompactPairwise(heads), nil
	}

	// A conversation owns at most two directed heads, so the newest head of the
	// n-th conversation is never past position 2n of the directed list.
	heads, err := srv.messageRepo.LatestPerDirectedPair(ctx, filter, counterpartyHeadBound(page))
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch conversation heads")
	}

	return window(CompactByCounterparty(heads), page.Skip, page.Take), nil
}

// counterpartyHeadBound is the directed-head page that covers the first
// skip+take conversations.
func counterpartyHeadBound(page repository.Pagination) repository.Pagination {
	return repository.Pagination{Take: 2 * (page.Skip + page.Take)}
}

// ListConversation pages through the messages exchanged by two users.
func (srv *messageService) ListConversation(ctx context.Context, caller *entity.Caller, filter repository.ConversationFilter, page repository.Pagination) (*usecase.ConversationPage, error) {
	if !caller.CanActForUser(filter.UserIDOne) && !caller.CanActForUser(filter.UserIDTwo) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot read a conversation you are not part of")
	}

	messages, total, err := srv.messageRepo.ListConversation(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	return &usecase.ConversationPage{TotalCount: total, Messages: messages}, nil
}
