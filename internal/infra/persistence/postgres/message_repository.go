package postgres

import (
	"context"
	"strings"

	"leadhub/internal/domain/entity"
	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/domain/repository"
	"leadhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// CreateMessage persists a chat message.
func (repo *messageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Omit("Sender", "Recipient").Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid sender or recipient")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// LatestPerDirectedPair keeps the newest row per (sender, recipient) with DISTINCT ON
// and orders the survivors by recency.
func (repo *messageRepository) LatestPerDirectedPair(ctx context.Context, filter repository.HistoryFilter, page repository.Pagination) ([]*entity.Message, error) {
	latest := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Select("DISTINCT ON (sender_user_id, recipient_user_id) id").
		Order("sender_user_id, recipient_user_id, created_at DESC, id DESC")

	if filter.PartyID != nil {
		latest = latest.Where("sender_user_id = ? OR recipient_user_id = ?", *filter.PartyID, *filter.PartyID)
	}

	query := repo.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		Where("id IN (?)", latest).
		Order("created_at DESC, id DESC")

	if page.Take > 0 {
		query = query.Offset(max(page.Skip, 0)).Limit(page.Take)
	}

	var messageModels []*model.MessageModel
	if err := query.Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find latest messages per pair")
	}

	return toMessagesDomain(messageModels), nil
}

// ListConversation returns one page of the messages exchanged between two users.
func (repo *messageRepository) ListConversation(ctx context.Context, filter repository.ConversationFilter, page repository.Pagination) ([]*entity.Message, int64, error) {
	page = page.Normalize(repository.MessageOrderColumns...)

	base := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where(
			"(sender_user_id = ? AND recipient_user_id = ?) OR (sender_user_id = ? AND recipient_user_id = ?)",
			filter.UserIDOne, filter.UserIDTwo, filter.UserIDTwo, filter.UserIDOne,
		)

	if strings.TrimSpace(filter.Search) != "" {
		base = base.Where("message ILIKE ?", containsPattern(filter.Search))
	}

	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count conversation messages")
	}

	var messageModels []*model.MessageModel
	if err := paginate(base.Preload("Sender").Preload("Recipient"), "messages", page).
		Find(&messageModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list conversation messages")
	}

	return toMessagesDomain(messageModels), total, nil
}

// --- Mapper Functions ---

func toMessagesDomain(messageModels []*model.MessageModel) []*entity.Message {
	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages
}

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:              data.ID,
		SenderUserID:    data.SenderUserID,
		RecipientUserID: data.RecipientUserID,
		Message:         data.Message,
		Sender:          toUserDomain(data.Sender),
		Recipient:       toUserDomain(data.Recipient),
		CreatedAt:       data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:              data.ID,
		SenderUserID:    data.SenderUserID,
		RecipientUserID: data.RecipientUserID,
		Message:         data.Message,
		CreatedAt:       data.CreatedAt,
	}
}
