package usecase

import (
	"context"

	"leadhub/internal/domain/entity"
	"leadhub/internal/domain/repository"

	"github.com/google/uuid"
)

// SendMessageInput represents a chat message from the caller to another user.
type SendMessageInput struct {
	SenderUserID    uuid.UUID
	RecipientUserID uuid.UUID
	Message         string
}

// ConversationPage is one page of a conversation plus the total number of messages.
type ConversationPage struct {
	TotalCount int64             `json:"totalCount"`
	Messages   []*entity.Message `json:"messages"`
}

// MessageUsecase defines chat persistence and the inbox view.
type MessageUsecase interface {
	SendMessage(ctx context.Context, caller *entity.Caller, input *SendMessageInput) (*entity.Message, error)

	// FetchHistory returns the latest message of each conversation, newest first.
	// A nil partyID spans every conversation and is reserved to admins.
	FetchHistory(ctx context.Context, caller *entity.Caller, partyID *uuid.UUID, skip, take int) ([]*entity.Message, error)

	ListConversation(ctx context.Context, caller *entity.Caller, filter repository.ConversationFilter, page repository.Pagination) (*ConversationPage, error)
}
