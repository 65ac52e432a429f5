package repository

import (
	"context"

	"leadhub/internal/domain/entity"
)

// MessageRepository defines the interface for chat messages.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message *entity.Message) error

	// LatestPerDirectedPair returns, newest first, the most recent message for each
	// (sender, recipient) pair that involves the filtered party. Sender and recipient are attached.
	// A zero page.Take returns every pair.
	LatestPerDirectedPair(ctx context.Context, filter HistoryFilter, page Pagination) ([]*entity.Message, error)

	ListConversation(ctx context.Context, filter ConversationFilter, page Pagination) ([]*entity.Message, int64, error)
}
