package impl

import (
	"leadhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CompactPairwise applies the legacy inbox rule to messages sorted newest first:
// a message survives when its sender is not the recipient of the message right
// after it, and the last message always survives. Non-adjacent duplicates are
// not detected; CompactByCounterparty is the exact version.
func CompactPairwise(messages []*entity.Message) []*entity.Message {
	if len(messages) == 0 {
		return []*entity.Message{}
	}

	compacted := make([]*entity.Message, 0, len(messages))
	for i := 0; i < len(messages)-1; i++ {
		current, next := messages[i], messages[i+1]
		if current.SenderUserID != next.RecipientUserID {
			compacted = append(compacted, current)
		}
	}

	return append(compacted, messages[len(messages)-1])
}

type conversationKey struct {
	low, high uuid.UUID
}

func newConversationKey(a, b uuid.UUID) conversationKey {
	if a.String() > b.String() {
		a, b = b, a
	}

	return conversationKey{low: a, high: b}
}

// CompactByCounterparty keeps the first, and therefore newest, message of every
// unordered pair of participants in a list sorted newest first.
func CompactByCounterparty(messages []*entity.Message) []*entity.Message {
	seen := make(map[conversationKey]struct{}, len(messages))
	compacted := make([]*entity.Message, 0, len(messages))

	for _, message := range messages {
		key := newConversationKey(message.SenderUserID, message.RecipientUserID)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		compacted = append(compacted, message)
	}

	return compacted
}

// window returns messages[skip:skip+take] clamped to the slice bounds.
func window(messages []*entity.Message, skip, take int) []*entity.Message {
	if skip >= len(messages) {
		return []*entity.Message{}
	}

	end := min(skip+take, len(messages))

	return messages[skip:end]
}
