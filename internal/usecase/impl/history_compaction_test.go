package impl

import (
	"testing"
	"time"

	"leadhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func msg(sender, recipient uuid.UUID, at time.Time) *entity.Message {
	return &entity.Message{ID: uuid.New(), SenderUserID: sender, RecipientUserID: recipient, Message: "hi", CreatedAt: at}
}

func TestCompaction_Golden(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	aToC := msg(a, c, now)
	bToA := msg(b, a, now.Add(-time.Minute))
	aToB := msg(a, b, now.Add(-2*time.Minute))
	heads := []*entity.Message{aToC, bToA, aToB}

	assert.Equal(t, []*entity.Message{aToB}, CompactPairwise(heads))
	assert.Equal(t, []*entity.Message{aToC, bToA}, CompactByCounterparty(heads))
}

func TestCompactPairwise(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	tests := []struct {
		name     string
		messages []*entity.Message
		expected []int
	}{
		{name: "empty", messages: nil, expected: []int{}},
		{name: "single", messages: []*entity.Message{msg(a, b, now)}, expected: []int{0}},
		{
			name:     "unrelated pairs survive",
			messages: []*entity.Message{msg(a, b, now), msg(c, d, now.Add(-time.Second))},
			expected: []int{0, 1},
		},
		{
			name:     "reply drops the newer side",
			messages: []*entity.Message{msg(b, a, now), msg(a, b, now.Add(-time.Second))},
			expected: []int{1},
		},
		{
			name: "non adjacent duplicates kept",
			messages: []*entity.Message{
				msg(a, b, now),
				msg(c, d, now.Add(-time.Second)),
				msg(b, a, now.Add(-2*time.Second)),
			},
			expected: []int{0, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := make([]*entity.Message, 0, len(tt.expected))
			for _, i := range tt.expected {
				expected = append(expected, tt.messages[i])
			}

			assert.Equal(t, expected, CompactPairwise(tt.messages))
		})
	}
}

func TestCompactByCounterparty(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	newest := msg(b, a, now)
	older := msg(a, b, now.Add(-time.Second))
	other := msg(c, a, now.Add(-2*time.Second))
	oldest := msg(b, a, now.Add(-3*time.Second))

	compacted := CompactByCounterparty([]*entity.Message{newest, older, other, oldest})

	assert.Equal(t, []*entity.Message{newest, other}, compacted)
	assert.Empty(t, CompactByCounterparty(nil))
	assert.NotNil(t, CompactByCounterparty(nil))
}

func TestWindow(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	now := time.Now()
	messages := []*entity.Message{msg(a, b, now), msg(a, b, now), msg(a, b, now)}

	assert.Equal(t, messages[1:3], window(messages, 1, 5))
	assert.Equal(t, messages[:2], window(messages, 0, 2))
	assert.Empty(t, window(messages, 3, 2))
	assert.Empty(t, window(messages, 10, 2))
}
