package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single chat message between two users.
type Message struct {
	ID              uuid.UUID
	SenderUserID    uuid.UUID
	RecipientUserID uuid.UUID
	Message         string
	Sender          *User
	Recipient       *User
	CreatedAt       time.Time
}

// Counterparty returns the other participant from the point of view of partyID.
func (m *Message) Counterparty(partyID uuid.UUID) uuid.UUID {
	if m.SenderUserID == partyID {
		return m.RecipientUserID
	}

	return m.SenderUserID
}
