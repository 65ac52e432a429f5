package service

import (
	"context"
	"encoding/json"
)

// Job names understood by notification consumers.
const (
	JobChatMessageCreated = "chat.message.created"
	JobLeadContacted      = "lead.contacted"
)

// Job is a fire-and-forget unit of work handed to the notification queue.
type Job struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	RequestID string          `json:"request_id,omitempty"` // For distributed tracing
	Payload   json.RawMessage `json:"payload"`
}

// EventPublisher defines the interface for publishing jobs to a message queue
type EventPublisher interface {
	// Enqueue hands the job to the queue. Callers log and drop the error.
	Enqueue(ctx context.Context, job *Job) error

	// Close releases any resources held by the publisher
	Close() error
}

// LeadContactedPayload is the payload of a JobLeadContacted job.
type LeadContactedPayload struct {
	LeadID    string `json:"leadId"`
	VendorID  string `json:"vendorId"`
	BuyerID   string `json:"buyerId"`
	ProductID string `json:"productId"`
}

// ChatMessagePayload is the payload of a JobChatMessageCreated job.
type ChatMessagePayload struct {
	MessageID       string `json:"messageId"`
	SenderUserID    string `json:"senderUserId"`
	RecipientUserID string `json:"recipientUserId"`
	Message         string `json:"message"`
	CreatedAt       string `json:"createdAt"`
}
