package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationHistory is the audit row written after each delivery attempt.
// Only the delivered and read acknowledgements change after insert.
type NotificationHistory struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	QueueEntryID *uuid.UUID     `json:"queue_entry_id,omitempty"`
	Category     string         `json:"category"`
	Title        string         `json:"title"`
	Body         string         `json:"body"`
	Data         map[string]any `json:"data,omitempty"`
	Attempt      int            `json:"attempt"`
	IsSent       bool           `json:"is_sent"`
	IsDelivered  bool           `json:"is_delivered"`
	IsRead       bool           `json:"is_read"`
	SentAt       *time.Time     `json:"sent_at,omitempty"`
	DeliveredAt  *time.Time     `json:"delivered_at,omitempty"`
	ReadAt       *time.Time     `json:"read_at,omitempty"`
	SuccessCount int            `json:"success_count"`
	FailureCount int            `json:"failure_count"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// DeliveryReport summarises one fan-out to a user's tokens.
type DeliveryReport struct {
	SuccessCount      int      `json:"success_count"`
	FailureCount      int      `json:"failure_count"`
	DeactivatedTokens []string `json:"-"`
	ErrorMessage      string   `json:"error_message,omitempty"`
}

// Succeeded reports whether at least one token accepted the push.
func (r *DeliveryReport) Succeeded() bool {
	return r != nil && r.SuccessCount > 0
}
