// Package usecase defines the application's use case interfaces and their data carriers.
package usecase

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// EnqueueRequest asks for one notification to be delivered later through the queue.
type EnqueueRequest struct {
	UserID       uuid.UUID      `json:"user_id" validate:"required"`
	Category     string         `json:"category" validate:"required,max=64"`
	Title        string         `json:"title" validate:"required,max=256"`
	Body         string         `json:"body" validate:"max=4096"`
	Data         map[string]any `json:"data,omitempty"`
	Priority     string         `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	ScheduledFor *time.Time     `json:"scheduled_for,omitempty"`
	MaxRetries   *int           `json:"max_retries,omitempty" validate:"omitempty,min=0,max=10"`
}

// DirectRequest asks for a synchronous delivery that bypasses the queue.
type DirectRequest struct {
	UserID   uuid.UUID      `json:"user_id" validate:"required"`
	Category string         `json:"category" validate:"required,max=64"`
	Title    string         `json:"title" validate:"required,max=256"`
	Body     string         `json:"body" validate:"max=4096"`
	Data     map[string]any `json:"data,omitempty"`
}

// QueueUsecase is the producer-facing side of the pipeline.
type QueueUsecase interface {
	// Enqueue checks the user's settings and persists a pending entry.
	// Returns domainerrors.ErrCategoryDisabled without writing when the category is off.
	Enqueue(ctx context.Context, req *EnqueueRequest) (uuid.UUID, error)

	// SendDirect delivers immediately and reports per-token counts.
	// A user without active tokens gets an empty report and no history row.
	SendDirect(ctx context.Context, req *DirectRequest) (*entity.DeliveryReport, error)
}
