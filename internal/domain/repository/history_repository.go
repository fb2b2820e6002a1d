package repository

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryRepository stores the append-only delivery audit trail.
type HistoryRepository interface {
	// Create appends one attempt record.
	Create(ctx context.Context, history *entity.NotificationHistory) error

	// FindByUser lists a user's history, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationHistory, int64, error)

	// FindByQueueEntry lists every attempt made for a queue entry, oldest first.
	FindByQueueEntry(ctx context.Context, entryID uuid.UUID) ([]*entity.NotificationHistory, error)

	// MarkDelivered sets is_delivered once. Returns domainerrors.ErrHistoryNotFound
	// when the row does not exist or belongs to another user.
	MarkDelivered(ctx context.Context, id, userID uuid.UUID, now time.Time) error

	// MarkRead sets is_read (and is_delivered) once.
	MarkRead(ctx context.Context, id, userID uuid.UUID, now time.Time) error
}
