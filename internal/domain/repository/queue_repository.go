// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// QueueFilter narrows admin listings and bulk operations. Zero fields match everything.
type QueueFilter struct {
	IDs      []uuid.UUID
	Statuses []entity.QueueStatus
	UserID   *uuid.UUID
	Category string
	Before   *time.Time // created before
	Limit    int
	Offset   int
}

// IsEmpty reports whether the filter matches every row.
func (f QueueFilter) IsEmpty() bool {
	return len(f.IDs) == 0 && len(f.Statuses) == 0 && f.UserID == nil && f.Category == "" && f.Before == nil
}

// QueueRepository persists notification queue entries. Every state change is a
// conditional update on the current status, so concurrent workers and admins
// never overwrite a terminal entry.
type QueueRepository interface {
	// Create inserts a new pending entry.
	Create(ctx context.Context, entry *entity.QueueEntry) error

	// FindByID returns domainerrors.ErrQueueEntryNotFound when missing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error)

	// FindDue lists pending entries scheduled at or before now,
	// highest priority first, then oldest schedule first.
	FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.QueueEntry, error)

	// Claim atomically moves one due entry from pending to processing and returns
	// it as stored after the claim. It returns nil when another worker claimed it
	// first, it is no longer pending, or it is scheduled after now.
	Claim(ctx context.Context, id uuid.UUID, now time.Time) (*entity.QueueEntry, error)

	// SaveOutcome persists the entry's new status, retry fields and timestamps,
	// but only while the stored row is still the processing claim started at
	// claimedAt. Returns domainerrors.ErrQueueEntryStateConflict when the row
	// moved on (e.g. admin cancel, stale requeue).
	SaveOutcome(ctx context.Context, entry *entity.QueueEntry, claimedAt time.Time) error

	// RecoverStale returns processing entries claimed before cutoff to pending with
	// retry_count+1, or fails them when retries are exhausted.
	RecoverStale(ctx context.Context, cutoff, now time.Time) (requeued int64, failed int64, err error)

	// List returns entries matching filter, newest first, and the total match count.
	List(ctx context.Context, filter QueueFilter) ([]*entity.QueueEntry, int64, error)

	// RetryFailed resets failed entries matching filter to pending with retry_count 0.
	RetryFailed(ctx context.Context, filter QueueFilter, now time.Time) (int64, error)

	// Cancel moves pending and processing entries matching filter to cancelled.
	Cancel(ctx context.Context, filter QueueFilter, reason string, now time.Time) (int64, error)

	// CountByStatus returns the number of entries per status.
	CountByStatus(ctx context.Context) (map[entity.QueueStatus]int64, error)

	// PurgeTerminal deletes sent, failed and cancelled entries processed before cutoff.
	PurgeTerminal(ctx context.Context, cutoff time.Time) (int64, error)
}
