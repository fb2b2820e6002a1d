package usecase

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// EntryQuery is the operator-facing queue filter.
type EntryQuery struct {
	IDs      []uuid.UUID `json:"ids,omitempty" query:"-"`
	Statuses []string    `json:"statuses,omitempty" query:"status"`
	UserID   *uuid.UUID  `json:"user_id,omitempty" query:"user_id"`
	Category string      `json:"category,omitempty" query:"category"`
	Before   *time.Time  `json:"before,omitempty" query:"before"`
	Limit    int         `json:"limit,omitempty" query:"limit" validate:"omitempty,min=1,max=500"`
	Offset   int         `json:"offset,omitempty" query:"offset" validate:"omitempty,min=0"`
}

// EntryPage is one page of an admin listing.
type EntryPage struct {
	Entries []*entity.QueueEntry `json:"entries"`
	Total   int64                `json:"total"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}

// EntryDetail is a queue entry together with its delivery attempts.
type EntryDetail struct {
	Entry    *entity.QueueEntry            `json:"entry"`
	Attempts []*entity.NotificationHistory `json:"attempts"`
}

// AdminUsecase is the operator surface over the queue.
type AdminUsecase interface {
	ListEntries(ctx context.Context, query *EntryQuery) (*EntryPage, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*EntryDetail, error)

	// RetryFailed moves failed entries back to pending with a fresh retry budget.
	RetryFailed(ctx context.Context, query *EntryQuery) (int64, error)

	// Cancel stops pending and processing entries. An empty query is rejected.
	Cancel(ctx context.Context, query *EntryQuery) (int64, error)

	// Stats counts entries per status.
	Stats(ctx context.Context) (map[entity.QueueStatus]int64, error)

	// Purge deletes terminal entries finished before now-olderThan.
	// A non-positive olderThan uses the configured retention.
	Purge(ctx context.Context, olderThan time.Duration) (int64, error)
}
