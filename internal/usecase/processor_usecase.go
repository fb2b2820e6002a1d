package usecase

import "context"

// ProcessorUsecase drains the queue.
type ProcessorUsecase interface {
	// ProcessBatch selects one batch of due entries and delivers them.
	// It returns how many entries this call claimed.
	ProcessBatch(ctx context.Context) (int, error)

	// RecoverStale returns abandoned processing entries to pending.
	RecoverStale(ctx context.Context) (requeued int64, failed int64, err error)
}
