package repository

import "context"

// TransactionManager runs the multi-write steps of delivery atomically: the
// history row, token outcomes and queue transition commit together or not at all.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to the running transaction.
type RepositoryFactory interface {
	NewQueueRepository() QueueRepository
	NewHistoryRepository() HistoryRepository
	NewDeviceRepository() DeviceRepository
}
