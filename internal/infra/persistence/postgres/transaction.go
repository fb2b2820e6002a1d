// Package postgres implements the domain repositories with GORM on PostgreSQL.
package postgres

import (
	"context"

	"beacon/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories that all share one transaction handle.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewQueueRepository() repository.QueueRepository {
	return NewQueueRepository(f.tx)
}

func (f txRepositories) NewHistoryRepository() repository.HistoryRepository {
	return NewHistoryRepository(f.tx)
}

func (f txRepositories) NewDeviceRepository() repository.DeviceRepository {
	return NewDeviceRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction on the primary. An error or panic from fn
// rolls everything back; domain errors are returned unwrapped so callers can match them.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Clauses(dbresolver.Write).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if err == nil || (fnErr != nil && errors.Is(err, fnErr)) {
		return err
	}

	return errors.Wrap(err, "transaction failed")
}
