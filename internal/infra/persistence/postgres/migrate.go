package postgres

import (
	"context"

	"beacon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// Migrate creates or updates the notification tables on the primary.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Clauses(dbresolver.Write).AutoMigrate(model.AllModels()...); err != nil {
		return errors.Wrap(err, "failed to migrate notification tables")
	}

	return nil
}
