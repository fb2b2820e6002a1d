package repository

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// SettingsRepository stores per-user notification toggles.
type SettingsRepository interface {
	// FindByUser returns domainerrors.ErrNotFound when the user never saved settings.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error)

	// Upsert writes the full settings row.
	Upsert(ctx context.Context, settings *entity.NotificationSettings) error
}
