package impl

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo repository.SettingsRepository) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: settingsRepo,
	}
}

func (s *settingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error) {
	return loadSettings(ctx, s.settingsRepo, userID)
}

// UpdateSettings applies a partial update on top of the stored (or default) switches.
func (s *settingsService) UpdateSettings(ctx context.Context, userID uuid.UUID, update *usecase.SettingsUpdate) (*entity.NotificationSettings, error) {
	settings, err := loadSettings(ctx, s.settingsRepo, userID)
	if err != nil {
		return nil, err
	}

	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&settings.Follows, update.Follows)
	apply(&settings.FriendRequests, update.FriendRequests)
	apply(&settings.Confirmations, update.Confirmations)
	apply(&settings.System, update.System)
	apply(&settings.ChatMessages, update.ChatMessages)
	settings.UpdatedAt = time.Now().UTC()

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to save notification settings")
	}

	return settings, nil
}
