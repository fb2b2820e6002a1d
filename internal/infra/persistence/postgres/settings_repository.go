package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// FindByUser reads from the primary: a category switched off must stop the
// very next processing attempt.
func (repo *settingsRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error) {
	var settingsM model.NotificationSettingsModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find notification settings")
	}

	return toSettingsDomain(&settingsM), nil
}

func (repo *settingsRepository) Upsert(ctx context.Context, settings *entity.NotificationSettings) error {
	settingsM := fromSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(settingsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save notification settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

func toSettingsDomain(data *model.NotificationSettingsModel) *entity.NotificationSettings {
	return &entity.NotificationSettings{
		UserID:         data.UserID,
		Follows:        data.Follows,
		FriendRequests: data.FriendRequests,
		Confirmations:  data.Confirmations,
		System:         data.System,
		ChatMessages:   data.ChatMessages,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromSettingsDomain(data *entity.NotificationSettings) *model.NotificationSettingsModel {
	return &model.NotificationSettingsModel{
		UserID:         data.UserID,
		Follows:        data.Follows,
		FriendRequests: data.FriendRequests,
		Confirmations:  data.Confirmations,
		System:         data.System,
		ChatMessages:   data.ChatMessages,
		UpdatedAt:      data.UpdatedAt,
	}
}
