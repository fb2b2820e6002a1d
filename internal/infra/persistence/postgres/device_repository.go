// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertToken registers a token, or reactivates an existing (user, token) pair.
func (repo *deviceRepository) UpsertToken(ctx context.Context, device *entity.DeviceToken) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	device.IsActive = true
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"platform", "is_active", "updated_at"}),
		}).
		Create(deviceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device token")
	}

	// On conflict the stored row keeps its original id and created_at.
	var stored model.DeviceTokenModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ? AND token = ?", device.UserID, device.Token).
		First(&stored).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reload device token")
	}
	*device = *toDeviceDomain(&stored)

	return nil
}

// FindByUser retrieves all tokens for a user, including inactive ones.
func (repo *deviceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	var deviceModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device tokens by user")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindActiveByUser retrieves active tokens from the primary so a fresh
// deactivation is never missed by the fan-out.
func (repo *deviceRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	var deviceModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active device tokens by user")
	}

	return toDeviceDomains(deviceModels), nil
}

// DeactivateToken marks every registration of the token inactive.
func (repo *deviceRepository) DeactivateToken(ctx context.Context, token string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.DeviceTokenModel{}).
		Where("token = ? AND is_active = ?", token, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate device token")
	}

	return result.RowsAffected, nil
}

// DeactivateUserToken marks one user's registration inactive.
func (repo *deviceRepository) DeactivateUserToken(ctx context.Context, userID uuid.UUID, token string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.DeviceTokenModel{}).
		Where("user_id = ? AND token = ? AND is_active = ?", userID, token, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate user device token")
	}

	return result.RowsAffected, nil
}

// TouchTokens stamps last_used_at on tokens that accepted a push.
func (repo *deviceRepository) TouchTokens(ctx context.Context, userID uuid.UUID, tokens []string, now time.Time) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.DeviceTokenModel{}).
		Where("user_id = ? AND token IN ?", userID, tokens).
		Update("last_used_at", now).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to touch device tokens")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toDeviceDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:         data.ID,
		UserID:     data.UserID,
		Token:      data.Token,
		Platform:   entity.Platform(data.Platform),
		IsActive:   data.IsActive,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toDeviceDomains(models []*model.DeviceTokenModel) []*entity.DeviceToken {
	devices := make([]*entity.DeviceToken, 0, len(models))
	for _, deviceM := range models {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}

// fromDeviceDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromDeviceDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Token:      data.Token,
		Platform:   string(data.Platform),
		IsActive:   data.IsActive,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
