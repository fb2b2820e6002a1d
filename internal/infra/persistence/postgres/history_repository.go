package postgres

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{
		db: db,
	}
}

func (repo *historyRepository) Create(ctx context.Context, history *entity.NotificationHistory) error {
	if history.ID == uuid.Nil {
		history.ID = uuid.New()
	}
	historyM := fromHistoryDomain(history)

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("duplicate history id")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification history")
	}

	history.CreatedAt = historyM.CreatedAt

	return nil
}

func (repo *historyRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationHistory, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.NotificationHistoryModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count notification history")
	}

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var historyModels []*model.NotificationHistoryModel
	if err := query.Find(&historyModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list notification history")
	}

	return toHistoryDomains(historyModels), total, nil
}

func (repo *historyRepository) FindByQueueEntry(ctx context.Context, entryID uuid.UUID) ([]*entity.NotificationHistory, error) {
	var historyModels []*model.NotificationHistoryModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("queue_entry_id = ?", entryID).
		Order("attempt ASC").
		Find(&historyModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list history for queue entry")
	}

	return toHistoryDomains(historyModels), nil
}

func (repo *historyRepository) MarkDelivered(ctx context.Context, id, userID uuid.UUID, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.NotificationHistoryModel{}).
		Where("id = ? AND user_id = ? AND is_delivered = ?", id, userID, false).
		Updates(map[string]any{
			"is_delivered": true,
			"delivered_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark history delivered")
	}

	if result.RowsAffected == 0 {
		return repo.ensureOwned(ctx, id, userID)
	}

	return nil
}

func (repo *historyRepository) MarkRead(ctx context.Context, id, userID uuid.UUID, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.NotificationHistoryModel{}).
		Where("id = ? AND user_id = ? AND is_read = ?", id, userID, false).
		Updates(map[string]any{
			"is_read":      true,
			"read_at":      now,
			"is_delivered": true,
			"delivered_at": gorm.Expr("COALESCE(delivered_at, ?)", now),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark history read")
	}

	if result.RowsAffected == 0 {
		return repo.ensureOwned(ctx, id, userID)
	}

	return nil
}

// ensureOwned turns a no-op acknowledgement into ErrHistoryNotFound unless the
// row exists for the user and was already acknowledged.
func (repo *historyRepository) ensureOwned(ctx context.Context, id, userID uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.NotificationHistoryModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to look up notification history")
	}

	if count == 0 {
		return domainerrors.ErrHistoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toHistoryDomain(data *model.NotificationHistoryModel) *entity.NotificationHistory {
	if data == nil {
		return nil
	}

	return &entity.NotificationHistory{
		ID:           data.ID,
		UserID:       data.UserID,
		QueueEntryID: data.QueueEntryID,
		Category:     data.Category,
		Title:        data.Title,
		Body:         data.Body,
		Data:         map[string]any(data.Data),
		Attempt:      data.Attempt,
		IsSent:       data.IsSent,
		IsDelivered:  data.IsDelivered,
		IsRead:       data.IsRead,
		SentAt:       data.SentAt,
		DeliveredAt:  data.DeliveredAt,
		ReadAt:       data.ReadAt,
		SuccessCount: data.SuccessCount,
		FailureCount: data.FailureCount,
		ErrorMessage: data.ErrorMessage,
		CreatedAt:    data.CreatedAt,
	}
}

func toHistoryDomains(models []*model.NotificationHistoryModel) []*entity.NotificationHistory {
	histories := make([]*entity.NotificationHistory, 0, len(models))
	for _, m := range models {
		histories = append(histories, toHistoryDomain(m))
	}

	return histories
}

func fromHistoryDomain(data *entity.NotificationHistory) *model.NotificationHistoryModel {
	if data == nil {
		return nil
	}

	var payloadData datatypes.JSONMap
	if len(data.Data) > 0 {
		payloadData = datatypes.JSONMap(data.Data)
	}

	return &model.NotificationHistoryModel{
		ID:           data.ID,
		UserID:       data.UserID,
		QueueEntryID: data.QueueEntryID,
		Category:     data.Category,
		Title:        data.Title,
		Body:         data.Body,
		Data:         payloadData,
		Attempt:      data.Attempt,
		IsSent:       data.IsSent,
		IsDelivered:  data.IsDelivered,
		IsRead:       data.IsRead,
		SentAt:       data.SentAt,
		DeliveredAt:  data.DeliveredAt,
		ReadAt:       data.ReadAt,
		SuccessCount: data.SuccessCount,
		FailureCount: data.FailureCount,
		ErrorMessage: data.ErrorMessage,
		CreatedAt:    data.CreatedAt,
	}
}
