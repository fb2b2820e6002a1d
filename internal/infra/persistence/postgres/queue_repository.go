package postgres

import (
	"context"
	"slices"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// queueRepository implements the repository.QueueRepository interface.
// Reads that feed a state change are pinned to the primary with dbresolver.Write
// so a lagging replica can never hand out an entry that was already claimed.
type queueRepository struct {
	db *gorm.DB
}

// NewQueueRepository is the constructor for queueRepository.
func NewQueueRepository(db *gorm.DB) repository.QueueRepository {
	return &queueRepository{
		db: db,
	}
}

// Create inserts a new pending entry.
func (repo *queueRepository) Create(ctx context.Context, entry *entity.QueueEntry) error {
	entryM := fromQueueDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrQueueEntryStateConflict.WrapMessage("duplicate queue entry id")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidPayload.WrapMessage("missing required queue entry field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create queue entry")
	}

	return nil
}

// FindByID retrieves one entry.
func (repo *queueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	var entryM model.NotificationQueueModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrQueueEntryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find queue entry")
	}

	return toQueueDomain(&entryM), nil
}

// FindDue lists due pending entries in service order.
func (repo *queueRepository) FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.QueueEntry, error) {
	var entryModels []*model.NotificationQueueModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("status = ? AND scheduled_for <= ?", string(entity.QueueStatusPending), now).
		Order("priority DESC").
		Order("scheduled_for ASC").
		Order("created_at ASC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to select due queue entries")
	}

	return toQueueDomains(entryModels), nil
}

// Claim is a compare-and-set on status and schedule; exactly one concurrent caller
// sees a row change. The winner gets the row as stored after the claim, so a
// selection snapshot that went stale never drives the attempt.
func (repo *queueRepository) Claim(ctx context.Context, id uuid.UUID, now time.Time) (*entity.QueueEntry, error) {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.NotificationQueueModel{}).
		Where("id = ? AND status = ? AND scheduled_for <= ?", id, string(entity.QueueStatusPending), now).
		Updates(map[string]any{
			"status":                string(entity.QueueStatusProcessing),
			"processing_started_at": now,
			"updated_at":            now,
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim queue entry")
	}
	if result.RowsAffected != 1 {
		return nil, nil
	}

	var entryM model.NotificationQueueModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to reload claimed queue entry")
	}

	return toQueueDomain(&entryM), nil
}

// SaveOutcome writes the post-attempt state of a processing entry. The row must
// still carry the claim's start time; a stale requeue or a newer claim changes it.
func (repo *queueRepository) SaveOutcome(ctx context.Context, entry *entity.QueueEntry, claimedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.NotificationQueueModel{}).
		Where("id = ? AND status = ? AND processing_started_at = ?", entry.ID, string(entity.QueueStatusProcessing), claimedAt).
		Updates(map[string]any{
			"status":                string(entry.Status),
			"retry_count":           entry.RetryCount,
			"scheduled_for":         entry.ScheduledFor,
			"error_message":         entry.ErrorMessage,
			"processing_started_at": entry.ProcessingStartedAt,
			"processed_at":          entry.ProcessedAt,
			"updated_at":            entry.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save queue entry outcome")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrQueueEntryStateConflict
	}

	return nil
}

// RecoverStale fails exhausted stale entries first, then requeues the rest.
func (repo *queueRepository) RecoverStale(ctx context.Context, cutoff, now time.Time) (requeued int64, failed int64, err error) {
	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		failedRes := tx.Model(&model.NotificationQueueModel{}).
			Where("status = ? AND processing_started_at < ? AND retry_count >= max_retries",
				string(entity.QueueStatusProcessing), cutoff).
			Updates(map[string]any{
				"status":        string(entity.QueueStatusFailed),
				"error_message": entity.ReasonProcessingStale,
				"processed_at":  now,
				"updated_at":    now,
			})
		if failedRes.Error != nil {
			return errors.Wrap(failedRes.Error, "fail exhausted stale entries")
		}
		failed = failedRes.RowsAffected

		requeueRes := tx.Model(&model.NotificationQueueModel{}).
			Where("status = ? AND processing_started_at < ?", string(entity.QueueStatusProcessing), cutoff).
			Updates(map[string]any{
				"status":                string(entity.QueueStatusPending),
				"retry_count":           gorm.Expr("retry_count + 1"),
				"scheduled_for":         now,
				"processing_started_at": nil,
				"error_message":         entity.ReasonProcessingStale,
				"updated_at":            now,
			})
		if requeueRes.Error != nil {
			return errors.Wrap(requeueRes.Error, "requeue stale entries")
		}
		requeued = requeueRes.RowsAffected

		return nil
	})
	if err != nil {
		return 0, 0, domainerrors.NewDatabaseExecuteError(err, "failed to recover stale queue entries")
	}

	return requeued, failed, nil
}

// List returns a page of entries for the admin surface, served from replicas.
func (repo *queueRepository) List(ctx context.Context, filter repository.QueueFilter) ([]*entity.QueueEntry, int64, error) {
	var total int64
	if err := applyQueueFilter(repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.NotificationQueueModel{}), filter).
		Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count queue entries")
	}

	query := applyQueueFilter(repo.db.WithContext(ctx).Clauses(dbresolver.Read), filter).
		Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var entryModels []*model.NotificationQueueModel
	if err := query.Find(&entryModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list queue entries")
	}

	return toQueueDomains(entryModels), total, nil
}

// RetryFailed gives failed entries a fresh retry budget.
func (repo *queueRepository) RetryFailed(ctx context.Context, filter repository.QueueFilter, now time.Time) (int64, error) {
	statuses, ok := restrictStatuses(filter.Statuses, entity.QueueStatusFailed)
	if !ok {
		return 0, nil
	}
	filter.Statuses = statuses

	result := applyQueueFilter(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Model(&model.NotificationQueueModel{}), filter).
		Updates(map[string]any{
			"status":                string(entity.QueueStatusPending),
			"retry_count":           0,
			"scheduled_for":         now,
			"error_message":         "",
			"processing_started_at": nil,
			"processed_at":          nil,
			"updated_at":            now,
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to retry failed queue entries")
	}

	return result.RowsAffected, nil
}

// Cancel stops pending and processing entries.
func (repo *queueRepository) Cancel(ctx context.Context, filter repository.QueueFilter, reason string, now time.Time) (int64, error) {
	statuses, ok := restrictStatuses(filter.Statuses, entity.QueueStatusPending, entity.QueueStatusProcessing)
	if !ok {
		return 0, nil
	}
	filter.Statuses = statuses

	result := applyQueueFilter(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Model(&model.NotificationQueueModel{}), filter).
		Updates(map[string]any{
			"status":        string(entity.QueueStatusCancelled),
			"error_message": reason,
			"processed_at":  now,
			"updated_at":    now,
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to cancel queue entries")
	}

	return result.RowsAffected, nil
}

// CountByStatus aggregates the queue by status.
func (repo *queueRepository) CountByStatus(ctx context.Context) (map[entity.QueueStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.NotificationQueueModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count queue entries by status")
	}

	counts := make(map[entity.QueueStatus]int64, len(entity.AllQueueStatuses))
	for _, status := range entity.AllQueueStatuses {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[entity.QueueStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// PurgeTerminal removes finished entries past retention.
func (repo *queueRepository) PurgeTerminal(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("status IN ? AND processed_at < ?", []string{
			string(entity.QueueStatusSent),
			string(entity.QueueStatusFailed),
			string(entity.QueueStatusCancelled),
		}, cutoff).
		Delete(&model.NotificationQueueModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge queue entries")
	}

	return result.RowsAffected, nil
}

func applyQueueFilter(query *gorm.DB, filter repository.QueueFilter) *gorm.DB {
	if len(filter.IDs) > 0 {
		query = query.Where("id IN ?", filter.IDs)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Before != nil {
		query = query.Where("created_at < ?", *filter.Before)
	}

	return query
}

// restrictStatuses intersects the requested statuses with the allowed ones.
// An empty request means all allowed. ok is false when nothing remains.
func restrictStatuses(requested []entity.QueueStatus, allowed ...entity.QueueStatus) ([]entity.QueueStatus, bool) {
	if len(requested) == 0 {
		return allowed, true
	}

	result := make([]entity.QueueStatus, 0, len(allowed))
	for _, s := range requested {
		if slices.Contains(allowed, s) && !slices.Contains(result, s) {
			result = append(result, s)
		}
	}

	return result, len(result) > 0
}

// --- Mapper Functions ---

func toQueueDomain(data *model.NotificationQueueModel) *entity.QueueEntry {
	if data == nil {
		return nil
	}

	return &entity.QueueEntry{
		ID:     data.ID,
		UserID: data.UserID,
		Payload: entity.Payload{
			Category: data.Category,
			Title:    data.Title,
			Body:     data.Body,
			Data:     map[string]any(data.Data),
		},
		Priority:            entity.Priority(data.Priority),
		ScheduledFor:        data.ScheduledFor,
		Status:              entity.QueueStatus(data.Status),
		MaxRetries:          data.MaxRetries,
		RetryCount:          data.RetryCount,
		ErrorMessage:        data.ErrorMessage,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
		ProcessingStartedAt: data.ProcessingStartedAt,
		ProcessedAt:         data.ProcessedAt,
	}
}

func toQueueDomains(models []*model.NotificationQueueModel) []*entity.QueueEntry {
	entries := make([]*entity.QueueEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, toQueueDomain(m))
	}

	return entries
}

func fromQueueDomain(data *entity.QueueEntry) *model.NotificationQueueModel {
	if data == nil {
		return nil
	}

	var payloadData datatypes.JSONMap
	if len(data.Payload.Data) > 0 {
		payloadData = datatypes.JSONMap(data.Payload.Data)
	}

	return &model.NotificationQueueModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Category:            data.Payload.Category,
		Title:               data.Payload.Title,
		Body:                data.Payload.Body,
		Data:                payloadData,
		Priority:            int(data.Priority),
		ScheduledFor:        data.ScheduledFor,
		Status:              string(data.Status),
		MaxRetries:          data.MaxRetries,
		RetryCount:          data.RetryCount,
		ErrorMessage:        data.ErrorMessage,
		ProcessingStartedAt: data.ProcessingStartedAt,
		ProcessedAt:         data.ProcessedAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
