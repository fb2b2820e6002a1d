package postgres

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestDB opens a private in-memory database with the notification schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func createEntry(t *testing.T, repo repository.QueueRepository, userID uuid.UUID, priority entity.Priority, scheduledFor time.Time) *entity.QueueEntry {
	t.Helper()

	entry := entity.NewQueueEntry(userID, entity.Payload{
		Category: entity.CategoryFollow,
		Title:    "New follower",
		Body:     "alice followed you",
		Data:     map[string]any{"follower_id": "u-1"},
	}, priority, scheduledFor, 3, baseTime)
	require.NoError(t, repo.Create(context.Background(), entry))

	return entry
}

func TestQueueRepository_FindDueOrdersByPriorityThenSchedule(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository(newTestDB(t))
	userID := uuid.New()

	low := createEntry(t, repo, userID, entity.PriorityLow, baseTime.Add(-3*time.Minute))
	urgent := createEntry(t, repo, userID, entity.PriorityUrgent, baseTime.Add(-time.Minute))
	normalLate := createEntry(t, repo, userID, entity.PriorityNormal, baseTime.Add(-time.Minute))
	normalEarly := createEntry(t, repo, userID, entity.PriorityNormal, baseTime.Add(-2*time.Minute))
	createEntry(t, repo, userID, entity.PriorityUrgent, baseTime.Add(time.Hour))

	due, err := repo.FindDue(ctx, baseTime, 10)
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(due))
	for _, e := range due {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []uuid.UUID{urgent.ID, normalEarly.ID, normalLate.ID, low.ID}, ids)
	assert.Equal(t, entity.PriorityLow, due[3].Priority)
	assert.Equal(t, "u-1", due[0].Payload.Data["follower_id"])

	limited, err := repo.FindDue(ctx, baseTime, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestQueueRepository_ClaimIsExclusive(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository(newTestDB(t))
	entry := createEntry(t, repo, uuid.New(), entity.PriorityNormal, baseTime)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := repo.Claim(ctx, entry.ID, baseTime)
			assert.NoError(t, err)
			if claimed != nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())

	stored, err := repo.FindByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusProcessing, stored.Status)
	require.NotNil(t, stored.ProcessingStartedAt)
	assert.True(t, stored.ProcessingStartedAt.Equal(baseTime))
}

func TestQueueRepository_SaveOutcomeRequiresProcessing(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository(newTestDB(t))
	entry := createEntry(t, repo, uuid.New(), entity.PriorityNormal, baseTime)

	claimed, err := repo.Claim(ctx, entry.ID, baseTime)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, entity.QueueStatusProcessing, claimed.Status)
	claimedAt := *claimed.ProcessingStartedAt

	_, err = claimed.RecordFailure(baseTime, entity.ReasonNoActiveTokens)
	require.NoError(t, err)
	require.NoError(t, repo.SaveOutcome(ctx, claimed, claimedAt))

	stored, err := repo.FindByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusPending, stored.Status)
	assert.Equal(t, 1, stored.RetryCount)
	assert.Equal(t, entity.ReasonNoActiveTokens, stored.ErrorMessage)
	assert.True(t, stored.ScheduledFor.Equal(baseTime.Add(2*time.Minute)))
	assert.Nil(t, stored.ProcessingStartedAt)

	// A second write against a row that is no longer processing must not land.
	err = repo.SaveOutcome(ctx, claimed, claimedAt)
	assert.ErrorIs(t, err, domainerrors.ErrQueueEntryStateConflict)
}

func TestQueueRepository_ClaimRefusesFutureSchedule(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository(newTestDB(t))
	entry := createEntry(t, repo, uuid.New(), entity.PriorityUrgent, baseTime.Add(2*time.Minute))

	claimed, err := repo.Claim(ctx, entry.ID, baseTime)
	require.NoError(t, err)
	assert.Nil(t, claimed)

	stored, err := repo.FindByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusPending, stored.Status)

	claimed, err = repo.Claim(ctx, entry.ID, baseTime.Add(2*time.Minute))
	require.NoError(t, err)
	require.NotNil(t, claimed)
}

func TestQueueRepository_SaveOutcomeFencedByClaimTime(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository(newTestDB(t))
	entry := createEntry(t, repo, uuid.New(), entity.PriorityNormal, baseTime.Add(-time.Hour))

	first, err := repo.Claim(ctx, entry.ID, baseTime.Add(-time.Hour))
	require.NoError(t, err)
	require.NotNil(t, first)
	firstClaim := *first.ProcessingStartedAt

	// The first worker stalls; the sweep requeues its claim and a second worker takes it.
	requeued, _, err := repo.RecoverStale(ctx, baseTime.Add(-10*time.Minute), baseTime)
	require.NoError(t, err)
	require.Equal(t, int64(1), requeued)
	second, err := repo.Claim(ctx, entry.ID, baseTime)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 1, second.RetryCount)

	require.NoError(t, first.MarkSent(baseTime))
	err = repo.SaveOutcome(ctx, first, firstClaim)
	assert.ErrorIs(t, err, domainerrors.ErrQueueEntryStateConflict)

	stored, err := repo.FindByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusProcessing, stored.Status)
	assert.Equal(t, 1, stored.RetryCount)

	require.NoError(t, second.MarkSent(baseTime.Add(time.Second)))
	require.NoError(t, repo.SaveOutcome(ctx, second, *stored.ProcessingStartedAt))
}

func TestQueueRepository_RecoverStale(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewQueueRepository(db)
	userID := uuid.New()

	stale := createEntry(t, repo, userID, entity.PriorityNormal, baseTime.Add(-2*time.Hour))
	fresh := createEntry(t, repo, userID, entity.PriorityNormal, baseTime)
	exhausted := createEntry(t, repo, userID, entity.PriorityNormal, baseTime.Add(-2*time.Hour))

	for _, e := range []*entity.QueueEntry{stale, exhausted} {
		claimed, err := repo.Claim(ctx, e.ID, baseTime.Add(-time.Hour))
		require.NoError(t, err)
		require.NotNil(t, claimed)
	}
	claimed, err := repo.Claim(ctx, fresh.ID, baseTime)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.NoError(t, db.Exec("UPDATE notification_queue SET retry_count = max_retries WHERE id = ?", exhausted.ID).Error)

	requeued, failed, err := repo.RecoverStale(ctx, baseTime.Add(-10*time.Minute), baseTime)
	require.NoError(t, err)
	assert.Equal(t, int64(1), requeued)
	assert.Equal(t, int64(1), failed)

	got, err := repo.FindByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusPending, got.Status)
	assert.Equal(t, 1, got.RetryCount)
	assert.Nil(t, got.ProcessingStartedAt)
	assert.Equal(t, entity.ReasonProcessingStale, got.ErrorMessage)

	got, err = repo.FindByID(ctx, exhausted.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusFailed, got.Status)
	assert.Equal(t, 3, got.RetryCount)

	got, err = repo.FindByID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusProcessing, got.Status)
}

func TestQueueRepository_AdminOperations(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewQueueRepository(db)
	alice, bob := uuid.New(), uuid.New()

	pending := createEntry(t, repo, alice, entity.PriorityNormal, baseTime)
	failedEntry := createEntry(t, repo, alice, entity.PriorityHigh, baseTime)
	bobs := createEntry(t, repo, bob, entity.PriorityLow, baseTime)
	require.NoError(t, db.Exec("UPDATE notification_queue SET status = ?, retry_count = 3, processed_at = ?, error_message = ? WHERE id = ?",
		"failed", baseTime, entity.ReasonNoActiveTokens, failedEntry.ID).Error)

	entries, total, err := repo.List(ctx, repository.QueueFilter{UserID: &alice})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, entries, 2)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[entity.QueueStatusPending])
	assert.Equal(t, int64(1), counts[entity.QueueStatusFailed])
	assert.Equal(t, int64(0), counts[entity.QueueStatusSent])

	// retrying pending entries is a no-op
	n, err := repo.RetryFailed(ctx, repository.QueueFilter{Statuses: []entity.QueueStatus{entity.QueueStatusPending}}, baseTime)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.RetryFailed(ctx, repository.QueueFilter{UserID: &alice}, baseTime.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.FindByID(ctx, failedEntry.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusPending, got.Status)
	assert.Zero(t, got.RetryCount)
	assert.Nil(t, got.ProcessedAt)
	assert.Empty(t, got.ErrorMessage)

	n, err = repo.Cancel(ctx, repository.QueueFilter{UserID: &bob}, entity.ReasonAdminCancelled, baseTime)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err = repo.FindByID(ctx, bobs.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusCancelled, got.Status)
	assert.Equal(t, entity.ReasonAdminCancelled, got.ErrorMessage)

	// cancelled rows cannot be cancelled again
	n, err = repo.Cancel(ctx, repository.QueueFilter{UserID: &bob}, entity.ReasonAdminCancelled, baseTime)
	require.NoError(t, err)
	assert.Zero(t, n)

	purged, err := repo.PurgeTerminal(ctx, baseTime.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, err = repo.FindByID(ctx, bobs.ID)
	assert.ErrorIs(t, err, domainerrors.ErrQueueEntryNotFound)
	_, err = repo.FindByID(ctx, pending.ID)
	assert.NoError(t, err)
}

func TestDeviceRepository_UpsertAndDeactivate(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(newTestDB(t))
	userID := uuid.New()

	first := &entity.DeviceToken{UserID: userID, Token: "token-aaaaaaaaaaaa", Platform: entity.PlatformIOS, CreatedAt: baseTime, UpdatedAt: baseTime}
	require.NoError(t, repo.UpsertToken(ctx, first))
	require.NoError(t, repo.UpsertToken(ctx, &entity.DeviceToken{UserID: userID, Token: "token-bbbbbbbbbbbb", Platform: entity.PlatformAndroid, CreatedAt: baseTime, UpdatedAt: baseTime}))

	n, err := repo.DeactivateToken(ctx, "token-aaaaaaaaaaaa")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	active, err := repo.FindActiveByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "token-bbbbbbbbbbbb", active[0].Token)

	// re-registering reactivates the same row
	again := &entity.DeviceToken{UserID: userID, Token: "token-aaaaaaaaaaaa", Platform: entity.PlatformWeb, CreatedAt: baseTime, UpdatedAt: baseTime.Add(time.Minute)}
	require.NoError(t, repo.UpsertToken(ctx, again))
	assert.Equal(t, first.ID, again.ID)
	assert.True(t, again.IsActive)
	assert.Equal(t, entity.PlatformWeb, again.Platform)

	all, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.TouchTokens(ctx, userID, []string{"token-bbbbbbbbbbbb"}, baseTime))
	n, err = repo.DeactivateUserToken(ctx, uuid.New(), "token-bbbbbbbbbbbb")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHistoryRepository_Acknowledgements(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(newTestDB(t))
	userID := uuid.New()
	entryID := uuid.New()

	for attempt := 1; attempt <= 2; attempt++ {
		require.NoError(t, repo.Create(ctx, &entity.NotificationHistory{
			UserID:       userID,
			QueueEntryID: &entryID,
			Category:     entity.CategoryFollow,
			Title:        "t",
			Body:         "b",
			Attempt:      attempt,
			IsSent:       attempt == 2,
			FailureCount: 2 - attempt,
			SuccessCount: attempt - 1,
			CreatedAt:    baseTime.Add(time.Duration(attempt) * time.Minute),
		}))
	}

	attempts, err := repo.FindByQueueEntry(ctx, entryID)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, 1, attempts[0].Attempt)
	assert.True(t, attempts[1].IsSent)

	page, total, err := repo.FindByUser(ctx, userID, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 1)
	assert.Equal(t, 2, page[0].Attempt)

	require.NoError(t, repo.MarkRead(ctx, page[0].ID, userID, baseTime))
	require.NoError(t, repo.MarkRead(ctx, page[0].ID, userID, baseTime.Add(time.Hour)))

	attempts, err = repo.FindByQueueEntry(ctx, entryID)
	require.NoError(t, err)
	assert.True(t, attempts[1].IsRead)
	assert.True(t, attempts[1].IsDelivered)
	require.NotNil(t, attempts[1].ReadAt)
	assert.True(t, attempts[1].ReadAt.Equal(baseTime))

	err = repo.MarkDelivered(ctx, page[0].ID, uuid.New(), baseTime)
	assert.ErrorIs(t, err, domainerrors.ErrHistoryNotFound)
}

func TestSettingsRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(newTestDB(t))
	userID := uuid.New()

	_, err := repo.FindByUser(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	settings := entity.DefaultNotificationSettings(userID)
	settings.Follows = false
	require.NoError(t, repo.Upsert(ctx, settings))

	got, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.False(t, got.Follows)
	assert.True(t, got.FriendRequests)

	got.Follows = true
	got.ChatMessages = false
	require.NoError(t, repo.Upsert(ctx, got))

	got, err = repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.True(t, got.Follows)
	assert.False(t, got.ChatMessages)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	userID := uuid.New()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		require.NoError(t, factory.NewHistoryRepository().Create(ctx, &entity.NotificationHistory{
			UserID: userID, Category: "system", Title: "t", Body: "b", Attempt: 1, CreatedAt: baseTime,
		}))

		return domainerrors.ErrQueueEntryStateConflict
	})
	require.ErrorIs(t, err, domainerrors.ErrQueueEntryStateConflict)

	_, total, err := NewHistoryRepository(db).FindByUser(ctx, userID, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}
