package impl

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/infra/metrics"
	mockRepo "beacon/internal/mocks/repository"
	mockService "beacon/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Queue: &config.QueueConfig{
			BatchSize:      10,
			Workers:        1,
			StaleAfter:     10 * time.Minute,
			GatewayTimeout: time.Second,
			RateLimit:      1000,
			RateBurst:      1000,
			Retention:      24 * time.Hour,
		},
	}
}

// processorFixtures holds all test dependencies for processor tests.
type processorFixtures struct {
	service      *processorService
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	queueRepo    *mockRepo.MockQueueRepository
	historyRepo  *mockRepo.MockHistoryRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	settingsRepo *mockRepo.MockSettingsRepository
	gateway      *mockService.MockPushGateway
}

func createTestProcessorService(t *testing.T) processorFixtures {
	fx := processorFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		queueRepo:    mockRepo.NewMockQueueRepository(t),
		historyRepo:  mockRepo.NewMockHistoryRepository(t),
		deviceRepo:   mockRepo.NewMockDeviceRepository(t),
		settingsRepo: mockRepo.NewMockSettingsRepository(t),
		gateway:      mockService.NewMockPushGateway(t),
	}

	svc := NewProcessorService(ProcessorServiceParams{
		TxManager:    fx.txManager,
		QueueRepo:    fx.queueRepo,
		DeviceRepo:   fx.deviceRepo,
		SettingsRepo: fx.settingsRepo,
		Gateway:      fx.gateway,
		Limiter:      rate.NewLimiter(rate.Inf, 1),
		Metrics:      metrics.NewNoopMetrics(),
		Config:       testConfig(),
		Logger:       slog.Default(),
	})
	fx.service = svc.(*processorService)
	fx.service.now = func() time.Time { return testNow }

	return fx
}

// expectTransaction runs the callback against the same repository mocks.
func (fx processorFixtures) expectTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewQueueRepository().Return(fx.queueRepo).Maybe()
	fx.factory.EXPECT().NewHistoryRepository().Return(fx.historyRepo).Maybe()
	fx.factory.EXPECT().NewDeviceRepository().Return(fx.deviceRepo).Maybe()
}

func (fx processorFixtures) expectClaim(entry *entity.QueueEntry) {
	fx.queueRepo.EXPECT().FindDue(mock.Anything, testNow, 10).Return([]*entity.QueueEntry{entry}, nil)
	fx.queueRepo.EXPECT().
		Claim(mock.Anything, entry.ID, testNow).
		RunAndReturn(func(context.Context, uuid.UUID, time.Time) (*entity.QueueEntry, error) {
			return entry, entry.Claim(testNow)
		})
}

func (fx processorFixtures) expectDefaultSettings(userID uuid.UUID) {
	fx.settingsRepo.EXPECT().FindByUser(mock.Anything, userID).Return(nil, domainerrors.ErrNotFound)
}

func (fx processorFixtures) expectTokens(userID uuid.UUID, tokens ...string) {
	devices := make([]*entity.DeviceToken, 0, len(tokens))
	for _, token := range tokens {
		devices = append(devices, &entity.DeviceToken{ID: uuid.New(), UserID: userID, Token: token, IsActive: true})
	}
	fx.deviceRepo.EXPECT().FindActiveByUser(mock.Anything, userID).Return(devices, nil)
}

func newDueEntry(userID uuid.UUID, priority entity.Priority, maxRetries int) *entity.QueueEntry {
	return entity.NewQueueEntry(userID, entity.Payload{
		Category: entity.CategoryFollow,
		Title:    "新的追蹤者",
		Body:     "alice 開始追蹤你",
		Data:     map[string]any{"actor_id": "u-1"},
	}, priority, testNow.Add(-time.Minute), maxRetries, testNow.Add(-time.Hour))
}

func withStatus(status entity.QueueStatus) any {
	return mock.MatchedBy(func(e *entity.QueueEntry) bool { return e.Status == status })
}

func TestProcessorService_ProcessBatch_PartialSuccessMarksSent(t *testing.T) {
	fx := createTestProcessorService(t)
	userID := uuid.New()
	entry := newDueEntry(userID, entity.PriorityNormal, 3)

	fx.expectClaim(entry)
	fx.expectDefaultSettings(userID)
	fx.expectTokens(userID, "tok-a", "tok-b", "tok-c")
	fx.gateway.EXPECT().
		Send(mock.Anything, service.PushPayload{
			Title: "新的追蹤者",
			Body:  "alice 開始追蹤你",
			Data:  map[string]string{"actor_id": "u-1"},
		}, []string{"tok-a", "tok-b", "tok-c"}).
		Return([]service.TokenResult{
			{Token: "tok-a", Success: true},
			{Token: "tok-b", ErrorCode: service.TokenErrorUnregistered},
			{Token: "tok-c", ErrorCode: service.TokenErrorUnavailable},
		}, nil)

	fx.expectTransaction()
	fx.historyRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(h *entity.NotificationHistory) bool {
			return h.IsSent && h.SuccessCount == 1 && h.FailureCount == 2 &&
				h.Attempt == 1 && *h.QueueEntryID == entry.ID && h.SentAt != nil
		})).
		Return(nil)
	fx.deviceRepo.EXPECT().DeactivateUserToken(mock.Anything, userID, "tok-b").Return(1, nil)
	fx.deviceRepo.EXPECT().TouchTokens(mock.Anything, userID, []string{"tok-a"}, testNow).Return(nil)
	fx.queueRepo.EXPECT().SaveOutcome(mock.Anything, withStatus(entity.QueueStatusSent), testNow).Return(nil)

	claimed, err := fx.service.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, claimed)
	assert.Equal(t, entity.QueueStatusSent, entry.Status)
	assert.NotNil(t, entry.ProcessedAt)
}

func TestProcessorService_ProcessBatch_AllTokensFailedSchedulesRetry(t *testing.T) {
	fx := createTestProcessorService(t)
	userID := uuid.New()
	entry := newDueEntry(userID, entity.PriorityNormal, 3)

	fx.expectClaim(entry)
	fx.expectDefaultSettings(userID)
	fx.expectTokens(userID, "tok-a", "tok-b")
	fx.gateway.EXPECT().
		Send(mock.Anything, mock.Anything, []string{"tok-a", "tok-b"}).
		Return([]service.TokenResult{
			{Token: "tok-a", ErrorCode: service.TokenErrorUnavailable},
			{Token: "tok-b", ErrorCode: service.TokenErrorInternal},
		}, nil)

	fx.expectTransaction()
	fx.historyRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(h *entity.NotificationHistory) bool {
			return !h.IsSent && h.FailureCount == 2 && h.ErrorMessage == "all tokens failed: internal, unavailable"
		})).
		Return(nil)
	fx.deviceRepo.EXPECT().TouchTokens(mock.Anything, userID, []string(nil), testNow).Return(nil)
	fx.queueRepo.EXPECT().SaveOutcome(mock.Anything, withStatus(entity.QueueStatusPending), testNow).Return(nil)

	_, err := fx.service.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, entry.RetryCount)
	assert.Equal(t, testNow.Add(2*time.Minute), entry.ScheduledFor)
	assert.Nil(t, entry.ProcessingStartedAt)
}

func TestProcessorService_ProcessBatch_ExhaustedRetriesFail(t *testing.T) {
	fx := createTestProcessorService(t)
	userID := uuid.New()
	entry := newDueEntry(userID, entity.PriorityNormal, 3)
	entry.RetryCount = 3

	fx.expectClaim(entry)
	fx.expectDefaultSettings(userID)
	fx.expectTokens(userID, "tok-a")
	fx.gateway.EXPECT().
		Send(mock.Anything, mock.Anything, []string{"tok-a"}).
		Return([]service.TokenResult{{Token: "tok-a", ErrorCode: service.TokenErrorUnavailable}}, nil)

	fx.expectTransaction()
	fx.historyRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(h *entity.NotificationHistory) bool { return h.Attempt == 4 })).
		Return(nil)
	fx.deviceRepo.EXPECT().TouchTokens(mock.Anything, userID, []string(nil), testNow).Return(nil)
	fx.queueRepo.EXPECT().SaveOutcome(mock.Anything, withStatus(entity.QueueStatusFailed), testNow).Return(nil)

	_, err := fx.service.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, entry.RetryCount)
	assert.NotNil(t, entry.ProcessedAt)
}

func TestProcessorService_ProcessBatch_NoActiveTokensIsRetryable(t *testing.T) {
	fx := createTestProcessorService(t)
	userID := uuid.New()
	entry := newDueEntry(userID, entity.PriorityHigh, 3)

	fx.expectClaim(entry)
	fx.expectDefaultSettings(userID)
	fx.expectTokens(userID)
	fx.queueRepo.EXPECT().
		SaveOutcome(mock.Anything, mock.MatchedBy(func(e *entity.QueueEntry) bool {
			return e.Status == entity.QueueStatusPending && e.ErrorMessage == entity.ReasonNoActiveTokens
		}), testNow).
		Return(nil)

	claimed, err := fx.service.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, claimed)
	assert.Equal(t, 1, entry.RetryCount)
	fx.gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	fx.historyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProcessorService_ProcessBatch_DisabledCategoryCancels(t *testing.T) {
	fx := createTestProcessorService(t)
	userID := uuid.New()
	entry := newDueEntry(userID, entity.PriorityNormal, 3)

	settings := entity.DefaultNotificationSettings(userID)
	settings.Follows = false

	fx.expectClaim(entry)
	fx.settingsRepo.EXPECT().FindByUser(mock.Anything, userID).Return(settings, nil)
	fx.queueRepo.EXPECT().
		SaveOutcome(mock.Anything, mock.MatchedBy(func(e *entity.QueueEntry) bool {
			return e.Status == entity.QueueStatusCancelled && e.ErrorMessage == entity.ReasonCategoryDisabled
		}), testNow).
		Return(nil)

	_, err := fx.service.ProcessBatch(context.Background())
	require.NoError(t, err)
	fx.deviceRepo.AssertNotCalled(t, "FindActiveByUser", mock.Anything, mock.Anything)
	fx.gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessorService_ProcessBatch_LostClaimSkipsEntry(t *testing.T) {
	fx := createTestProcessorService(t)
	entry := newDueEntry(uuid.New(), entity.PriorityNormal, 3)

	fx.queueRepo.EXPECT().FindDue(mock.Anything, testNow, 10).Return([]*entity.QueueEntry{entry}, nil)
	fx.queueRepo.EXPECT().Claim(mock.Anything, entry.ID, testNow).Return(nil, nil)

	claimed, err := fx.service.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, claimed)
	assert.Equal(t, entity.QueueStatusPending, entry.Status)
}

func TestProcessorService_ProcessBatch_GatewayErrorKeepsTokens(t *testing.T) {
	fx := createTestProcessorService(t)
	userID := uuid.New()
	entry := newDueEntry(userID, entity.PriorityNormal, 3)

	fx.expectClaim(entry)
	fx.expectDefaultSettings(userID)
	fx.expectTokens(userID, "tok-a", "tok-b")
	fx.gateway.EXPECT().
		Send(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	fx.expectTransaction()
	fx.historyRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(h *entity.NotificationHistory) bool {
			return h.FailureCount == 2 && h.ErrorMessage == "gateway error: connection reset"
		})).
		Return(nil)
	fx.deviceRepo.EXPECT().TouchTokens(mock.Anything, userID, []string(nil), testNow).Return(nil)
	fx.queueRepo.EXPECT().SaveOutcome(mock.Anything, withStatus(entity.QueueStatusPending), testNow).Return(nil)

	_, err := fx.service.ProcessBatch(context.Background())
	require.NoError(t, err)
	fx.deviceRepo.AssertNotCalled(t, "DeactivateUserToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessorService_ProcessBatch_CancelledDuringDeliveryKeepsHistory(t *testing.T) {
	fx := createTestProcessorService(t)
	userID := uuid.New()
	entry := newDueEntry(userID, entity.PriorityNormal, 3)

	fx.expectClaim(entry)
	fx.expectDefaultSettings(userID)
	fx.expectTokens(userID, "tok-a")
	fx.gateway.EXPECT().
		Send(mock.Anything, mock.Anything, mock.Anything).
		Return([]service.TokenResult{{Token: "tok-a", Success: true}}, nil)

	fx.expectTransaction()
	fx.historyRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().TouchTokens(mock.Anything, userID, []string{"tok-a"}, testNow).Return(nil)
	fx.queueRepo.EXPECT().SaveOutcome(mock.Anything, mock.Anything, testNow).Return(domainerrors.ErrQueueEntryStateConflict)

	claimed, err := fx.service.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, claimed)
}

func TestProcessorService_ProcessBatch_SettingsErrorIsRetryable(t *testing.T) {
	fx := createTestProcessorService(t)
	userID := uuid.New()
	entry := newDueEntry(userID, entity.PriorityNormal, 3)

	fx.expectClaim(entry)
	fx.settingsRepo.EXPECT().FindByUser(mock.Anything, userID).Return(nil, errors.New("db down"))
	fx.queueRepo.EXPECT().
		SaveOutcome(mock.Anything, mock.MatchedBy(func(e *entity.QueueEntry) bool {
			return e.Status == entity.QueueStatusPending && e.ErrorMessage == "settings lookup failed"
		}), testNow).
		Return(nil)

	_, err := fx.service.ProcessBatch(context.Background())
	require.NoError(t, err)
}

func TestProcessorService_ProcessBatch_ServesInSelectionOrder(t *testing.T) {
	fx := createTestProcessorService(t)
	userID := uuid.New()
	urgent := newDueEntry(userID, entity.PriorityUrgent, 3)
	normal := newDueEntry(userID, entity.PriorityNormal, 3)
	low := newDueEntry(userID, entity.PriorityLow, 3)

	fx.queueRepo.EXPECT().FindDue(mock.Anything, testNow, 10).Return([]*entity.QueueEntry{urgent, normal, low}, nil)

	var mu sync.Mutex
	var order []entity.Priority
	byID := map[uuid.UUID]*entity.QueueEntry{urgent.ID: urgent, normal.ID: normal, low.ID: low}
	fx.queueRepo.EXPECT().
		Claim(mock.Anything, mock.Anything, testNow).
		RunAndReturn(func(_ context.Context, id uuid.UUID, _ time.Time) (*entity.QueueEntry, error) {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, byID[id].Priority)

			return nil, nil
		}).
		Times(3)

	_, err := fx.service.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.Priority{entity.PriorityUrgent, entity.PriorityNormal, entity.PriorityLow}, order)
}

func TestProcessorService_ProcessBatch_CancelledContextClaimsNothing(t *testing.T) {
	fx := createTestProcessorService(t)
	entry := newDueEntry(uuid.New(), entity.PriorityNormal, 3)

	fx.queueRepo.EXPECT().FindDue(mock.Anything, testNow, 10).Return([]*entity.QueueEntry{entry}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	claimed, err := fx.service.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, claimed)
	fx.queueRepo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessorService_ProcessBatch_ExhaustedLimiterIsAnError(t *testing.T) {
	fx := createTestProcessorService(t)
	fx.service.limiter = rate.NewLimiter(0.5, 0)
	entry := newDueEntry(uuid.New(), entity.PriorityNormal, 3)

	fx.queueRepo.EXPECT().FindDue(mock.Anything, testNow, 10).Return([]*entity.QueueEntry{entry}, nil)

	claimed, err := fx.service.ProcessBatch(context.Background())
	require.Error(t, err)
	assert.Zero(t, claimed)
	fx.queueRepo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessorService_ProcessBatch_UsesClaimedRowOverSnapshot(t *testing.T) {
	fx := createTestProcessorService(t)
	userID := uuid.New()
	snapshot := newDueEntry(userID, entity.PriorityNormal, 3)

	stored := *snapshot
	stored.RetryCount = 1
	require.NoError(t, stored.Claim(testNow))

	fx.queueRepo.EXPECT().FindDue(mock.Anything, testNow, 10).Return([]*entity.QueueEntry{snapshot}, nil)
	fx.queueRepo.EXPECT().Claim(mock.Anything, snapshot.ID, testNow).Return(&stored, nil)
	fx.expectDefaultSettings(userID)
	fx.expectTokens(userID)
	fx.queueRepo.EXPECT().
		SaveOutcome(mock.Anything, mock.MatchedBy(func(e *entity.QueueEntry) bool {
			return e.RetryCount == 2 && e.ScheduledFor.Equal(testNow.Add(4*time.Minute))
		}), testNow).
		Return(nil)

	claimed, err := fx.service.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, claimed)
	assert.Zero(t, snapshot.RetryCount)
}

func TestProcessorService_ProcessBatch_EmptyQueue(t *testing.T) {
	fx := createTestProcessorService(t)

	fx.queueRepo.EXPECT().FindDue(mock.Anything, testNow, 10).Return(nil, nil)

	claimed, err := fx.service.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, claimed)
}

func TestProcessorService_ProcessBatch_SelectError(t *testing.T) {
	fx := createTestProcessorService(t)

	fx.queueRepo.EXPECT().FindDue(mock.Anything, testNow, 10).Return(nil, errors.New("db down"))

	_, err := fx.service.ProcessBatch(context.Background())
	assert.Error(t, err)
}

func TestProcessorService_RecoverStale(t *testing.T) {
	fx := createTestProcessorService(t)

	fx.queueRepo.EXPECT().RecoverStale(mock.Anything, testNow.Add(-10*time.Minute), testNow).Return(2, 1, nil)
	fx.queueRepo.EXPECT().CountByStatus(mock.Anything).Return(map[entity.QueueStatus]int64{
		entity.QueueStatusPending: 2,
	}, nil)

	requeued, failed, err := fx.service.RecoverStale(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), requeued)
	assert.Equal(t, int64(1), failed)
}

func TestProcessorService_RecoverStale_Error(t *testing.T) {
	fx := createTestProcessorService(t)

	fx.queueRepo.EXPECT().RecoverStale(mock.Anything, mock.Anything, mock.Anything).Return(0, 0, errors.New("db down"))

	_, _, err := fx.service.RecoverStale(context.Background())
	assert.Error(t, err)
}
