package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"
	"beacon/internal/infra/metrics"
	mockRepo "beacon/internal/mocks/repository"
	mockService "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// queueServiceFixtures holds all test dependencies for producer tests.
type queueServiceFixtures struct {
	service      *queueService
	queueRepo    *mockRepo.MockQueueRepository
	settingsRepo *mockRepo.MockSettingsRepository
	historyRepo  *mockRepo.MockHistoryRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	gateway      *mockService.MockPushGateway
}

func createTestQueueService(t *testing.T) queueServiceFixtures {
	fx := queueServiceFixtures{
		queueRepo:    mockRepo.NewMockQueueRepository(t),
		settingsRepo: mockRepo.NewMockSettingsRepository(t),
		historyRepo:  mockRepo.NewMockHistoryRepository(t),
		deviceRepo:   mockRepo.NewMockDeviceRepository(t),
		gateway:      mockService.NewMockPushGateway(t),
	}

	svc := NewQueueService(QueueServiceParams{
		QueueRepo:    fx.queueRepo,
		SettingsRepo: fx.settingsRepo,
		HistoryRepo:  fx.historyRepo,
		DeviceRepo:   fx.deviceRepo,
		Gateway:      fx.gateway,
		Limiter:      rate.NewLimiter(rate.Inf, 1),
		Metrics:      metrics.NewNoopMetrics(),
		Config:       testConfig(),
		Logger:       slog.Default(),
	})
	fx.service = svc.(*queueService)
	fx.service.now = func() time.Time { return testNow }

	return fx
}

func TestQueueService_Enqueue_Defaults(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(nil, domainerrors.ErrNotFound)

	var stored *entity.QueueEntry
	fx.queueRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.QueueEntry")).
		Run(func(_ context.Context, entry *entity.QueueEntry) { stored = entry }).
		Return(nil)

	id, err := fx.service.Enqueue(ctx, &usecase.EnqueueRequest{
		UserID:   userID,
		Category: entity.CategoryFollow,
		Title:    "新的追蹤者",
		Body:     "bob 開始追蹤你",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID, id)
	assert.Equal(t, entity.QueueStatusPending, stored.Status)
	assert.Equal(t, entity.PriorityNormal, stored.Priority)
	assert.Equal(t, 3, stored.MaxRetries)
	assert.Equal(t, 0, stored.RetryCount)
	assert.Equal(t, testNow, stored.ScheduledFor)
}

func TestQueueService_Enqueue_ExplicitScheduleAndRetries(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()
	userID := uuid.New()
	taipei := time.FixedZone("Asia/Taipei", 8*3600)
	scheduled := time.Date(2026, 3, 2, 9, 0, 0, 0, taipei)
	maxRetries := 0

	fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(entity.DefaultNotificationSettings(userID), nil)
	fx.queueRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *entity.QueueEntry) bool {
			return e.Priority == entity.PriorityUrgent &&
				e.MaxRetries == 0 &&
				e.ScheduledFor.Location() == time.UTC &&
				e.ScheduledFor.Equal(scheduled)
		})).
		Return(nil)

	_, err := fx.service.Enqueue(ctx, &usecase.EnqueueRequest{
		UserID:       userID,
		Category:     entity.CategorySystem,
		Title:        "維護通知",
		Priority:     "urgent",
		ScheduledFor: &scheduled,
		MaxRetries:   &maxRetries,
	})
	require.NoError(t, err)
}

func TestQueueService_Enqueue_CategoryDisabled(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()
	userID := uuid.New()

	settings := entity.DefaultNotificationSettings(userID)
	settings.Confirmations = false
	fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(settings, nil)

	_, err := fx.service.Enqueue(ctx, &usecase.EnqueueRequest{
		UserID:   userID,
		Category: entity.CategoryConfirmation,
		Title:    "請確認",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryDisabled)
	fx.queueRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestQueueService_Enqueue_RejectsBadInput(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()

	_, err := fx.service.Enqueue(ctx, &usecase.EnqueueRequest{Category: entity.CategoryFollow, Title: "t"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Enqueue(ctx, &usecase.EnqueueRequest{
		UserID:   uuid.New(),
		Category: entity.CategoryFollow,
		Title:    "t",
		Priority: "critical",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPayload)

	_, err = fx.service.Enqueue(ctx, &usecase.EnqueueRequest{
		UserID:   uuid.New(),
		Category: entity.CategoryFollow,
		Title:    "t",
		Data:     map[string]any{"nested": map[string]any{"a": 1}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPayload)
}

func TestQueueService_Enqueue_SettingsError(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(nil, errors.New("db down"))

	_, err := fx.service.Enqueue(ctx, &usecase.EnqueueRequest{UserID: userID, Category: entity.CategoryFollow, Title: "t"})
	assert.Error(t, err)
}

func TestQueueService_SendDirect_ReportsCounts(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(nil, domainerrors.ErrNotFound)
	fx.deviceRepo.EXPECT().FindActiveByUser(ctx, userID).Return([]*entity.DeviceToken{
		{Token: "tok-a"}, {Token: "tok-b"}, {Token: "tok-a"},
	}, nil)
	fx.gateway.EXPECT().
		Send(mock.Anything, mock.Anything, []string{"tok-a", "tok-b"}).
		Return([]service.TokenResult{
			{Token: "tok-a", Success: true},
			{Token: "tok-b", ErrorCode: service.TokenErrorInvalidArgument},
		}, nil)
	fx.historyRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(h *entity.NotificationHistory) bool {
			return h.QueueEntryID == nil && h.Attempt == 1 && h.IsSent
		})).
		Return(nil)
	fx.deviceRepo.EXPECT().DeactivateUserToken(ctx, userID, "tok-b").Return(1, nil)
	fx.deviceRepo.EXPECT().TouchTokens(ctx, userID, []string{"tok-a"}, testNow).Return(nil)

	report, err := fx.service.SendDirect(ctx, &usecase.DirectRequest{
		UserID:   userID,
		Category: entity.CategoryChatMessage,
		Title:    "alice",
		Body:     "晚點見",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.FailureCount)
	assert.Equal(t, []string{"tok-b"}, report.DeactivatedTokens)
	fx.queueRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestQueueService_SendDirect_NoTokens(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(nil, domainerrors.ErrNotFound)
	fx.deviceRepo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, nil)

	report, err := fx.service.SendDirect(ctx, &usecase.DirectRequest{
		UserID:   userID,
		Category: entity.CategoryChatMessage,
		Title:    "alice",
	})
	require.NoError(t, err)
	assert.Zero(t, report.SuccessCount)
	assert.Zero(t, report.FailureCount)
	assert.Equal(t, entity.ReasonNoActiveTokens, report.ErrorMessage)
	fx.historyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestQueueService_SendDirect_CategoryDisabled(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()
	userID := uuid.New()

	settings := entity.DefaultNotificationSettings(userID)
	settings.ChatMessages = false
	fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(settings, nil)

	report, err := fx.service.SendDirect(ctx, &usecase.DirectRequest{
		UserID:   userID,
		Category: entity.CategoryChatMessage,
		Title:    "alice",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryDisabled)
	assert.Nil(t, report)
}
