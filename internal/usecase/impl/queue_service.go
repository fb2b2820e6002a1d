package impl

import (
	"context"
	"log/slog"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// queueService implements the QueueUsecase interface.
type queueService struct {
	queueRepo         repository.QueueRepository
	settingsRepo      repository.SettingsRepository
	historyRepo       repository.HistoryRepository
	deliverer         *deliverer
	limiter           *rate.Limiter
	defaultMaxRetries int
	logger            *slog.Logger
	now               func() time.Time
}

// QueueServiceParams holds dependencies for QueueService, injected by Fx.
type QueueServiceParams struct {
	fx.In

	QueueRepo    repository.QueueRepository
	SettingsRepo repository.SettingsRepository
	HistoryRepo  repository.HistoryRepository
	DeviceRepo   repository.DeviceRepository
	Gateway      service.PushGateway
	Limiter      *rate.Limiter
	Metrics      service.ProcessorMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewQueueService creates the producer-facing queue service.
func NewQueueService(params QueueServiceParams) usecase.QueueUsecase {
	logger := params.Logger.With(slog.String("component", "producer"))

	return &queueService{
		queueRepo:    params.QueueRepo,
		settingsRepo: params.SettingsRepo,
		historyRepo:  params.HistoryRepo,
		deliverer: &deliverer{
			deviceRepo: params.DeviceRepo,
			gateway:    params.Gateway,
			metrics:    params.Metrics,
			timeout:    params.Config.Queue.GatewayTimeout,
			logger:     logger,
		},
		limiter:           params.Limiter,
		defaultMaxRetries: params.Config.Queue.MaxRetries(),
		logger:            logger,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// Enqueue persists a pending entry once the user's settings allow the category.
func (s *queueService) Enqueue(ctx context.Context, req *usecase.EnqueueRequest) (uuid.UUID, error) {
	if req.UserID == uuid.Nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("user_id is required")
	}

	payload := entity.Payload{
		Category: req.Category,
		Title:    req.Title,
		Body:     req.Body,
		Data:     req.Data,
	}
	if err := payload.Validate(); err != nil {
		return uuid.Nil, domainerrors.ErrInvalidPayload.WrapMessage(err.Error())
	}

	priority, err := entity.ParsePriority(req.Priority)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidPayload.WrapMessage(err.Error())
	}

	settings, err := loadSettings(ctx, s.settingsRepo, req.UserID)
	if err != nil {
		return uuid.Nil, err
	}
	if !settings.IsEnabled(req.Category) {
		return uuid.Nil, domainerrors.ErrCategoryDisabled
	}

	maxRetries := s.defaultMaxRetries
	if req.MaxRetries != nil {
		maxRetries = *req.MaxRetries
	}

	var scheduledFor time.Time
	if req.ScheduledFor != nil {
		scheduledFor = req.ScheduledFor.UTC()
	}

	entry := entity.NewQueueEntry(req.UserID, payload, priority, scheduledFor, maxRetries, s.now())
	if err := s.queueRepo.Create(ctx, entry); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to enqueue notification")
	}

	s.logger.DebugContext(ctx, "Notification enqueued",
		slog.String("entry_id", entry.ID.String()),
		slog.String("user_id", entry.UserID.String()),
		slog.String("category", entry.Payload.Category),
		slog.String("priority", entry.Priority.String()),
		slog.Time("scheduled_for", entry.ScheduledFor),
	)

	return entry.ID, nil
}

// SendDirect delivers immediately without a queue row. There is no retry: the
// caller gets the counts and decides.
func (s *queueService) SendDirect(ctx context.Context, req *usecase.DirectRequest) (*entity.DeliveryReport, error) {
	if req.UserID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("user_id is required")
	}

	payload := entity.Payload{
		Category: req.Category,
		Title:    req.Title,
		Body:     req.Body,
		Data:     req.Data,
	}
	if err := payload.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidPayload.WrapMessage(err.Error())
	}

	settings, err := loadSettings(ctx, s.settingsRepo, req.UserID)
	if err != nil {
		return nil, err
	}
	if !settings.IsEnabled(req.Category) {
		return nil, domainerrors.ErrCategoryDisabled
	}

	tokens, err := s.deliverer.activeTokens(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return &entity.DeliveryReport{ErrorMessage: entity.ReasonNoActiveTokens}, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter wait")
	}

	out := s.deliverer.send(ctx, payload, tokens)
	now := s.now()

	if err := s.historyRepo.Create(ctx, newHistory(req.UserID, nil, 1, payload, out.report, now)); err != nil {
		return nil, errors.Wrap(err, "failed to record direct delivery")
	}
	if err := s.deliverer.applyTokenOutcomes(ctx, s.deliverer.deviceRepo, req.UserID, out, now); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Direct notification sent",
		slog.String("user_id", req.UserID.String()),
		slog.String("category", req.Category),
		slog.Int("success_count", out.report.SuccessCount),
		slog.Int("failure_count", out.report.FailureCount),
	)

	return out.report, nil
}
