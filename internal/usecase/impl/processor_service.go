package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// processorService implements the ProcessorUsecase interface.
type processorService struct {
	txManager    repository.TransactionManager
	queueRepo    repository.QueueRepository
	settingsRepo repository.SettingsRepository
	deliverer    *deliverer
	limiter      *rate.Limiter
	metrics      service.ProcessorMetrics
	cfg          *config.QueueConfig
	logger       *slog.Logger
	now          func() time.Time
}

// ProcessorServiceParams holds dependencies for ProcessorService, injected by Fx.
type ProcessorServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	QueueRepo    repository.QueueRepository
	DeviceRepo   repository.DeviceRepository
	SettingsRepo repository.SettingsRepository
	Gateway      service.PushGateway
	Limiter      *rate.Limiter
	Metrics      service.ProcessorMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProcessorService creates a new queue processor.
func NewProcessorService(params ProcessorServiceParams) usecase.ProcessorUsecase {
	logger := params.Logger.With(slog.String("component", "processor"))

	return &processorService{
		txManager:    params.TxManager,
		queueRepo:    params.QueueRepo,
		settingsRepo: params.SettingsRepo,
		deliverer: &deliverer{
			deviceRepo: params.DeviceRepo,
			gateway:    params.Gateway,
			metrics:    params.Metrics,
			timeout:    params.Config.Queue.GatewayTimeout,
			logger:     logger,
		},
		limiter: params.Limiter,
		metrics: params.Metrics,
		cfg:     params.Config.Queue,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ProcessBatch selects one batch of due entries and spreads it over the workers.
// Cancelling ctx stops new claims; an entry already claimed runs to completion.
func (s *processorService) ProcessBatch(ctx context.Context) (int, error) {
	entries, err := s.queueRepo.FindDue(ctx, s.now(), s.cfg.BatchSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to select due entries")
	}
	if len(entries) == 0 {
		return 0, nil
	}

	work := make(chan *entity.QueueEntry, len(entries))
	for _, entry := range entries {
		work <- entry
	}
	close(work)

	var claimed atomic.Int64
	var g errgroup.Group
	for range min(max(s.cfg.Workers, 1), len(entries)) {
		g.Go(func() error {
			for entry := range work {
				if ctx.Err() != nil {
					return nil
				}
				if err := s.limiter.Wait(ctx); err != nil {
					if ctx.Err() != nil {
						return nil
					}

					return errors.Wrap(err, "wait for gateway rate limit")
				}

				ok, err := s.processEntry(context.WithoutCancel(ctx), entry)
				if err != nil {
					return errors.Wrapf(err, "process entry %s", entry.ID)
				}
				if ok {
					claimed.Add(1)
				}
			}

			return nil
		})
	}

	err = g.Wait()

	return int(claimed.Load()), err
}

// processEntry claims and delivers one selected entry. It reports whether this
// worker won the claim. The attempt runs on the row returned by the claim, not
// on the selection snapshot.
func (s *processorService) processEntry(ctx context.Context, candidate *entity.QueueEntry) (bool, error) {
	entry, err := s.queueRepo.Claim(ctx, candidate.ID, s.now())
	if err != nil {
		return false, err
	}
	if entry == nil {
		return false, nil
	}
	if entry.Status != entity.QueueStatusProcessing || entry.ProcessingStartedAt == nil {
		return true, errors.Errorf("claimed entry %s is %s without a processing start time", entry.ID, entry.Status)
	}
	claimedAt := *entry.ProcessingStartedAt

	logger := s.logger.With(
		slog.String("entry_id", entry.ID.String()),
		slog.String("user_id", entry.UserID.String()),
		slog.String("category", entry.Payload.Category),
		slog.Int("attempt", entry.Attempt()),
	)

	settings, err := loadSettings(ctx, s.settingsRepo, entry.UserID)
	if err != nil {
		logger.WarnContext(ctx, "Settings lookup failed, scheduling retry", slog.Any("error", err))

		return true, s.finishWithoutDelivery(ctx, logger, entry, claimedAt, func(at time.Time) error {
			_, err := entry.RecordFailure(at, "settings lookup failed")

			return err
		})
	}

	if !settings.IsEnabled(entry.Payload.Category) {
		logger.InfoContext(ctx, "Category disabled by user, cancelling entry")

		return true, s.finishWithoutDelivery(ctx, logger, entry, claimedAt, func(at time.Time) error {
			return entry.Cancel(at, entity.ReasonCategoryDisabled)
		})
	}

	tokens, err := s.deliverer.activeTokens(ctx, entry.UserID)
	if err != nil {
		logger.WarnContext(ctx, "Token lookup failed, scheduling retry", slog.Any("error", err))

		return true, s.finishWithoutDelivery(ctx, logger, entry, claimedAt, func(at time.Time) error {
			_, err := entry.RecordFailure(at, "token lookup failed")

			return err
		})
	}

	if len(tokens) == 0 {
		return true, s.finishWithoutDelivery(ctx, logger, entry, claimedAt, func(at time.Time) error {
			delay, err := entry.RecordFailure(at, entity.ReasonNoActiveTokens)
			if err == nil {
				logger.InfoContext(ctx, "No active tokens", slog.String("status", entry.Status.String()), slog.Duration("retry_in", delay))
			}

			return err
		})
	}

	out := s.deliverer.send(ctx, entry.Payload, tokens)

	return true, s.finishDelivery(ctx, logger, entry, claimedAt, out)
}

// finishDelivery writes the history row, the token outcomes and the entry
// transition in one transaction. When an admin cancelled the entry or the claim
// was recovered as stale meanwhile, the attempt is still recorded and the
// stored entry state wins.
func (s *processorService) finishDelivery(ctx context.Context, logger *slog.Logger, entry *entity.QueueEntry, claimedAt time.Time, out *fanOut) error {
	now := s.now()
	entryID := entry.ID
	history := newHistory(entry.UserID, &entryID, entry.Attempt(), entry.Payload, out.report, now)

	var delay time.Duration
	if out.report.Succeeded() {
		if err := entry.MarkSent(now); err != nil {
			return err
		}
	} else {
		var err error
		if delay, err = entry.RecordFailure(now, out.report.ErrorMessage); err != nil {
			return err
		}
	}

	conflict := false
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewHistoryRepository().Create(ctx, history); err != nil {
			return err
		}
		if err := s.deliverer.applyTokenOutcomes(ctx, factory.NewDeviceRepository(), entry.UserID, out, now); err != nil {
			return err
		}

		err := factory.NewQueueRepository().SaveOutcome(ctx, entry, claimedAt)
		if errors.Is(err, domainerrors.ErrQueueEntryStateConflict) {
			conflict = true

			return nil
		}

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to record delivery outcome")
	}

	if conflict {
		logger.InfoContext(ctx, "Entry changed state during delivery, outcome not applied")

		return nil
	}

	s.metrics.EntryFinished(entry.Status.String())
	logger.InfoContext(ctx, "Delivery attempt finished",
		slog.String("status", entry.Status.String()),
		slog.Int("success_count", out.report.SuccessCount),
		slog.Int("failure_count", out.report.FailureCount),
		slog.Int("deactivated_count", len(out.report.DeactivatedTokens)),
		slog.Duration("retry_in", delay),
	)

	return nil
}

// finishWithoutDelivery applies a transition that involved no gateway call.
func (s *processorService) finishWithoutDelivery(ctx context.Context, logger *slog.Logger, entry *entity.QueueEntry, claimedAt time.Time, transition func(now time.Time) error) error {
	if err := transition(s.now()); err != nil {
		return err
	}

	if err := s.queueRepo.SaveOutcome(ctx, entry, claimedAt); err != nil {
		if errors.Is(err, domainerrors.ErrQueueEntryStateConflict) {
			logger.InfoContext(ctx, "Entry changed state during processing, outcome not applied")

			return nil
		}

		return errors.Wrap(err, "failed to save entry outcome")
	}

	s.metrics.EntryFinished(entry.Status.String())

	return nil
}

// RecoverStale requeues processing entries whose worker disappeared, then refreshes the depth gauge.
func (s *processorService) RecoverStale(ctx context.Context) (int64, int64, error) {
	now := s.now()
	requeued, failed, err := s.queueRepo.RecoverStale(ctx, now.Add(-s.cfg.StaleAfter), now)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to recover stale entries")
	}

	s.metrics.StaleRecovered(requeued, failed)
	if requeued > 0 || failed > 0 {
		s.logger.WarnContext(ctx, "Recovered stale processing entries",
			slog.Int64("requeued", requeued),
			slog.Int64("failed", failed),
			slog.Duration("stale_after", s.cfg.StaleAfter),
		)
	}

	counts, err := s.queueRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to refresh queue depth", slog.Any("error", err))

		return requeued, failed, nil
	}
	s.metrics.QueueDepth(statusCounts(counts))

	return requeued, failed, nil
}

func statusCounts(counts map[entity.QueueStatus]int64) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for status, count := range counts {
		out[status.String()] = count
	}

	return out
}
