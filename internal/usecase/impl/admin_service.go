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
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	queueRepo   repository.QueueRepository
	historyRepo repository.HistoryRepository
	metrics     service.ProcessorMetrics
	retention   time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	QueueRepo   repository.QueueRepository
	HistoryRepo repository.HistoryRepository
	Metrics     service.ProcessorMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAdminService creates the operator service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		queueRepo:   params.QueueRepo,
		historyRepo: params.HistoryRepo,
		metrics:     params.Metrics,
		retention:   params.Config.Queue.Retention,
		logger:      params.Logger.With(slog.String("component", "admin")),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *adminService) ListEntries(ctx context.Context, query *usecase.EntryQuery) (*usecase.EntryPage, error) {
	filter, err := toQueueFilter(query)
	if err != nil {
		return nil, err
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultListLimit
	case filter.Limit > maxListLimit:
		filter.Limit = maxListLimit
	}

	entries, total, err := s.queueRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list queue entries")
	}

	return &usecase.EntryPage{
		Entries: entries,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}

func (s *adminService) GetEntry(ctx context.Context, id uuid.UUID) (*usecase.EntryDetail, error) {
	entry, err := s.queueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attempts, err := s.historyRepo.FindByQueueEntry(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery attempts")
	}

	return &usecase.EntryDetail{Entry: entry, Attempts: attempts}, nil
}

func (s *adminService) RetryFailed(ctx context.Context, query *usecase.EntryQuery) (int64, error) {
	filter, err := toQueueFilter(query)
	if err != nil {
		return 0, err
	}

	n, err := s.queueRepo.RetryFailed(ctx, filter, s.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to retry failed entries")
	}

	s.logger.InfoContext(ctx, "Failed entries requeued", slog.Int64("count", n))

	return n, nil
}

func (s *adminService) Cancel(ctx context.Context, query *usecase.EntryQuery) (int64, error) {
	filter, err := toQueueFilter(query)
	if err != nil {
		return 0, err
	}
	if filter.IsEmpty() {
		return 0, domainerrors.ErrInvalidFilter.WrapMessage("cancel requires at least one filter")
	}

	n, err := s.queueRepo.Cancel(ctx, filter, entity.ReasonAdminCancelled, s.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to cancel entries")
	}

	s.logger.InfoContext(ctx, "Entries cancelled", slog.Int64("count", n))

	return n, nil
}

func (s *adminService) Stats(ctx context.Context) (map[entity.QueueStatus]int64, error) {
	counts, err := s.queueRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count entries")
	}
	s.metrics.QueueDepth(statusCounts(counts))

	return counts, nil
}

func (s *adminService) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		olderThan = s.retention
	}

	n, err := s.queueRepo.PurgeTerminal(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge entries")
	}

	s.logger.InfoContext(ctx, "Terminal entries purged",
		slog.Int64("count", n),
		slog.Duration("older_than", olderThan),
	)

	return n, nil
}

// toQueueFilter validates the status names of an operator query.
func toQueueFilter(query *usecase.EntryQuery) (repository.QueueFilter, error) {
	if query == nil {
		return repository.QueueFilter{}, nil
	}

	filter := repository.QueueFilter{
		IDs:      query.IDs,
		UserID:   query.UserID,
		Category: query.Category,
		Before:   query.Before,
		Limit:    query.Limit,
		Offset:   query.Offset,
	}
	for _, raw := range query.Statuses {
		status, err := entity.ParseQueueStatus(raw)
		if err != nil {
			return repository.QueueFilter{}, domainerrors.ErrInvalidFilter.WrapMessage(err.Error())
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	return filter, nil
}
