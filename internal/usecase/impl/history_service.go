package impl

import (
	"context"
	"time"

	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type historyService struct {
	historyRepo repository.HistoryRepository
}

// NewHistoryService creates a new history service instance
func NewHistoryService(historyRepo repository.HistoryRepository) usecase.HistoryUsecase {
	return &historyService{
		historyRepo: historyRepo,
	}
}

func (s *historyService) ListHistory(ctx context.Context, userID uuid.UUID, limit, offset int) (*usecase.HistoryPage, error) {
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}
	offset = max(offset, 0)

	items, total, err := s.historyRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notification history")
	}

	return &usecase.HistoryPage{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *historyService) MarkDelivered(ctx context.Context, userID, historyID uuid.UUID) error {
	return s.historyRepo.MarkDelivered(ctx, historyID, userID, time.Now().UTC())
}

func (s *historyService) MarkRead(ctx context.Context, userID, historyID uuid.UUID) error {
	return s.historyRepo.MarkRead(ctx, historyID, userID, time.Now().UTC())
}
