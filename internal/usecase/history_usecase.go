package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryPage is one page of a user's notification history.
type HistoryPage struct {
	Items  []*entity.NotificationHistory `json:"items"`
	Total  int64                         `json:"total"`
	Limit  int                           `json:"limit"`
	Offset int                           `json:"offset"`
}

// HistoryUsecase exposes the audit trail to its owner.
type HistoryUsecase interface {
	ListHistory(ctx context.Context, userID uuid.UUID, limit, offset int) (*HistoryPage, error)
	MarkDelivered(ctx context.Context, userID, historyID uuid.UUID) error
	MarkRead(ctx context.Context, userID, historyID uuid.UUID) error
}
