package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockRepo "beacon/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_ListHistory_ClampsPaging(t *testing.T) {
	repo := mockRepo.NewMockHistoryRepository(t)
	svc := NewHistoryService(repo)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().FindByUser(ctx, userID, defaultListLimit, 0).Return([]*entity.NotificationHistory{{Attempt: 1}}, 1, nil)

	page, err := svc.ListHistory(ctx, userID, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, defaultListLimit, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.Equal(t, int64(1), page.Total)
}

func TestHistoryService_MarkRead_NotOwned(t *testing.T) {
	repo := mockRepo.NewMockHistoryRepository(t)
	svc := NewHistoryService(repo)
	ctx := context.Background()
	userID, historyID := uuid.New(), uuid.New()

	repo.EXPECT().MarkRead(ctx, historyID, userID, mock.Anything).Return(domainerrors.ErrHistoryNotFound)

	err := svc.MarkRead(ctx, userID, historyID)
	assert.ErrorIs(t, err, domainerrors.ErrHistoryNotFound)
}

func TestHistoryService_MarkDelivered(t *testing.T) {
	repo := mockRepo.NewMockHistoryRepository(t)
	svc := NewHistoryService(repo)
	ctx := context.Background()
	userID, historyID := uuid.New(), uuid.New()

	repo.EXPECT().MarkDelivered(ctx, historyID, userID, mock.Anything).Return(nil)

	require.NoError(t, svc.MarkDelivered(ctx, userID, historyID))
}
