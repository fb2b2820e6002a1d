package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockRepo "beacon/internal/mocks/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetSettings_DefaultsToEnabled(t *testing.T) {
	repo := mockRepo.NewMockSettingsRepository(t)
	svc := NewSettingsService(repo)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().FindByUser(ctx, userID).Return(nil, domainerrors.ErrNotFound)

	settings, err := svc.GetSettings(ctx, userID)
	require.NoError(t, err)
	for _, category := range []string{
		entity.CategoryFollow,
		entity.CategoryFriendRequest,
		entity.CategoryConfirmation,
		entity.CategorySystem,
		entity.CategoryChatMessage,
		"marketing",
	} {
		assert.True(t, settings.IsEnabled(category), category)
	}
}

func TestSettingsService_UpdateSettings_PartialUpdate(t *testing.T) {
	repo := mockRepo.NewMockSettingsRepository(t)
	svc := NewSettingsService(repo)
	ctx := context.Background()
	userID := uuid.New()

	stored := entity.DefaultNotificationSettings(userID)
	stored.System = false
	repo.EXPECT().FindByUser(ctx, userID).Return(stored, nil)
	repo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(s *entity.NotificationSettings) bool {
			return !s.Follows && !s.System && s.ChatMessages && !s.UpdatedAt.IsZero()
		})).
		Return(nil)

	off := false
	settings, err := svc.UpdateSettings(ctx, userID, &usecase.SettingsUpdate{Follows: &off})
	require.NoError(t, err)
	assert.False(t, settings.IsEnabled(entity.CategoryFollow))
	assert.False(t, settings.IsEnabled(entity.CategorySystem))
	assert.True(t, settings.IsEnabled(entity.CategoryFriendRequest))
}

func TestSettingsService_UpdateSettings_LoadError(t *testing.T) {
	repo := mockRepo.NewMockSettingsRepository(t)
	svc := NewSettingsService(repo)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().FindByUser(ctx, userID).Return(nil, errors.New("db error"))

	_, err := svc.UpdateSettings(ctx, userID, &usecase.SettingsUpdate{})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
