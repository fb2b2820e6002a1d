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

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterToken_NormalizesInput(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		UpsertToken(ctx, mock.MatchedBy(func(d *entity.DeviceToken) bool {
			return d.UserID == userID && d.Token == "fcm-token" && d.Platform == entity.PlatformAndroid && d.IsActive
		})).
		Return(nil)

	device, err := fx.service.RegisterToken(ctx, userID, &usecase.RegisterTokenRequest{
		Token:    "  fcm-token ",
		Platform: " Android",
	})
	require.NoError(t, err)
	assert.Equal(t, "fcm-token", device.Token)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterToken_InvalidPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterToken(context.Background(), uuid.New(), &usecase.RegisterTokenRequest{
		Token:    "fcm-token",
		Platform: "symbian",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlatform)
}

func TestDeviceService_RegisterToken_BlankToken(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterToken(context.Background(), uuid.New(), &usecase.RegisterTokenRequest{
		Token:    "   ",
		Platform: "ios",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterToken_RepoError(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().UpsertToken(ctx, mock.Anything).Return(errors.New("db error"))

	device, err := fx.service.RegisterToken(ctx, uuid.New(), &usecase.RegisterTokenRequest{Token: "t", Platform: "web"})
	assert.Error(t, err)
	assert.Nil(t, device)
}

func TestDeviceService_ListTokens(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.DeviceToken{
		{Token: "a", IsActive: true},
		{Token: "b", IsActive: false},
	}, nil)

	tokens, err := fx.service.ListTokens(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
}

func TestDeviceService_DeactivateToken(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().DeactivateToken(ctx, "shared").Return(2, nil)

	n, err := fx.service.DeactivateToken(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestDeviceService_DeactivateUserToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().DeactivateUserToken(ctx, userID, "gone").Return(0, nil)

	err := fx.service.DeactivateUserToken(ctx, userID, "gone")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceTokenNotFound)
}
