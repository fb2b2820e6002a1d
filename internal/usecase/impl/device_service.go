package impl

import (
	"context"
	"strings"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterToken registers a new token or reactivates an existing one
func (s *deviceService) RegisterToken(ctx context.Context, userID uuid.UUID, req *usecase.RegisterTokenRequest) (*entity.DeviceToken, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("token is required")
	}

	platform := entity.NormalizePlatform(req.Platform)
	if !platform.IsValid() {
		return nil, domainerrors.ErrInvalidPlatform
	}

	now := time.Now().UTC()
	device := &entity.DeviceToken{
		UserID:    userID,
		Token:     token,
		Platform:  platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.deviceRepo.UpsertToken(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device token")
	}

	return device, nil
}

// ListTokens retrieves all tokens of a user
func (s *deviceService) ListTokens(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	devices, err := s.deviceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device tokens")
	}

	return devices, nil
}

// DeactivateToken disables a token reported invalid outside the processor
func (s *deviceService) DeactivateToken(ctx context.Context, token string) (int64, error) {
	n, err := s.deviceRepo.DeactivateToken(ctx, token)
	if err != nil {
		return 0, errors.Wrap(err, "failed to deactivate device token")
	}

	return n, nil
}

// DeactivateUserToken disables one of the caller's tokens (logout, uninstall)
func (s *deviceService) DeactivateUserToken(ctx context.Context, userID uuid.UUID, token string) error {
	n, err := s.deviceRepo.DeactivateUserToken(ctx, userID, token)
	if err != nil {
		return errors.Wrap(err, "failed to deactivate device token")
	}
	if n == 0 {
		return domainerrors.ErrDeviceTokenNotFound
	}

	return nil
}
