package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterTokenRequest carries a push token reported by a client.
type RegisterTokenRequest struct {
	Token    string `json:"token" validate:"required,max=512"`
	Platform string `json:"platform" validate:"required"`
}

// DeviceUsecase defines the device registry use cases
type DeviceUsecase interface {
	// RegisterToken inserts or reactivates the user's token.
	RegisterToken(ctx context.Context, userID uuid.UUID, req *RegisterTokenRequest) (*entity.DeviceToken, error)

	// ListTokens returns all of the user's tokens, active or not.
	ListTokens(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error)

	// DeactivateToken disables the token for every user that registered it.
	DeactivateToken(ctx context.Context, token string) (int64, error)

	// DeactivateUserToken disables one of the user's own tokens.
	DeactivateUserToken(ctx context.Context, userID uuid.UUID, token string) error
}
