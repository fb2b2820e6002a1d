package repository

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the interface for push token persistence.
type DeviceRepository interface {
	// UpsertToken inserts the (user, token) pair or reactivates it and refreshes its platform.
	UpsertToken(ctx context.Context, device *entity.DeviceToken) error

	// FindByUser retrieves all tokens of a user, including inactive ones.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error)

	// FindActiveByUser retrieves the tokens the processor fans out to.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error)

	// DeactivateToken marks every registration of token inactive.
	DeactivateToken(ctx context.Context, token string) (int64, error)

	// DeactivateUserToken marks one user's registration of token inactive.
	DeactivateUserToken(ctx context.Context, userID uuid.UUID, token string) (int64, error)

	// TouchTokens stamps last_used_at for tokens the gateway accepted.
	TouchTokens(ctx context.Context, userID uuid.UUID, tokens []string, now time.Time) error
}
