package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// SettingsUpdate changes only the switches that are set.
type SettingsUpdate struct {
	Follows        *bool `json:"follows,omitempty"`
	FriendRequests *bool `json:"friend_requests,omitempty"`
	Confirmations  *bool `json:"confirmations,omitempty"`
	System         *bool `json:"system,omitempty"`
	ChatMessages   *bool `json:"chat_messages,omitempty"`
}

// SettingsUsecase reads and writes per-user notification switches.
type SettingsUsecase interface {
	// GetSettings never fails for a user without a row; everything is enabled then.
	GetSettings(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error)

	UpdateSettings(ctx context.Context, userID uuid.UUID, update *SettingsUpdate) (*entity.NotificationSettings, error)
}
