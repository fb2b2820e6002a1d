package entity

import (
	"time"

	"github.com/google/uuid"
)

// Categories with a user-facing toggle. Any other category is always enabled.
const (
	CategoryFollow        = "follow"
	CategoryFriendRequest = "friend_request"
	CategoryConfirmation  = "confirmation"
	CategorySystem        = "system"
	CategoryChatMessage   = "chat_message"
)

// NotificationSettings holds a user's per-category switches.
type NotificationSettings struct {
	UserID         uuid.UUID `json:"user_id"`
	Follows        bool      `json:"follows"`
	FriendRequests bool      `json:"friend_requests"`
	Confirmations  bool      `json:"confirmations"`
	System         bool      `json:"system"`
	ChatMessages   bool      `json:"chat_messages"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultNotificationSettings is what a user without a settings row gets.
func DefaultNotificationSettings(userID uuid.UUID) *NotificationSettings {
	return &NotificationSettings{
		UserID:         userID,
		Follows:        true,
		FriendRequests: true,
		Confirmations:  true,
		System:         true,
		ChatMessages:   true,
	}
}

// IsEnabled reports whether pushes of the given category may be sent.
func (s *NotificationSettings) IsEnabled(category string) bool {
	if s == nil {
		return true
	}

	switch category {
	case CategoryFollow:
		return s.Follows
	case CategoryFriendRequest:
		return s.FriendRequests
	case CategoryConfirmation:
		return s.Confirmations
	case CategorySystem:
		return s.System
	case CategoryChatMessage:
		return s.ChatMessages
	default:
		return true
	}
}
