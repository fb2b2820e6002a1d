package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Platform is the client platform a push token belongs to.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// IsValid checks if the Platform is a known value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	default:
		return false
	}
}

// NormalizePlatform lower-cases and trims a platform name.
func NormalizePlatform(s string) Platform {
	return Platform(strings.ToLower(strings.TrimSpace(s)))
}

// DeviceToken is a push token registered by one of a user's devices.
type DeviceToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Token      string     `json:"token"`
	Platform   Platform   `json:"platform"`
	IsActive   bool       `json:"is_active"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TokenPrefix shortens a token for logs.
func TokenPrefix(token string) string {
	return token[:min(10, len(token))]
}
