package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
// A user registers one row per push token; (user_id, token) is unique.
type DeviceTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_device_tokens_user_token,priority:1"`
	Token      string    `gorm:"type:varchar(512);not null;uniqueIndex:idx_device_tokens_user_token,priority:2;index"`
	Platform   string    `gorm:"type:varchar(16);not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
