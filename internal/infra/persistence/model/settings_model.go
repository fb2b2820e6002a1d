package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSettingsModel is the GORM-specific struct for the 'notification_settings' table.
type NotificationSettingsModel struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Follows        bool      `gorm:"not null"`
	FriendRequests bool      `gorm:"not null"`
	Confirmations  bool      `gorm:"not null"`
	System         bool      `gorm:"not null"`
	ChatMessages   bool      `gorm:"not null"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationSettingsModel) TableName() string {
	return "notification_settings"
}

// AllModels lists every table owned by this service, for migrations and code generation.
func AllModels() []any {
	return []any{
		&NotificationQueueModel{},
		&DeviceTokenModel{},
		&NotificationHistoryModel{},
		&NotificationSettingsModel{},
	}
}
