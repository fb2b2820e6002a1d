package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationHistoryModel is the GORM-specific struct for the 'notification_history' table.
type NotificationHistoryModel struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID         `gorm:"type:uuid;not null;index:idx_history_user_created,priority:1"`
	QueueEntryID *uuid.UUID        `gorm:"type:uuid;index"`
	Category     string            `gorm:"type:varchar(64);not null"`
	Title        string            `gorm:"type:text;not null"`
	Body         string            `gorm:"type:text;not null"`
	Data         datatypes.JSONMap `gorm:"type:jsonb"`
	Attempt      int               `gorm:"not null;default:1"`
	IsSent       bool              `gorm:"not null;default:false"`
	IsDelivered  bool              `gorm:"not null;default:false"`
	IsRead       bool              `gorm:"not null;default:false"`
	SentAt       *time.Time
	DeliveredAt  *time.Time
	ReadAt       *time.Time
	SuccessCount int    `gorm:"not null;default:0"`
	FailureCount int    `gorm:"not null;default:0"`
	ErrorMessage string `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index:idx_history_user_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationHistoryModel) TableName() string {
	return "notification_history"
}
