package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationQueueModel is the GORM-specific struct for the 'notification_queue' table.
// Selection uses idx_queue_due (status, priority, scheduled_for); stale recovery uses
// idx_queue_processing (status, processing_started_at).
type NotificationQueueModel struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID         `gorm:"type:uuid;not null;index"`
	Category            string            `gorm:"type:varchar(64);not null;index"`
	Title               string            `gorm:"type:text;not null"`
	Body                string            `gorm:"type:text;not null"`
	Data                datatypes.JSONMap `gorm:"type:jsonb"`
	Priority            int               `gorm:"type:smallint;not null;index:idx_queue_due,priority:2"`
	ScheduledFor        time.Time         `gorm:"not null;index:idx_queue_due,priority:3"`
	Status              string            `gorm:"type:varchar(16);not null;default:'pending';index:idx_queue_due,priority:1;index:idx_queue_processing,priority:1"`
	MaxRetries          int               `gorm:"not null"`
	RetryCount          int               `gorm:"not null;default:0"`
	ErrorMessage        string            `gorm:"type:text"`
	ProcessingStartedAt *time.Time        `gorm:"index:idx_queue_processing,priority:2"`
	ProcessedAt         *time.Time
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationQueueModel) TableName() string {
	return "notification_queue"
}
