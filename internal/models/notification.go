package models

import (
	"gorm.io/datatypes"
	"time"
)

type Notification struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Type    string `gorm:"not null"` // "application_status", "session_completed", "new_application"
	Title   string `gorm:"not null"`
	Message string
	Data    datatypes.JSON `gorm:"type:jsonb"` // {"job_id": "...", "session_id": "..."}
	IsRead  bool           `gorm:"default:false"`
	ReadAt  *time.Time
}

// Notification type tags
const (
	NotificationTypeApplicationStatus = "application_status"
	NotificationTypeNewApplication    = "new_application"
	NotificationTypeSessionCompleted  = "session_completed"
	NotificationTypeJobClosed         = "job_closed"
)
