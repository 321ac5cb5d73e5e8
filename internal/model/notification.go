package model

import "time"

// Notification types.
const (
	NotifyProjectInvite = "project-invite"
	NotifyTeamAdd       = "team-add"
	NotifyTaskAssign    = "task-assign"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_notifications_user_id" json:"user_id"`
	ProjectID uint      `gorm:"not null;index:idx_notifications_project_id" json:"project_id"`
	TaskID    *uint     `json:"task_id,omitempty"`
	Type      string    `gorm:"type:varchar(16);not null" json:"type"`
	Message   string    `gorm:"type:varchar(512);not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
