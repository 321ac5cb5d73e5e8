package model

import "time"

type MemberUpload struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProjectID   uint      `gorm:"not null;index:idx_project_member" json:"project_id"`
	MemberID    uint      `gorm:"not null;index:idx_project_member" json:"member_id"`
	FileName    string    `gorm:"type:varchar(256);not null" json:"file_name"`
	FilePath    string    `gorm:"type:varchar(512);not null" json:"-"`
	SprintLabel string    `gorm:"type:varchar(64)" json:"sprint_label,omitempty"`
	Note        string    `gorm:"type:varchar(512)" json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (MemberUpload) TableName() string { return "member_uploads" }
