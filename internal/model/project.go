package model

import "time"

// Project status values.
const (
	ProjectPending  = "pending"
	ProjectActive   = "active"
	ProjectRejected = "rejected"
)

// Invite lifecycle shared by the manager slot and team memberships.
const (
	InvitePending  = "pending"
	InviteAccepted = "accepted"
	InviteDeclined = "declined"
	InviteRemoved  = "removed"
)

type Project struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"type:varchar(128);not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	OwnerID         uint       `gorm:"not null;index:idx_owner_id" json:"owner_id"`
	ManagerID       uint       `gorm:"not null;index:idx_manager_id" json:"manager_id"`
	ManagerStatus   string     `gorm:"type:varchar(10);not null;default:pending" json:"manager_status"`
	RequirementFile string     `gorm:"type:varchar(512)" json:"-"`
	Deadline        *time.Time `json:"deadline"`
	Status          string     `gorm:"type:varchar(10);not null;default:pending;index:idx_projects_status" json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Owner   *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Manager *User `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
}

func (Project) TableName() string { return "projects" }
