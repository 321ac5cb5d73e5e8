package model

import "time"

// Project-scoped team roles.
const (
	RoleScrumMaster = "SCRUM_MASTER"
	RoleTeamMember  = "TEAM_MEMBER"
)

// ProjectMember is one invitation of a user into a project team. Rows are
// never deleted: declining marks the row declined, replacing the roster
// marks the old rows removed. At most one row per (project, user) is in a
// live state (pending or accepted).
type ProjectMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index:idx_project_members_project_id" json:"project_id"`
	UserID    uint      `gorm:"not null;index:idx_project_members_user_id" json:"user_id"`
	Role      string    `gorm:"type:varchar(16);not null" json:"role"`
	Status    string    `gorm:"type:varchar(10);not null;default:pending" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ProjectMember) TableName() string { return "project_members" }
