package service

import (
	"gorm.io/gorm"

	"github.com/teamtrack/backend/internal/model"
)

type Role string

const (
	RoleNone        Role = ""
	RoleOwner       Role = "OWNER"
	RoleManager     Role = "MANAGER"
	RoleScrumMaster Role = model.RoleScrumMaster
	RoleTeamMember  Role = model.RoleTeamMember
)

// Membership is a user's resolved standing in a project. Role alone grants
// read access; privileged actions also require Accepted.
type Membership struct {
	Role     Role
	Accepted bool
}

func (m Membership) None() bool { return m.Role == RoleNone }

// CanManageTasks gates task status mutation.
func (m Membership) CanManageTasks() bool {
	return m.Accepted && (m.Role == RoleManager || m.Role == RoleScrumMaster)
}

// CanInspectMembers gates the per-member detail view.
func (m Membership) CanInspectMembers() bool {
	return m.Role == RoleOwner || m.Role == RoleManager
}

// ResolveRole maps a user to their role in a project, in strict priority
// order: owner, then manager, then the team list. The owner always counts
// as accepted; a pending manager or member still resolves to their role so
// they can see what they were invited to. team must contain only live rows
// (declined and removed invitations do not grant a role).
func ResolveRole(p *model.Project, team []model.ProjectMember, userID uint) Membership {
	if p.OwnerID == userID {
		return Membership{Role: RoleOwner, Accepted: true}
	}
	if p.ManagerID == userID {
		return Membership{Role: RoleManager, Accepted: p.ManagerStatus == model.InviteAccepted}
	}
	for _, m := range team {
		if m.UserID != userID {
			continue
		}
		role := Role(m.Role)
		if role == RoleNone {
			role = RoleTeamMember
		}
		return Membership{Role: role, Accepted: m.Status == model.InviteAccepted}
	}
	return Membership{}
}

func liveTeam(db *gorm.DB, projectID uint) ([]model.ProjectMember, error) {
	var team []model.ProjectMember
	err := db.Where("project_id = ? AND status IN ?", projectID,
		[]string{model.InvitePending, model.InviteAccepted}).Find(&team).Error
	return team, err
}

// projectMembership loads the live team and resolves the user's standing.
func projectMembership(db *gorm.DB, p *model.Project, userID uint) (Membership, error) {
	team, err := liveTeam(db, p.ID)
	if err != nil {
		return Membership{}, err
	}
	return ResolveRole(p, team, userID), nil
}
