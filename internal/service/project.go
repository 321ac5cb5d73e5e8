package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/teamtrack/backend/internal/model"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// SetupMember is one roster entry of a manager-setup request.
type SetupMember struct {
	Email string
	Role  string
}

// SetupTask is one task of a manager-setup request.
type SetupTask struct {
	Title         string
	Description   string
	AssigneeEmail string
	Deadline      *time.Time
}

// Create stores the project and the manager's invitation notification in one
// transaction. The manager starts pending and the project stays pending
// until they accept.
func (s *ProjectService) Create(ownerID uint, title, description, managerEmail, requirementFile string) (*model.Project, error) {
	var manager model.User
	if err := s.db.Where("email = ?", managerEmail).First(&manager).Error; err != nil {
		return nil, fmt.Errorf("40404:Manager email not found")
	}

	project := &model.Project{
		Title:           title,
		Description:     description,
		OwnerID:         ownerID,
		ManagerID:       manager.ID,
		ManagerStatus:   model.InvitePending,
		RequirementFile: requirementFile,
		Status:          model.ProjectPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		return notify(tx, &model.Notification{
			UserID:    manager.ID,
			ProjectID: project.ID,
			Type:      model.NotifyProjectInvite,
			Message:   fmt.Sprintf("You have been invited to manage project %q", title),
		})
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetByID(id uint) (*model.Project, error) {
	var project model.Project
	if err := s.db.Preload("Owner").Preload("Manager").First(&project, id).Error; err != nil {
		return nil, fmt.Errorf("40402:Project not found")
	}
	return &project, nil
}

// Membership resolves the caller's standing in the project.
func (s *ProjectService) Membership(p *model.Project, userID uint) (Membership, error) {
	return projectMembership(s.db, p, userID)
}

// AcceptManagerInvite flips the manager slot to accepted and activates the
// project. Re-accepting is a no-op beyond rewriting the same values.
func (s *ProjectService) AcceptManagerInvite(projectID, userID uint) error {
	project, err := s.GetByID(projectID)
	if err != nil {
		return err
	}
	if project.ManagerID != userID {
		return fmt.Errorf("40302:Only the invited manager may respond")
	}
	return s.db.Model(&model.Project{}).Where("id = ?", projectID).Updates(map[string]interface{}{
		"manager_status": model.InviteAccepted,
		"status":         model.ProjectActive,
	}).Error
}

// DeclineManagerInvite marks the manager slot declined and the project
// rejected. Terminal: no transition leads out of rejected.
func (s *ProjectService) DeclineManagerInvite(projectID, userID uint) error {
	project, err := s.GetByID(projectID)
	if err != nil {
		return err
	}
	if project.ManagerID != userID {
		return fmt.Errorf("40302:Only the invited manager may respond")
	}
	return s.db.Model(&model.Project{}).Where("id = ?", projectID).Updates(map[string]interface{}{
		"manager_status": model.InviteDeclined,
		"status":         model.ProjectRejected,
	}).Error
}

// ManagerSetup replaces the roster and appends a batch of tasks, all in one
// transaction. Prior live member rows are marked removed rather than
// deleted. Deliberately not idempotent: running it twice yields two batches
// of tasks and notifications.
func (s *ProjectService) ManagerSetup(projectID, userID uint, deadline *time.Time, members []SetupMember, tasks []SetupTask) error {
	project, err := s.GetByID(projectID)
	if err != nil {
		return err
	}
	mem, err := s.Membership(project, userID)
	if err != nil {
		return err
	}
	if mem.Role != RoleManager || !mem.Accepted {
		return fmt.Errorf("40303:Only the accepted manager may run setup")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Project{}).Where("id = ?", projectID).
			Update("deadline", deadline).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.ProjectMember{}).
			Where("project_id = ? AND status IN ?", projectID,
				[]string{model.InvitePending, model.InviteAccepted}).
			Update("status", model.InviteRemoved).Error; err != nil {
			return err
		}

		for _, m := range members {
			var user model.User
			if err := tx.Where("email = ?", m.Email).First(&user).Error; err != nil {
				log.Printf("manager setup: skipping unknown member %s", m.Email)
				continue
			}
			role := m.Role
			if role != model.RoleScrumMaster {
				role = model.RoleTeamMember
			}
			if err := tx.Create(&model.ProjectMember{
				ProjectID: projectID,
				UserID:    user.ID,
				Role:      role,
				Status:    model.InvitePending,
			}).Error; err != nil {
				return err
			}
			if err := notify(tx, &model.Notification{
				UserID:    user.ID,
				ProjectID: projectID,
				Type:      model.NotifyTeamAdd,
				Message:   fmt.Sprintf("You were added to project %q as %s", project.Title, role),
			}); err != nil {
				return err
			}
		}

		for _, t := range tasks {
			var assignee model.User
			if err := tx.Where("email = ?", t.AssigneeEmail).First(&assignee).Error; err != nil {
				log.Printf("manager setup: skipping task for unknown assignee %s", t.AssigneeEmail)
				continue
			}
			task := &model.Task{
				ProjectID:   projectID,
				AssignedTo:  assignee.ID,
				Title:       t.Title,
				Description: t.Description,
				Deadline:    t.Deadline,
				Status:      model.TaskTodo,
			}
			if err := tx.Create(task).Error; err != nil {
				return err
			}
			if err := notify(tx, &model.Notification{
				UserID:    assignee.ID,
				ProjectID: projectID,
				TaskID:    &task.ID,
				Type:      model.NotifyTaskAssign,
				Message:   fmt.Sprintf("Task assigned: %q in project %q", t.Title, project.Title),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// AcceptTeamInvite flips the caller's pending membership to accepted.
func (s *ProjectService) AcceptTeamInvite(projectID, userID uint) error {
	return s.respondTeamInvite(projectID, userID, model.InviteAccepted)
}

// DeclineTeamInvite marks the caller's membership declined. The row stays
// behind as an audit record and no longer resolves to a role.
func (s *ProjectService) DeclineTeamInvite(projectID, userID uint) error {
	return s.respondTeamInvite(projectID, userID, model.InviteDeclined)
}

func (s *ProjectService) respondTeamInvite(projectID, userID uint, status string) error {
	result := s.db.Model(&model.ProjectMember{}).
		Where("project_id = ? AND user_id = ? AND status IN ?", projectID, userID,
			[]string{model.InvitePending, model.InviteAccepted}).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40405:Invite not found")
	}
	return nil
}

// Delete removes the project and everything scoped to it: tasks,
// notifications, memberships, chat and upload records, one transaction.
// Owner only. Files on disk are left to an operational sweep.
func (s *ProjectService) Delete(projectID, userID uint) error {
	project, err := s.GetByID(projectID)
	if err != nil {
		return err
	}
	if project.OwnerID != userID {
		return fmt.Errorf("40301:Only the owner can delete a project")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&model.Task{},
			&model.Notification{},
			&model.ProjectMember{},
			&model.ChatMessage{},
			&model.MemberUpload{},
		} {
			if err := tx.Where("project_id = ?", projectID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Project{}, projectID).Error
	})
}
