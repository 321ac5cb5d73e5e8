package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/teamtrack/backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ProjectMember{},
		&model.Task{},
		&model.Notification{},
		&model.MemberUpload{},
		&model.ChatMessage{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createProject seeds a project with a pending manager invite, mirroring
// what ProjectService.Create persists.
func createProject(t *testing.T, db *gorm.DB, title string, ownerID, managerID uint) *model.Project {
	t.Helper()
	project := &model.Project{
		Title:         title,
		OwnerID:       ownerID,
		ManagerID:     managerID,
		ManagerStatus: model.InvitePending,
		Status:        model.ProjectPending,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func addMember(t *testing.T, db *gorm.DB, projectID, userID uint, role, status string) *model.ProjectMember {
	t.Helper()
	m := &model.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		Status:    status,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func addTask(t *testing.T, db *gorm.DB, projectID, assignedTo uint, status string, deadline *time.Time) *model.Task {
	t.Helper()
	task := &model.Task{
		ProjectID:  projectID,
		AssignedTo: assignedTo,
		Title:      "task",
		Status:     status,
		Deadline:   deadline,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func timePtr(tm time.Time) *time.Time { return &tm }
