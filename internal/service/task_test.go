package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/backend/internal/model"
)

func TestTaskUpdateStatusGate(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	owner := createUser(t, db, "alice", "alice@example.com")
	manager := createUser(t, db, "bob", "bob@example.com")
	scrum := createUser(t, db, "carol", "carol@example.com")
	member := createUser(t, db, "dave", "dave@example.com")
	stranger := createUser(t, db, "eve", "eve@example.com")

	project := createProject(t, db, "Alpha", owner.ID, manager.ID)
	project.ManagerStatus = model.InviteAccepted
	require.NoError(t, db.Save(project).Error)

	addMember(t, db, project.ID, scrum.ID, model.RoleScrumMaster, model.InviteAccepted)
	addMember(t, db, project.ID, member.ID, model.RoleTeamMember, model.InviteAccepted)

	task := addTask(t, db, project.ID, member.ID, model.TaskTodo, nil)

	tests := []struct {
		name      string
		userID    uint
		status    string
		errPrefix string
	}{
		{"manager may update", manager.ID, model.TaskInProgress, ""},
		{"scrum master may update", scrum.ID, model.TaskDone, ""},
		// Gate, not workflow: done straight back to todo is allowed.
		{"any status jump is allowed", manager.ID, model.TaskTodo, ""},
		{"owner may not update", owner.ID, model.TaskDone, "40304:"},
		{"plain member may not update", member.ID, model.TaskDone, "40304:"},
		{"stranger may not update", stranger.ID, model.TaskDone, "40304:"},
		{"unknown status rejected", manager.ID, "blocked", "40003:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateStatus(task.ID, tt.userID, tt.status)
			if tt.errPrefix == "" {
				require.NoError(t, err)
				var got model.Task
				require.NoError(t, db.First(&got, task.ID).Error)
				assert.Equal(t, tt.status, got.Status)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errPrefix)
			}
		})
	}
}

func TestTaskUpdateStatusPendingManager(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	owner := createUser(t, db, "alice", "alice@example.com")
	manager := createUser(t, db, "bob", "bob@example.com")
	member := createUser(t, db, "carol", "carol@example.com")

	project := createProject(t, db, "Alpha", owner.ID, manager.ID)
	addMember(t, db, project.ID, member.ID, model.RoleTeamMember, model.InviteAccepted)
	task := addTask(t, db, project.ID, member.ID, model.TaskTodo, nil)

	// The manager has not accepted yet: they resolve to MANAGER for reads
	// but may not mutate tasks.
	err := svc.UpdateStatus(task.ID, manager.ID, model.TaskDone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40304:")
}

func TestTaskUpdateStatusNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)
	user := createUser(t, db, "alice", "alice@example.com")

	err := svc.UpdateStatus(12345, user.ID, model.TaskDone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40406:")
}
