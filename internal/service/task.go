package service

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/teamtrack/backend/internal/model"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

var validTaskStatus = map[string]bool{
	model.TaskTodo:       true,
	model.TaskInProgress: true,
	model.TaskDone:       true,
}

// UpdateStatus writes the given status after the role gate: only an accepted
// manager or scrum master of the owning project may mutate tasks. Any status
// may jump to any other; there is no transition graph.
func (s *TaskService) UpdateStatus(taskID, userID uint, status string) error {
	if !validTaskStatus[status] {
		return fmt.Errorf("40003:Unknown task status %q", status)
	}

	var task model.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		return fmt.Errorf("40406:Task not found")
	}

	var project model.Project
	if err := s.db.First(&project, task.ProjectID).Error; err != nil {
		return fmt.Errorf("40402:Project not found")
	}

	mem, err := projectMembership(s.db, &project, userID)
	if err != nil {
		return err
	}
	if !mem.CanManageTasks() {
		return fmt.Errorf("40304:Only a manager or scrum master can update tasks")
	}

	return s.db.Model(&model.Task{}).Where("id = ?", taskID).
		Update("status", status).Error
}
