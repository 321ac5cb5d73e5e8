package model

import "time"

// Task status values.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in-progress"
	TaskDone       = "done"
)

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProjectID   uint       `gorm:"not null;index:idx_tasks_project_id" json:"project_id"`
	AssignedTo  uint       `gorm:"not null;index:idx_assigned_to" json:"assigned_to"`
	Title       string     `gorm:"type:varchar(256);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Status      string     `gorm:"type:varchar(12);not null;default:todo;index:idx_tasks_status" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Assignee *User `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
}

func (Task) TableName() string { return "tasks" }

// Overdue reports whether the task has a deadline in the past and is not done.
func (t *Task) Overdue(now time.Time) bool {
	return t.Deadline != nil && t.Deadline.Before(now) && t.Status != TaskDone
}
