package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teamtrack/backend/internal/middleware"
	"github.com/teamtrack/backend/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// PUT /api/tasks/:taskId
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Invalid request: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	if err := h.taskService.UpdateStatus(parseID(c.Param("taskId")), userID, req.Status); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"message": "Task updated"})
}
