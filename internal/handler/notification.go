package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teamtrack/backend/internal/middleware"
	"github.com/teamtrack/backend/internal/service"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	list, err := h.notificationService.ListForUser(userID, 20)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, list)
}

// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.notificationService.MarkRead(parseID(c.Param("id")), userID); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"message": "Notification marked as read"})
}
