package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teamtrack/backend/internal/middleware"
	"github.com/teamtrack/backend/internal/model"
	"github.com/teamtrack/backend/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// GET /api/projects/:id/chat
func (h *ChatHandler) History(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	messages, err := h.chatService.History(parseID(c.Param("id")), userID)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, chatViews(messages))
}

// POST /api/projects/:id/chat
func (h *ChatHandler) Send(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40004, "Message is required")
		return
	}

	userID := middleware.GetCurrentUserID(c)
	msg, err := h.chatService.Send(parseID(c.Param("id")), userID, req.Message)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, chatView(msg))
}

func chatView(m *model.ChatMessage) gin.H {
	senderName := ""
	if m.Sender != nil {
		senderName = m.Sender.Name
	}
	return gin.H{
		"id":          m.ID,
		"project_id":  m.ProjectID,
		"sender_id":   m.SenderID,
		"sender_name": senderName,
		"message":     m.Message,
		"created_at":  m.CreatedAt,
	}
}

func chatViews(messages []model.ChatMessage) []gin.H {
	list := make([]gin.H, 0, len(messages))
	for i := range messages {
		list = append(list, chatView(&messages[i]))
	}
	return list
}
