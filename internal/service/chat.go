package service

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/teamtrack/backend/internal/model"
)

type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// History returns the full chat log, oldest first, for project members only.
func (s *ChatService) History(projectID, userID uint) ([]model.ChatMessage, error) {
	if err := s.requireMember(projectID, userID); err != nil {
		return nil, err
	}
	var messages []model.ChatMessage
	err := s.db.Preload("Sender").Where("project_id = ?", projectID).
		Order("created_at asc").Find(&messages).Error
	return messages, err
}

// Send appends a message. Append-only: there is no edit or delete.
func (s *ChatService) Send(projectID, userID uint, message string) (*model.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("40004:Message is required")
	}
	if err := s.requireMember(projectID, userID); err != nil {
		return nil, err
	}
	msg := &model.ChatMessage{
		ProjectID: projectID,
		SenderID:  userID,
		Message:   message,
	}
	if err := s.db.Create(msg).Error; err != nil {
		return nil, err
	}
	s.db.Preload("Sender").First(msg, msg.ID)
	return msg, nil
}

func (s *ChatService) requireMember(projectID, userID uint) error {
	var project model.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		return fmt.Errorf("40402:Project not found")
	}
	mem, err := projectMembership(s.db, &project, userID)
	if err != nil {
		return err
	}
	if mem.None() {
		return fmt.Errorf("40305:Not a project member")
	}
	return nil
}
