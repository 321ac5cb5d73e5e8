package service

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/teamtrack/backend/internal/model"
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// ListForUser returns the caller's inbox, newest first, capped at limit.
func (s *NotificationService) ListForUser(userID uint, limit int) ([]model.Notification, error) {
	var list []model.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").Limit(limit).Find(&list).Error
	return list, err
}

func (s *NotificationService) MarkRead(id, userID uint) error {
	result := s.db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40403:Notification not found")
	}
	return nil
}

// notify appends an inbox entry inside the caller's transaction so the
// notification lands atomically with the write that caused it.
func notify(tx *gorm.DB, n *model.Notification) error {
	return tx.Create(n).Error
}
