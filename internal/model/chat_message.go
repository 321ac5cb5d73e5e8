package model

import "time"

// ChatMessage is one entry of the append-only per-project chat log.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index:idx_chat_messages_project_id" json:"project_id"`
	SenderID  uint      `gorm:"not null" json:"sender_id"`
	Message   string    `gorm:"type:varchar(2048);not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`

	Sender *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

func (ChatMessage) TableName() string { return "chat_messages" }
