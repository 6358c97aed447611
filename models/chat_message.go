package models

import "time"

type ChatMessage struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"` // uuid
	UserID    uint      `gorm:"index;not null"`
	Role      string    `gorm:"size:10"` // "user"|"assistant"
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
}
