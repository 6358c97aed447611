package services

import (
	"time"

	"github.com/dhaval-dalia/personal-diet-tracker-master/config"
	"github.com/dhaval-dalia/personal-diet-tracker-master/models"

	"github.com/google/uuid"
)

type ChatService struct {
	hook *WebhookService
}

func NewChatService(hook *WebhookService) *ChatService {
	return &ChatService{hook: hook}
}

// SendMessage persists the user's message, relays it to the workflow engine
// and persists the assistant reply. The user message is kept even when the
// relay fails, so history reflects what was actually sent.
func (s *ChatService) SendMessage(userID uint, content string) (*models.ChatMessage, error) {
	userMsg := &models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      "user",
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := config.DB.Create(userMsg).Error; err != nil {
		return nil, err
	}

	reply, err := s.hook.SendChat(userID, content)
	if err != nil {
		return nil, err
	}

	assistantMsg := &models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      "assistant",
		Content:   reply,
		CreatedAt: time.Now(),
	}
	if err := config.DB.Create(assistantMsg).Error; err != nil {
		return nil, err
	}
	return assistantMsg, nil
}

func (s *ChatService) History(userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var msgs []models.ChatMessage
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
