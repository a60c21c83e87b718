package dto

import (
	"time"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
)

// CreateMessageRequest representa a requisição para publicar uma mensagem
type CreateMessageRequest struct {
	Text string `json:"text" form:"text" binding:"required,max=140"`
}

// MessageResponse representa a resposta de uma mensagem
type MessageResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
}

// LikeResponse indica o estado do like após um toggle
type LikeResponse struct {
	MessageID string `json:"message_id"`
	Liked     bool   `json:"liked"`
}

// ToMessageResponse converte uma entidade Message
func ToMessageResponse(message *entities.Message) MessageResponse {
	return MessageResponse{
		ID:        message.ID,
		Text:      message.Text,
		Timestamp: message.Timestamp,
		UserID:    message.UserID,
	}
}

// ToMessageResponses converte uma lista de mensagens
func ToMessageResponses(messages []*entities.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = ToMessageResponse(message)
	}
	return responses
}
