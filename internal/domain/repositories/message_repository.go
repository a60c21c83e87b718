package repositories

import (
	"context"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
)

// MessageRepository define a interface para persistência de mensagens
type MessageRepository interface {
	Create(ctx context.Context, message *entities.Message) error
	FindByID(ctx context.Context, id string) (*entities.Message, error)
	// ListByUser retorna as mensagens do autor, mais recentes primeiro
	ListByUser(ctx context.Context, userID string) ([]*entities.Message, error)
	// ListByAuthors retorna as mensagens mais recentes de qualquer um dos autores
	ListByAuthors(ctx context.Context, userIDs []string, limit int) ([]*entities.Message, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entities.Message, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}
