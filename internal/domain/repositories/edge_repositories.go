package repositories

import (
	"context"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
)

// FollowRepository é a tabela de junção follower -> followed.
// Add sobre um par existente devolve violação de constraint.
type FollowRepository interface {
	Add(ctx context.Context, follow *entities.Follow) error
	// Remove retorna false quando a aresta não existia
	Remove(ctx context.Context, followerID, followedID string) (bool, error)
	Exists(ctx context.Context, followerID, followedID string) (bool, error)
	FollowerIDs(ctx context.Context, userID string) ([]string, error)
	FollowingIDs(ctx context.Context, userID string) ([]string, error)
	// DeleteByUser apaga toda aresta em que o usuário aparece, de qualquer lado
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// LikeRepository é a tabela de junção usuário -> mensagem.
// Add sobre um par existente devolve violação de constraint.
type LikeRepository interface {
	Add(ctx context.Context, like *entities.Like) error
	Remove(ctx context.Context, userID, messageID string) (bool, error)
	Exists(ctx context.Context, userID, messageID string) (bool, error)
	MessageIDsByUser(ctx context.Context, userID string) ([]string, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	DeleteByMessage(ctx context.Context, messageID string) (int64, error)
	// DeleteOnMessagesOf apaga os likes feitos nas mensagens do autor
	DeleteOnMessagesOf(ctx context.Context, authorID string) (int64, error)
}
