package ports

import (
	"context"
	"time"
)

// PasswordHasher gera e verifica hashes de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Session representa uma sessão autenticada
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// SessionStore guarda sessões do lado do servidor
type SessionStore interface {
	Create(ctx context.Context, userID string) (*Session, error)
	Get(ctx context.Context, sessionID string) (*Session, error)
	Destroy(ctx context.Context, sessionID string) error
}

// TokenIssuer assina e valida o token enviado no cookie de sessão
type TokenIssuer interface {
	Issue(session *Session) (string, error)
	Parse(token string) (sessionID, userID string, err error)
}
