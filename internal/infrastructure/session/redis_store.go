package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rafabene/warbler-backend/internal/domain/ports"
)

const keyPrefix = "sess:"

var ErrSessionNotFound = errors.New("session not found or expired")

// RedisStore implementa ports.SessionStore.
// Cada sessão é uma chave sess:<id> com o ID do usuário e TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger ports.Logger
}

// NewRedisClient cria um client a partir de uma URL redis://
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// NewRedisStore cria um store de sessões
func NewRedisStore(client *redis.Client, ttl time.Duration, logger ports.Logger) ports.SessionStore {
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func (s *RedisStore) Create(ctx context.Context, userID string) (*ports.Session, error) {
	session := &ports.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.client.Set(ctx, keyPrefix+session.ID, userID, s.ttl).Err(); err != nil {
		s.logger.Error("failed to create session", "error", err, "user_id", userID)
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Debug("session created", "session_id", session.ID, "user_id", userID)
	return session, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*ports.Session, error) {
	key := keyPrefix + sessionID

	userID, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("get session ttl: %w", err)
	}

	return &ports.Session{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

// Destroy é idempotente: sessão inexistente não é erro
func (s *RedisStore) Destroy(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		s.logger.Error("failed to destroy session", "error", err, "session_id", sessionID)
		return fmt.Errorf("destroy session: %w", err)
	}

	s.logger.Debug("session destroyed", "session_id", sessionID)
	return nil
}
