package entities

import (
	"errors"
	"time"
)

var (
	ErrSelfFollow = errors.New("a user cannot follow itself")
)

// Follow é a aresta follower -> followed
type Follow struct {
	FollowerID string
	FollowedID string
	CreatedAt  time.Time
}

// NewFollow cria uma aresta de follow
func NewFollow(followerID, followedID string) *Follow {
	return &Follow{FollowerID: followerID, FollowedID: followedID}
}

// Validate rejeita arestas incompletas e self-follow
func (f *Follow) Validate() error {
	if f.FollowerID == "" || f.FollowedID == "" {
		return errors.New("follower and followed are required")
	}
	if f.FollowerID == f.FollowedID {
		return ErrSelfFollow
	}
	return nil
}

// Like é a aresta usuário -> mensagem curtida
type Like struct {
	ID        string
	UserID    string
	MessageID string
	CreatedAt time.Time
}

// NewLike cria uma aresta de like
func NewLike(userID, messageID string) *Like {
	return &Like{UserID: userID, MessageID: messageID}
}
