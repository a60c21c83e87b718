package services

import (
	"context"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
	"github.com/rafabene/warbler-backend/internal/domain/ports"
)

// SessionService abre e fecha sessões em cima do AccountService
type SessionService struct {
	accounts *AccountService
	store    ports.SessionStore
	tokens   ports.TokenIssuer
	logger   ports.Logger
}

// NewSessionService cria um novo SessionService
func NewSessionService(
	accounts *AccountService,
	store ports.SessionStore,
	tokens ports.TokenIssuer,
	logger ports.Logger,
) *SessionService {
	return &SessionService{
		accounts: accounts,
		store:    store,
		tokens:   tokens,
		logger:   logger.With("service", "sessions"),
	}
}

// LoginResult é o resultado de um login bem sucedido
type LoginResult struct {
	User    *entities.User
	Session *ports.Session
	Token   string
}

// Login autentica e cria a sessão. Falha de credencial retorna ErrInvalidCredentials.
func (s *SessionService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.accounts.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	session, err := s.store.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(session)
	if err != nil {
		_ = s.store.Destroy(ctx, session.ID)
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &LoginResult{User: user, Session: session, Token: token}, nil
}

// Resolve valida o token e devolve o ID do usuário da sessão ativa
func (s *SessionService) Resolve(ctx context.Context, token string) (string, error) {
	sessionID, userID, err := s.tokens.Parse(token)
	if err != nil {
		return "", domainerrors.ErrUnauthorized
	}

	session, err := s.store.Get(ctx, sessionID)
	if err != nil || session.UserID != userID {
		return "", domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// Logout encerra a sessão do token. Token inválido ou ausente não é erro.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	sessionID, userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}

	if err := s.store.Destroy(ctx, sessionID); err != nil {
		return err
	}

	s.logger.Info("user logged out", "user_id", userID)
	return nil
}
