package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
	"github.com/rafabene/warbler-backend/internal/domain/ports"
	"github.com/rafabene/warbler-backend/internal/domain/repositories"
	"github.com/rafabene/warbler-backend/internal/domain/valueobjects"
)

// AccountService cuida de cadastro e autenticação
type AccountService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	uow      ports.UnitOfWork
	logger   ports.Logger

	// hash comparado quando o username não existe
	fallbackHash string
}

// NewAccountService cria um novo AccountService.
// Falha se o hasher não consegue gerar o hash usado para usuários inexistentes.
func NewAccountService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	uow ports.UnitOfWork,
	logger ports.Logger,
) (*AccountService, error) {
	fallbackHash, err := hasher.Hash("warbler-unknown-account")
	if err != nil {
		return nil, fmt.Errorf("build fallback hash: %w", err)
	}

	return &AccountService{
		userRepo:     userRepo,
		hasher:       hasher,
		uow:          uow,
		logger:       logger.With("service", "accounts"),
		fallbackHash: fallbackHash,
	}, nil
}

// SignupInput representa os dados de cadastro
type SignupInput struct {
	Username string
	Email    string
	Password string
	ImageURL string
}

// Signup faz o hash da senha, monta o usuário e o grava na transação carregada por ctx.
// Não faz commit: quem chama decide (ver Register).
// Username ou email duplicado retorna ErrConstraintViolation.
func (s *AccountService) Signup(ctx context.Context, input SignupInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.ErrInvalidEmail, err)
	}

	if input.Password == "" {
		return nil, domainerrors.NewValidationError(domainerrors.ErrInvalidInput, errors.New("password is required"))
	}
	if len(input.Password) > entities.MaxPasswordBytes {
		return nil, domainerrors.NewValidationError(domainerrors.ErrInvalidInput, errors.New("password must be at most 72 bytes"))
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := entities.NewUser(input.Username, email, hash, input.ImageURL)
	if err := user.Validate(); err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.ErrInvalidInput, err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if domainerrors.IsConstraintViolation(err) {
			s.logger.Warn("signup rejected by constraint", "username", user.Username)
		}
		return nil, err
	}

	s.logger.Info("user signed up", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Register executa Signup em sua própria transação
func (s *AccountService) Register(ctx context.Context, input SignupInput) (*entities.User, error) {
	var user *entities.User

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		user, err = s.Signup(txCtx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifica username e senha.
// Usuário inexistente e senha errada retornam o mesmo ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}

	if user == nil {
		// Mesmo custo de bcrypt para não revelar se a conta existe
		_ = s.hasher.Compare(s.fallbackHash, password)
		s.logger.Info("authentication failed", "username", username)
		return nil, domainerrors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Info("authentication failed", "username", username)
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}
