package services

import (
	"context"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
	"github.com/rafabene/warbler-backend/internal/domain/ports"
	"github.com/rafabene/warbler-backend/internal/domain/repositories"
)

// DefaultTimelineLimit é o número de mensagens da home quando nenhum limite é pedido
const DefaultTimelineLimit = 100

// MessageService contém a lógica de mensagens e likes
type MessageService struct {
	userRepo    repositories.UserRepository
	messageRepo repositories.MessageRepository
	likeRepo    repositories.LikeRepository
	followRepo  repositories.FollowRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewMessageService cria um novo MessageService
func NewMessageService(
	userRepo repositories.UserRepository,
	messageRepo repositories.MessageRepository,
	likeRepo repositories.LikeRepository,
	followRepo repositories.FollowRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *MessageService {
	return &MessageService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		likeRepo:    likeRepo,
		followRepo:  followRepo,
		uow:         uow,
		logger:      logger.With("service", "messages"),
	}
}

// CreateMessage publica uma mensagem; o autor precisa existir
func (s *MessageService) CreateMessage(ctx context.Context, userID, text string) (*entities.Message, error) {
	message := entities.NewMessage(userID, text)
	if err := message.Validate(); err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.ErrInvalidMessage, err)
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		author, err := s.userRepo.FindByID(txCtx, userID)
		if err != nil {
			return err
		}
		if author == nil {
			return domainerrors.ErrUserNotFound
		}
		return s.messageRepo.Create(txCtx, message)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("message created", "message_id", message.ID, "user_id", userID)
	return message, nil
}

// GetMessage busca uma mensagem; ErrMessageNotFound se não existe
func (s *MessageService) GetMessage(ctx context.Context, id string) (*entities.Message, error) {
	message, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, domainerrors.ErrMessageNotFound
	}
	return message, nil
}

// UserMessages lista as mensagens do usuário, mais recentes primeiro
func (s *MessageService) UserMessages(ctx context.Context, userID string) ([]*entities.Message, error) {
	return s.messageRepo.ListByUser(ctx, userID)
}

// DeleteMessage apaga a mensagem do próprio usuário junto com seus likes
func (s *MessageService) DeleteMessage(ctx context.Context, userID, messageID string) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		message, err := s.messageRepo.FindByID(txCtx, messageID)
		if err != nil {
			return err
		}
		if message == nil {
			return domainerrors.ErrMessageNotFound
		}
		if !message.IsOwnedBy(userID) {
			return domainerrors.ErrForbidden
		}

		if _, err := s.likeRepo.DeleteByMessage(txCtx, messageID); err != nil {
			return err
		}
		return s.messageRepo.Delete(txCtx, messageID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("message deleted", "message_id", messageID, "user_id", userID)
	return nil
}

// AddLike cria exatamente um like. O segundo like do mesmo par retorna ErrConstraintViolation.
func (s *MessageService) AddLike(ctx context.Context, userID, messageID string) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.checkLikeable(txCtx, userID, messageID); err != nil {
			return err
		}
		return s.likeRepo.Add(txCtx, entities.NewLike(userID, messageID))
	})
	if err != nil {
		return err
	}

	s.logger.Info("message liked", "message_id", messageID, "user_id", userID)
	return nil
}

// RemoveLike desfaz o like; ErrLikeNotFound se ele não existe
func (s *MessageService) RemoveLike(ctx context.Context, userID, messageID string) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		removed, err := s.likeRepo.Remove(txCtx, userID, messageID)
		if err != nil {
			return err
		}
		if !removed {
			return domainerrors.ErrLikeNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("message unliked", "message_id", messageID, "user_id", userID)
	return nil
}

// ToggleLike curte se ainda não curtiu, descurte caso contrário.
// Retorna o estado final (true = curtida).
func (s *MessageService) ToggleLike(ctx context.Context, userID, messageID string) (bool, error) {
	var liked bool

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		removed, err := s.likeRepo.Remove(txCtx, userID, messageID)
		if err != nil {
			return err
		}
		if removed {
			liked = false
			return nil
		}

		if err := s.checkLikeable(txCtx, userID, messageID); err != nil {
			return err
		}
		liked = true
		return s.likeRepo.Add(txCtx, entities.NewLike(userID, messageID))
	})
	if err != nil {
		return false, err
	}

	s.logger.Info("message like toggled", "message_id", messageID, "user_id", userID, "liked", liked)
	return liked, nil
}

// Likes lista as mensagens curtidas pelo usuário
func (s *MessageService) Likes(ctx context.Context, userID string) ([]*entities.Message, error) {
	ids, err := s.likeRepo.MessageIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.messageRepo.ListByIDs(ctx, ids)
}

// Timeline retorna as mensagens mais recentes do usuário e de quem ele segue
func (s *MessageService) Timeline(ctx context.Context, userID string, limit int) ([]*entities.Message, error) {
	if limit <= 0 || limit > DefaultTimelineLimit {
		limit = DefaultTimelineLimit
	}

	following, err := s.followRepo.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	authors := append([]string{userID}, following...)
	return s.messageRepo.ListByAuthors(ctx, authors, limit)
}

func (s *MessageService) checkLikeable(ctx context.Context, userID, messageID string) error {
	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message == nil {
		return domainerrors.ErrMessageNotFound
	}
	if message.IsOwnedBy(userID) {
		return domainerrors.ErrCannotLikeOwnMessage
	}
	return nil
}
