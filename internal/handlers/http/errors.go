package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
	"github.com/rafabene/warbler-backend/internal/handlers/dto"
)

// writeError converte erros de domínio em respostas RFC 7807
func writeError(c *gin.Context, err error) {
	var domainErr *domainerrors.DomainError

	switch {
	case domainerrors.IsConstraintViolation(err):
		dto.WriteProblem(c, dto.ConflictErrorResponseI18n(c, domainerrors.ErrConstraintViolation.Error()))
	case errors.Is(err, domainerrors.ErrUserNotFound):
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "User"))
	case errors.Is(err, domainerrors.ErrMessageNotFound):
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "Message"))
	case errors.Is(err, domainerrors.ErrLikeNotFound):
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "Like"))
	case errors.Is(err, domainerrors.ErrNotFollowing):
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "Follow"))
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		dto.WriteProblem(c, dto.UnauthorizedErrorResponseI18n(c, domainerrors.ErrInvalidCredentials.Error()))
	case errors.Is(err, domainerrors.ErrUnauthorized):
		dto.WriteProblem(c, dto.UnauthorizedErrorResponseI18n(c, "error.unauthorized.detail"))
	case errors.Is(err, domainerrors.ErrForbidden):
		dto.WriteProblem(c, dto.ForbiddenErrorResponseI18n(c))
	case errors.Is(err, domainerrors.ErrCannotFollowSelf),
		errors.Is(err, domainerrors.ErrCannotLikeOwnMessage):
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, err.Error()))
	case errors.As(err, &domainErr) && domainErr.Type == domainerrors.ProblemTypeValidation:
		response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{{
			Field:   strings.TrimPrefix(domainErr.Title, "error.invalid_"),
			Message: dto.TError(c, domainErr.Err) + ": " + domainErr.Message,
			Tag:     domainErr.Title,
		}})
		dto.WriteProblem(c, response)
	default:
		_ = c.Error(err)
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
	}
}

// writeBindingError responde 400 com os campos inválidos
func writeBindingError(c *gin.Context, err error) {
	dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
}
