package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound         = errors.New("error.user_not_found")
	ErrMessageNotFound      = errors.New("error.message_not_found")
	ErrInvalidCredentials   = errors.New("error.invalid_credentials")
	ErrUnauthorized         = errors.New("error.unauthorized")
	ErrForbidden            = errors.New("error.forbidden")
	ErrCannotFollowSelf     = errors.New("error.cannot_follow_self")
	ErrNotFollowing         = errors.New("error.not_following")
	ErrCannotLikeOwnMessage = errors.New("error.cannot_like_own_message")
	ErrLikeNotFound         = errors.New("error.like_not_found")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrInvalidEmail   = errors.New("error.invalid_email")
	ErrInvalidInput   = errors.New("error.invalid_input")
	ErrInvalidMessage = errors.New("error.invalid_message")
)

// Persistence errors
// ErrConstraintViolation é o tipo "persistence constraint": unique ou FK rejeitado pelo banco.
// Nunca é repetido automaticamente; a transação precisa ser desfeita.
var (
	ErrConstraintViolation = errors.New("error.constraint_violation")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewConstraintError embrulha a falha do driver como violação de constraint.
// errors.Is(err, ErrConstraintViolation) continua verdadeiro e a causa original fica acessível.
func NewConstraintError(constraint string, cause error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeConflict,
		Title:   ErrConstraintViolation.Error(),
		Message: constraint,
		Err:     errors.Join(ErrConstraintViolation, cause),
	}
}

// NewValidationError embrulha uma falha de validação de entrada
func NewValidationError(kind error, cause error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeValidation,
		Title:   kind.Error(),
		Message: cause.Error(),
		Err:     kind,
	}
}

// IsConstraintViolation verifica se o erro é uma violação de constraint
func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}
