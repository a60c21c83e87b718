package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
)

// translateError converte falhas de constraint do banco em ErrConstraintViolation.
// Demais erros passam inalterados.
func translateError(err error, constraint string) error {
	if err == nil {
		return nil
	}
	if isConstraintError(err) {
		return domainerrors.NewConstraintError(constraint, err)
	}
	return err
}

func isConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	// Fallback para drivers que não traduzem o erro
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "23503")
}
