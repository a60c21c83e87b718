package postgres

import (
	"strings"

	"github.com/google/uuid"
)

// Colunas uuid do Postgres rejeitam texto que não é UUID (SQLSTATE 22P02).
// Um ID malformado nunca casa uma linha, então é tratado como ausente antes da query.
func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}

// validIDs devolve apenas os IDs bem formados
func validIDs(ids []string) []string {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if isValidID(id) {
			valid = append(valid, id)
		}
	}
	return valid
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern monta o padrão LIKE de "contém", com curingas do usuário escapados
// e em minúsculas para comparar com LOWER(coluna)
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
}
