package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate cria ou atualiza as tabelas de todos os models
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ResetSchema apaga e recria todas as tabelas (drop-all/create-all).
// Uso restrito a testes.
func ResetSchema(db *gorm.DB) error {
	models := AllModels()

	// Tabelas dependentes primeiro
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}

	return AutoMigrate(db)
}
