// Package testutil reúne a infraestrutura compartilhada pelos testes de integração.
package testutil

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rafabene/warbler-backend/internal/infrastructure/persistence/postgres"
)

// OpenSQLite abre um banco SQLite em memória já migrado.
// Cada chamada devolve um banco isolado. Uma única conexão, então
// tudo que roda numa transação precisa usar o context dela.
func OpenSQLite() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), postgres.NewGormConfig("silent"))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	if err := postgres.AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// CloseDB fecha a conexão subjacente
func CloseDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
