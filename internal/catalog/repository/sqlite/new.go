package sqlite

import (
	"database/sql"
	"fmt"

	"rental-marketplace/internal/catalog/repository"
	"rental-marketplace/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the catalog.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("catalog/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/sqlite.%s", method)
}
