package sqlite

import (
	"database/sql"
	"fmt"

	"rental-marketplace/internal/wanted/repository"
	"rental-marketplace/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the wanted domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("wanted/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("wanted/repository/sqlite.%s", method)
}
