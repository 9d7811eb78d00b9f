package sqlite

import (
	"database/sql"
	"fmt"

	"rental-marketplace/internal/notification/repository"
	"rental-marketplace/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed notification inbox.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("notification/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("notification/repository/sqlite.%s", method)
}
