package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"rental-marketplace/internal/booking/repository"
	"rental-marketplace/pkg/log"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type implRepository struct {
	db *sql.DB
	q  querier
	l  log.Logger
}

// New creates a SQLite-backed Repository for bookings. The connection must
// be opened with _txlock=immediate so InListingTx takes the write lock up front.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("booking/repository/sqlite: db is required")
	}
	return &implRepository{db: db, q: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("booking/repository/sqlite.%s", method)
}
