package postgre

import (
	"fmt"

	"gorm.io/gorm"

	"rental-marketplace/internal/catalog/repository"
	"rental-marketplace/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for the catalog.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("catalog/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/postgre.%s", method)
}
