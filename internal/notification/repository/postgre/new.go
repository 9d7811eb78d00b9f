package postgre

import (
	"fmt"

	"gorm.io/gorm"

	"rental-marketplace/internal/notification/repository"
	"rental-marketplace/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed notification inbox.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("notification/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("notification/repository/postgre.%s", method)
}
