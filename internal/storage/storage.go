// Package storage opens the configured database and builds every domain
// repository on top of it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"rental-marketplace/config"
	"rental-marketplace/config/postgre"
	"rental-marketplace/config/sqlite"
	bookingRepo "rental-marketplace/internal/booking/repository"
	bookingPostgre "rental-marketplace/internal/booking/repository/postgre"
	bookingSQLite "rental-marketplace/internal/booking/repository/sqlite"
	catalogRepo "rental-marketplace/internal/catalog/repository"
	catalogPostgre "rental-marketplace/internal/catalog/repository/postgre"
	catalogSQLite "rental-marketplace/internal/catalog/repository/sqlite"
	notificationRepo "rental-marketplace/internal/notification/repository"
	notificationPostgre "rental-marketplace/internal/notification/repository/postgre"
	notificationSQLite "rental-marketplace/internal/notification/repository/sqlite"
	wantedRepo "rental-marketplace/internal/wanted/repository"
	wantedPostgre "rental-marketplace/internal/wanted/repository/postgre"
	wantedSQLite "rental-marketplace/internal/wanted/repository/sqlite"
	"rental-marketplace/migrations"
	"rental-marketplace/pkg/log"
)

// Repositories is the full set of domain repositories over one database.
type Repositories struct {
	Catalog      catalogRepo.Repository
	Wanted       wantedRepo.Repository
	Booking      bookingRepo.Repository
	Notification notificationRepo.Repository
}

// NewSQLite builds the repositories over a migrated SQLite handle.
func NewSQLite(db *sql.DB, l log.Logger) Repositories {
	return Repositories{
		Catalog:      catalogSQLite.New(db, l),
		Wanted:       wantedSQLite.New(db, l),
		Booking:      bookingSQLite.New(db, l),
		Notification: notificationSQLite.New(db, l),
	}
}

// NewPostgres builds the repositories over a migrated Postgres handle.
func NewPostgres(db *gorm.DB, l log.Logger) Repositories {
	return Repositories{
		Catalog:      catalogPostgre.New(db, l),
		Wanted:       wantedPostgre.New(db, l),
		Booking:      bookingPostgre.New(db, l),
		Notification: notificationPostgre.New(db, l),
	}
}

// Open connects to the configured driver, applies pending migrations and
// returns the repositories with a close func for the underlying handle.
func Open(ctx context.Context, cfg config.DatabaseConfig, l log.Logger) (Repositories, func() error, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Connect(ctx, cfg.SQLitePath)
		if err != nil {
			return Repositories{}, nil, err
		}
		if err := migrations.ApplySQLite(ctx, db); err != nil {
			_ = sqlite.Disconnect(db)
			return Repositories{}, nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		l.Infof(ctx, "SQLite ready at %s", cfg.SQLitePath)
		return NewSQLite(db, l), func() error { return sqlite.Disconnect(db) }, nil

	case config.DriverPostgres:
		db, err := postgre.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return Repositories{}, nil, err
		}
		if err := migrations.ApplyPostgres(ctx, db); err != nil {
			_ = postgre.Disconnect(db)
			return Repositories{}, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		l.Info(ctx, "Postgres ready")
		return NewPostgres(db, l), func() error { return postgre.Disconnect(db) }, nil

	default:
		return Repositories{}, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
