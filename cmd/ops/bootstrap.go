package main

import (
	"context"
	"fmt"

	"rental-marketplace/config"
	"rental-marketplace/internal/booking"
	bookingUC "rental-marketplace/internal/booking/usecase"
	"rental-marketplace/internal/catalog"
	catalogUC "rental-marketplace/internal/catalog/usecase"
	"rental-marketplace/internal/matcher"
	notificationUC "rental-marketplace/internal/notification/usecase"
	"rental-marketplace/internal/storage"
	wantedUC "rental-marketplace/internal/wanted/usecase"
	"rental-marketplace/pkg/log"
)

// env is what every command needs after start-up.
type env struct {
	cfg     *config.Config
	l       log.Logger
	repos   storage.Repositories
	closeDB func() error
}

func bootstrap(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	repos, closeDB, err := storage.Open(ctx, cfg.Database, l)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &env{cfg: cfg, l: l, repos: repos, closeDB: closeDB}, nil
}

func (e *env) close(ctx context.Context) {
	if err := e.closeDB(); err != nil {
		e.l.Warnf(ctx, "Database close: %v", err)
	}
}

// usecases builds the same domain graph as the HTTP server, without
// realtime fan-out.
func (e *env) usecases() (catalog.UseCase, matcher.UseCase, booking.UseCase) {
	notifications := notificationUC.New(e.repos.Notification, nil, e.l)
	requests := wantedUC.New(e.repos.Wanted, e.l)
	match := matcher.New(e.repos.Wanted, notifications, e.l)
	listings := catalogUC.New(e.repos.Catalog, requests, match, notifications, e.l)
	bookings := bookingUC.New(e.repos.Booking, listings, match, e.l)
	return listings, match, bookings
}
