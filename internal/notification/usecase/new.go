package usecase

import (
	"rental-marketplace/internal/notification"
	"rental-marketplace/internal/notification/repository"
	"rental-marketplace/pkg/log"
)

type implUseCase struct {
	repo      repository.Repository
	publisher notification.Publisher
	l         log.Logger
}

// New creates the notification UseCase. publisher may be nil when realtime
// fan-out is not configured.
func New(repo repository.Repository, publisher notification.Publisher, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		publisher: publisher,
		l:         l,
	}
}
