package usecase

import (
	"rental-marketplace/internal/catalog/repository"
	"rental-marketplace/internal/matcher"
	"rental-marketplace/internal/notification"
	"rental-marketplace/internal/wanted"
	"rental-marketplace/pkg/log"
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo     repository.Repository
	requests wanted.UseCase
	matcher  matcher.UseCase
	sink     notification.Sink
	l        log.Logger
}

// New creates a new catalog UseCase implementation.
func New(
	repo repository.Repository,
	requests wanted.UseCase,
	matcher matcher.UseCase,
	sink notification.Sink,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:     repo,
		requests: requests,
		matcher:  matcher,
		sink:     sink,
		l:        l,
	}
}
