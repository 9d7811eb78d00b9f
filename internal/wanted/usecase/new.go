package usecase

import (
	"rental-marketplace/internal/wanted/repository"
	"rental-marketplace/pkg/log"
)

// implUseCase is the private implementation of wanted.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new wanted UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
