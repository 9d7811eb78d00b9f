package usecase

import (
	"go.opentelemetry.io/otel/trace"

	"rental-marketplace/internal/booking/repository"
	"rental-marketplace/internal/catalog"
	"rental-marketplace/internal/matcher"
	"rental-marketplace/pkg/log"
	"rental-marketplace/pkg/tracing"
)

// implUseCase is the private implementation of booking.UseCase.
type implUseCase struct {
	repo     repository.Repository
	listings catalog.Lookup
	matcher  matcher.UseCase
	l        log.Logger
	tracer   trace.Tracer
}

// New creates a new booking UseCase implementation.
func New(repo repository.Repository, listings catalog.Lookup, matcher matcher.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		listings: listings,
		matcher:  matcher,
		l:        l,
		tracer:   tracing.Tracer("rental-marketplace/booking"),
	}
}
