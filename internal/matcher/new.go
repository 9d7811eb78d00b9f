package matcher

import (
	"go.opentelemetry.io/otel/trace"

	"rental-marketplace/internal/notification"
	wantedRepo "rental-marketplace/internal/wanted/repository"
	pkgLog "rental-marketplace/pkg/log"
	"rental-marketplace/pkg/tracing"
)

func New(
	requests wantedRepo.Repository,
	sink notification.Sink,
	l pkgLog.Logger,
) UseCase {
	return &usecase{
		requests: requests,
		sink:     sink,
		l:        l,
		tracer:   tracing.Tracer("rental-marketplace/matcher"),
	}
}

type usecase struct {
	requests wantedRepo.Repository
	sink     notification.Sink
	l        pkgLog.Logger
	tracer   trace.Tracer
}
