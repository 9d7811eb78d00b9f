package usecase

import (
	"context"

	"rental-marketplace/internal/model"
	"rental-marketplace/internal/wanted"
	repo "rental-marketplace/internal/wanted/repository"
)

// ListOpen returns other users' requests, open ones unless a status is given.
func (uc *implUseCase) ListOpen(ctx context.Context, sc model.Scope, input wanted.ListOpenInput) (wanted.ListOutput, error) {
	status := model.WantedOpen
	if input.Status != "" {
		status = model.WantedStatus(input.Status)
		if status != model.WantedOpen && status != model.WantedFulfilled && status != model.WantedCancelled {
			return wanted.ListOutput{}, wanted.ErrInvalidStatus
		}
	}

	requests, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{
		ExcludeRequesterID: sc.UserID,
		Status:             status,
		Limit:              input.Limit,
		Offset:             input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOpen ListRequests: %v", err)
		return wanted.ListOutput{}, err
	}

	return wanted.ListOutput{Requests: requests, Limit: input.Limit, Offset: input.Offset}, nil
}

// ListMine returns every request the caller opened, newest first.
func (uc *implUseCase) ListMine(ctx context.Context, sc model.Scope) (wanted.ListOutput, error) {
	requests, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{RequesterID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMine ListRequests: %v", err)
		return wanted.ListOutput{}, err
	}
	return wanted.ListOutput{Requests: requests}, nil
}
