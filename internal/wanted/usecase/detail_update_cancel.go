package usecase

import (
	"context"

	"rental-marketplace/internal/model"
	"rental-marketplace/internal/wanted"
	repo "rental-marketplace/internal/wanted/repository"
)

// Detail retrieves a single request. Returns ErrRequestNotFound when absent.
func (uc *implUseCase) Detail(ctx context.Context, id string) (wanted.DetailOutput, error) {
	req, err := uc.getRequest(ctx, id)
	if err != nil {
		return wanted.DetailOutput{}, err
	}
	return wanted.DetailOutput{Request: req}, nil
}

// Update rewrites an open request owned by the caller. Fields left empty keep
// their stored value; input.Clear resets optional fields.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input wanted.UpdateInput) (wanted.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return wanted.UpdateOutput{}, err
	}
	if existing.Status != model.WantedOpen {
		return wanted.UpdateOutput{}, wanted.ErrRequestClosed
	}

	opt := repo.UpdateRequestOptions{
		ID:          existing.ID,
		Category:    uc.coalesce(input.Category, existing.Category),
		Size:        uc.coalesce(input.Size, existing.Size),
		Color:       uc.coalesce(input.Color, existing.Color),
		Occasion:    uc.coalesce(input.Occasion, existing.Occasion),
		Description: uc.coalesce(input.Description, existing.Description),
		BudgetMin:   coalesceFloat(input.BudgetMin, existing.BudgetMin),
		BudgetMax:   coalesceFloat(input.BudgetMax, existing.BudgetMax),
		NeededFrom:  coalesceDate(truncatePtr(input.NeededFrom), existing.NeededFrom),
		NeededUntil: coalesceDate(truncatePtr(input.NeededUntil), existing.NeededUntil),
	}
	if err := applyClears(&opt, input.Clear); err != nil {
		return wanted.UpdateOutput{}, err
	}
	if err := uc.validate(opt.Category, opt.BudgetMin, opt.BudgetMax, opt.NeededFrom, opt.NeededUntil); err != nil {
		return wanted.UpdateOutput{}, err
	}

	req, err := uc.repo.UpdateRequest(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateRequest: %v", err)
		return wanted.UpdateOutput{}, err
	}
	if req.ID == "" {
		// closed between the read and the write
		return wanted.UpdateOutput{}, wanted.ErrRequestClosed
	}
	return wanted.UpdateOutput{Request: req}, nil
}

// Cancel closes an open request owned by the caller.
func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope, id string) (wanted.CancelOutput, error) {
	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return wanted.CancelOutput{}, err
	}
	if existing.Status != model.WantedOpen {
		return wanted.CancelOutput{}, wanted.ErrRequestClosed
	}

	req, err := uc.repo.UpdateRequestStatus(ctx, repo.UpdateRequestStatusOptions{
		ID:   existing.ID,
		From: model.WantedOpen,
		To:   model.WantedCancelled,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Cancel UpdateRequestStatus: %v", err)
		return wanted.CancelOutput{}, err
	}
	if req.ID == "" {
		return wanted.CancelOutput{}, wanted.ErrRequestClosed
	}
	return wanted.CancelOutput{Request: req}, nil
}

func (uc *implUseCase) getRequest(ctx context.Context, id string) (model.WantedRequest, error) {
	req, err := uc.repo.GetOneRequest(ctx, repo.GetOneRequestOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getRequest GetOneRequest: %v", err)
		return model.WantedRequest{}, err
	}
	if req.ID == "" {
		return model.WantedRequest{}, wanted.ErrRequestNotFound
	}
	return req, nil
}

// getOwned loads a request that must belong to the scoped user.
// An anonymous scope owns nothing.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (model.WantedRequest, error) {
	if sc.UserID == "" {
		return model.WantedRequest{}, wanted.ErrNotAuthorized
	}
	req, err := uc.getRequest(ctx, id)
	if err != nil {
		return model.WantedRequest{}, err
	}
	if req.RequesterID != sc.UserID {
		return model.WantedRequest{}, wanted.ErrNotAuthorized
	}
	return req, nil
}
