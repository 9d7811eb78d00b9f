package usecase

import (
	"context"
	"strings"

	"rental-marketplace/internal/model"
	"rental-marketplace/internal/wanted"
	repo "rental-marketplace/internal/wanted/repository"
)

// Create opens a new wanted request for the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input wanted.CreateInput) (wanted.CreateOutput, error) {
	input.Category = strings.TrimSpace(input.Category)
	input.NeededFrom = truncatePtr(input.NeededFrom)
	input.NeededUntil = truncatePtr(input.NeededUntil)

	if err := uc.validate(input.Category, input.BudgetMin, input.BudgetMax, input.NeededFrom, input.NeededUntil); err != nil {
		return wanted.CreateOutput{}, err
	}

	req, err := uc.repo.CreateRequest(ctx, repo.CreateRequestOptions{
		RequesterID: sc.UserID,
		Category:    input.Category,
		Size:        strings.TrimSpace(input.Size),
		Color:       strings.TrimSpace(input.Color),
		Occasion:    strings.TrimSpace(input.Occasion),
		Description: input.Description,
		BudgetMin:   input.BudgetMin,
		BudgetMax:   input.BudgetMax,
		NeededFrom:  input.NeededFrom,
		NeededUntil: input.NeededUntil,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRequest: %v", err)
		return wanted.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "wanted request %s opened for category %q", req.ID, req.Category)
	return wanted.CreateOutput{Request: req}, nil
}
