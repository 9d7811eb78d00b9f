package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rental-marketplace/internal/catalog"
	repo "rental-marketplace/internal/catalog/repository"
	"rental-marketplace/internal/model"
	"rental-marketplace/internal/wanted"
)

// Publish stores a new listing for the caller, then notifies requesters whose
// open requests it satisfies. Matching failures never undo the listing.
func (uc *implUseCase) Publish(ctx context.Context, sc model.Scope, input catalog.PublishInput) (catalog.PublishOutput, error) {
	listing, err := uc.create(ctx, sc, input)
	if err != nil {
		return catalog.PublishOutput{}, err
	}

	return catalog.PublishOutput{
		Listing:       listing,
		Notifications: uc.runPublishMatch(ctx, listing),
	}, nil
}

// PublishForRequest stores a listing in answer to a specific wanted request.
// The requester is told directly, whether or not the heuristic agrees; other
// requesters are reached through the regular publish match.
func (uc *implUseCase) PublishForRequest(ctx context.Context, sc model.Scope, input catalog.PublishForRequestInput) (catalog.PublishOutput, error) {
	detail, err := uc.requests.Detail(ctx, input.RequestID)
	if err != nil {
		if errors.Is(err, wanted.ErrRequestNotFound) {
			return catalog.PublishOutput{}, catalog.ErrRequestNotFound
		}
		uc.l.Errorf(ctx, "uc.PublishForRequest requests.Detail: %v", err)
		return catalog.PublishOutput{}, err
	}
	req := detail.Request
	if req.RequesterID == sc.UserID {
		return catalog.PublishOutput{}, catalog.ErrSelfResponseForbidden
	}
	if req.Status != model.WantedOpen {
		return catalog.PublishOutput{}, catalog.ErrRequestNotOpen
	}

	listing, err := uc.create(ctx, sc, input.Listing)
	if err != nil {
		return catalog.PublishOutput{}, err
	}

	var sent []model.MatchNotification
	direct := model.MatchNotification{
		RecipientID: req.RequesterID,
		Kind:        model.NotificationRequestResponse,
		ListingID:   listing.ID,
		RequestID:   req.ID,
		Summary:     fmt.Sprintf("'%s' was listed for your '%s' request", listing.Name, req.Category),
	}
	if _, err := uc.sink.Enqueue(ctx, direct); err != nil {
		uc.l.Errorf(ctx, "uc.PublishForRequest sink.Enqueue: %v", err)
	} else {
		sent = append(sent, direct)
	}

	sent = append(sent, uc.runPublishMatch(ctx, listing, req.ID)...)
	return catalog.PublishOutput{Listing: listing, Notifications: sent}, nil
}

func (uc *implUseCase) create(ctx context.Context, sc model.Scope, input catalog.PublishInput) (model.Listing, error) {
	input.Name = strings.TrimSpace(input.Name)
	deposit := 0.0
	if input.SecurityDeposit != nil {
		deposit = *input.SecurityDeposit
	}
	if err := uc.validate(input.Name, input.PricePerDay, deposit); err != nil {
		return model.Listing{}, err
	}

	listing, err := uc.repo.CreateListing(ctx, repo.CreateListingOptions{
		OwnerID:         sc.UserID,
		Name:            input.Name,
		Description:     input.Description,
		Category:        strings.TrimSpace(input.Category),
		Size:            strings.TrimSpace(input.Size),
		Color:           strings.TrimSpace(input.Color),
		PricePerDay:     input.PricePerDay,
		SecurityDeposit: deposit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.create CreateListing: %v", err)
		return model.Listing{}, err
	}

	uc.l.Infof(ctx, "listing %s published by %s", listing.ID, listing.OwnerID)
	return listing, nil
}

// runPublishMatch is best-effort: a failed scan is logged and yields nothing.
func (uc *implUseCase) runPublishMatch(ctx context.Context, listing model.Listing, skipRequestIDs ...string) []model.MatchNotification {
	sent, err := uc.matcher.OnListingPublished(ctx, listing, skipRequestIDs...)
	if err != nil {
		uc.l.Errorf(ctx, "uc.runPublishMatch matcher.OnListingPublished: %v", err)
		return nil
	}
	return sent
}
