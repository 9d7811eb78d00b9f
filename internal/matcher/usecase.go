package matcher

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"rental-marketplace/internal/model"
	wantedRepo "rental-marketplace/internal/wanted/repository"
)

// OnListingPublished scans open requests from everyone except the owner.
// A failing candidate is logged and skipped; only the scan itself can fail.
func (uc *usecase) OnListingPublished(ctx context.Context, listing model.Listing, skipRequestIDs ...string) ([]model.MatchNotification, error) {
	ctx, span := uc.tracer.Start(ctx, "matcher.OnListingPublished")
	defer span.End()
	span.SetAttributes(attribute.String("listing.id", listing.ID))

	candidates, err := uc.requests.ListRequests(ctx, wantedRepo.ListRequestsOptions{
		ExcludeRequesterID: listing.OwnerID,
		Status:             model.WantedOpen,
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list open requests: %w", err)
	}

	skip := make(map[string]struct{}, len(skipRequestIDs))
	for _, id := range skipRequestIDs {
		skip[id] = struct{}{}
	}

	notified := make([]model.MatchNotification, 0)
	for _, req := range candidates {
		if _, ok := skip[req.ID]; ok {
			continue
		}
		ok, reason := Matches(req, listing)
		if !ok {
			uc.l.Debugf(ctx, "listing %s does not match request %s: %s", listing.ID, req.ID, reason)
			continue
		}

		n := model.MatchNotification{
			RecipientID: req.RequesterID,
			Kind:        model.NotificationListingMatch,
			ListingID:   listing.ID,
			RequestID:   req.ID,
			Title:       "New listing matches your request",
			Summary:     fmt.Sprintf("'%s' matches your '%s' request", listing.Name, req.Category),
		}
		if _, err := uc.sink.Enqueue(ctx, n); err != nil {
			uc.l.Errorf(ctx, "Failed to notify requester of request %s: %v", req.ID, err)
			continue
		}
		notified = append(notified, n)
	}

	span.SetAttributes(
		attribute.Int("matcher.candidates", len(candidates)),
		attribute.Int("matcher.notified", len(notified)),
	)
	uc.l.Infof(ctx, "Listing %s matched %d of %d open request(s)", listing.ID, len(notified), len(candidates))
	return notified, nil
}

// OnReservationCreated fulfils the renter's own matching open requests.
// The transition is a compare-and-set, so a request closed concurrently is left alone.
func (uc *usecase) OnReservationCreated(ctx context.Context, reservation model.Reservation, listing model.Listing) (RetireOutput, error) {
	ctx, span := uc.tracer.Start(ctx, "matcher.OnReservationCreated")
	defer span.End()
	span.SetAttributes(
		attribute.String("reservation.id", reservation.ID),
		attribute.String("listing.id", listing.ID),
	)

	candidates, err := uc.requests.ListRequests(ctx, wantedRepo.ListRequestsOptions{
		RequesterID: reservation.RenterID,
		Status:      model.WantedOpen,
	})
	if err != nil {
		span.RecordError(err)
		return RetireOutput{}, fmt.Errorf("failed to list renter requests: %w", err)
	}

	var out RetireOutput
	for _, req := range candidates {
		if ok, _ := Matches(req, listing); !ok {
			continue
		}

		updated, err := uc.requests.UpdateRequestStatus(ctx, wantedRepo.UpdateRequestStatusOptions{
			ID:                 req.ID,
			From:               model.WantedOpen,
			To:                 model.WantedFulfilled,
			FulfilledByListing: listing.ID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "Failed to fulfil request %s: %v", req.ID, err)
			out.Failed++
			continue
		}
		if updated.ID == "" {
			continue
		}
		out.Fulfilled = append(out.Fulfilled, req.ID)
	}

	span.SetAttributes(attribute.Int("matcher.fulfilled", len(out.Fulfilled)))
	if len(out.Fulfilled) > 0 {
		uc.l.Infof(ctx, "Reservation %s fulfilled %d request(s)", reservation.ID, len(out.Fulfilled))
	}
	return out, nil
}
