package usecase

import (
	"context"

	"rental-marketplace/internal/model"
	"rental-marketplace/internal/notification"
	repo "rental-marketplace/internal/notification/repository"
)

var defaultTitles = map[model.NotificationKind]string{
	model.NotificationListingMatch:    "New listing matches your request",
	model.NotificationRequestResponse: "A listing was published for your request",
}

// Enqueue stores the notification and pushes it to the recipient's channel.
// Publisher failures are logged only; the inbox entry is the source of truth.
func (uc *implUseCase) Enqueue(ctx context.Context, n model.MatchNotification) (model.Notification, error) {
	if n.RecipientID == "" {
		return model.Notification{}, notification.ErrMissingRecipient
	}

	title := n.Title
	if title == "" {
		title = defaultTitles[n.Kind]
	}

	stored, err := uc.repo.CreateNotification(ctx, repo.CreateNotificationOptions{
		RecipientID: n.RecipientID,
		Kind:        n.Kind,
		Title:       title,
		Message:     n.Summary,
		ListingID:   n.ListingID,
		RequestID:   n.RequestID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Enqueue CreateNotification: %v", err)
		return model.Notification{}, err
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, stored); err != nil {
			uc.l.Warnf(ctx, "uc.Enqueue Publish: %v", err)
		}
	}

	return stored, nil
}
