package usecase

import (
	"context"

	"rental-marketplace/internal/model"
	"rental-marketplace/internal/notification"
	repo "rental-marketplace/internal/notification/repository"
)

// List returns the caller's inbox together with the unread count.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input notification.ListInput) (notification.ListOutput, error) {
	items, err := uc.repo.ListNotifications(ctx, repo.ListNotificationsOptions{
		RecipientID: sc.UserID,
		UnreadOnly:  input.UnreadOnly,
		Limit:       input.Limit,
		Offset:      input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListNotifications: %v", err)
		return notification.ListOutput{}, err
	}

	unread, err := uc.UnreadCount(ctx, sc)
	if err != nil {
		return notification.ListOutput{}, err
	}

	return notification.ListOutput{
		Notifications: items,
		Unread:        unread,
		Limit:         input.Limit,
		Offset:        input.Offset,
	}, nil
}

func (uc *implUseCase) UnreadCount(ctx context.Context, sc model.Scope) (int, error) {
	count, err := uc.repo.CountNotifications(ctx, repo.CountNotificationsOptions{RecipientID: sc.UserID, UnreadOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UnreadCount CountNotifications: %v", err)
		return 0, err
	}
	return count, nil
}

// MarkRead returns ErrNotificationNotFound for ids outside the caller's inbox.
func (uc *implUseCase) MarkRead(ctx context.Context, sc model.Scope, id string) error {
	ok, err := uc.repo.MarkRead(ctx, repo.MarkReadOptions{ID: id, RecipientID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkRead MarkRead: %v", err)
		return err
	}
	if !ok {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func (uc *implUseCase) MarkAllRead(ctx context.Context, sc model.Scope) (int, error) {
	count, err := uc.repo.MarkAllRead(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkAllRead MarkAllRead: %v", err)
		return 0, err
	}
	return count, nil
}
