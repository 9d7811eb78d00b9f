package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrMissingRecipient     = errors.New("notification has no recipient")
)
