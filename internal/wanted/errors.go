package wanted

import "errors"

var (
	ErrRequestNotFound  = errors.New("wanted request not found")
	ErrCategoryRequired = errors.New("category is required")
	ErrInvalidBudget    = errors.New("budget min must not exceed budget max")
	ErrNegativeBudget   = errors.New("budget must not be negative")
	ErrInvalidWindow    = errors.New("needed until must not be before needed from")
	ErrInvalidStatus    = errors.New("invalid request status")
	ErrNotAuthorized    = errors.New("not the requester")
	ErrRequestClosed    = errors.New("request is no longer open")
	ErrUnknownField     = errors.New("field cannot be cleared")
)
