package catalog

import "errors"

var (
	ErrListingNotFound       = errors.New("listing not found")
	ErrNameRequired          = errors.New("name is required")
	ErrInvalidPrice          = errors.New("price per day must be positive")
	ErrNegativeDeposit       = errors.New("security deposit must not be negative")
	ErrNotAuthorized         = errors.New("not the listing owner")
	ErrRequestNotFound       = errors.New("wanted request not found")
	ErrRequestNotOpen        = errors.New("wanted request is no longer open")
	ErrSelfResponseForbidden = errors.New("cannot respond to your own request")
)
