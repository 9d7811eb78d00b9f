package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToBegin  = errors.New("failed to begin transaction")
	ErrFailedToCommit = errors.New("failed to commit transaction")

	// ErrOverlap is returned when the store's overlap guard rejects a write.
	ErrOverlap = errors.New("reservation overlaps a live reservation")
	// ErrListingNotFound is returned by InListingTx for an unknown listing.
	ErrListingNotFound = errors.New("listing not found")
)
