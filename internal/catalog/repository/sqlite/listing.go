package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	repo "rental-marketplace/internal/catalog/repository"
	"rental-marketplace/internal/model"
)

const listingColumns = `id, owner_id, name, description, category, size, color,
	price_per_day, security_deposit, is_available, created_at, updated_at`

// CreateListing inserts a new available listing.
func (r *implRepository) CreateListing(ctx context.Context, opt repo.CreateListingOptions) (model.Listing, error) {
	now := time.Now().UTC()
	listing := model.Listing{
		ID:              uuid.NewString(),
		OwnerID:         opt.OwnerID,
		Name:            opt.Name,
		Description:     opt.Description,
		Category:        opt.Category,
		Size:            opt.Size,
		Color:           opt.Color,
		PricePerDay:     opt.PricePerDay,
		SecurityDeposit: opt.SecurityDeposit,
		IsAvailable:     true,
		CreatedAt:       now.Truncate(time.Millisecond),
		UpdatedAt:       now.Truncate(time.Millisecond),
	}

	const query = `INSERT INTO listings (` + listingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		listing.ID, listing.OwnerID, listing.Name, listing.Description, listing.Category, listing.Size, listing.Color,
		listing.PricePerDay, listing.SecurityDeposit, boolToInt(listing.IsAvailable), now.UnixMilli(), now.UnixMilli(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateListing"), err)
		return model.Listing{}, repo.ErrFailedToInsert
	}
	return listing, nil
}

// GetOneListing returns a zero value when the listing does not exist.
func (r *implRepository) GetOneListing(ctx context.Context, opt repo.GetOneListingOptions) (model.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = ? LIMIT 1`
	listing, err := scanListing(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Listing{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneListing"), err)
		return model.Listing{}, repo.ErrFailedToGet
	}
	return listing, nil
}

// ListListings returns listings newest first.
func (r *implRepository) ListListings(ctx context.Context, opt repo.ListListingsOptions) ([]model.Listing, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM listings %s`, listingColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListListings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var listings []model.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListListings"), err)
			return nil, repo.ErrFailedToList
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListListings"), err)
		return nil, repo.ErrFailedToList
	}
	return listings, nil
}

// UpdateListing rewrites the mutable fields. Returns a zero value when the
// listing does not exist.
func (r *implRepository) UpdateListing(ctx context.Context, opt repo.UpdateListingOptions) (model.Listing, error) {
	const query = `
		UPDATE listings
		SET name = ?, description = ?, category = ?, size = ?, color = ?,
			price_per_day = ?, security_deposit = ?, is_available = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Name, opt.Description, opt.Category, opt.Size, opt.Color,
		opt.PricePerDay, opt.SecurityDeposit, boolToInt(opt.IsAvailable), time.Now().UTC().UnixMilli(), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateListing"), err)
		return model.Listing{}, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateListing"), err)
		return model.Listing{}, repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return model.Listing{}, nil
	}
	return r.GetOneListing(ctx, repo.GetOneListingOptions{ID: opt.ID})
}
