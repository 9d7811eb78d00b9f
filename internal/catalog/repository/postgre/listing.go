package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	repo "rental-marketplace/internal/catalog/repository"
	"rental-marketplace/internal/model"
)

// CreateListing inserts a new available listing.
func (r *implRepository) CreateListing(ctx context.Context, opt repo.CreateListingOptions) (model.Listing, error) {
	now := time.Now().UTC()
	row := listingRow{
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
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateListing"), err)
		return model.Listing{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOneListing returns a zero value when the listing does not exist.
func (r *implRepository) GetOneListing(ctx context.Context, opt repo.GetOneListingOptions) (model.Listing, error) {
	var row listingRow
	err := r.db.WithContext(ctx).Where("id = ?", opt.ID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Listing{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneListing"), err)
		return model.Listing{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListListings returns listings newest first.
func (r *implRepository) ListListings(ctx context.Context, opt repo.ListListingsOptions) ([]model.Listing, error) {
	q := r.db.WithContext(ctx).Model(&listingRow{})
	if opt.OwnerID != "" {
		q = q.Where("owner_id = ?", opt.OwnerID)
	}
	if opt.Category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", opt.Category)
	}
	if opt.Available != nil {
		q = q.Where("is_available = ?", *opt.Available)
	}
	if opt.Limit > 0 {
		q = q.Limit(opt.Limit).Offset(opt.Offset)
	}

	var rows []listingRow
	if err := q.Order("created_at DESC, id").Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListListings"), err)
		return nil, repo.ErrFailedToList
	}

	listings := make([]model.Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, row.toModel())
	}
	return listings, nil
}

// UpdateListing rewrites the mutable fields. Returns a zero value when the
// listing does not exist.
func (r *implRepository) UpdateListing(ctx context.Context, opt repo.UpdateListingOptions) (model.Listing, error) {
	res := r.db.WithContext(ctx).Model(&listingRow{}).
		Where("id = ?", opt.ID).
		Updates(map[string]any{
			"name":             opt.Name,
			"description":      opt.Description,
			"category":         opt.Category,
			"size":             opt.Size,
			"color":            opt.Color,
			"price_per_day":    opt.PricePerDay,
			"security_deposit": opt.SecurityDeposit,
			"is_available":     opt.IsAvailable,
			"updated_at":       time.Now().UTC(),
		})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateListing"), res.Error)
		return model.Listing{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.Listing{}, nil
	}
	return r.GetOneListing(ctx, repo.GetOneListingOptions{ID: opt.ID})
}
