package sqlite

import (
	"strings"
	"time"

	repo "rental-marketplace/internal/catalog/repository"
	"rental-marketplace/internal/model"
)

// buildListQuery builds the WHERE + ORDER + LIMIT + OFFSET clause for ListListings.
func (r *implRepository) buildListQuery(opt repo.ListListingsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	if opt.OwnerID != "" {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, opt.OwnerID)
	}
	if opt.Category != "" {
		conditions = append(conditions, "category = ? COLLATE NOCASE")
		args = append(args, opt.Category)
	}
	if opt.Available != nil {
		conditions = append(conditions, "is_available = ?")
		args = append(args, boolToInt(*opt.Available))
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY created_at DESC, id")

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
		if opt.Offset > 0 {
			parts = append(parts, "OFFSET ?")
			args = append(args, opt.Offset)
		}
	}

	return strings.Join(parts, " "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (model.Listing, error) {
	var (
		listing              model.Listing
		available            int
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&listing.ID, &listing.OwnerID, &listing.Name, &listing.Description, &listing.Category, &listing.Size, &listing.Color,
		&listing.PricePerDay, &listing.SecurityDeposit, &available, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Listing{}, err
	}
	listing.IsAvailable = available != 0
	listing.CreatedAt = time.UnixMilli(createdAt).UTC()
	listing.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return listing, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
