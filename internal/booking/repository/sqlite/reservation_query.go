package sqlite

import (
	"fmt"
	"strings"
	"time"

	repo "rental-marketplace/internal/booking/repository"
	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/datemath"
)

var reservationFields = []string{
	"id", "listing_id", "renter_id", "start_date", "end_date", "total_days",
	"total_price", "security_deposit", "status", "created_at", "updated_at",
}

var reservationColumns = strings.Join(reservationFields, ", ")

// prefixed qualifies every reservation column with alias.
func prefixed(alias string) string {
	cols := make([]string, len(reservationFields))
	for i, f := range reservationFields {
		cols[i] = alias + "." + f
	}
	return strings.Join(cols, ", ")
}

// buildListQuery builds the FROM source and the WHERE + ORDER clause for
// ListReservations. The listings join is only added for the owner filter.
func (r *implRepository) buildListQuery(opt repo.ListReservationsOptions) (string, string, []any) {
	from := "reservations r"
	var conditions []string
	var args []any

	if opt.OwnerID != "" {
		from += " JOIN listings l ON l.id = r.listing_id"
		conditions = append(conditions, "l.owner_id = ?")
		args = append(args, opt.OwnerID)
	}
	if opt.ListingID != "" {
		conditions = append(conditions, "r.listing_id = ?")
		args = append(args, opt.ListingID)
	}
	if opt.RenterID != "" {
		conditions = append(conditions, "r.renter_id = ?")
		args = append(args, opt.RenterID)
	}
	if len(opt.Statuses) > 0 {
		placeholders := make([]string, len(opt.Statuses))
		for i, s := range opt.Statuses {
			placeholders[i] = "?"
			args = append(args, string(s))
		}
		conditions = append(conditions, fmt.Sprintf("r.status IN (%s)", strings.Join(placeholders, ", ")))
	}

	var parts []string
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	if opt.NewestFirst {
		parts = append(parts, "ORDER BY r.created_at DESC, r.id")
	} else {
		parts = append(parts, "ORDER BY r.listing_id, r.start_date, r.id")
	}

	return from, strings.Join(parts, " "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (model.Reservation, error) {
	var (
		res                  model.Reservation
		start, end, status   string
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&res.ID, &res.ListingID, &res.RenterID, &start, &end, &res.TotalDays,
		&res.TotalPrice, &res.SecurityDeposit, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Reservation{}, err
	}

	if res.StartDate, err = datemath.ParseISO(start); err != nil {
		return model.Reservation{}, fmt.Errorf("parse start date %q: %w", start, err)
	}
	if res.EndDate, err = datemath.ParseISO(end); err != nil {
		return model.Reservation{}, fmt.Errorf("parse end date %q: %w", end, err)
	}
	res.Status = model.ReservationStatus(status)
	res.CreatedAt = time.UnixMilli(createdAt).UTC()
	res.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return res, nil
}
