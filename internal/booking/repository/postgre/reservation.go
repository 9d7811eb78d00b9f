package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	repo "rental-marketplace/internal/booking/repository"
	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/datemath"
)

// CreateReservation inserts a priced reservation. An exclusion violation
// turns into ErrOverlap.
func (r *implRepository) CreateReservation(ctx context.Context, opt repo.CreateReservationOptions) (model.Reservation, error) {
	now := time.Now().UTC()
	row := reservationRow{
		ID:              uuid.NewString(),
		ListingID:       opt.ListingID,
		RenterID:        opt.RenterID,
		StartDate:       datemath.Truncate(opt.StartDate),
		EndDate:         datemath.Truncate(opt.EndDate),
		TotalDays:       opt.TotalDays,
		TotalPrice:      opt.TotalPrice,
		SecurityDeposit: opt.SecurityDeposit,
		Status:          string(opt.Status),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isExclusionViolation(err) {
			r.l.Warnf(ctx, "%s: overlap guard rejected %s on listing %s", r.dsn("CreateReservation"),
				datemath.NewRange(row.StartDate, row.EndDate), row.ListingID)
			return model.Reservation{}, repo.ErrOverlap
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReservation"), err)
		return model.Reservation{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOneReservation returns a zero value when the reservation does not exist.
func (r *implRepository) GetOneReservation(ctx context.Context, opt repo.GetOneReservationOptions) (model.Reservation, error) {
	var row reservationRow
	err := r.db.WithContext(ctx).Where("id = ?", opt.ID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Reservation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneReservation"), err)
		return model.Reservation{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListReservations returns reservations matching opt.
func (r *implRepository) ListReservations(ctx context.Context, opt repo.ListReservationsOptions) ([]model.Reservation, error) {
	q := r.db.WithContext(ctx).Model(&reservationRow{}).Select("reservations.*")
	if opt.OwnerID != "" {
		q = q.Joins("JOIN listings ON listings.id = reservations.listing_id").
			Where("listings.owner_id = ?", opt.OwnerID)
	}
	if opt.ListingID != "" {
		q = q.Where("reservations.listing_id = ?", opt.ListingID)
	}
	if opt.RenterID != "" {
		q = q.Where("reservations.renter_id = ?", opt.RenterID)
	}
	if len(opt.Statuses) > 0 {
		statuses := make([]string, len(opt.Statuses))
		for i, s := range opt.Statuses {
			statuses[i] = string(s)
		}
		q = q.Where("reservations.status IN ?", statuses)
	}
	if opt.NewestFirst {
		q = q.Order("reservations.created_at DESC, reservations.id")
	} else {
		q = q.Order("reservations.listing_id, reservations.start_date, reservations.id")
	}

	var rows []reservationRow
	if err := q.Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListReservations"), err)
		return nil, repo.ErrFailedToList
	}

	reservations := make([]model.Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, row.toModel())
	}
	return reservations, nil
}

// UpdateReservationStatus is a compare-and-set on the current status.
func (r *implRepository) UpdateReservationStatus(ctx context.Context, opt repo.UpdateReservationStatusOptions) (model.Reservation, error) {
	res := r.db.WithContext(ctx).Model(&reservationRow{}).
		Where("id = ? AND status = ?", opt.ID, string(opt.From)).
		Updates(map[string]any{
			"status":     string(opt.To),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateReservationStatus"), res.Error)
		return model.Reservation{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.Reservation{}, nil
	}
	return r.GetOneReservation(ctx, repo.GetOneReservationOptions{ID: opt.ID})
}
