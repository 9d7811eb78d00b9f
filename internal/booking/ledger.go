package booking

import (
	"time"

	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/datemath"
)

// FirstConflict returns the first live reservation, in slice order, whose
// window overlaps [start, end]. excludeID is skipped. Overlap is
// s1 < e2 AND e1 > s2, so a checkout on the day of the next checkin is free.
func FirstConflict(reservations []model.Reservation, start, end time.Time, excludeID string) (model.Reservation, bool) {
	want := datemath.NewRange(start, end)
	for _, r := range reservations {
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		if !r.Status.IsLive() {
			continue
		}
		if want.Overlaps(datemath.NewRange(r.StartDate, r.EndDate)) {
			return r, true
		}
	}
	return model.Reservation{}, false
}

// Price computes the derived totals for a window at pricePerDay.
// Both ends are counted, so 03-01..03-03 is three days.
func Price(start, end time.Time, pricePerDay float64) (days int, total float64) {
	days = datemath.NewRange(start, end).Days()
	return days, pricePerDay * float64(days)
}
