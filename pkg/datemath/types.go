package datemath

import "time"

const secondsPerDay = 24 * 60 * 60

// Range is an inclusive calendar-day window [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange truncates both ends to calendar dates.
func NewRange(start, end time.Time) Range {
	return Range{Start: Truncate(start), End: Truncate(end)}
}

// Valid reports whether End is strictly after Start.
func (r Range) Valid() bool {
	return r.End.After(r.Start)
}

// Days counts the calendar days in the window, both ends included.
func (r Range) Days() int {
	return int((r.End.Unix()-r.Start.Unix())/secondsPerDay) + 1
}

// Overlaps applies s1 < e2 AND e1 > s2. Checkout day equal to the next
// checkin day does not overlap.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// String renders the window as "start..end".
func (r Range) String() string {
	return Format(r.Start) + ".." + Format(r.End)
}
