package model

import "time"

// DateRange tracks the earliest and latest job-start date seen across all
// valid rows. Rows without a parseable date never reach Observe.
type DateRange struct {
	Earliest time.Time
	Latest   time.Time
	Valid    bool
}

// Observe widens the range to include t.
func (d DateRange) Observe(t time.Time) DateRange {
	if !d.Valid {
		return DateRange{Earliest: t, Latest: t, Valid: true}
	}
	if t.Before(d.Earliest) {
		d.Earliest = t
	}
	if t.After(d.Latest) {
		d.Latest = t
	}
	return d
}

// Label renders the operator-facing banner text for report pages.
func (d DateRange) Label() string {
	if !d.Valid {
		return "Date range not available"
	}
	const layout = "January 2, 2006"
	if d.Earliest.Equal(d.Latest) {
		return "Data from: " + d.Earliest.Format(layout)
	}
	return "Data period: " + d.Earliest.Format(layout) + " to " + d.Latest.Format(layout)
}
