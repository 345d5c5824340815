// Package paycycle maps calendar dates onto the company's semi-monthly
// pay cycle. A cycle runs from the 18th of a month at 00:00:00 through the
// 17th of the following month at 23:59:59.999, so a date on or after the
// 18th belongs to the cycle starting that month and earlier dates belong to
// the cycle that started the previous month.
package paycycle

import "time"

const anchorDay = 18

// Cycle is one semi-monthly pay window. Start and End are inclusive
// instants; Key is a stable, sortable identifier unique per window.
type Cycle struct {
	Start time.Time
	End   time.Time
	Key   string
}

// ForDate resolves the pay cycle containing t. Only t's civil calendar
// fields are used, normalized to UTC, so the same YYYY-MM-DD always lands
// in the same cycle regardless of the wall clock's zone.
func ForDate(t time.Time) Cycle {
	year, month, day := t.Date()

	var start, end time.Time
	if day >= anchorDay {
		start = time.Date(year, month, anchorDay, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, month+1, anchorDay-1, 23, 59, 59, 999_000_000, time.UTC)
	} else {
		start = time.Date(year, month-1, anchorDay, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, month, anchorDay-1, 23, 59, 59, 999_000_000, time.UTC)
	}

	return Cycle{
		Start: start,
		End:   end,
		Key:   start.Format("2006-01-02") + "_" + end.Format("2006-01-02"),
	}
}

// Contains reports whether t falls inside the cycle, boundaries included.
func (c Cycle) Contains(t time.Time) bool {
	return !t.Before(c.Start) && !t.After(c.End)
}
