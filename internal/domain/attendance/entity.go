package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one record per employee per calendar day. The current
// status/note are overwritten on re-marking; History only grows.
type Attendance struct {
	ID             string
	EmployeeID     string
	AttendanceDate string // YYYY-MM-DD
	Status         string
	Note           string
	ExtraNote      string
	EarlyHours     *decimal.Decimal
	History        []HistoryEntry
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HistoryEntry is an append-only audit line; entries are never reordered
// or truncated.
type HistoryEntry struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	ExtraNote string    `json:"extra_note"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

// Status is the business-level reading of the free-form stored string.
// Storage keeps whatever the client sent; the bonus rule and the UI work
// with this closed set plus an Other fallback.
type Status string

const (
	StatusPresent    Status = "Present"
	StatusAbsent     Status = "Absent"
	StatusLate       Status = "Late"
	StatusLeave      Status = "LEAVE"
	StatusNoShow     Status = "NONS"
	StatusEarlyLeave Status = "Earlyleave"
	StatusOther      Status = "Other"
)

// ParseStatus maps a stored status string onto the closed set, falling back
// to StatusOther for anything unrecognized.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusLate, StatusLeave, StatusNoShow, StatusEarlyLeave:
		return Status(s)
	default:
		return StatusOther
	}
}

// CountsTowardBonus reports whether a day with this status counts toward
// the automatic attendance bonus.
func (s Status) CountsTowardBonus() bool {
	return s == StatusPresent || s == StatusLeave
}
