package attendance

import (
	"time"

	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordAttendanceRequest struct {
	EmployeeID     string           `json:"employee_id"`
	AttendanceDate string           `json:"attendance_date"`
	Status         string           `json:"status"`
	Note           string           `json:"note"`
	ExtraNote      string           `json:"extra_note"`
	EarlyHours     *decimal.Decimal `json:"early_hours"`
	ChangedBy      string           `json:"changed_by"`
}

func (r RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is required"})
	}
	if validator.IsEmpty(r.AttendanceDate) {
		errs = append(errs, validator.ValidationError{Field: "attendance_date", Message: "is required"})
	} else if _, ok := validator.ParseDateKey(r.AttendanceDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "attendance_date", Message: "must be YYYY-MM-DD"})
	}
	if r.EarlyHours != nil && r.EarlyHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "early_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	ExtraNote string    `json:"extra_note"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

type AttendanceResponse struct {
	EmployeeID     string                 `json:"employee_id"`
	AttendanceDate string                 `json:"attendance_date"`
	Status         string                 `json:"status"`
	Note           string                 `json:"note"`
	ExtraNote      string                 `json:"extra_note,omitempty"`
	EarlyHours     *decimal.Decimal       `json:"early_hours,omitempty"`
	History        []HistoryEntryResponse `json:"history"`
}

type RecordAttendanceResponse struct {
	Created    bool               `json:"created"`
	Attendance AttendanceResponse `json:"attendance"`
}

type LookupResponse struct {
	Found   bool                   `json:"found"`
	Status  *string                `json:"status,omitempty"`
	Note    *string                `json:"note,omitempty"`
	History []HistoryEntryResponse `json:"history,omitempty"`
}

type Page struct {
	Page  int
	Limit int
}

// Normalize clamps page/limit to sane values with the given default size.
func (p *Page) Normalize(defaultLimit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
}

// Offset is the skip count for 1-based pagination.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total/limit), never less than one.
func (p Page) TotalPages(total int64) int {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	if pages < 1 {
		pages = 1
	}
	return pages
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"totalPages"`
}
