package dailysalary

import (
	"time"

	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UpsertRequest applies increment/deduction as deltas against the day's
// current payable.
type UpsertRequest struct {
	EmployeeID string           `json:"employee_id"`
	Date       string           `json:"date"`
	Increment  *decimal.Decimal `json:"increment"`
	Deduction  *decimal.Decimal `json:"deduction"`
	Note       string           `json:"note"`
}

func (r UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if _, ok := validator.ParseFlexibleDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Increment != nil && r.Increment.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "increment", Message: "must be non-negative"})
	}
	if r.Deduction != nil && r.Deduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deduction", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAbsoluteRequest replaces the day's cumulative totals outright and
// recomputes payable from the base snapshot.
type UpdateAbsoluteRequest struct {
	EmployeeID string           `json:"-"`
	Date       string           `json:"-"`
	Increment  *decimal.Decimal `json:"increment"`
	Deduction  *decimal.Decimal `json:"deduction"`
	Note       *string          `json:"note"`
}

func (r UpdateAbsoluteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if _, ok := validator.ParseFlexibleDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Increment != nil && r.Increment.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "increment", Message: "must be non-negative"})
	}
	if r.Deduction != nil && r.Deduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deduction", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter narrows day-keyed queries. Date, Month and From/To are mutually
// exclusive in practice; Date wins, then Month, then the range.
type Filter struct {
	EmployeeID string
	Date       string // exact day
	Month      string // YYYY-MM prefix
	From       string
	To         string
}

type DailyLedgerResponse struct {
	EmployeeID string          `json:"employee_id"`
	SalaryDate string          `json:"salary_date"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Increment  decimal.Decimal `json:"increment"`
	Deduction  decimal.Decimal `json:"deduction"`
	Payable    decimal.Decimal `json:"payable_amount"`
	Note       string          `json:"note,omitempty"`
}

type ListResponse struct {
	Data         []DailyLedgerResponse `json:"data"`
	Total        int64                 `json:"total"`
	TotalPayable decimal.Decimal       `json:"totalPayable"`
	Page         int                   `json:"page"`
	Pages        int                   `json:"pages"`
}

// EmployeeSummaryResponse is the base-salary overview returned when a
// caller asks for an employee with no day filter.
type EmployeeSummaryResponse struct {
	EmployeeID    string          `json:"employee_id"`
	Name          string          `json:"name"`
	Designation   string          `json:"designation"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	Status        string          `json:"current_employee"`
	LatestPayable decimal.Decimal `json:"latest_payable"`
	LastUpdate    *string         `json:"last_update_date"`
	LastIncrement decimal.Decimal `json:"last_increment"`
	LastDeduction decimal.Decimal `json:"last_deduction"`
	LastNote      string          `json:"last_note"`
}

type EventResponse struct {
	EmployeeID string          `json:"employee_id"`
	SalaryDate string          `json:"salary_date"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note"`
	CreatedAt  time.Time       `json:"created_at"`
}

type EventTotals struct {
	TotalIncrement decimal.Decimal `json:"total_increment"`
	TotalDeduction decimal.Decimal `json:"total_deduction"`
	NetChange      decimal.Decimal `json:"net_change"`
}

type EventsResponse struct {
	EmployeeID string          `json:"employee_id"`
	Data       []EventResponse `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Pages      int             `json:"pages"`
	EventTotals
}

// SummaryRow is one grouped aggregate; Date is empty unless grouped by day.
type SummaryRow struct {
	Date   string          `json:"date,omitempty"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Count  int64           `json:"count"`
}

type EventsSummaryResponse struct {
	EmployeeID string       `json:"employee_id"`
	GroupBy    string       `json:"groupBy"`
	Rows       []SummaryRow `json:"rows"`
	EventTotals
}
