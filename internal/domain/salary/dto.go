package salary

import (
	"time"

	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ApplySalaryActionRequest carries a set of mutually independent optional
// adjustments. Each present, non-zero field contributes exactly one
// transaction to the action date's cycle ledger.
type ApplySalaryActionRequest struct {
	EmployeeID string `json:"employee_id"`
	Note       string `json:"note"`
	ActionDate string `json:"action_date"`

	Increment       *decimal.Decimal `json:"increment"`
	Decrement       *decimal.Decimal `json:"decrement"`
	BonusAmount     *decimal.Decimal `json:"bonus_amount"`
	BonusPercentage *decimal.Decimal `json:"bonus_percentage"`
	ExtraHour       *decimal.Decimal `json:"extra_hour"`
	AttendanceBonus *decimal.Decimal `json:"attendance_bonus"`
	OvertimePercent *decimal.Decimal `json:"overtime_percent"`
	OvertimeHours   *decimal.Decimal `json:"overtime_hours"`
	AbsentAmount    *decimal.Decimal `json:"absent_amount"`
	EarlyHour       *decimal.Decimal `json:"early_hour"`
}

func (r ApplySalaryActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Note) {
		errs = append(errs, validator.ValidationError{Field: "note", Message: "is required"})
	}
	if validator.IsEmpty(r.ActionDate) {
		errs = append(errs, validator.ValidationError{Field: "action_date", Message: "is required"})
	} else if _, ok := validator.ParseFlexibleDate(r.ActionDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "action_date", Message: "is not a valid date"})
	}

	// bonus_percentage cannot be computed without hours; reject before any
	// other adjustment in the request is applied.
	if r.BonusPercentage != nil && !r.BonusPercentage.IsZero() {
		if r.ExtraHour == nil || !r.ExtraHour.IsPositive() {
			errs = append(errs, validator.ValidationError{
				Field:   "extra_hour",
				Message: "is required and must be > 0 when bonus_percentage is sent",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	EmployeeID string `json:"employee_id"`
	CycleKey   string `json:"cycle_key"`
}

func (r MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.CycleKey) {
		errs = append(errs, validator.ValidationError{Field: "cycle_key", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransactionResponse struct {
	Type       string                 `json:"type"`
	Amount     decimal.Decimal        `json:"amount"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
	Note       string                 `json:"note"`
	ActionDate time.Time              `json:"action_date"`
	CreatedAt  time.Time              `json:"created_at"`
}

type CycleLedgerResponse struct {
	EmployeeID             string                `json:"employee_id"`
	CycleKey               string                `json:"cycle_key"`
	CycleStart             time.Time             `json:"cycle_start"`
	CycleEnd               time.Time             `json:"cycle_end"`
	BaseSalary             decimal.Decimal       `json:"base_salary"`
	SalaryPerHour          decimal.Decimal       `json:"salary_per_hour"`
	PayableSalary          decimal.Decimal       `json:"payable_salary"`
	Status                 string                `json:"status"`
	PaidAt                 *time.Time            `json:"paid_at"`
	AttendanceCount        int                   `json:"attendance_count"`
	AttendanceBonusAwarded bool                  `json:"attendance_bonus_awarded"`
	Transactions           []TransactionResponse `json:"transactions"`
}

type HistoryResponse struct {
	Data       []CycleLedgerResponse `json:"data"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"totalPages"`
}

// MarkPaidResponse returns the finalized ledger together with the employee
// carrying the incremented paid-cycle counter.
type MarkPaidResponse struct {
	Ledger      CycleLedgerResponse `json:"salary"`
	SalaryCount int                 `json:"salary_count"`
	EmployeeID  string              `json:"employee_id"`
}
