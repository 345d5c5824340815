package dailysalary

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyLedger is the per-day salary snapshot: one row per employee per
// calendar day, independent of the pay-cycle ledger. Increment and
// Deduction are cumulative totals for the day; Payable is never negative.
type DailyLedger struct {
	ID         string
	EmployeeID string
	SalaryDate string // YYYY-MM-DD
	BaseSalary decimal.Decimal
	Increment  decimal.Decimal
	Deduction  decimal.Decimal
	Payable    decimal.Decimal
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type EventType string

const (
	EventIncrement EventType = "increment"
	EventDeduction EventType = "deduction"
)

// Event is one append-only audit line: the non-negative delta a single
// call applied to a day. A call supplying both an increment and a
// deduction produces two events.
type Event struct {
	ID         string
	EmployeeID string
	SalaryDate string
	Type       EventType
	Amount     decimal.Decimal
	Note       string
	CreatedAt  time.Time
}

// ClampPayable keeps a payable amount at or above zero.
func ClampPayable(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
