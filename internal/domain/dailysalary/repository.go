package dailysalary

import "context"

// DailyLedgerRepository defines data access for the daily snapshot ledger
// and its audit events. The store enforces uniqueness on
// (employee_id, salary_date); Create surfaces a duplicate-key race as
// ErrDailyLedgerConflict.
type DailyLedgerRepository interface {
	Create(ctx context.Context, ledger DailyLedger) (DailyLedger, error)
	Update(ctx context.Context, ledger DailyLedger) (DailyLedger, error)
	Delete(ctx context.Context, employeeID, date string) (DailyLedger, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (DailyLedger, error)

	// LatestByEmployee returns the most recent day for the employee, or
	// ErrDailyLedgerNotFound if none exists yet.
	LatestByEmployee(ctx context.Context, employeeID string) (DailyLedger, error)

	List(ctx context.Context, filter Filter, page, limit int) ([]DailyLedger, int64, error)

	AppendEvents(ctx context.Context, events []Event) error
	ListEvents(ctx context.Context, filter Filter, page, limit int) ([]Event, int64, error)
	EventTotals(ctx context.Context, filter Filter) (EventTotals, error)

	// SummarizeEvents groups event sums by type, or by (day, type) when
	// byDay is set.
	SummarizeEvents(ctx context.Context, filter Filter, byDay bool) ([]SummaryRow, error)
}
