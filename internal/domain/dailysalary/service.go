package dailysalary

import "context"

// DailySalaryService defines business logic for the per-day snapshot ledger.
type DailySalaryService interface {
	// Upsert applies the request's increment/deduction as deltas against
	// the day's current payable, creating the day from the employee's
	// base salary on first write.
	Upsert(ctx context.Context, req UpsertRequest) (DailyLedgerResponse, error)

	// UpdateAbsolute treats increment/deduction as the day's final totals
	// and recomputes payable from the base snapshot. Only positive deltas
	// against the prior totals are audited.
	UpdateAbsolute(ctx context.Context, req UpdateAbsoluteRequest) (DailyLedgerResponse, error)

	Delete(ctx context.Context, employeeID, date string) (DailyLedgerResponse, error)
	GetEmployeeSummary(ctx context.Context, employeeID string) (EmployeeSummaryResponse, error)
	List(ctx context.Context, filter Filter, page, limit int) (ListResponse, error)
	Events(ctx context.Context, filter Filter, page, limit int) (EventsResponse, error)
	EventsSummary(ctx context.Context, filter Filter, groupBy string) (EventsSummaryResponse, error)
}
