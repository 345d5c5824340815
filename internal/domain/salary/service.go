package salary

import "context"

// SalaryService defines business logic for the per-cycle transaction ledger.
type SalaryService interface {
	// ApplyAction resolves the action date to its pay cycle, lazily creates
	// the ledger, and appends one transaction per present non-zero
	// adjustment, in the documented order.
	ApplyAction(ctx context.Context, req ApplySalaryActionRequest) (CycleLedgerResponse, error)

	GetHistory(ctx context.Context, employeeID string, page, limit int) (HistoryResponse, error)

	// MarkPaid finalizes a cycle: flips the status, bumps the employee's
	// lifetime paid-cycle counter, and emits notifications. Calling it on a
	// paid cycle fails with ErrCycleAlreadyPaid.
	MarkPaid(ctx context.Context, req MarkPaidRequest) (MarkPaidResponse, error)
}
