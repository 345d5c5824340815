package salary

import "context"

// CycleLedgerRepository defines data access for per-cycle salary ledgers.
// The store enforces uniqueness on (employee_id, cycle_key); Create
// surfaces a duplicate-insert race as ErrCycleLedgerExists.
type CycleLedgerRepository interface {
	Create(ctx context.Context, ledger CycleLedger) (CycleLedger, error)

	// Update persists the mutable fields: payable total, transactions,
	// attendance counter/flag, payment status and paid_at.
	Update(ctx context.Context, ledger CycleLedger) (CycleLedger, error)

	GetByEmployeeAndCycle(ctx context.Context, employeeID, cycleKey string) (CycleLedger, error)
	ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]CycleLedger, int64, error)
}
