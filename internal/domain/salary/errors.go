package salary

import "errors"

var (
	ErrCycleLedgerNotFound = errors.New("salary ledger not found for this cycle")
	ErrCycleLedgerExists   = errors.New("salary ledger already exists for this cycle")
	ErrCycleAlreadyPaid    = errors.New("this cycle is already marked as paid")

	// ErrCycleMismatch means the resolved cycle does not contain the action
	// date. A correct resolver never produces it; when seen it signals a
	// logic defect, not bad input, and is logged accordingly.
	ErrCycleMismatch = errors.New("action date does not fall inside the computed pay cycle")
)
