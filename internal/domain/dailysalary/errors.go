package dailysalary

import "errors"

var (
	ErrDailyLedgerNotFound = errors.New("salary record not found")
	ErrDailyLedgerConflict = errors.New("salary record already exists for this date")
	ErrNegativeAdjustment  = errors.New("increment/deduction must be non-negative numbers")
)
