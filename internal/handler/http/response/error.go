package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/attendance"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/dailysalary"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/employee"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/salary"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrInvalidSalary):
		BadRequest(w, "Salary must be a positive amount", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Attendance date cannot be in the future", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceConflict):
		Conflict(w, "Attendance already recorded for this date")

	// Salary cycle domain errors
	case errors.Is(err, salary.ErrCycleLedgerNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrCycleLedgerExists):
		Conflict(w, "Salary cycle already exists")
	case errors.Is(err, salary.ErrCycleAlreadyPaid):
		Conflict(w, "Salary for this cycle is already paid")
	case errors.Is(err, salary.ErrCycleMismatch):
		// A loaded ledger disagreeing with its resolved cycle means the
		// resolver and stored keys diverged; log loudly, reject the write.
		slog.Error("cycle key mismatch on loaded ledger", "error", err)
		BadRequest(w, "Salary record does not match the requested pay cycle", nil)

	// Daily salary domain errors
	case errors.Is(err, dailysalary.ErrDailyLedgerNotFound):
		NotFound(w, "Daily salary record not found")
	case errors.Is(err, dailysalary.ErrDailyLedgerConflict):
		Conflict(w, "Daily salary record already exists for this date")
	case errors.Is(err, dailysalary.ErrNegativeAdjustment):
		BadRequest(w, "Adjustment amounts must be non-negative", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
