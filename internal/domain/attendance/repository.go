package attendance

import "context"

// AttendanceRepository defines data access for the daily attendance ledger.
// The store enforces uniqueness on (employee_id, attendance_date); Create
// surfaces a duplicate-key race as ErrAttendanceConflict.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// Update persists the current fields and the full (appended) history.
	Update(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns ErrAttendanceNotFound when no record
	// exists for the pair.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (Attendance, error)

	ListByEmployee(ctx context.Context, employeeID string, page Page) ([]Attendance, int64, error)
	ListByEmployeeRange(ctx context.Context, employeeID, start, end string, page Page) ([]Attendance, int64, error)
	ListByDate(ctx context.Context, date string, page Page) ([]Attendance, int64, error)
}
