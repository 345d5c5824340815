package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// Record upserts the attendance for (employee, date), appends to its
	// history, and runs the attendance-bonus rule for qualifying statuses.
	Record(ctx context.Context, req RecordAttendanceRequest) (RecordAttendanceResponse, error)

	GetByEmployee(ctx context.Context, employeeID string, page Page) (ListAttendanceResponse, error)
	GetByEmployeeRange(ctx context.Context, employeeID, start, end string, page Page) (ListAttendanceResponse, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (LookupResponse, error)
	GetByDate(ctx context.Context, date string, page Page) (ListAttendanceResponse, error)
	GetToday(ctx context.Context) (ListAttendanceResponse, error)
}
