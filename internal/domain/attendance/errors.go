package attendance

import "errors"

// Attendance domain errors
var (
	ErrFutureDate         = errors.New("cannot mark attendance for a future date")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceConflict = errors.New("attendance already marked for this employee and date")
)
