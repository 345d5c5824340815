package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/attendance"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, attendance_date, status, note, extra_note, early_hours, history,
	created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	var history []byte
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.AttendanceDate, &a.Status, &a.Note, &a.ExtraNote, &a.EarlyHours, &history,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &a.History); err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to unmarshal attendance history: %w", err)
		}
	}
	return a, nil
}

func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	history, err := json.Marshal(att.History)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to marshal attendance history: %w", err)
	}

	query := `
		INSERT INTO attendances (id, employee_id, attendance_date, status, note, extra_note, early_hours, history)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		uuid.New().String(), att.EmployeeID, att.AttendanceDate, att.Status, att.Note, att.ExtraNote, att.EarlyHours, history,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendances_employee_date") {
			return attendance.Attendance{}, attendance.ErrAttendanceConflict
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	history, err := json.Marshal(att.History)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to marshal attendance history: %w", err)
	}

	query := `
		UPDATE attendances SET
			status = $2, note = $3, extra_note = $4, early_hours = $5, history = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query,
		att.ID, att.Status, att.Note, att.ExtraNote, att.EarlyHours, history,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return updated, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 AND attendance_date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, page attendance.Page) ([]attendance.Attendance, int64, error) {
	return r.list(ctx,
		`WHERE employee_id = $1`,
		`ORDER BY attendance_date DESC, created_at DESC`,
		[]interface{}{employeeID},
		page,
	)
}

func (r *attendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID, start, end string, page attendance.Page) ([]attendance.Attendance, int64, error) {
	return r.list(ctx,
		`WHERE employee_id = $1 AND attendance_date >= $2 AND attendance_date <= $3`,
		`ORDER BY attendance_date DESC, created_at DESC`,
		[]interface{}{employeeID, start, end},
		page,
	)
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date string, page attendance.Page) ([]attendance.Attendance, int64, error) {
	return r.list(ctx,
		`WHERE attendance_date = $1`,
		`ORDER BY employee_id ASC`,
		[]interface{}{date},
		page,
	)
}

func (r *attendanceRepository) list(ctx context.Context, where, orderBy string, args []interface{}, page attendance.Page) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM attendances %s %s`, attendanceColumns, where, orderBy)
	if page.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, page.Limit, page.Offset())
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, total, nil
}
