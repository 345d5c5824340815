package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/salary"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/database"
)

type cycleLedgerRepository struct {
	db *database.DB
}

func NewCycleLedgerRepository(db *database.DB) salary.CycleLedgerRepository {
	return &cycleLedgerRepository{db: db}
}

const cycleLedgerColumns = `
	id, employee_id, cycle_key, cycle_start, cycle_end,
	base_salary, salary_per_hour, payable_salary,
	status, paid_at, attendance_count, attendance_bonus_awarded,
	transactions, created_at, updated_at
`

func scanCycleLedger(row pgx.Row) (salary.CycleLedger, error) {
	var l salary.CycleLedger
	var transactions []byte
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.CycleKey, &l.CycleStart, &l.CycleEnd,
		&l.BaseSalary, &l.SalaryPerHour, &l.PayableSalary,
		&l.Status, &l.PaidAt, &l.AttendanceCount, &l.AttendanceBonusAwarded,
		&transactions, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return salary.CycleLedger{}, err
	}
	if len(transactions) > 0 {
		if err := json.Unmarshal(transactions, &l.Transactions); err != nil {
			return salary.CycleLedger{}, fmt.Errorf("failed to unmarshal ledger transactions: %w", err)
		}
	}
	return l, nil
}

func (r *cycleLedgerRepository) Create(ctx context.Context, ledger salary.CycleLedger) (salary.CycleLedger, error) {
	q := GetQuerier(ctx, r.db)

	transactions, err := json.Marshal(ledger.Transactions)
	if err != nil {
		return salary.CycleLedger{}, fmt.Errorf("failed to marshal ledger transactions: %w", err)
	}

	query := `
		INSERT INTO salary_cycle_ledgers (
			id, employee_id, cycle_key, cycle_start, cycle_end,
			base_salary, salary_per_hour, payable_salary,
			status, paid_at, attendance_count, attendance_bonus_awarded, transactions
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + cycleLedgerColumns

	created, err := scanCycleLedger(q.QueryRow(ctx, query,
		uuid.New().String(), ledger.EmployeeID, ledger.CycleKey, ledger.CycleStart, ledger.CycleEnd,
		ledger.BaseSalary, ledger.SalaryPerHour, ledger.PayableSalary,
		ledger.Status, ledger.PaidAt, ledger.AttendanceCount, ledger.AttendanceBonusAwarded, transactions,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_salary_cycle_ledgers_employee_cycle") {
			return salary.CycleLedger{}, salary.ErrCycleLedgerExists
		}
		return salary.CycleLedger{}, fmt.Errorf("failed to create cycle ledger: %w", err)
	}

	return created, nil
}

func (r *cycleLedgerRepository) Update(ctx context.Context, ledger salary.CycleLedger) (salary.CycleLedger, error) {
	q := GetQuerier(ctx, r.db)

	transactions, err := json.Marshal(ledger.Transactions)
	if err != nil {
		return salary.CycleLedger{}, fmt.Errorf("failed to marshal ledger transactions: %w", err)
	}

	query := `
		UPDATE salary_cycle_ledgers SET
			payable_salary = $2, status = $3, paid_at = $4,
			attendance_count = $5, attendance_bonus_awarded = $6,
			transactions = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + cycleLedgerColumns

	updated, err := scanCycleLedger(q.QueryRow(ctx, query,
		ledger.ID, ledger.PayableSalary, ledger.Status, ledger.PaidAt,
		ledger.AttendanceCount, ledger.AttendanceBonusAwarded, transactions,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.CycleLedger{}, salary.ErrCycleLedgerNotFound
		}
		return salary.CycleLedger{}, fmt.Errorf("failed to update cycle ledger: %w", err)
	}

	return updated, nil
}

func (r *cycleLedgerRepository) GetByEmployeeAndCycle(ctx context.Context, employeeID, cycleKey string) (salary.CycleLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cycleLedgerColumns + ` FROM salary_cycle_ledgers WHERE employee_id = $1 AND cycle_key = $2`

	l, err := scanCycleLedger(q.QueryRow(ctx, query, employeeID, cycleKey))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.CycleLedger{}, salary.ErrCycleLedgerNotFound
		}
		return salary.CycleLedger{}, fmt.Errorf("failed to get cycle ledger: %w", err)
	}

	return l, nil
}

func (r *cycleLedgerRepository) ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]salary.CycleLedger, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM salary_cycle_ledgers WHERE employee_id = $1`
	if err := q.QueryRow(ctx, countQuery, employeeID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count cycle ledgers: %w", err)
	}

	query := `
		SELECT ` + cycleLedgerColumns + `
		FROM salary_cycle_ledgers
		WHERE employee_id = $1
		ORDER BY cycle_start DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, employeeID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cycle ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []salary.CycleLedger
	for rows.Next() {
		l, err := scanCycleLedger(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan cycle ledger: %w", err)
		}
		ledgers = append(ledgers, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate cycle ledgers: %w", err)
	}

	return ledgers, total, nil
}
