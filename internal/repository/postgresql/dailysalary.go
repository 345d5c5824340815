package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/dailysalary"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/database"
)

type dailyLedgerRepository struct {
	db *database.DB
}

func NewDailyLedgerRepository(db *database.DB) dailysalary.DailyLedgerRepository {
	return &dailyLedgerRepository{db: db}
}

const dailyLedgerColumns = `
	id, employee_id, salary_date, base_salary, increment, deduction, payable,
	note, created_at, updated_at
`

func scanDailyLedger(row pgx.Row) (dailysalary.DailyLedger, error) {
	var l dailysalary.DailyLedger
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.SalaryDate, &l.BaseSalary, &l.Increment, &l.Deduction, &l.Payable,
		&l.Note, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *dailyLedgerRepository) Create(ctx context.Context, ledger dailysalary.DailyLedger) (dailysalary.DailyLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_salary_ledgers (id, employee_id, salary_date, base_salary, increment, deduction, payable, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + dailyLedgerColumns

	created, err := scanDailyLedger(q.QueryRow(ctx, query,
		uuid.New().String(), ledger.EmployeeID, ledger.SalaryDate, ledger.BaseSalary,
		ledger.Increment, ledger.Deduction, ledger.Payable, ledger.Note,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_daily_salary_ledgers_employee_date") {
			return dailysalary.DailyLedger{}, dailysalary.ErrDailyLedgerConflict
		}
		return dailysalary.DailyLedger{}, fmt.Errorf("failed to create daily ledger: %w", err)
	}

	return created, nil
}

func (r *dailyLedgerRepository) Update(ctx context.Context, ledger dailysalary.DailyLedger) (dailysalary.DailyLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE daily_salary_ledgers SET
			base_salary = $2, increment = $3, deduction = $4, payable = $5,
			note = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + dailyLedgerColumns

	updated, err := scanDailyLedger(q.QueryRow(ctx, query,
		ledger.ID, ledger.BaseSalary, ledger.Increment, ledger.Deduction, ledger.Payable, ledger.Note,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return dailysalary.DailyLedger{}, dailysalary.ErrDailyLedgerNotFound
		}
		return dailysalary.DailyLedger{}, fmt.Errorf("failed to update daily ledger: %w", err)
	}

	return updated, nil
}

func (r *dailyLedgerRepository) Delete(ctx context.Context, employeeID, date string) (dailysalary.DailyLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM daily_salary_ledgers WHERE employee_id = $1 AND salary_date = $2 RETURNING ` + dailyLedgerColumns

	deleted, err := scanDailyLedger(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return dailysalary.DailyLedger{}, dailysalary.ErrDailyLedgerNotFound
		}
		return dailysalary.DailyLedger{}, fmt.Errorf("failed to delete daily ledger: %w", err)
	}

	return deleted, nil
}

func (r *dailyLedgerRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (dailysalary.DailyLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dailyLedgerColumns + ` FROM daily_salary_ledgers WHERE employee_id = $1 AND salary_date = $2`

	l, err := scanDailyLedger(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return dailysalary.DailyLedger{}, dailysalary.ErrDailyLedgerNotFound
		}
		return dailysalary.DailyLedger{}, fmt.Errorf("failed to get daily ledger: %w", err)
	}

	return l, nil
}

func (r *dailyLedgerRepository) LatestByEmployee(ctx context.Context, employeeID string) (dailysalary.DailyLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dailyLedgerColumns + `
		FROM daily_salary_ledgers
		WHERE employee_id = $1
		ORDER BY salary_date DESC
		LIMIT 1
	`

	l, err := scanDailyLedger(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return dailysalary.DailyLedger{}, dailysalary.ErrDailyLedgerNotFound
		}
		return dailysalary.DailyLedger{}, fmt.Errorf("failed to get latest daily ledger: %w", err)
	}

	return l, nil
}

// ledgerFilterClause builds the WHERE clause for day-keyed queries over the
// given date column. Date takes precedence over Month, which takes
// precedence over the From/To range.
func ledgerFilterClause(filter dailysalary.Filter, dateColumn string) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(cond string, value interface{}) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.EmployeeID != "" {
		add("employee_id = $%d", filter.EmployeeID)
	}
	switch {
	case filter.Date != "":
		add(dateColumn+" = $%d", filter.Date)
	case filter.Month != "":
		add(dateColumn+" LIKE $%d", filter.Month+"-%")
	default:
		if filter.From != "" {
			add(dateColumn+" >= $%d", filter.From)
		}
		if filter.To != "" {
			add(dateColumn+" <= $%d", filter.To)
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *dailyLedgerRepository) List(ctx context.Context, filter dailysalary.Filter, page, limit int) ([]dailysalary.DailyLedger, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args := ledgerFilterClause(filter, "salary_date")

	var total int64
	countQuery := `SELECT COUNT(*) FROM daily_salary_ledgers ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count daily ledgers: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM daily_salary_ledgers %s ORDER BY salary_date DESC LIMIT $%d OFFSET $%d`,
		dailyLedgerColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list daily ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []dailysalary.DailyLedger
	for rows.Next() {
		l, err := scanDailyLedger(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan daily ledger: %w", err)
		}
		ledgers = append(ledgers, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate daily ledgers: %w", err)
	}

	return ledgers, total, nil
}

func (r *dailyLedgerRepository) AppendEvents(ctx context.Context, events []dailysalary.Event) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_salary_events (id, employee_id, salary_date, type, amount, note)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, ev := range events {
		if _, err := q.Exec(ctx, query,
			uuid.New().String(), ev.EmployeeID, ev.SalaryDate, ev.Type, ev.Amount, ev.Note,
		); err != nil {
			return fmt.Errorf("failed to append daily salary event: %w", err)
		}
	}

	return nil
}

func (r *dailyLedgerRepository) ListEvents(ctx context.Context, filter dailysalary.Filter, page, limit int) ([]dailysalary.Event, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args := ledgerFilterClause(filter, "salary_date")

	var total int64
	countQuery := `SELECT COUNT(*) FROM daily_salary_events ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count daily salary events: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT id, employee_id, salary_date, type, amount, note, created_at
		 FROM daily_salary_events %s
		 ORDER BY salary_date DESC, created_at DESC
		 LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list daily salary events: %w", err)
	}
	defer rows.Close()

	var events []dailysalary.Event
	for rows.Next() {
		var ev dailysalary.Event
		if err := rows.Scan(&ev.ID, &ev.EmployeeID, &ev.SalaryDate, &ev.Type, &ev.Amount, &ev.Note, &ev.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan daily salary event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate daily salary events: %w", err)
	}

	return events, total, nil
}

func (r *dailyLedgerRepository) EventTotals(ctx context.Context, filter dailysalary.Filter) (dailysalary.EventTotals, error) {
	q := GetQuerier(ctx, r.db)

	where, args := ledgerFilterClause(filter, "salary_date")

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'increment'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'deduction'), 0)
		FROM daily_salary_events ` + where

	var totals dailysalary.EventTotals
	if err := q.QueryRow(ctx, query, args...).Scan(&totals.TotalIncrement, &totals.TotalDeduction); err != nil {
		return dailysalary.EventTotals{}, fmt.Errorf("failed to total daily salary events: %w", err)
	}
	totals.NetChange = totals.TotalIncrement.Sub(totals.TotalDeduction)

	return totals, nil
}

func (r *dailyLedgerRepository) SummarizeEvents(ctx context.Context, filter dailysalary.Filter, byDay bool) ([]dailysalary.SummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	where, args := ledgerFilterClause(filter, "salary_date")

	var query string
	if byDay {
		query = `
			SELECT salary_date, type, COALESCE(SUM(amount), 0), COUNT(*)
			FROM daily_salary_events ` + where + `
			GROUP BY salary_date, type
			ORDER BY salary_date DESC, type
		`
	} else {
		query = `
			SELECT '', type, COALESCE(SUM(amount), 0), COUNT(*)
			FROM daily_salary_events ` + where + `
			GROUP BY type
			ORDER BY type
		`
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize daily salary events: %w", err)
	}
	defer rows.Close()

	var summary []dailysalary.SummaryRow
	for rows.Next() {
		var row dailysalary.SummaryRow
		if err := rows.Scan(&row.Date, &row.Type, &row.Amount, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan event summary row: %w", err)
		}
		summary = append(summary, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event summary: %w", err)
	}

	return summary, nil
}
