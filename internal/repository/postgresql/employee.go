package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/employee"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_id, name, email, designation, phone_no, job_shift,
	joining_date, referred_by, salary, salary_per_hour, status, image_url,
	salary_count, iban_number, account_title, bank_name, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.Name, &e.Email, &e.Designation, &e.PhoneNo, &e.JobShift,
		&e.JoiningDate, &e.ReferredBy, &e.Salary, &e.SalaryPerHour, &e.Status, &e.ImageURL,
		&e.SalaryCount, &e.IBANNumber, &e.AccountTitle, &e.BankName, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_id, name, email, designation, phone_no, job_shift,
			joining_date, referred_by, salary, salary_per_hour, status, image_url,
			salary_count, iban_number, account_title, bank_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		uuid.New().String(), emp.EmployeeID, emp.Name, emp.Email, emp.Designation, emp.PhoneNo, emp.JobShift,
		emp.JoiningDate, emp.ReferredBy, emp.Salary, emp.SalaryPerHour, emp.Status, emp.ImageURL,
		emp.SalaryCount, emp.IBANNumber, emp.AccountTitle, emp.BankName,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_employee_id") {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, employeeID string, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			name = $2, email = $3, designation = $4, phone_no = $5, job_shift = $6,
			joining_date = $7, referred_by = $8, salary = $9, salary_per_hour = $10,
			status = $11, image_url = $12, iban_number = $13, account_title = $14,
			bank_name = $15, updated_at = NOW()
		WHERE employee_id = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		employeeID, emp.Name, emp.Email, emp.Designation, emp.PhoneNo, emp.JobShift,
		emp.JoiningDate, emp.ReferredBy, emp.Salary, emp.SalaryPerHour,
		emp.Status, emp.ImageURL, emp.IBANNumber, emp.AccountTitle, emp.BankName,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

func (r *employeeRepository) Delete(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE employee_id = $1 RETURNING ` + employeeColumns

	deleted, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to delete employee: %w", err)
	}

	return deleted, nil
}

func (r *employeeRepository) IncrementSalaryCount(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET salary_count = salary_count + 1, updated_at = NOW()
		WHERE employee_id = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to increment salary count: %w", err)
	}

	return updated, nil
}
