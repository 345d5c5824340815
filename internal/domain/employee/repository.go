package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, employeeID string, emp Employee) (Employee, error)
	Delete(ctx context.Context, employeeID string) (Employee, error)

	// IncrementSalaryCount bumps the lifetime paid-cycle counter atomically
	// and returns the employee with the new count.
	IncrementSalaryCount(ctx context.Context, employeeID string) (Employee, error)
}
