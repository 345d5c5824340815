package employee

import "context"

// EmployeeService defines business logic for employee records.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, employeeID string) (EmployeeResponse, error)
	List(ctx context.Context) (ListEmployeesResponse, error)
	Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) (EmployeeResponse, error)
}
