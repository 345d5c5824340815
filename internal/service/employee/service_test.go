package employee

import (
	"context"
	"testing"

	"github.com/leo-edge/hr-payroll-backend-go/internal/config"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/employee"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	if _, ok := r.employees[emp.EmployeeID]; ok {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}
	r.employees[emp.EmployeeID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := r.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, employeeID string, emp employee.Employee) (employee.Employee, error) {
	if _, ok := r.employees[employeeID]; !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	r.employees[employeeID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := r.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	delete(r.employees, employeeID)
	return emp, nil
}

func (r *fakeEmployeeRepo) IncrementSalaryCount(_ context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := r.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.SalaryCount++
	r.employees[employeeID] = emp
	return emp, nil
}

func testConfig() config.PayrollConfig {
	return config.PayrollConfig{MonthlyHours: 180}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	salary := decimal.NewFromInt(18000)
	return employee.CreateEmployeeRequest{
		EmployeeID:  "EMP-1",
		Name:        "Ayesha Khan",
		Email:       "ayesha@example.com",
		Designation: "Engineer",
		PhoneNo:     "0300-1234567",
		JobShift:    "Morning",
		Salary:      &salary,
	}
}

func TestCreateDerivesHourlyRate(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), testConfig())

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// 18000 / 180 hours, rounded to 2 decimals.
	assert.True(t, resp.SalaryPerHour.Equal(decimal.NewFromInt(100)), "got %s", resp.SalaryPerHour)
	assert.Equal(t, string(employee.StatusActive), resp.Status)
	assert.Equal(t, 0, resp.SalaryCount)
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), testConfig())

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	details := verrs.ToMap()
	assert.Contains(t, details, "employee_id")
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "salary")
}

func TestCreateDuplicateEmployeeID(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), testConfig())
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreateRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
}

func TestUpdateSalaryRederivesHourlyRate(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), testConfig())
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	newSalary := decimal.NewFromInt(27000)
	resp, err := svc.Update(ctx, "EMP-1", employee.UpdateEmployeeRequest{Salary: &newSalary})
	require.NoError(t, err)

	assert.True(t, resp.Salary.Equal(newSalary))
	assert.True(t, resp.SalaryPerHour.Equal(decimal.NewFromInt(150)), "got %s", resp.SalaryPerHour)
}

func TestListCountsByStatus(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, testConfig())
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.EmployeeID = "EMP-2"
	second.Email = "second@example.com"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	ex := string(employee.StatusEx)
	_, err = svc.Update(ctx, "EMP-2", employee.UpdateEmployeeRequest{Status: &ex})
	require.NoError(t, err)

	resp, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 1, resp.ActiveEmployee)
	assert.Equal(t, 1, resp.ExEmployee)
}

func TestGetUnknownEmployee(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), testConfig())

	_, err := svc.Get(context.Background(), "EMP-404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
