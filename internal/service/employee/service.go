package employee

import (
	"context"
	"time"

	"github.com/leo-edge/hr-payroll-backend-go/internal/config"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/employee"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	payrollCfg   config.PayrollConfig
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, payrollCfg config.PayrollConfig) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		payrollCfg:   payrollCfg,
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	var joiningDate *string
	if emp.JoiningDate != nil {
		s := emp.JoiningDate.Format(validator.DateKey)
		joiningDate = &s
	}

	return employee.EmployeeResponse{
		EmployeeID:    emp.EmployeeID,
		Name:          emp.Name,
		Email:         emp.Email,
		Designation:   emp.Designation,
		PhoneNo:       emp.PhoneNo,
		JobShift:      emp.JobShift,
		JoiningDate:   joiningDate,
		ReferredBy:    emp.ReferredBy,
		Salary:        emp.Salary,
		SalaryPerHour: emp.SalaryPerHour,
		Status:        string(emp.Status),
		ImageURL:      emp.ImageURL,
		SalaryCount:   emp.SalaryCount,
		IBANNumber:    emp.IBANNumber,
		AccountTitle:  emp.AccountTitle,
		BankName:      emp.BankName,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var joiningDate *time.Time
	if req.JoiningDate != nil && *req.JoiningDate != "" {
		d, _ := validator.ParseDateKey(*req.JoiningDate)
		joiningDate = &d
	}

	salary := decimal.Zero
	if req.Salary != nil {
		salary = *req.Salary
	}

	emp := employee.Employee{
		EmployeeID:    req.EmployeeID,
		Name:          req.Name,
		Email:         req.Email,
		Designation:   req.Designation,
		PhoneNo:       req.PhoneNo,
		JobShift:      req.JobShift,
		JoiningDate:   joiningDate,
		ReferredBy:    req.ReferredBy,
		Salary:        salary,
		SalaryPerHour: employee.SalaryPerHourFor(salary, s.payrollCfg.MonthlyHours),
		Status:        employee.StatusActive,
		IBANNumber:    req.IBANNumber,
		AccountTitle:  req.AccountTitle,
		BankName:      req.BankName,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListEmployeesResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	resp := employee.ListEmployeesResponse{
		Count: len(employees),
		Data:  make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		if emp.Status == employee.StatusActive {
			resp.ActiveEmployee++
		} else {
			resp.ExEmployee++
		}
		resp.Data = append(resp.Data, mapEmployeeToResponse(emp))
	}

	return resp, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Designation != nil {
		emp.Designation = *req.Designation
	}
	if req.PhoneNo != nil {
		emp.PhoneNo = *req.PhoneNo
	}
	if req.JobShift != nil {
		emp.JobShift = *req.JobShift
	}
	if req.JoiningDate != nil {
		if *req.JoiningDate == "" {
			emp.JoiningDate = nil
		} else {
			d, _ := validator.ParseDateKey(*req.JoiningDate)
			emp.JoiningDate = &d
		}
	}
	if req.ReferredBy != nil {
		emp.ReferredBy = *req.ReferredBy
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.ImageURL != nil {
		emp.ImageURL = *req.ImageURL
	}
	if req.IBANNumber != nil {
		emp.IBANNumber = *req.IBANNumber
	}
	if req.AccountTitle != nil {
		emp.AccountTitle = *req.AccountTitle
	}
	if req.BankName != nil {
		emp.BankName = *req.BankName
	}
	if req.Salary != nil {
		// Changing the monthly salary re-derives the hourly rate; open
		// cycle ledgers keep their snapshot.
		emp.Salary = *req.Salary
		emp.SalaryPerHour = employee.SalaryPerHourFor(*req.Salary, s.payrollCfg.MonthlyHours)
	}

	updated, err := s.employeeRepo.Update(ctx, employeeID, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	deleted, err := s.employeeRepo.Delete(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(deleted), nil
}
