package employee

import (
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeID  string           `json:"employee_id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Designation string           `json:"designation"`
	PhoneNo     string           `json:"phone_no"`
	JobShift    string           `json:"job_shift"`
	JoiningDate *string          `json:"joining_date"`
	ReferredBy  string           `json:"referred_by"`
	Salary      *decimal.Decimal `json:"salary"`

	IBANNumber   string `json:"iban_number"`
	AccountTitle string `json:"account_title"`
	BankName     string `json:"bank_name"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"employee_id": r.EmployeeID,
		"name":        r.Name,
		"email":       r.Email,
		"designation": r.Designation,
		"phone_no":    r.PhoneNo,
		"job_shift":   r.JobShift,
	}
	for field, value := range required {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "is required"})
		}
	}
	if !validator.IsEmpty(r.EmployeeID) && !validator.IsValidEmployeeCode(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "has an invalid format"})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if r.Salary == nil {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "is required"})
	} else if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if r.JoiningDate != nil && *r.JoiningDate != "" {
		if _, ok := validator.ParseDateKey(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name        *string          `json:"name"`
	Email       *string          `json:"email"`
	Designation *string          `json:"designation"`
	PhoneNo     *string          `json:"phone_no"`
	JobShift    *string          `json:"job_shift"`
	JoiningDate *string          `json:"joining_date"`
	ReferredBy  *string          `json:"referred_by"`
	Salary      *decimal.Decimal `json:"salary"`
	Status      *string          `json:"current_employee"`
	ImageURL    *string          `json:"image"`

	IBANNumber   *string `json:"iban_number"`
	AccountTitle *string `json:"account_title"`
	BankName     *string `json:"bank_name"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if r.JoiningDate != nil && *r.JoiningDate != "" {
		if _, ok := validator.ParseDateKey(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	EmployeeID    string          `json:"employee_id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Designation   string          `json:"designation"`
	PhoneNo       string          `json:"phone_no"`
	JobShift      string          `json:"job_shift"`
	JoiningDate   *string         `json:"joining_date"`
	ReferredBy    string          `json:"referred_by"`
	Salary        decimal.Decimal `json:"salary"`
	SalaryPerHour decimal.Decimal `json:"salary_per_hour"`
	Status        string          `json:"current_employee"`
	ImageURL      string          `json:"image,omitempty"`
	SalaryCount   int             `json:"salary_count"`
	IBANNumber    string          `json:"iban_number,omitempty"`
	AccountTitle  string          `json:"account_title,omitempty"`
	BankName      string          `json:"bank_name,omitempty"`
}

type ListEmployeesResponse struct {
	Count          int                `json:"count"`
	ActiveEmployee int                `json:"active_employee"`
	ExEmployee     int                `json:"ex_employee"`
	Data           []EmployeeResponse `json:"data"`
}
