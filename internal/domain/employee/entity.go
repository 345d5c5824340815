package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	EmployeeID    string
	Name          string
	Email         string
	Designation   string
	PhoneNo       string
	JobShift      string
	JoiningDate   *time.Time
	ReferredBy    string
	Salary        decimal.Decimal
	SalaryPerHour decimal.Decimal
	Status        Status
	ImageURL      string
	SalaryCount   int

	IBANNumber   string
	AccountTitle string
	BankName     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Status string

const (
	StatusActive Status = "Active Employee"
	StatusEx     Status = "Ex-Employee"
)

// SalaryPerHourFor derives the hourly rate from a monthly salary and the
// configured monthly-hours divisor, rounded to two decimal places.
func SalaryPerHourFor(monthly decimal.Decimal, monthlyHours int) decimal.Decimal {
	if monthlyHours <= 0 {
		return decimal.Zero
	}
	return monthly.Div(decimal.NewFromInt(int64(monthlyHours))).Round(2)
}
