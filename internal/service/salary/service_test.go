package salary

import (
	"context"
	"fmt"
	"testing"

	"github.com/leo-edge/hr-payroll-backend-go/internal/config"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/employee"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/salary"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	for _, e := range emps {
		r.employees[e.EmployeeID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
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

type fakeLedgerRepo struct {
	ledgers map[string]salary.CycleLedger
	nextID  int
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{ledgers: map[string]salary.CycleLedger{}}
}

func ledgerKey(employeeID, cycleKey string) string {
	return employeeID + "|" + cycleKey
}

func (r *fakeLedgerRepo) Create(_ context.Context, l salary.CycleLedger) (salary.CycleLedger, error) {
	key := ledgerKey(l.EmployeeID, l.CycleKey)
	if _, ok := r.ledgers[key]; ok {
		return salary.CycleLedger{}, salary.ErrCycleLedgerExists
	}
	r.nextID++
	l.ID = fmt.Sprintf("ledger-%d", r.nextID)
	r.ledgers[key] = l
	return l, nil
}

func (r *fakeLedgerRepo) Update(_ context.Context, l salary.CycleLedger) (salary.CycleLedger, error) {
	for key, existing := range r.ledgers {
		if existing.ID == l.ID {
			r.ledgers[key] = l
			return l, nil
		}
	}
	return salary.CycleLedger{}, salary.ErrCycleLedgerNotFound
}

func (r *fakeLedgerRepo) GetByEmployeeAndCycle(_ context.Context, employeeID, cycleKey string) (salary.CycleLedger, error) {
	l, ok := r.ledgers[ledgerKey(employeeID, cycleKey)]
	if !ok {
		return salary.CycleLedger{}, salary.ErrCycleLedgerNotFound
	}
	return l, nil
}

func (r *fakeLedgerRepo) ListByEmployee(_ context.Context, employeeID string, page, limit int) ([]salary.CycleLedger, int64, error) {
	var out []salary.CycleLedger
	for _, l := range r.ledgers {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, int64(len(out)), nil
}

type sentMail struct {
	kind string
	to   string
}

type fakeEmailService struct {
	sent []sentMail
}

func (f *fakeEmailService) SendSalaryPaid(to, employeeName, cycleStart, cycleEnd string, payable decimal.Decimal, paidAt string) error {
	f.sent = append(f.sent, sentMail{kind: "salary_paid", to: to})
	return nil
}

func (f *fakeEmailService) SendReferralBonusDue(to, referrerName, employeeName, employeeID string, paidCycles int) error {
	f.sent = append(f.sent, sentMail{kind: "referral_bonus", to: to})
	return nil
}

func testPayrollConfig() config.PayrollConfig {
	return config.PayrollConfig{
		MonthlyHours:          180,
		AttendanceTarget:      20,
		AttendanceBonusAmount: decimal.NewFromInt(5000),
		ReferralPaidCycles:    3,
		OwnerEmail:            "owner@example.com",
	}
}

func testEmployee() employee.Employee {
	base := decimal.NewFromInt(18000)
	return employee.Employee{
		EmployeeID:    "EMP-1",
		Name:          "Ayesha Khan",
		Email:         "ayesha@example.com",
		Salary:        base,
		SalaryPerHour: employee.SalaryPerHourFor(base, 180), // 100.00
		Status:        employee.StatusActive,
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestApplyActionOvertime(t *testing.T) {
	ledgerRepo := newFakeLedgerRepo()
	svc := NewSalaryService(nil, ledgerRepo, newFakeEmployeeRepo(testEmployee()), &fakeEmailService{}, testPayrollConfig())

	resp, err := svc.ApplyAction(context.Background(), salary.ApplySalaryActionRequest{
		EmployeeID:      "EMP-1",
		Note:            "weekend overtime",
		ActionDate:      "2025-03-20",
		OvertimePercent: dec("50"),
		OvertimeHours:   dec("4"),
	})
	require.NoError(t, err)

	// 4h at 50% of the 100/hour rate adds 200 on top of the 18000 base.
	assert.True(t, resp.PayableSalary.Equal(decimal.NewFromInt(18200)), "got %s", resp.PayableSalary)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, string(salary.TxnOvertime), resp.Transactions[0].Type)
	assert.True(t, resp.Transactions[0].Amount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "2025-03-18_2025-04-17", resp.CycleKey)
}

func TestApplyActionAbsentDeduction(t *testing.T) {
	ledgerRepo := newFakeLedgerRepo()
	svc := NewSalaryService(nil, ledgerRepo, newFakeEmployeeRepo(testEmployee()), &fakeEmailService{}, testPayrollConfig())
	ctx := context.Background()

	_, err := svc.ApplyAction(ctx, salary.ApplySalaryActionRequest{
		EmployeeID:      "EMP-1",
		Note:            "weekend overtime",
		ActionDate:      "2025-03-20",
		OvertimePercent: dec("50"),
		OvertimeHours:   dec("4"),
	})
	require.NoError(t, err)

	resp, err := svc.ApplyAction(ctx, salary.ApplySalaryActionRequest{
		EmployeeID:   "EMP-1",
		Note:         "missed hour",
		ActionDate:   "2025-03-21",
		AbsentAmount: dec("1"),
	})
	require.NoError(t, err)

	assert.True(t, resp.PayableSalary.Equal(decimal.NewFromInt(18100)), "got %s", resp.PayableSalary)
	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, string(salary.TxnAbsent), resp.Transactions[1].Type)
	assert.True(t, resp.Transactions[1].Amount.Equal(decimal.NewFromInt(-100)))
}

func TestApplyActionFixedOrder(t *testing.T) {
	ledgerRepo := newFakeLedgerRepo()
	svc := NewSalaryService(nil, ledgerRepo, newFakeEmployeeRepo(testEmployee()), &fakeEmailService{}, testPayrollConfig())

	resp, err := svc.ApplyAction(context.Background(), salary.ApplySalaryActionRequest{
		EmployeeID:      "EMP-1",
		Note:            "bulk adjustment",
		ActionDate:      "2025-03-20",
		Increment:       dec("1000"),
		Decrement:       dec("300"),
		BonusAmount:     dec("500"),
		BonusPercentage: dec("0.5"),
		ExtraHour:       dec("2"),
		AttendanceBonus: dec("5000"),
		OvertimePercent: dec("100"),
		OvertimeHours:   dec("1"),
		AbsentAmount:    dec("1"),
		EarlyHour:       dec("2"),
	})
	require.NoError(t, err)

	wantTypes := []string{
		string(salary.TxnIncrement),
		string(salary.TxnDecrement),
		string(salary.TxnBonusAmount),
		string(salary.TxnBonusPercentage),
		string(salary.TxnAttendanceBonus),
		string(salary.TxnOvertime),
		string(salary.TxnAbsent),
		string(salary.TxnEarlyLeave),
	}
	require.Len(t, resp.Transactions, len(wantTypes))
	for i, want := range wantTypes {
		assert.Equal(t, want, resp.Transactions[i].Type, "transaction %d", i)
	}

	// 18000 +1000 -300 +500 +(2*0.5*100) +5000 +(1*1.0*100) -(1*100) -(2*100)
	assert.True(t, resp.PayableSalary.Equal(decimal.NewFromInt(24100)), "got %s", resp.PayableSalary)
}

func TestApplyActionBonusPercentageRequiresExtraHour(t *testing.T) {
	ledgerRepo := newFakeLedgerRepo()
	svc := NewSalaryService(nil, ledgerRepo, newFakeEmployeeRepo(testEmployee()), &fakeEmailService{}, testPayrollConfig())

	_, err := svc.ApplyAction(context.Background(), salary.ApplySalaryActionRequest{
		EmployeeID:      "EMP-1",
		Note:            "bad request",
		ActionDate:      "2025-03-20",
		Increment:       dec("1000"),
		BonusPercentage: dec("0.5"),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	// The rejection happens before any adjustment, including the valid
	// increment riding in the same request.
	assert.Empty(t, ledgerRepo.ledgers)
}

func TestMarkPaidFinalizesOnce(t *testing.T) {
	empRepo := newFakeEmployeeRepo(testEmployee())
	ledgerRepo := newFakeLedgerRepo()
	mail := &fakeEmailService{}
	svc := NewSalaryService(nil, ledgerRepo, empRepo, mail, testPayrollConfig())
	ctx := context.Background()

	_, err := svc.ApplyAction(ctx, salary.ApplySalaryActionRequest{
		EmployeeID: "EMP-1",
		Note:       "seed",
		ActionDate: "2025-03-20",
		Increment:  dec("100"),
	})
	require.NoError(t, err)

	resp, err := svc.MarkPaid(ctx, salary.MarkPaidRequest{
		EmployeeID: "EMP-1",
		CycleKey:   "2025-03-18_2025-04-17",
	})
	require.NoError(t, err)
	assert.Equal(t, string(salary.StatusPaid), resp.Ledger.Status)
	assert.NotNil(t, resp.Ledger.PaidAt)
	assert.Equal(t, 1, resp.SalaryCount)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "salary_paid", mail.sent[0].kind)
	assert.Equal(t, "ayesha@example.com", mail.sent[0].to)

	// Second finalize is rejected and nothing moves again.
	_, err = svc.MarkPaid(ctx, salary.MarkPaidRequest{
		EmployeeID: "EMP-1",
		CycleKey:   "2025-03-18_2025-04-17",
	})
	assert.ErrorIs(t, err, salary.ErrCycleAlreadyPaid)

	emp, _ := empRepo.GetByEmployeeID(ctx, "EMP-1")
	assert.Equal(t, 1, emp.SalaryCount)
	assert.Len(t, mail.sent, 1)
}

func TestMarkPaidUnknownCycle(t *testing.T) {
	svc := NewSalaryService(nil, newFakeLedgerRepo(), newFakeEmployeeRepo(testEmployee()), &fakeEmailService{}, testPayrollConfig())

	_, err := svc.MarkPaid(context.Background(), salary.MarkPaidRequest{
		EmployeeID: "EMP-1",
		CycleKey:   "2025-03-18_2025-04-17",
	})
	assert.ErrorIs(t, err, salary.ErrCycleLedgerNotFound)
}

func TestMarkPaidReferralAtThirdCycle(t *testing.T) {
	emp := testEmployee()
	emp.ReferredBy = "Bilal Ahmed"
	emp.SalaryCount = 2
	empRepo := newFakeEmployeeRepo(emp)
	ledgerRepo := newFakeLedgerRepo()
	mail := &fakeEmailService{}
	svc := NewSalaryService(nil, ledgerRepo, empRepo, mail, testPayrollConfig())
	ctx := context.Background()

	_, err := svc.ApplyAction(ctx, salary.ApplySalaryActionRequest{
		EmployeeID: "EMP-1",
		Note:       "seed",
		ActionDate: "2025-03-20",
		Increment:  dec("100"),
	})
	require.NoError(t, err)

	resp, err := svc.MarkPaid(ctx, salary.MarkPaidRequest{
		EmployeeID: "EMP-1",
		CycleKey:   "2025-03-18_2025-04-17",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.SalaryCount)

	require.Len(t, mail.sent, 2)
	assert.Equal(t, "salary_paid", mail.sent[0].kind)
	assert.Equal(t, "referral_bonus", mail.sent[1].kind)
	assert.Equal(t, "owner@example.com", mail.sent[1].to)
}

func TestMarkPaidNoReferralPastThirdCycle(t *testing.T) {
	emp := testEmployee()
	emp.ReferredBy = "Bilal Ahmed"
	emp.SalaryCount = 3 // will land on 4
	empRepo := newFakeEmployeeRepo(emp)
	ledgerRepo := newFakeLedgerRepo()
	mail := &fakeEmailService{}
	svc := NewSalaryService(nil, ledgerRepo, empRepo, mail, testPayrollConfig())
	ctx := context.Background()

	_, err := svc.ApplyAction(ctx, salary.ApplySalaryActionRequest{
		EmployeeID: "EMP-1",
		Note:       "seed",
		ActionDate: "2025-03-20",
		Increment:  dec("100"),
	})
	require.NoError(t, err)

	_, err = svc.MarkPaid(ctx, salary.MarkPaidRequest{
		EmployeeID: "EMP-1",
		CycleKey:   "2025-03-18_2025-04-17",
	})
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "salary_paid", mail.sent[0].kind)
}

func TestGetHistoryRequiresEmployeeID(t *testing.T) {
	svc := NewSalaryService(nil, newFakeLedgerRepo(), newFakeEmployeeRepo(), &fakeEmailService{}, testPayrollConfig())

	_, err := svc.GetHistory(context.Background(), "", 1, 10)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
