package salary

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/leo-edge/hr-payroll-backend-go/internal/config"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/employee"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/salary"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/database"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/email"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/paycycle"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/validator"
	"github.com/leo-edge/hr-payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

const defaultHistoryLimit = 10

type SalaryServiceImpl struct {
	db           *database.DB
	ledgerRepo   salary.CycleLedgerRepository
	employeeRepo employee.EmployeeRepository
	emailService email.EmailService
	payrollCfg   config.PayrollConfig
}

func NewSalaryService(
	db *database.DB,
	ledgerRepo salary.CycleLedgerRepository,
	employeeRepo employee.EmployeeRepository,
	emailService email.EmailService,
	payrollCfg config.PayrollConfig,
) salary.SalaryService {
	return &SalaryServiceImpl{
		db:           db,
		ledgerRepo:   ledgerRepo,
		employeeRepo: employeeRepo,
		emailService: emailService,
		payrollCfg:   payrollCfg,
	}
}

func mapLedgerToResponse(l salary.CycleLedger) salary.CycleLedgerResponse {
	txns := make([]salary.TransactionResponse, 0, len(l.Transactions))
	for _, t := range l.Transactions {
		txns = append(txns, salary.TransactionResponse{
			Type:       string(t.Type),
			Amount:     t.Amount,
			Meta:       t.Meta,
			Note:       t.Note,
			ActionDate: t.ActionDate,
			CreatedAt:  t.CreatedAt,
		})
	}

	return salary.CycleLedgerResponse{
		EmployeeID:             l.EmployeeID,
		CycleKey:               l.CycleKey,
		CycleStart:             l.CycleStart,
		CycleEnd:               l.CycleEnd,
		BaseSalary:             l.BaseSalary,
		SalaryPerHour:          l.SalaryPerHour,
		PayableSalary:          l.PayableSalary,
		Status:                 string(l.Status),
		PaidAt:                 l.PaidAt,
		AttendanceCount:        l.AttendanceCount,
		AttendanceBonusAwarded: l.AttendanceBonusAwarded,
		Transactions:           txns,
	}
}

func (s *SalaryServiceImpl) ApplyAction(ctx context.Context, req salary.ApplySalaryActionRequest) (salary.CycleLedgerResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.CycleLedgerResponse{}, err
	}

	actionDate, _ := validator.ParseFlexibleDate(req.ActionDate)

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return salary.CycleLedgerResponse{}, err
	}

	cycle := paycycle.ForDate(actionDate)
	if !cycle.Contains(actionDate) {
		return salary.CycleLedgerResponse{}, salary.ErrCycleMismatch
	}

	var resp salary.CycleLedgerResponse
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		ledger, err := s.getOrCreateLedger(ctx, emp, cycle)
		if err != nil {
			return err
		}

		// Snapshot rate, falling back to the employee's current rate when
		// the ledger was created before one existed.
		sph := ledger.SalaryPerHour
		if sph.IsZero() {
			sph = emp.SalaryPerHour
		}

		now := time.Now().UTC()
		apply := func(txnType salary.TransactionType, amount decimal.Decimal, meta map[string]interface{}) {
			ledger.Apply(salary.Transaction{
				Type:       txnType,
				Amount:     amount,
				Meta:       meta,
				Note:       req.Note,
				ActionDate: actionDate,
				CreatedAt:  now,
			})
		}

		if req.Increment != nil && !req.Increment.IsZero() {
			apply(salary.TxnIncrement, *req.Increment, map[string]interface{}{
				"increment": *req.Increment,
			})
		}
		if req.Decrement != nil && !req.Decrement.IsZero() {
			apply(salary.TxnDecrement, req.Decrement.Abs().Neg(), map[string]interface{}{
				"decrement": *req.Decrement,
			})
		}
		if req.BonusAmount != nil && !req.BonusAmount.IsZero() {
			apply(salary.TxnBonusAmount, *req.BonusAmount, map[string]interface{}{
				"bonus_amount": *req.BonusAmount,
			})
		}
		if req.BonusPercentage != nil && !req.BonusPercentage.IsZero() {
			bonus := req.ExtraHour.Mul(*req.BonusPercentage).Mul(sph)
			apply(salary.TxnBonusPercentage, bonus, map[string]interface{}{
				"bonus_percentage": *req.BonusPercentage,
				"extra_hour":       *req.ExtraHour,
				"salary_per_hour":  sph,
				"formula":          "extra_hour * bonus_percentage * salary_per_hour",
			})
		}
		if req.AttendanceBonus != nil && !req.AttendanceBonus.IsZero() {
			apply(salary.TxnAttendanceBonus, *req.AttendanceBonus, map[string]interface{}{
				"attendance_bonus": *req.AttendanceBonus,
			})
		}
		if req.OvertimePercent != nil && req.OvertimePercent.IsPositive() &&
			req.OvertimeHours != nil && req.OvertimeHours.IsPositive() {
			overtime := req.OvertimeHours.Mul(req.OvertimePercent.Div(decimal.NewFromInt(100))).Mul(sph)
			apply(salary.TxnOvertime, overtime, map[string]interface{}{
				"overtime_percent": *req.OvertimePercent,
				"overtime_hours":   *req.OvertimeHours,
				"salary_per_hour":  sph,
				"formula":          "overtime_hours * (overtime_percent / 100) * salary_per_hour",
			})
		}
		if req.AbsentAmount != nil && req.AbsentAmount.IsPositive() {
			cut := req.AbsentAmount.Mul(sph)
			apply(salary.TxnAbsent, cut.Abs().Neg(), map[string]interface{}{
				"absent_amount":   *req.AbsentAmount,
				"salary_per_hour": sph,
				"formula":         "absent_amount * salary_per_hour",
			})
		}
		if req.EarlyHour != nil && req.EarlyHour.IsPositive() {
			cut := req.EarlyHour.Mul(sph)
			apply(salary.TxnEarlyLeave, cut.Abs().Neg(), map[string]interface{}{
				"early_hour":      *req.EarlyHour,
				"salary_per_hour": sph,
				"formula":         "early_hour * salary_per_hour",
			})
		}

		updated, err := s.ledgerRepo.Update(ctx, ledger)
		if err != nil {
			return err
		}
		resp = mapLedgerToResponse(updated)
		return nil
	})
	if err != nil {
		return salary.CycleLedgerResponse{}, err
	}

	return resp, nil
}

func (s *SalaryServiceImpl) getOrCreateLedger(ctx context.Context, emp employee.Employee, cycle paycycle.Cycle) (salary.CycleLedger, error) {
	ledger, err := s.ledgerRepo.GetByEmployeeAndCycle(ctx, emp.EmployeeID, cycle.Key)
	if err == nil {
		return ledger, nil
	}
	if !errors.Is(err, salary.ErrCycleLedgerNotFound) {
		return salary.CycleLedger{}, err
	}

	return s.ledgerRepo.Create(ctx, salary.CycleLedger{
		EmployeeID:    emp.EmployeeID,
		CycleKey:      cycle.Key,
		CycleStart:    cycle.Start,
		CycleEnd:      cycle.End,
		BaseSalary:    emp.Salary,
		SalaryPerHour: emp.SalaryPerHour,
		PayableSalary: emp.Salary,
		Status:        salary.StatusUnpaid,
	})
}

func (s *SalaryServiceImpl) GetHistory(ctx context.Context, employeeID string, page, limit int) (salary.HistoryResponse, error) {
	if validator.IsEmpty(employeeID) {
		return salary.HistoryResponse{}, validator.ValidationErrors{
			{Field: "employee_id", Message: "is required"},
		}
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}

	ledgers, total, err := s.ledgerRepo.ListByEmployee(ctx, employeeID, page, limit)
	if err != nil {
		return salary.HistoryResponse{}, err
	}

	data := make([]salary.CycleLedgerResponse, 0, len(ledgers))
	for _, l := range ledgers {
		data = append(data, mapLedgerToResponse(l))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	return salary.HistoryResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *SalaryServiceImpl) MarkPaid(ctx context.Context, req salary.MarkPaidRequest) (salary.MarkPaidResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.MarkPaidResponse{}, err
	}

	var (
		ledger salary.CycleLedger
		emp    employee.Employee
	)
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		var err error
		ledger, err = s.ledgerRepo.GetByEmployeeAndCycle(ctx, req.EmployeeID, req.CycleKey)
		if err != nil {
			return err
		}
		if ledger.Status == salary.StatusPaid {
			return salary.ErrCycleAlreadyPaid
		}

		now := time.Now().UTC()
		ledger.Status = salary.StatusPaid
		ledger.PaidAt = &now
		ledger, err = s.ledgerRepo.Update(ctx, ledger)
		if err != nil {
			return err
		}

		emp, err = s.employeeRepo.IncrementSalaryCount(ctx, req.EmployeeID)
		return err
	})
	if err != nil {
		return salary.MarkPaidResponse{}, err
	}

	// Notifications happen after commit; a failed send never unwinds the
	// payment, it only gets logged.
	s.sendPaidNotifications(ledger, emp)

	return salary.MarkPaidResponse{
		Ledger:      mapLedgerToResponse(ledger),
		SalaryCount: emp.SalaryCount,
		EmployeeID:  emp.EmployeeID,
	}, nil
}

func (s *SalaryServiceImpl) sendPaidNotifications(ledger salary.CycleLedger, emp employee.Employee) {
	cycleStart := ledger.CycleStart.Format(validator.DateKey)
	cycleEnd := ledger.CycleEnd.Format(validator.DateKey)
	paidAt := ""
	if ledger.PaidAt != nil {
		paidAt = ledger.PaidAt.Format(time.RFC3339)
	}

	if err := s.emailService.SendSalaryPaid(emp.Email, emp.Name, cycleStart, cycleEnd, ledger.PayableSalary, paidAt); err != nil {
		slog.Error("failed to send salary-paid email",
			"employee_id", emp.EmployeeID,
			"cycle_key", ledger.CycleKey,
			"error", err,
		)
	}

	if emp.ReferredBy != "" && emp.SalaryCount == s.payrollCfg.ReferralPaidCycles {
		if s.payrollCfg.OwnerEmail == "" {
			slog.Warn("referral bonus due but OWNER_EMAIL not configured",
				"employee_id", emp.EmployeeID,
			)
			return
		}
		if err := s.emailService.SendReferralBonusDue(s.payrollCfg.OwnerEmail, emp.ReferredBy, emp.Name, emp.EmployeeID, emp.SalaryCount); err != nil {
			slog.Error("failed to send referral-bonus email",
				"employee_id", emp.EmployeeID,
				"error", err,
			)
		}
	}
}
