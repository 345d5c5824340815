package attendance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/leo-edge/hr-payroll-backend-go/internal/config"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/attendance"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/employee"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/salary"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/database"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/paycycle"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/validator"
	"github.com/leo-edge/hr-payroll-backend-go/internal/repository/postgresql"
)

const defaultPageSize = 31

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	ledgerRepo     salary.CycleLedgerRepository
	payrollCfg     config.PayrollConfig
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	ledgerRepo salary.CycleLedgerRepository,
	payrollCfg config.PayrollConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		ledgerRepo:     ledgerRepo,
		payrollCfg:     payrollCfg,
	}
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	history := make([]attendance.HistoryEntryResponse, 0, len(att.History))
	for _, h := range att.History {
		history = append(history, attendance.HistoryEntryResponse{
			Status:    h.Status,
			Note:      h.Note,
			ExtraNote: h.ExtraNote,
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
		})
	}

	return attendance.AttendanceResponse{
		EmployeeID:     att.EmployeeID,
		AttendanceDate: att.AttendanceDate,
		Status:         att.Status,
		Note:           att.Note,
		ExtraNote:      att.ExtraNote,
		EarlyHours:     att.EarlyHours,
		History:        history,
	}
}

func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.RecordAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	day, _ := validator.ParseDateKey(req.AttendanceDate)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if day.After(today) {
		return attendance.RecordAttendanceResponse{}, attendance.ErrFutureDate
	}

	if _, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	entry := attendance.HistoryEntry{
		Status:    req.Status,
		Note:      req.Note,
		ExtraNote: req.ExtraNote,
		ChangedBy: req.ChangedBy,
		ChangedAt: time.Now().UTC(),
	}

	var resp attendance.RecordAttendanceResponse
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.AttendanceDate)

		var saved attendance.Attendance

		switch {
		case err == nil:
			existing.Status = req.Status
			existing.Note = req.Note
			existing.ExtraNote = req.ExtraNote
			if req.EarlyHours != nil {
				existing.EarlyHours = req.EarlyHours
			}
			existing.History = append(existing.History, entry)

			saved, err = s.attendanceRepo.Update(ctx, existing)
			if err != nil {
				return err
			}
			resp = attendance.RecordAttendanceResponse{Created: false, Attendance: mapAttendanceToResponse(saved)}

		case errors.Is(err, attendance.ErrAttendanceNotFound):
			saved, err = s.attendanceRepo.Create(ctx, attendance.Attendance{
				EmployeeID:     req.EmployeeID,
				AttendanceDate: req.AttendanceDate,
				Status:         req.Status,
				Note:           req.Note,
				ExtraNote:      req.ExtraNote,
				EarlyHours:     req.EarlyHours,
				History:        []attendance.HistoryEntry{entry},
			})
			if err != nil {
				return err
			}
			resp = attendance.RecordAttendanceResponse{Created: true, Attendance: mapAttendanceToResponse(saved)}

		default:
			return err
		}

		return nil
	})
	if err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	// The bonus rule runs after the attendance write commits; a ledger
	// failure is logged and never unwinds the recorded day.
	if attendance.ParseStatus(req.Status).CountsTowardBonus() {
		if err := s.applyBonusRule(ctx, req.EmployeeID, day); err != nil {
			slog.Error("attendance bonus rule failed",
				"employee_id", req.EmployeeID,
				"attendance_date", req.AttendanceDate,
				"error", err,
			)
		}
	}

	return resp, nil
}

// applyBonusRule counts one qualifying day on the cycle ledger and awards
// the one-shot attendance bonus when the counter reaches the configured
// target. Every qualifying write counts, re-marks of the same day
// included, and the counter never goes down.
func (s *AttendanceServiceImpl) applyBonusRule(ctx context.Context, employeeID string, day time.Time) error {
	return postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		cycle := paycycle.ForDate(day)

		ledger, err := s.ledgerRepo.GetByEmployeeAndCycle(ctx, employeeID, cycle.Key)
		if errors.Is(err, salary.ErrCycleLedgerNotFound) {
			emp, gerr := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
			if gerr != nil {
				return gerr
			}
			ledger, err = s.ledgerRepo.Create(ctx, salary.CycleLedger{
				EmployeeID:    employeeID,
				CycleKey:      cycle.Key,
				CycleStart:    cycle.Start,
				CycleEnd:      cycle.End,
				BaseSalary:    emp.Salary,
				SalaryPerHour: emp.SalaryPerHour,
				PayableSalary: emp.Salary,
				Status:        salary.StatusUnpaid,
			})
		}
		if err != nil {
			return err
		}

		ledger.AttendanceCount++

		if ledger.AttendanceCount >= s.payrollCfg.AttendanceTarget && !ledger.AttendanceBonusAwarded {
			now := time.Now().UTC()
			ledger.Apply(salary.Transaction{
				Type:   salary.TxnAttendanceBonusAuto,
				Amount: s.payrollCfg.AttendanceBonusAmount,
				Meta: map[string]interface{}{
					"attendance_count": ledger.AttendanceCount,
					"target":           s.payrollCfg.AttendanceTarget,
				},
				Note:       "Automatic attendance bonus",
				ActionDate: day,
				CreatedAt:  now,
			})
			ledger.AttendanceBonusAwarded = true
			slog.Info("attendance bonus awarded",
				"employee_id", employeeID,
				"cycle_key", cycle.Key,
				"attendance_count", ledger.AttendanceCount,
			)
		}

		_, err = s.ledgerRepo.Update(ctx, ledger)
		return err
	})
}

func (s *AttendanceServiceImpl) GetByEmployee(ctx context.Context, employeeID string, page attendance.Page) (attendance.ListAttendanceResponse, error) {
	page.Normalize(defaultPageSize)

	records, total, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, page)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	return listResponse(records, total, page), nil
}

func (s *AttendanceServiceImpl) GetByEmployeeRange(ctx context.Context, employeeID, start, end string, page attendance.Page) (attendance.ListAttendanceResponse, error) {
	var errs validator.ValidationErrors
	if _, ok := validator.ParseDateKey(start); !ok {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.ParseDateKey(end); !ok {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return attendance.ListAttendanceResponse{}, errs
	}

	page.Normalize(defaultPageSize)

	records, total, err := s.attendanceRepo.ListByEmployeeRange(ctx, employeeID, start, end, page)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	return listResponse(records, total, page), nil
}

func (s *AttendanceServiceImpl) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.LookupResponse, error) {
	if _, ok := validator.ParseDateKey(date); !ok {
		return attendance.LookupResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "must be YYYY-MM-DD"},
		}
	}

	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.LookupResponse{Found: false}, nil
	}
	if err != nil {
		return attendance.LookupResponse{}, err
	}

	mapped := mapAttendanceToResponse(att)
	return attendance.LookupResponse{
		Found:   true,
		Status:  &mapped.Status,
		Note:    &mapped.Note,
		History: mapped.History,
	}, nil
}

func (s *AttendanceServiceImpl) GetByDate(ctx context.Context, date string, page attendance.Page) (attendance.ListAttendanceResponse, error) {
	if _, ok := validator.ParseDateKey(date); !ok {
		return attendance.ListAttendanceResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "must be YYYY-MM-DD"},
		}
	}

	page.Normalize(defaultPageSize)

	records, total, err := s.attendanceRepo.ListByDate(ctx, date, page)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	return listResponse(records, total, page), nil
}

// GetToday returns every record for the current UTC day; a zero Limit
// tells the store to skip pagination.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.ListAttendanceResponse, error) {
	today := time.Now().UTC().Format(validator.DateKey)

	records, total, err := s.attendanceRepo.ListByDate(ctx, today, attendance.Page{})
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		data = append(data, mapAttendanceToResponse(att))
	}
	return attendance.ListAttendanceResponse{
		Data:       data,
		Total:      total,
		Page:       1,
		Limit:      len(data),
		TotalPages: 1,
	}, nil
}

func listResponse(records []attendance.Attendance, total int64, page attendance.Page) attendance.ListAttendanceResponse {
	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		data = append(data, mapAttendanceToResponse(att))
	}
	return attendance.ListAttendanceResponse{
		Data:       data,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages(total),
	}
}
