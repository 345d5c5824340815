package dailysalary

import (
	"context"
	"errors"

	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/dailysalary"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/employee"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/database"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/validator"
	"github.com/leo-edge/hr-payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

const defaultListLimit = 20

type DailySalaryServiceImpl struct {
	db           *database.DB
	ledgerRepo   dailysalary.DailyLedgerRepository
	employeeRepo employee.EmployeeRepository
}

func NewDailySalaryService(
	db *database.DB,
	ledgerRepo dailysalary.DailyLedgerRepository,
	employeeRepo employee.EmployeeRepository,
) dailysalary.DailySalaryService {
	return &DailySalaryServiceImpl{
		db:           db,
		ledgerRepo:   ledgerRepo,
		employeeRepo: employeeRepo,
	}
}

func mapDailyLedgerToResponse(l dailysalary.DailyLedger) dailysalary.DailyLedgerResponse {
	return dailysalary.DailyLedgerResponse{
		EmployeeID: l.EmployeeID,
		SalaryDate: l.SalaryDate,
		BaseSalary: l.BaseSalary,
		Increment:  l.Increment,
		Deduction:  l.Deduction,
		Payable:    l.Payable,
		Note:       l.Note,
	}
}

func amountOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// validateFilter rejects malformed date and month keys before they reach
// the store's LIKE/range clauses.
func validateFilter(filter dailysalary.Filter) error {
	var errs validator.ValidationErrors
	if filter.Date != "" {
		if _, ok := validator.ParseDateKey(filter.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}
	if filter.Month != "" && !validator.IsValidMonthKey(filter.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be YYYY-MM"})
	}
	if filter.From != "" {
		if _, ok := validator.ParseDateKey(filter.From); !ok {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be YYYY-MM-DD"})
		}
	}
	if filter.To != "" {
		if _, ok := validator.ParseDateKey(filter.To); !ok {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *DailySalaryServiceImpl) Upsert(ctx context.Context, req dailysalary.UpsertRequest) (dailysalary.DailyLedgerResponse, error) {
	if err := req.Validate(); err != nil {
		return dailysalary.DailyLedgerResponse{}, err
	}

	day, _ := validator.ParseFlexibleDate(req.Date)
	dateKey := day.Format(validator.DateKey)

	inc := amountOrZero(req.Increment)
	ded := amountOrZero(req.Deduction)

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return dailysalary.DailyLedgerResponse{}, err
	}

	var resp dailysalary.DailyLedgerResponse
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		existing, err := s.ledgerRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, dateKey)

		var saved dailysalary.DailyLedger
		switch {
		case errors.Is(err, dailysalary.ErrDailyLedgerNotFound):
			// First write for this day snapshots the employee's base salary.
			saved, err = s.ledgerRepo.Create(ctx, dailysalary.DailyLedger{
				EmployeeID: req.EmployeeID,
				SalaryDate: dateKey,
				BaseSalary: emp.Salary,
				Increment:  inc,
				Deduction:  ded,
				Payable:    dailysalary.ClampPayable(emp.Salary.Sub(ded).Add(inc)),
				Note:       req.Note,
			})
			if err != nil {
				return err
			}

		case err == nil:
			existing.Increment = existing.Increment.Add(inc)
			existing.Deduction = existing.Deduction.Add(ded)
			existing.Payable = dailysalary.ClampPayable(existing.Payable.Sub(ded).Add(inc))
			if req.Note != "" {
				if existing.Note != "" {
					existing.Note = existing.Note + "\n" + req.Note
				} else {
					existing.Note = req.Note
				}
			}

			saved, err = s.ledgerRepo.Update(ctx, existing)
			if err != nil {
				return err
			}

		default:
			return err
		}

		if err := s.appendEvents(ctx, req.EmployeeID, dateKey, inc, ded, req.Note); err != nil {
			return err
		}

		resp = mapDailyLedgerToResponse(saved)
		return nil
	})
	if err != nil {
		return dailysalary.DailyLedgerResponse{}, err
	}

	return resp, nil
}

func (s *DailySalaryServiceImpl) UpdateAbsolute(ctx context.Context, req dailysalary.UpdateAbsoluteRequest) (dailysalary.DailyLedgerResponse, error) {
	if err := req.Validate(); err != nil {
		return dailysalary.DailyLedgerResponse{}, err
	}

	day, _ := validator.ParseFlexibleDate(req.Date)
	dateKey := day.Format(validator.DateKey)

	var resp dailysalary.DailyLedgerResponse
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		current, err := s.ledgerRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, dateKey)
		if err != nil {
			return err
		}

		oldInc := current.Increment
		oldDed := current.Deduction

		newInc := oldInc
		if req.Increment != nil {
			newInc = *req.Increment
		}
		newDed := oldDed
		if req.Deduction != nil {
			newDed = *req.Deduction
		}

		current.Increment = newInc
		current.Deduction = newDed
		current.Payable = dailysalary.ClampPayable(current.BaseSalary.Sub(newDed).Add(newInc))
		note := ""
		if req.Note != nil {
			current.Note = *req.Note
			note = *req.Note
		}

		saved, err := s.ledgerRepo.Update(ctx, current)
		if err != nil {
			return err
		}

		// Only the growth against prior totals is audited; lowering a
		// total leaves no event.
		if err := s.appendEvents(ctx, req.EmployeeID, dateKey, newInc.Sub(oldInc), newDed.Sub(oldDed), note); err != nil {
			return err
		}

		resp = mapDailyLedgerToResponse(saved)
		return nil
	})
	if err != nil {
		return dailysalary.DailyLedgerResponse{}, err
	}

	return resp, nil
}

func (s *DailySalaryServiceImpl) appendEvents(ctx context.Context, employeeID, dateKey string, inc, ded decimal.Decimal, note string) error {
	var events []dailysalary.Event
	if inc.IsPositive() {
		events = append(events, dailysalary.Event{
			EmployeeID: employeeID,
			SalaryDate: dateKey,
			Type:       dailysalary.EventIncrement,
			Amount:     inc,
			Note:       note,
		})
	}
	if ded.IsPositive() {
		events = append(events, dailysalary.Event{
			EmployeeID: employeeID,
			SalaryDate: dateKey,
			Type:       dailysalary.EventDeduction,
			Amount:     ded,
			Note:       note,
		})
	}
	if len(events) == 0 {
		return nil
	}
	return s.ledgerRepo.AppendEvents(ctx, events)
}

func (s *DailySalaryServiceImpl) Delete(ctx context.Context, employeeID, date string) (dailysalary.DailyLedgerResponse, error) {
	day, ok := validator.ParseFlexibleDate(date)
	if !ok {
		return dailysalary.DailyLedgerResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"},
		}
	}

	deleted, err := s.ledgerRepo.Delete(ctx, employeeID, day.Format(validator.DateKey))
	if err != nil {
		return dailysalary.DailyLedgerResponse{}, err
	}
	return mapDailyLedgerToResponse(deleted), nil
}

func (s *DailySalaryServiceImpl) GetEmployeeSummary(ctx context.Context, employeeID string) (dailysalary.EmployeeSummaryResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return dailysalary.EmployeeSummaryResponse{}, err
	}

	resp := dailysalary.EmployeeSummaryResponse{
		EmployeeID:    emp.EmployeeID,
		Name:          emp.Name,
		Designation:   emp.Designation,
		BaseSalary:    emp.Salary,
		Status:        string(emp.Status),
		LatestPayable: emp.Salary,
		LastIncrement: decimal.Zero,
		LastDeduction: decimal.Zero,
	}

	latest, err := s.ledgerRepo.LatestByEmployee(ctx, employeeID)
	if errors.Is(err, dailysalary.ErrDailyLedgerNotFound) {
		return resp, nil
	}
	if err != nil {
		return dailysalary.EmployeeSummaryResponse{}, err
	}

	resp.LatestPayable = latest.Payable
	resp.LastUpdate = &latest.SalaryDate
	resp.LastIncrement = latest.Increment
	resp.LastDeduction = latest.Deduction
	resp.LastNote = latest.Note
	return resp, nil
}

func (s *DailySalaryServiceImpl) List(ctx context.Context, filter dailysalary.Filter, page, limit int) (dailysalary.ListResponse, error) {
	if err := validateFilter(filter); err != nil {
		return dailysalary.ListResponse{}, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultListLimit
	}

	ledgers, total, err := s.ledgerRepo.List(ctx, filter, page, limit)
	if err != nil {
		return dailysalary.ListResponse{}, err
	}

	data := make([]dailysalary.DailyLedgerResponse, 0, len(ledgers))
	totalPayable := decimal.Zero
	for _, l := range ledgers {
		totalPayable = totalPayable.Add(l.Payable)
		data = append(data, mapDailyLedgerToResponse(l))
	}

	return dailysalary.ListResponse{
		Data:         data,
		Total:        total,
		TotalPayable: totalPayable,
		Page:         page,
		Pages:        totalPages(total, limit),
	}, nil
}

func (s *DailySalaryServiceImpl) Events(ctx context.Context, filter dailysalary.Filter, page, limit int) (dailysalary.EventsResponse, error) {
	if err := validateFilter(filter); err != nil {
		return dailysalary.EventsResponse{}, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultListLimit
	}

	events, total, err := s.ledgerRepo.ListEvents(ctx, filter, page, limit)
	if err != nil {
		return dailysalary.EventsResponse{}, err
	}

	totals, err := s.ledgerRepo.EventTotals(ctx, filter)
	if err != nil {
		return dailysalary.EventsResponse{}, err
	}

	data := make([]dailysalary.EventResponse, 0, len(events))
	for _, ev := range events {
		data = append(data, dailysalary.EventResponse{
			EmployeeID: ev.EmployeeID,
			SalaryDate: ev.SalaryDate,
			Type:       string(ev.Type),
			Amount:     ev.Amount,
			Note:       ev.Note,
			CreatedAt:  ev.CreatedAt,
		})
	}

	return dailysalary.EventsResponse{
		EmployeeID:  filter.EmployeeID,
		Data:        data,
		Total:       total,
		Page:        page,
		Pages:       totalPages(total, limit),
		EventTotals: totals,
	}, nil
}

func (s *DailySalaryServiceImpl) EventsSummary(ctx context.Context, filter dailysalary.Filter, groupBy string) (dailysalary.EventsSummaryResponse, error) {
	if err := validateFilter(filter); err != nil {
		return dailysalary.EventsSummaryResponse{}, err
	}
	byDay := groupBy == "day"
	if !byDay {
		groupBy = "none"
	}

	rows, err := s.ledgerRepo.SummarizeEvents(ctx, filter, byDay)
	if err != nil {
		return dailysalary.EventsSummaryResponse{}, err
	}

	totals := dailysalary.EventTotals{
		TotalIncrement: decimal.Zero,
		TotalDeduction: decimal.Zero,
	}
	for _, row := range rows {
		switch dailysalary.EventType(row.Type) {
		case dailysalary.EventIncrement:
			totals.TotalIncrement = totals.TotalIncrement.Add(row.Amount)
		case dailysalary.EventDeduction:
			totals.TotalDeduction = totals.TotalDeduction.Add(row.Amount)
		}
	}
	totals.NetChange = totals.TotalIncrement.Sub(totals.TotalDeduction)

	return dailysalary.EventsSummaryResponse{
		EmployeeID:  filter.EmployeeID,
		GroupBy:     groupBy,
		Rows:        rows,
		EventTotals: totals,
	}, nil
}

func totalPages(total int64, limit int) int {
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}
	return pages
}
