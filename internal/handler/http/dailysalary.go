package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/dailysalary"
	"github.com/leo-edge/hr-payroll-backend-go/internal/handler/http/response"
)

type DailySalaryHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateAbsolute(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
	EventsSummary(w http.ResponseWriter, r *http.Request)
}

type dailySalaryHandlerImpl struct {
	dailySalaryService dailysalary.DailySalaryService
}

func NewDailySalaryHandler(dailySalaryService dailysalary.DailySalaryService) DailySalaryHandler {
	return &dailySalaryHandlerImpl{dailySalaryService: dailySalaryService}
}

func filterFromQuery(r *http.Request) dailysalary.Filter {
	q := r.URL.Query()
	return dailysalary.Filter{
		EmployeeID: q.Get("employee_id"),
		Date:       q.Get("date"),
		Month:      q.Get("month"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	}
}

func (h *dailySalaryHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req dailysalary.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.dailySalaryService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily salary saved", result)
}

// Get serves both shapes of the listing route: an employee with no day
// filter gets the base-salary summary, anything else gets the filtered
// day list.
func (h *dailySalaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	if filter.EmployeeID != "" && filter.Date == "" && filter.Month == "" && filter.From == "" && filter.To == "" {
		result, err := h.dailySalaryService.GetEmployeeSummary(r.Context(), filter.EmployeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.dailySalaryService.List(r.Context(), filter, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dailySalaryHandlerImpl) UpdateAbsolute(w http.ResponseWriter, r *http.Request) {
	var req dailysalary.UpdateAbsoluteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employee_id")
	req.Date = chi.URLParam(r, "date")

	result, err := h.dailySalaryService.UpdateAbsolute(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily salary updated", result)
}

func (h *dailySalaryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employee_id")
	date := chi.URLParam(r, "date")

	result, err := h.dailySalaryService.Delete(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily salary deleted", result)
}

func (h *dailySalaryHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.dailySalaryService.Events(r.Context(), filterFromQuery(r), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dailySalaryHandlerImpl) EventsSummary(w http.ResponseWriter, r *http.Request) {
	groupBy := r.URL.Query().Get("groupBy")

	result, err := h.dailySalaryService.EventsSummary(r.Context(), filterFromQuery(r), groupBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
