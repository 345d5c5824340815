package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/leo-edge/hr-payroll-backend-go/internal/domain/salary"
	"github.com/leo-edge/hr-payroll-backend-go/internal/handler/http/response"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSalaryService struct {
	applyErr    error
	markPaidErr error
}

func (s *stubSalaryService) ApplyAction(_ context.Context, req salary.ApplySalaryActionRequest) (salary.CycleLedgerResponse, error) {
	if s.applyErr != nil {
		return salary.CycleLedgerResponse{}, s.applyErr
	}
	return salary.CycleLedgerResponse{EmployeeID: req.EmployeeID, CycleKey: "2025-03-18_2025-04-17"}, nil
}

func (s *stubSalaryService) GetHistory(_ context.Context, employeeID string, page, limit int) (salary.HistoryResponse, error) {
	return salary.HistoryResponse{Page: page, Limit: limit}, nil
}

func (s *stubSalaryService) MarkPaid(_ context.Context, req salary.MarkPaidRequest) (salary.MarkPaidResponse, error) {
	if s.markPaidErr != nil {
		return salary.MarkPaidResponse{}, s.markPaidErr
	}
	return salary.MarkPaidResponse{EmployeeID: req.EmployeeID, SalaryCount: 1}, nil
}

func newSalaryTestRouter(svc salary.SalaryService) *chi.Mux {
	h := NewSalaryHandler(svc)
	r := chi.NewRouter()
	r.Post("/api/salary/apply", h.ApplyAction)
	r.Get("/api/salary/history/{employee_id}", h.GetHistory)
	r.Post("/api/salary/mark-paid", h.MarkPaid)
	return r
}

func TestApplyActionInvalidBody(t *testing.T) {
	router := newSalaryTestRouter(&stubSalaryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/salary/apply", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplyActionValidationErrorIs400(t *testing.T) {
	svc := &stubSalaryService{applyErr: validator.ValidationErrors{
		{Field: "employee_id", Message: "is required"},
	}}
	router := newSalaryTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/salary/apply", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "employee_id")
}

func TestMarkPaidNotFoundIs404(t *testing.T) {
	svc := &stubSalaryService{markPaidErr: salary.ErrCycleLedgerNotFound}
	router := newSalaryTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/salary/mark-paid",
		strings.NewReader(`{"employee_id":"EMP-1","cycle_key":"2025-03-18_2025-04-17"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkPaidAlreadyPaidIs409(t *testing.T) {
	svc := &stubSalaryService{markPaidErr: salary.ErrCycleAlreadyPaid}
	router := newSalaryTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/salary/mark-paid",
		strings.NewReader(`{"employee_id":"EMP-1","cycle_key":"2025-03-18_2025-04-17"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMarkPaidSuccessEnvelope(t *testing.T) {
	router := newSalaryTestRouter(&stubSalaryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/salary/mark-paid",
		strings.NewReader(`{"employee_id":"EMP-1","cycle_key":"2025-03-18_2025-04-17"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
}
