package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateKey(t *testing.T) {
	got, ok := ParseDateKey("2025-06-01")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDateKey("2025-6-1")
	assert.False(t, ok)

	_, ok = ParseDateKey("not-a-date")
	assert.False(t, ok)

	_, ok = ParseDateKey("2025-13-01")
	assert.False(t, ok)
}

func TestParseFlexibleDate(t *testing.T) {
	got, ok := ParseFlexibleDate("2025-06-01")
	assert.True(t, ok)
	assert.Equal(t, 2025, got.Year())

	got, ok = ParseFlexibleDate("2025-06-01T10:30:00Z")
	assert.True(t, ok)
	assert.Equal(t, 10, got.Hour())

	_, ok = ParseFlexibleDate("yesterday")
	assert.False(t, ok)
}

func TestIsValidMonthKey(t *testing.T) {
	assert.True(t, IsValidMonthKey("2025-10"))
	assert.False(t, IsValidMonthKey("2025-1"))
	assert.False(t, IsValidMonthKey("2025-10-01"))
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP-001"))
	assert.True(t, IsValidEmployeeCode("e_1"))
	assert.False(t, IsValidEmployeeCode(""))
	assert.False(t, IsValidEmployeeCode("-leading-dash"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "is required"},
		{Field: "note", Message: "is required"},
	}

	assert.Contains(t, errs.Error(), "employee_id: is required")
	assert.Equal(t, map[string]string{
		"employee_id": "is required",
		"note":        "is required",
	}, errs.ToMap())
}
