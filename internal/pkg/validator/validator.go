package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// DateKey is the storage format for day-keyed records.
const DateKey = "2006-01-02"

// ParseDateKey parses a "YYYY-MM-DD" day key into a UTC instant.
func ParseDateKey(dateStr string) (time.Time, bool) {
	date, err := time.ParseInLocation(DateKey, dateStr, time.UTC)
	return date, err == nil
}

// ParseFlexibleDate accepts either a plain day key or a full RFC3339
// timestamp, the two shapes clients send for action dates.
func ParseFlexibleDate(s string) (time.Time, bool) {
	if t, ok := ParseDateKey(s); ok {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

var monthKeyRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// IsValidMonthKey checks a "YYYY-MM" month prefix used by range filters.
func IsValidMonthKey(s string) bool {
	return monthKeyRegex.MatchString(s)
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var employeeCodeRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,49}$`)

// IsValidEmployeeCode checks the free-form employee code (e.g. "EMP-001").
func IsValidEmployeeCode(code string) bool {
	return employeeCodeRegex.MatchString(code)
}
