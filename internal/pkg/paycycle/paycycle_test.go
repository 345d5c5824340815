package paycycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestForDate_DayOnOrAfterAnchor(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		wantStart time.Time
		wantEnd   time.Time
		wantKey   string
	}{
		{
			name:      "middle of cycle",
			in:        date(2025, time.June, 25),
			wantStart: date(2025, time.June, 18),
			wantEnd:   time.Date(2025, time.July, 17, 23, 59, 59, 999_000_000, time.UTC),
			wantKey:   "2025-06-18_2025-07-17",
		},
		{
			name:      "anchor day itself",
			in:        date(2025, time.June, 18),
			wantStart: date(2025, time.June, 18),
			wantEnd:   time.Date(2025, time.July, 17, 23, 59, 59, 999_000_000, time.UTC),
			wantKey:   "2025-06-18_2025-07-17",
		},
		{
			name:      "december rolls end into next year",
			in:        date(2025, time.December, 20),
			wantStart: date(2025, time.December, 18),
			wantEnd:   time.Date(2026, time.January, 17, 23, 59, 59, 999_000_000, time.UTC),
			wantKey:   "2025-12-18_2026-01-17",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ForDate(tt.in)
			assert.True(t, c.Start.Equal(tt.wantStart), "start: got %v", c.Start)
			assert.True(t, c.End.Equal(tt.wantEnd), "end: got %v", c.End)
			assert.Equal(t, tt.wantKey, c.Key)
		})
	}
}

func TestForDate_DayBeforeAnchor(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		wantStart time.Time
		wantKey   string
	}{
		{
			name:      "day before anchor belongs to previous cycle",
			in:        date(2025, time.June, 17),
			wantStart: date(2025, time.May, 18),
			wantKey:   "2025-05-18_2025-06-17",
		},
		{
			name:      "first of month",
			in:        date(2025, time.June, 1),
			wantStart: date(2025, time.May, 18),
			wantKey:   "2025-05-18_2025-06-17",
		},
		{
			name:      "january rolls start into previous year",
			in:        date(2026, time.January, 5),
			wantStart: date(2025, time.December, 18),
			wantKey:   "2025-12-18_2026-01-17",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ForDate(tt.in)
			assert.True(t, c.Start.Equal(tt.wantStart), "start: got %v", c.Start)
			assert.Equal(t, tt.wantKey, c.Key)
		})
	}
}

func TestForDate_EndIsSeventeenthOfFollowingMonth(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		c := ForDate(date(2025, month, 18))
		assert.Equal(t, 17, c.End.Day(), "month %v", month)
		wantMonth := time.Month(int(month)%12 + 1)
		assert.Equal(t, wantMonth, c.End.Month(), "month %v", month)
	}
}

func TestCycle_Contains(t *testing.T) {
	c := ForDate(date(2025, time.June, 20))

	assert.True(t, c.Contains(c.Start))
	assert.True(t, c.Contains(c.End))
	assert.True(t, c.Contains(date(2025, time.July, 1)))
	assert.False(t, c.Contains(date(2025, time.June, 17)))
	assert.False(t, c.Contains(date(2025, time.July, 18)))
}

func TestForDate_EveryDayBelongsToExactlyOneCycle(t *testing.T) {
	// Walk a full year; each day must be contained in its own resolved cycle.
	d := date(2025, time.January, 1)
	for d.Year() == 2025 {
		c := ForDate(d)
		assert.True(t, c.Contains(d), "date %s not inside cycle %s", d.Format("2006-01-02"), c.Key)
		d = d.AddDate(0, 0, 1)
	}
}
