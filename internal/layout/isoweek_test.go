package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jthomassen/roadline/internal/domain"
)

func TestBaseWeekStart(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2024, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{2025, time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)},
		{2026, time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC)},
		{2027, time.Date(2027, time.January, 4, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got := BaseWeekStart(tt.year)
		assert.Equal(t, tt.want, got, "year %d", tt.year)
		assert.Equal(t, time.Monday, got.Weekday(), "year %d", tt.year)
	}
}

func TestWeeksInYear(t *testing.T) {
	assert.Equal(t, 52, WeeksInYear(2025))
	assert.Equal(t, 53, WeeksInYear(2026))
	assert.Equal(t, 52, WeeksInYear(2027))
	assert.Equal(t, 53, WeeksInYear(2020))
}

func TestQuarterForWeek(t *testing.T) {
	assert.Equal(t, 1, QuarterForWeek(1))
	assert.Equal(t, 1, QuarterForWeek(13))
	assert.Equal(t, 2, QuarterForWeek(14))
	assert.Equal(t, 4, QuarterForWeek(52))
	assert.Equal(t, 4, QuarterForWeek(53), "week 53 stays in Q4")
}

func TestWeekIndexConversions(t *testing.T) {
	l := New(domain.NewDocument(2026), 0)

	// Week 1 of 2026 starts Monday 2025-12-29.
	assert.Equal(t, time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC), l.WeekIndexToDate(2026, 1))

	year, week := l.WeekIndexToYearWeek(2026, 1)
	assert.Equal(t, 2026, year)
	assert.Equal(t, 1, week)

	// Rolling past the year end lands in ISO 2027.
	year, week = l.WeekIndexToYearWeek(2026, 54)
	assert.Equal(t, 2027, year)
	assert.Equal(t, 1, week)

	assert.Equal(t, 54, l.WeekIndexForISOYear(2026, 2027))
	assert.Equal(t, 1, l.WeekIndexForISOYear(2026, 2026))

	// Negative indices walk backward into the previous ISO year.
	year, week = l.WeekIndexToYearWeek(2026, 0)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 52, week)
}

func TestWeekIndexMonth(t *testing.T) {
	l := New(domain.NewDocument(2026), 0)

	// Week 1 of 2026: Monday 2025-12-29, Thursday 2026-01-01 → January.
	year, month := l.WeekIndexMonth(2026, 1)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.January, month)

	year, month = l.WeekIndexMonth(2026, 5)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.January, month)

	year, month = l.WeekIndexMonth(2026, 6)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.February, month)
}
