package layout

import "time"

// The horizontal axis is one continuous integer week line. These helpers
// align that line onto the ISO calendar so headers can label each column
// with an ISO (year, week) pair without pre-allocating years.

// BaseWeekStart returns the Monday of ISO week 1 of the given year.
func BaseWeekStart(year int) time.Time {
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	back := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDate(0, 0, -back)
}

// WeeksInYear returns 52 or 53, the number of ISO weeks in the year.
func WeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// QuarterForWeek maps a week-of-year (1-based) to its quarter, capped at 4
// so week 53 stays in Q4.
func QuarterForWeek(weekInYear int) int {
	q := (weekInYear-1)/13 + 1
	if q > 4 {
		return 4
	}
	return q
}

// WeekIndexToDate returns the Monday of the week at the given index on the
// rolling line anchored at ISO week 1 of baseYear.
func (l *Layout) WeekIndexToDate(baseYear, weekIndex int) time.Time {
	return BaseWeekStart(baseYear).AddDate(0, 0, 7*(weekIndex-l.OriginWeek))
}

// WeekIndexToYearWeek converts a week index to the ISO (year, week) pair
// displayed in the header.
func (l *Layout) WeekIndexToYearWeek(baseYear, weekIndex int) (int, int) {
	return l.WeekIndexToDate(baseYear, weekIndex).ISOWeek()
}

// WeekIndexForISOYear returns the week index at which the given ISO year
// begins on a line anchored at baseYear.
func (l *Layout) WeekIndexForISOYear(baseYear, year int) int {
	base := BaseWeekStart(baseYear)
	start := BaseWeekStart(year)
	deltaWeeks := int(start.Sub(base).Hours()/24) / 7
	return l.OriginWeek + deltaWeeks
}

// WeekIndexMonth returns the calendar (year, month) that owns the week: the
// month containing the week's Thursday, matching ISO week attribution.
func (l *Layout) WeekIndexMonth(baseYear, weekIndex int) (int, time.Month) {
	anchor := l.WeekIndexToDate(baseYear, weekIndex).AddDate(0, 0, 3)
	return anchor.Year(), anchor.Month()
}
