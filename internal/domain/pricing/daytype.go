package pricing

import "time"

// HolidayCalendar is the set of dates (in "YYYY-MM-DD" form) that rate
// as weekend regardless of weekday. It is reference data supplied by
// the caller, maintained yearly outside this package.
type HolidayCalendar map[string]struct{}

// NewHolidayCalendar builds a calendar from date strings
func NewHolidayCalendar(dates ...string) HolidayCalendar {
	cal := make(HolidayCalendar, len(dates))
	for _, d := range dates {
		cal[d] = struct{}{}
	}
	return cal
}

// Contains reports whether the date string is a listed holiday
func (c HolidayCalendar) Contains(date string) bool {
	_, ok := c[date]
	return ok
}

// Add marks a date as a holiday
func (c HolidayCalendar) Add(date string) {
	c[date] = struct{}{}
}

// DateKey formats a time as the calendar-day key used by the holiday
// calendar, in the date's own location (never UTC-shifted).
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayTypeFor classifies a date as weekday or weekend. Saturday and
// Sunday are always weekend; so is any date listed in the holiday
// calendar. Total: every date resolves to exactly one class.
func DayTypeFor(date time.Time, holidays HolidayCalendar) DayType {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DayTypeWeekend
	}
	if holidays.Contains(DateKey(date)) {
		return DayTypeWeekend
	}
	return DayTypeWeekday
}
