package domain

import "time"

// Week math. Everything here is pure and total: weeks are Monday-based, all
// arithmetic happens in the local timezone, and a week is identified by its
// Monday-midnight start.

// WeekStart normalizes t to the Monday 00:00:00 of its containing week.
func WeekStart(t time.Time) time.Time {
	offset := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		offset = -6
	}
	d := t.AddDate(0, 0, offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// AddWeeks shifts t by n whole weeks.
func AddWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, 7*n)
}

// AddMonths shifts t by n calendar months, rolling over month and year
// boundaries per time.AddDate.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// WeekNumber computes the ISO-8601 week-of-year: shift to the Thursday of
// t's week, then count weeks since January 1 of that Thursday's year.
func WeekNumber(t time.Time) int {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	d = d.AddDate(0, 0, 4-weekday)
	yearStart := time.Date(d.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	return int(d.Sub(yearStart).Hours()/(24*7)) + 1
}

// WeekKey is the canonical membership key for a week: its Monday start
// formatted as YYYY-MM-DD.
func WeekKey(t time.Time) string {
	return WeekStart(t).Format("2006-01-02")
}

// WeekWindow is one displayed week. Start is always a Monday at midnight;
// NewWeekWindow normalizes before anything compares or keys on it.
type WeekWindow struct {
	Start time.Time
}

func NewWeekWindow(t time.Time) WeekWindow {
	return WeekWindow{Start: WeekStart(t)}
}

// End is the last instant of the window, Sunday 23:59:59.999.
func (w WeekWindow) End() time.Time {
	d := w.Start.AddDate(0, 0, 6)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999_000_000, d.Location())
}

func (w WeekWindow) Key() string {
	return w.Start.Format("2006-01-02")
}

// Day returns the calendar date of day i (0 = Monday .. 6 = Sunday).
func (w WeekWindow) Day(i int) time.Time {
	return w.Start.AddDate(0, 0, i)
}

// AcademicYear returns the September 1 .. August 31 range containing now.
// Before September the year started the previous calendar September.
func AcademicYear(now time.Time) (start, end time.Time) {
	startYear := now.Year()
	if now.Month() < time.September {
		startYear--
	}
	start = time.Date(startYear, time.September, 1, 0, 0, 0, 0, now.Location())
	end = time.Date(startYear+1, time.August, 31, 23, 59, 59, 999_000_000, now.Location())
	return start, end
}

// SameDate reports whether a and b fall on the same local calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
