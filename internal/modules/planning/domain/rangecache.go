package domain

import (
	"time"

	scheduledomain "planview/internal/modules/schedule/domain"
)

// monthsAround is how far the fetch window extends on each side of the pivot
// week. Six months keeps ordinary back-and-forth navigation entirely offline
// while staying one request per invalidation.
const monthsAround = 6

// FetchRange is the single cached fetch window: the [Start, End] span for
// which courses have been retrieved. The zero value means nothing is cached.
type FetchRange struct {
	Start time.Time
	End   time.Time
}

func (r FetchRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

func (r FetchRange) Equal(o FetchRange) bool {
	return r.Start.Equal(o.Start) && r.End.Equal(o.End)
}

// Covers reports whether the displayed week fits entirely inside the range.
// A false result means the range is stale for that week and must be
// recomputed and refetched.
func (r FetchRange) Covers(w scheduledomain.WeekWindow) bool {
	return r.CoversSpan(w.Start, w.End())
}

// CoversSpan is Covers for an arbitrary [start, end] span.
func (r FetchRange) CoversSpan(start, end time.Time) bool {
	if r.IsZero() {
		return false
	}
	return !start.Before(r.Start) && !end.After(r.End)
}

// DesiredRange centers a fetch window on the pivot week: six months before
// its Monday through six months plus the rest of the week after, ending at
// the last instant of that day.
func DesiredRange(pivotWeekStart time.Time) FetchRange {
	start := scheduledomain.AddMonths(pivotWeekStart, -monthsAround)
	endDay := scheduledomain.AddMonths(pivotWeekStart, monthsAround).AddDate(0, 0, 6)
	end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, 999_000_000, endDay.Location())
	return FetchRange{Start: start, End: end}
}

// FilterByWindow keeps the courses whose start instant falls inside the week.
func FilterByWindow(courses []Course, w scheduledomain.WeekWindow) []Course {
	return FilterBySpan(courses, w.Start, w.End())
}

// FilterBySpan keeps the courses starting within [start, end].
func FilterBySpan(courses []Course, start, end time.Time) []Course {
	var out []Course
	for _, c := range courses {
		if !c.Start.Before(start) && !c.Start.After(end) {
			out = append(out, c)
		}
	}
	return out
}
