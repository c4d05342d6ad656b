package domain_test

import (
	"testing"
	"time"

	"planview/internal/modules/planning/domain"
	scheduledomain "planview/internal/modules/schedule/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDesiredRangeSpansSixMonthsEachSide(t *testing.T) {
	t.Parallel()
	pivot := day(2024, time.March, 4) // a Monday
	r := domain.DesiredRange(pivot)
	if !r.Start.Equal(day(2023, time.September, 4)) {
		t.Fatalf("range start = %v, want 2023-09-04", r.Start)
	}
	wantEnd := time.Date(2024, time.September, 10, 23, 59, 59, 999_000_000, time.Local)
	if !r.End.Equal(wantEnd) {
		t.Fatalf("range end = %v, want %v", r.End, wantEnd)
	}
}

func TestCoversWindowInsideRange(t *testing.T) {
	t.Parallel()
	r := domain.DesiredRange(day(2024, time.March, 4))
	w := scheduledomain.NewWeekWindow(day(2024, time.March, 4))
	if !r.Covers(w) {
		t.Fatal("pivot week must be covered by its own desired range")
	}
}

func TestCoversFalseOneDayPastRangeEnd(t *testing.T) {
	t.Parallel()
	w := scheduledomain.NewWeekWindow(day(2024, time.March, 4))
	r := domain.FetchRange{
		Start: day(2024, time.January, 1),
		// Ends one day before the window does.
		End: w.End().AddDate(0, 0, -1),
	}
	if r.Covers(w) {
		t.Fatal("window extending past the range end must not be covered")
	}
}

func TestCoversFalseForZeroRange(t *testing.T) {
	t.Parallel()
	var r domain.FetchRange
	if r.Covers(scheduledomain.NewWeekWindow(day(2024, time.March, 4))) {
		t.Fatal("zero range must never cover a window")
	}
}

func TestFilterByWindowKeepsOnlyThatWeek(t *testing.T) {
	t.Parallel()
	w := scheduledomain.NewWeekWindow(day(2024, time.March, 4))
	courses := []domain.Course{
		{ID: "before", Start: day(2024, time.March, 3)},
		{ID: "monday", Start: day(2024, time.March, 4).Add(9 * time.Hour)},
		{ID: "sunday-late", Start: time.Date(2024, time.March, 10, 23, 0, 0, 0, time.Local)},
		{ID: "after", Start: day(2024, time.March, 11)},
	}
	got := domain.FilterByWindow(courses, w)
	if len(got) != 2 || got[0].ID != "monday" || got[1].ID != "sunday-late" {
		t.Fatalf("FilterByWindow = %+v", got)
	}
}
