package service

import (
	"time"

	"planview/internal/modules/schedule/domain"
	"planview/internal/platform/clock"
)

// ScheduleService wraps the pure layout engine with the process clock so the
// now indicator and academic-year anchoring stay testable.
type ScheduleService struct {
	clock clock.Clock
}

func NewScheduleService(c clock.Clock) *ScheduleService {
	return &ScheduleService{clock: c}
}

func (s *ScheduleService) Now() time.Time {
	return s.clock.Now()
}

// Grid lays out sessions within the week containing pivot.
func (s *ScheduleService) Grid(sessions []domain.Session, pivot time.Time) domain.Grid {
	return domain.BuildGrid(sessions, domain.NewWeekWindow(pivot), s.clock.Now())
}

// AcademicWeekStarts lists the Monday of every week overlapping the academic
// year that contains pivot, in order.
func (s *ScheduleService) AcademicWeekStarts(pivot time.Time) []time.Time {
	start, end := domain.AcademicYear(pivot)
	var weeks []time.Time
	for w := domain.WeekStart(start); !w.After(end); w = domain.AddWeeks(w, 1) {
		weeks = append(weeks, w)
	}
	return weeks
}
