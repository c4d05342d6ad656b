package in

import (
	"context"
	"time"

	"planview/internal/modules/planning/dto"
)

type Usecase interface {
	// CoursesForWeek returns the courses of the week containing pivot,
	// fetching a fresh window only when the cached one no longer covers it.
	CoursesForWeek(ctx context.Context, pivot time.Time) ([]dto.CourseOutput, error)
	// CoursesInSpan returns the courses starting within [start, end],
	// widening the cached window if needed.
	CoursesInSpan(ctx context.Context, start, end time.Time) ([]dto.CourseOutput, error)
	// Professors resolves the professors referenced by the cached courses,
	// keyed by professor id.
	Professors(ctx context.Context) (map[string]dto.ProfessorOutput, error)
	// Refresh drops the cached window and refetches it.
	Refresh(ctx context.Context) error
}
