package out

import (
	"context"
	"time"

	"planview/internal/modules/planning/domain"
)

type CourseFetcher interface {
	FetchCourses(ctx context.Context, token string, start, end time.Time) ([]domain.Course, error)
}

type ProfessorFetcher interface {
	// FetchProfessors resolves professor records by id; an empty id list
	// returns an empty result without a network call.
	FetchProfessors(ctx context.Context, token string, ids []string) ([]domain.Professor, error)
}
