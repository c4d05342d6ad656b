package out

import (
	"context"
	"time"

	"planview/internal/modules/planning/domain"
	planningout "planview/internal/modules/planning/port/out"
	"planview/internal/platform/edusign"
)

// EdusignFetcher adapts the REST client to the planning fetch ports.
type EdusignFetcher struct {
	client *edusign.Client
}

func NewEdusignFetcher(client *edusign.Client) *EdusignFetcher {
	return &EdusignFetcher{client: client}
}

var (
	_ planningout.CourseFetcher    = (*EdusignFetcher)(nil)
	_ planningout.ProfessorFetcher = (*EdusignFetcher)(nil)
)

func (f *EdusignFetcher) FetchCourses(ctx context.Context, token string, start, end time.Time) ([]domain.Course, error) {
	fetched, err := f.client.Courses(ctx, token, start, end)
	if err != nil {
		return nil, err
	}
	courses := make([]domain.Course, 0, len(fetched))
	for _, c := range fetched {
		courses = append(courses, domain.Course{
			ID:              c.ID,
			Name:            c.Name,
			Start:           c.Start,
			End:             c.End,
			Classroom:       c.Classroom,
			ProfessorID:     c.ProfessorID,
			Presence:        c.Presence,
			AbsenceID:       c.AbsenceID,
			IsJustified:     c.IsJustified,
			LegacyJustified: c.LegacyJustified,
		})
	}
	return courses, nil
}

func (f *EdusignFetcher) FetchProfessors(ctx context.Context, token string, ids []string) ([]domain.Professor, error) {
	fetched, err := f.client.Professors(ctx, token, ids)
	if err != nil {
		return nil, err
	}
	professors := make([]domain.Professor, 0, len(fetched))
	for _, p := range fetched {
		professors = append(professors, domain.Professor{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
		})
	}
	return professors, nil
}
