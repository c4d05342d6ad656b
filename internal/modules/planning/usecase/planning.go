package usecase

import (
	"context"
	"time"

	authin "planview/internal/modules/auth/port/in"
	"planview/internal/modules/planning/domain"
	"planview/internal/modules/planning/dto"
	planningin "planview/internal/modules/planning/port/in"
	"planview/internal/modules/planning/service"
	apperrors "planview/internal/platform/errors"
)

// Interactor threads the session token into every fetch and enforces the
// forced-logout rule: a 401/403 from any authenticated request tears the
// stored session down before the error reaches the caller.
type Interactor struct {
	svc  *service.PlanningService
	auth authin.Usecase
}

func NewInteractor(svc *service.PlanningService, auth authin.Usecase) planningin.Usecase {
	return &Interactor{svc: svc, auth: auth}
}

func (i *Interactor) CoursesForWeek(ctx context.Context, pivot time.Time) ([]dto.CourseOutput, error) {
	token, err := i.token(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := i.svc.CoursesForWeek(ctx, token, pivot)
	if err != nil {
		return nil, i.translate(ctx, err)
	}
	return toOutputs(courses), nil
}

func (i *Interactor) CoursesInSpan(ctx context.Context, start, end time.Time) ([]dto.CourseOutput, error) {
	token, err := i.token(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := i.svc.CoursesInSpan(ctx, token, start, end)
	if err != nil {
		return nil, i.translate(ctx, err)
	}
	return toOutputs(courses), nil
}

func (i *Interactor) Professors(ctx context.Context) (map[string]dto.ProfessorOutput, error) {
	token, err := i.token(ctx)
	if err != nil {
		return nil, err
	}
	professors, err := i.svc.Professors(ctx, token)
	if err != nil {
		return nil, i.translate(ctx, err)
	}
	out := make(map[string]dto.ProfessorOutput, len(professors))
	for id, p := range professors {
		out[id] = dto.ProfessorOutput{ID: p.ID, FullName: p.FullName()}
	}
	return out, nil
}

func (i *Interactor) Refresh(ctx context.Context) error {
	token, err := i.token(ctx)
	if err != nil {
		return err
	}
	if err := i.svc.Refresh(ctx, token); err != nil {
		return i.translate(ctx, err)
	}
	return nil
}

func (i *Interactor) token(ctx context.Context) (string, error) {
	session, err := i.auth.Current(ctx)
	if err != nil {
		return "", err
	}
	return session.Token, nil
}

// translate handles the expiry case: clear the session so the next action
// lands on the login screen, then surface the distinct expiry error.
func (i *Interactor) translate(ctx context.Context, err error) error {
	if apperrors.IsAuth(err) {
		_ = i.auth.Logout(ctx)
		return apperrors.ErrSessionExpired
	}
	return err
}

func toOutputs(courses []domain.Course) []dto.CourseOutput {
	out := make([]dto.CourseOutput, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.CourseOutput{
			ID:          c.ID,
			Name:        c.Name,
			Start:       c.Start,
			End:         c.End,
			Classroom:   c.Classroom,
			ProfessorID: c.ProfessorID,
			Attendance:  string(c.Attendance()),
		})
	}
	return out
}
