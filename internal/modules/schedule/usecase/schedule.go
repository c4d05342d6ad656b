package usecase

import (
	"context"
	"time"

	planningin "planview/internal/modules/planning/port/in"
	"planview/internal/modules/schedule/domain"
	"planview/internal/modules/schedule/dto"
	schedulein "planview/internal/modules/schedule/port/in"
	"planview/internal/modules/schedule/service"
)

// Interactor joins planning data with the layout engine: courses and
// professors come from the planning module, geometry from the schedule
// domain.
type Interactor struct {
	svc      *service.ScheduleService
	planning planningin.Usecase
}

func NewInteractor(svc *service.ScheduleService, planning planningin.Usecase) schedulein.Usecase {
	return &Interactor{svc: svc, planning: planning}
}

func (i *Interactor) BuildWeek(ctx context.Context, pivot time.Time) (dto.WeekGridOutput, error) {
	courses, err := i.planning.CoursesForWeek(ctx, pivot)
	if err != nil {
		return dto.WeekGridOutput{}, err
	}
	professors, err := i.planning.Professors(ctx)
	if err != nil {
		return dto.WeekGridOutput{}, err
	}

	sessions := make([]domain.Session, 0, len(courses))
	for _, c := range courses {
		professor := ""
		if p, ok := professors[c.ProfessorID]; ok {
			professor = p.FullName
		}
		sessions = append(sessions, domain.Session{
			ID:         c.ID,
			Name:       c.Name,
			Classroom:  c.Classroom,
			Professor:  professor,
			Attendance: c.Attendance,
			Start:      c.Start,
			End:        c.End,
		})
	}

	grid := i.svc.Grid(sessions, pivot)
	return toGridOutput(grid), nil
}

func (i *Interactor) WeeksOverview(ctx context.Context, pivot time.Time) ([]dto.WeekInfoOutput, error) {
	start, end := domain.AcademicYear(pivot)
	courses, err := i.planning.CoursesInSpan(ctx, start, end)
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.Session, 0, len(courses))
	for _, c := range courses {
		sessions = append(sessions, domain.Session{ID: c.ID, Start: c.Start, End: c.End})
	}
	occupied := domain.WeeksWithSessions(sessions)

	currentKey := domain.WeekKey(i.svc.Now())
	starts := i.svc.AcademicWeekStarts(pivot)
	weeks := make([]dto.WeekInfoOutput, 0, len(starts))
	for _, w := range starts {
		key := domain.WeekKey(w)
		_, has := occupied[key]
		weeks = append(weeks, dto.WeekInfoOutput{
			Key:        key,
			Number:     domain.WeekNumber(w),
			Start:      w,
			HasCourses: has,
			Current:    key == currentKey,
		})
	}
	return weeks, nil
}

func toGridOutput(grid domain.Grid) dto.WeekGridOutput {
	out := dto.WeekGridOutput{
		WeekKey:    grid.Window.Key(),
		WeekNumber: domain.WeekNumber(grid.Window.Start),
		MinHour:    grid.Bounds.Min,
		MaxHour:    grid.Bounds.Max,
	}
	for i := 0; i < 7; i++ {
		day := dto.DayOutput{Date: grid.Window.Day(i)}
		for _, placed := range grid.Days[i] {
			day.Events = append(day.Events, dto.EventOutput{
				ID:         placed.ID,
				Name:       placed.Name,
				Classroom:  placed.Classroom,
				Professor:  placed.Professor,
				Attendance: placed.Attendance,
				Start:      placed.Start,
				End:        placed.End,
				Top:        placed.Top,
				Height:     placed.Height,
			})
		}
		out.Days[i] = day
	}
	if grid.Now != nil {
		out.Now = &dto.NowOutput{Day: grid.Now.Day, Position: grid.Now.Position}
	}
	return out
}
