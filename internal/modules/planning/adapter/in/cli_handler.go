package in

import (
	"context"
	"time"

	"planview/internal/modules/planning/dto"
	planningin "planview/internal/modules/planning/port/in"
)

// CLIHandler exposes planning operations to command-line entry points.
type CLIHandler struct {
	usecase planningin.Usecase
}

func NewCLIHandler(usecase planningin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) CoursesForWeek(ctx context.Context, pivot time.Time) ([]dto.CourseOutput, error) {
	return h.usecase.CoursesForWeek(ctx, pivot)
}

func (h CLIHandler) CoursesInSpan(ctx context.Context, start, end time.Time) ([]dto.CourseOutput, error) {
	return h.usecase.CoursesInSpan(ctx, start, end)
}

func (h CLIHandler) Professors(ctx context.Context) (map[string]dto.ProfessorOutput, error) {
	return h.usecase.Professors(ctx)
}

func (h CLIHandler) Refresh(ctx context.Context) error {
	return h.usecase.Refresh(ctx)
}
