package in

import (
	"context"
	"time"

	"planview/internal/modules/schedule/dto"
	schedulein "planview/internal/modules/schedule/port/in"
)

// CLIHandler exposes schedule operations to command-line entry points.
type CLIHandler struct {
	usecase schedulein.Usecase
}

func NewCLIHandler(usecase schedulein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) BuildWeek(ctx context.Context, pivot time.Time) (dto.WeekGridOutput, error) {
	return h.usecase.BuildWeek(ctx, pivot)
}

func (h CLIHandler) WeeksOverview(ctx context.Context, pivot time.Time) ([]dto.WeekInfoOutput, error) {
	return h.usecase.WeeksOverview(ctx, pivot)
}
