package in

import (
	"context"
	"time"

	"planview/internal/modules/schedule/dto"
)

type Usecase interface {
	// BuildWeek assembles the renderable grid for the week containing pivot,
	// with attendance and professor names resolved onto each event.
	BuildWeek(ctx context.Context, pivot time.Time) (dto.WeekGridOutput, error)
	// WeeksOverview lists every week of the academic year containing pivot,
	// marking which weeks hold at least one course and which is current.
	WeeksOverview(ctx context.Context, pivot time.Time) ([]dto.WeekInfoOutput, error)
}
