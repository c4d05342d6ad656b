package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"planview/internal/modules/planning/domain"
	planningout "planview/internal/modules/planning/port/out"
	scheduledomain "planview/internal/modules/schedule/domain"
)

// PlanningService owns the course cache: one fetched window at a time, plus
// the professors resolved so far. All mutation happens here, under one lock,
// in response to completed fetches; callers never see intermediate state.
//
// Overlapping fetches follow last-write-wins: each fetch records the range it
// is for, and a completion whose range is no longer the latest desired one is
// served to its caller but never committed to the cache.
type PlanningService struct {
	fetcher    planningout.CourseFetcher
	professors planningout.ProfessorFetcher
	logger     *zap.Logger

	mu       sync.Mutex
	rng      domain.FetchRange
	courses  []domain.Course
	pending  domain.FetchRange
	profByID map[string]domain.Professor
}

func NewPlanningService(fetcher planningout.CourseFetcher, professors planningout.ProfessorFetcher, logger *zap.Logger) *PlanningService {
	return &PlanningService{
		fetcher:    fetcher,
		professors: professors,
		logger:     logger,
		profByID:   make(map[string]domain.Professor),
	}
}

// CoursesForWeek serves the week containing pivot from the cached window, or
// recomputes the desired range around the pivot and refetches when the cache
// no longer covers it.
func (s *PlanningService) CoursesForWeek(ctx context.Context, token string, pivot time.Time) ([]domain.Course, error) {
	window := scheduledomain.NewWeekWindow(pivot)

	s.mu.Lock()
	if s.rng.Covers(window) {
		courses := domain.FilterByWindow(s.courses, window)
		s.mu.Unlock()
		s.logger.Debug("week served from cache", zap.String("week", window.Key()))
		return courses, nil
	}
	desired := domain.DesiredRange(window.Start)
	s.mu.Unlock()

	fetched, err := s.fetchAndCommit(ctx, token, desired)
	if err != nil {
		return nil, err
	}
	return domain.FilterByWindow(fetched, window), nil
}

// CoursesInSpan serves [start, end] from the cached window, fetching that
// exact span as the new cached window when not covered.
func (s *PlanningService) CoursesInSpan(ctx context.Context, token string, start, end time.Time) ([]domain.Course, error) {
	s.mu.Lock()
	if s.rng.CoversSpan(start, end) {
		courses := domain.FilterBySpan(s.courses, start, end)
		s.mu.Unlock()
		return courses, nil
	}
	s.mu.Unlock()

	fetched, err := s.fetchAndCommit(ctx, token, domain.FetchRange{Start: start, End: end})
	if err != nil {
		return nil, err
	}
	return domain.FilterBySpan(fetched, start, end), nil
}

// Refresh refetches the current cached window. Without one it is a no-op;
// the next week request will establish it.
func (s *PlanningService) Refresh(ctx context.Context, token string) error {
	s.mu.Lock()
	rng := s.rng
	s.mu.Unlock()
	if rng.IsZero() {
		return nil
	}
	_, err := s.fetchAndCommit(ctx, token, rng)
	return err
}

// Professors resolves the professors referenced by the cached courses,
// fetching only ids not seen before. Previously resolved professors stay
// cached across window changes.
func (s *PlanningService) Professors(ctx context.Context, token string) (map[string]domain.Professor, error) {
	s.mu.Lock()
	ids := domain.DistinctProfessorIDs(s.courses)
	var missing []string
	for _, id := range ids {
		if _, ok := s.profByID[id]; !ok {
			missing = append(missing, id)
		}
	}
	s.mu.Unlock()

	if len(missing) > 0 {
		fetched, err := s.professors.FetchProfessors(ctx, token, missing)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		for _, p := range fetched {
			s.profByID[p.ID] = p
		}
		s.mu.Unlock()
		s.logger.Info("professors resolved", zap.Int("count", len(fetched)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]domain.Professor, len(ids))
	for _, id := range ids {
		if p, ok := s.profByID[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

// fetchAndCommit performs one window fetch. The desired range is recorded
// before the call; on completion it is committed only if no newer fetch has
// started since. A failed fetch that is still the latest clears the cache so
// the view never shows data that looks current but is not.
func (s *PlanningService) fetchAndCommit(ctx context.Context, token string, desired domain.FetchRange) ([]domain.Course, error) {
	s.mu.Lock()
	s.pending = desired
	s.mu.Unlock()

	courses, err := s.fetcher.FetchCourses(ctx, token, desired.Start, desired.End)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pending.Equal(desired) {
		// A newer fetch superseded this one; hand the result to the caller
		// but leave the newer cache state alone.
		s.logger.Debug("stale fetch discarded",
			zap.Time("range_start", desired.Start), zap.Time("range_end", desired.End))
		return courses, err
	}
	if err != nil {
		s.rng = domain.FetchRange{}
		s.courses = nil
		s.logger.Warn("window fetch failed",
			zap.Time("range_start", desired.Start), zap.Time("range_end", desired.End), zap.Error(err))
		return nil, err
	}
	s.rng = desired
	s.courses = courses
	s.logger.Info("window fetched",
		zap.Time("range_start", desired.Start), zap.Time("range_end", desired.End),
		zap.Int("courses", len(courses)))
	return courses, nil
}
