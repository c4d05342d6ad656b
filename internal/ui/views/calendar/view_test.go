package calendar

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"planview/internal/modules/schedule/dto"
)

type fakeSchedule struct{}

func (fakeSchedule) BuildWeek(context.Context, time.Time) (dto.WeekGridOutput, error) {
	return dto.WeekGridOutput{}, nil
}

func (fakeSchedule) WeeksOverview(context.Context, time.Time) ([]dto.WeekInfoOutput, error) {
	return nil, nil
}

func sizedModel() Model {
	m := New(fakeSchedule{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func gridWithCourse(weekKey, course string) dto.WeekGridOutput {
	start, _ := time.ParseInLocation("2006-01-02", weekKey, time.Local)
	grid := dto.WeekGridOutput{WeekKey: weekKey, WeekNumber: 10, MinHour: 8, MaxHour: 16}
	for i := 0; i < 7; i++ {
		grid.Days[i] = dto.DayOutput{Date: start.AddDate(0, 0, i)}
	}
	grid.Days[0].Events = []dto.EventOutput{{
		ID:         "c1",
		Name:       course,
		Start:      start.Add(9 * time.Hour),
		End:        start.Add(10 * time.Hour),
		Attendance: "present",
		Top:        60,
		Height:     60,
	}}
	return grid
}

func TestFailedWeekLoadDropsDisplayedCourses(t *testing.T) {
	m := sizedModel()
	pivot := m.Pivot()

	m, _ = m.Update(WeekLoadedMsg{Pivot: pivot, Grid: gridWithCourse("2024-03-04", "Algebra")})
	if !m.hasGrid {
		t.Fatal("expected grid after successful load")
	}
	if !strings.Contains(m.View(), "Algebra") {
		t.Fatal("loaded course not rendered")
	}

	m, _ = m.Update(WeekLoadedMsg{Pivot: pivot, Err: errors.New("http error: status 502")})
	if m.hasGrid {
		t.Fatal("failed load must drop the displayed week")
	}
	view := m.View()
	if strings.Contains(view, "Algebra") {
		t.Fatal("previous week's courses still rendered next to the error")
	}
	if !strings.Contains(view, "status 502") {
		t.Fatalf("error not shown: %q", view)
	}
}

func TestStaleWeekCompletionIsIgnored(t *testing.T) {
	m := sizedModel()
	pivot := m.Pivot()

	m, _ = m.Update(WeekLoadedMsg{Pivot: pivot, Grid: gridWithCourse("2024-03-04", "Algebra")})

	// A completion for a pivot the user has already navigated away from
	// must touch neither the grid nor the error banner.
	stale := pivot.AddDate(0, 0, 7)
	m, _ = m.Update(WeekLoadedMsg{Pivot: stale, Grid: gridWithCourse("2024-03-11", "Physics")})
	if m.grid.WeekKey != "2024-03-04" {
		t.Fatalf("stale completion replaced the grid: %q", m.grid.WeekKey)
	}

	m, _ = m.Update(WeekLoadedMsg{Pivot: stale, Err: errors.New("network down")})
	if !m.hasGrid || m.errMsg != "" {
		t.Fatalf("stale failure disturbed the view: hasGrid=%t errMsg=%q", m.hasGrid, m.errMsg)
	}
}
