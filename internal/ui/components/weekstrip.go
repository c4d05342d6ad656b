package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"planview/internal/ui/theme"
)

// Week is one cell of the strip.
type Week struct {
	Key        string
	Number     int
	HasCourses bool
	Current    bool
}

// WeekStrip renders the academic year as a horizontal band of week numbers.
// The displayed week is highlighted and the strip scrolls to keep it visible;
// weeks holding at least one course carry a dot marker.
type WeekStrip struct {
	weeks    []Week
	selected string
	width    int
}

func NewWeekStrip() WeekStrip {
	return WeekStrip{}
}

func (s *WeekStrip) SetWeeks(weeks []Week) {
	s.weeks = weeks
}

func (s *WeekStrip) SetSelected(key string) {
	s.selected = key
}

func (s *WeekStrip) SetWidth(width int) {
	s.width = width
}

// cellWidth covers "S53•" plus one space of separation.
const cellWidth = 5

func (s WeekStrip) View() string {
	if len(s.weeks) == 0 || s.width < cellWidth {
		return ""
	}

	visible := s.width / cellWidth
	if visible > len(s.weeks) {
		visible = len(s.weeks)
	}
	first := s.selectedIndex() - visible/2
	if first > len(s.weeks)-visible {
		first = len(s.weeks) - visible
	}
	if first < 0 {
		first = 0
	}

	cells := make([]string, 0, visible)
	for _, w := range s.weeks[first : first+visible] {
		label := fmt.Sprintf("S%02d", w.Number)
		if w.HasCourses {
			label += "•"
		} else {
			label += " "
		}
		switch {
		case w.Key == s.selected:
			cells = append(cells, theme.Hot.Render(label))
		case w.Current:
			cells = append(cells, theme.Title.Render(label))
		default:
			cells = append(cells, theme.Muted.Render(label))
		}
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(s.width).
		Render(strings.Join(cells, " "))
}

func (s WeekStrip) selectedIndex() int {
	for i, w := range s.weeks {
		if w.Key == s.selected {
			return i
		}
	}
	return 0
}
