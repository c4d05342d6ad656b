package calendar

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"planview/internal/modules/schedule/dto"
	"planview/internal/ui/components"
	"planview/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SchedulePort interface {
	BuildWeek(ctx context.Context, pivot time.Time) (dto.WeekGridOutput, error)
	WeeksOverview(ctx context.Context, pivot time.Time) ([]dto.WeekInfoOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// WeekLoadedMsg carries the pivot it was requested for; a completion whose
// pivot no longer matches the displayed one is dropped.
type WeekLoadedMsg struct {
	Pivot time.Time
	Grid  dto.WeekGridOutput
	Err   error
}

type WeeksLoadedMsg struct {
	Weeks []dto.WeekInfoOutput
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	gutterWidth = 7
	rowsPerHour = 2
)

type Model struct {
	port SchedulePort

	pivot   time.Time
	grid    dto.WeekGridOutput
	hasGrid bool
	strip   components.WeekStrip
	body    viewport.Model
	spinner spinner.Model
	loading bool
	errMsg  string
	width   int
	height  int
}

func New(port SchedulePort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{
		port:    port,
		pivot:   time.Now(),
		strip:   components.NewWeekStrip(),
		body:    viewport.New(0, 0),
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadWeekCmd(m.pivot), m.loadWeeksCmd(m.pivot))
}

// Pivot exposes the displayed week's reference date for the refresh flow.
func (m Model) Pivot() time.Time {
	return m.pivot
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.strip.SetWidth(msg.Width)
		m.body.Width = msg.Width
		m.body.Height = maxInt(msg.Height-3, 1)
		if m.hasGrid {
			m.body.SetContent(m.renderGrid())
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case WeekLoadedMsg:
		if !msg.Pivot.Equal(m.pivot) {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			// The course cache was cleared for this failure; drop the
			// displayed week with it so another week's courses never sit
			// next to the error.
			m.errMsg = msg.Err.Error()
			m.grid = dto.WeekGridOutput{}
			m.hasGrid = false
			return m, nil
		}
		m.errMsg = ""
		m.grid = msg.Grid
		m.hasGrid = true
		m.strip.SetSelected(msg.Grid.WeekKey)
		m.body.SetContent(m.renderGrid())
		return m, nil

	case WeeksLoadedMsg:
		if msg.Err == nil {
			weeks := make([]components.Week, 0, len(msg.Weeks))
			for _, w := range msg.Weeks {
				weeks = append(weeks, components.Week{
					Key:        w.Key,
					Number:     w.Number,
					HasCourses: w.HasCourses,
					Current:    w.Current,
				})
			}
			m.strip.SetWeeks(weeks)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			return m.moveTo(m.pivot.AddDate(0, 0, -7))
		case "right", "l":
			return m.moveTo(m.pivot.AddDate(0, 0, 7))
		case "shift+left", "H":
			return m.moveTo(m.pivot.AddDate(0, -1, 0))
		case "shift+right", "L":
			return m.moveTo(m.pivot.AddDate(0, 1, 0))
		case "t":
			return m.moveTo(time.Now())
		}
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) moveTo(pivot time.Time) (Model, tea.Cmd) {
	m.pivot = pivot
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.loadWeekCmd(pivot), m.loadWeeksCmd(pivot))
}

// Reload refetches the displayed week, for the refresh key and the periodic
// now-indicator tick.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.loadWeekCmd(m.pivot), m.loadWeeksCmd(m.pivot))
}

func (m Model) loadWeekCmd(pivot time.Time) tea.Cmd {
	return func() tea.Msg {
		grid, err := m.port.BuildWeek(context.Background(), pivot)
		return WeekLoadedMsg{Pivot: pivot, Grid: grid, Err: err}
	}
}

func (m Model) loadWeeksCmd(pivot time.Time) tea.Cmd {
	return func() tea.Msg {
		weeks, err := m.port.WeeksOverview(context.Background(), pivot)
		return WeeksLoadedMsg{Weeks: weeks, Err: err}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.hasGrid {
		placeholder := m.spinner.View() + " loading week"
		if m.errMsg != "" {
			placeholder = lipgloss.NewStyle().Foreground(theme.Red).Render(m.errMsg)
		}
		return lipgloss.Place(m.width, maxInt(m.height, 1), lipgloss.Center, lipgloss.Center, placeholder)
	}

	header := m.renderHeader()
	return lipgloss.JoinVertical(lipgloss.Left, header, m.strip.View(), m.body.View())
}

func (m Model) renderHeader() string {
	start, _ := time.Parse("2006-01-02", m.grid.WeekKey)
	end := start.AddDate(0, 0, 6)
	title := theme.Title.Render(fmt.Sprintf("Week %d", m.grid.WeekNumber))
	span := theme.Muted.Render(fmt.Sprintf("  %s – %s", start.Format("Jan 2"), end.Format("Jan 2, 2006")))
	right := ""
	switch {
	case m.loading:
		right = m.spinner.View() + " loading"
	case m.errMsg != "":
		right = lipgloss.NewStyle().Foreground(theme.Red).Render(m.errMsg)
	}
	left := title + span
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderGrid draws the week as a time gutter plus seven day columns. Vertical
// resolution is fixed at two rows per hour; the viewport scrolls when the
// visible hour range does not fit.
func (m Model) renderGrid() string {
	hours := m.grid.MaxHour - m.grid.MinHour + 1
	totalRows := hours * rowsPerHour
	colWidth := (m.width - gutterWidth) / 7
	if colWidth < 4 {
		colWidth = 4
	}

	columns := make([][]string, 7)
	for day := 0; day < 7; day++ {
		columns[day] = m.renderDay(day, totalRows, colWidth)
	}

	var b strings.Builder
	b.WriteString(m.renderDayHeadings(colWidth))
	for row := 0; row < totalRows; row++ {
		b.WriteString(m.gutterLabel(row))
		for day := 0; day < 7; day++ {
			b.WriteString(columns[day][row])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderDayHeadings(colWidth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for day := 0; day < 7; day++ {
		heading := pad(m.grid.Days[day].Date.Format("Mon 02"), colWidth)
		if m.grid.Now != nil && m.grid.Now.Day == day {
			b.WriteString(theme.Hot.Render(heading))
		} else {
			b.WriteString(theme.Title.Render(heading))
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func (m Model) gutterLabel(row int) string {
	if row%rowsPerHour != 0 {
		return strings.Repeat(" ", gutterWidth)
	}
	hour := m.grid.MinHour + row/rowsPerHour
	return theme.Muted.Render(pad(fmt.Sprintf("%02d:00", hour), gutterWidth))
}

func (m Model) renderDay(day, totalRows, colWidth int) []string {
	rows := make([]string, totalRows)
	styles := make([]bool, totalRows)
	empty := pad("", colWidth)
	for r := range rows {
		rows[r] = empty
	}

	for _, e := range m.grid.Days[day].Events {
		start := rowFor(e.Top)
		end := rowFor(e.Top + e.Height)
		if end <= start {
			end = start + 1
		}
		style := theme.Attendance(e.Attendance)
		lines := eventLines(e, end-start)
		for r := start; r < end && r < totalRows; r++ {
			if r < 0 {
				continue
			}
			rows[r] = style.Render(pad(lines[r-start], colWidth))
			styles[r] = true
		}
	}

	if m.grid.Now != nil && m.grid.Now.Day == day {
		r := rowFor(m.grid.Now.Position)
		if r >= 0 && r < totalRows && !styles[r] {
			rows[r] = theme.Hot.Render(strings.Repeat("─", colWidth))
		}
	}
	return rows
}

// eventLines lays the event's text over its block height: time and name
// first, then classroom and professor when there is room.
func eventLines(e dto.EventOutput, height int) []string {
	lines := make([]string, height)
	lines[0] = e.Start.Format("15:04") + " " + e.Name
	if height > 1 {
		lines[1] = e.Classroom
	}
	if height > 2 {
		lines[2] = e.Professor
	}
	return lines
}

func rowFor(minutes float64) int {
	return int(math.Round(minutes * rowsPerHour / 60))
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + " "
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
