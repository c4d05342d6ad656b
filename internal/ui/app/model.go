package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "planview/internal/modules/auth/dto"
	apperrors "planview/internal/platform/errors"
	"planview/internal/ui/theme"
	calendarview "planview/internal/ui/views/calendar"
	loginview "planview/internal/ui/views/login"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.

type authPort interface {
	Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (authdto.SessionOutput, error)
}

type refreshPort interface {
	Refresh(ctx context.Context) error
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screenID int

const (
	screenLoading screenID = iota
	screenLogin
	screenCalendar
)

// ─── async messages ───────────────────────────────────────────────────────────

type sessionRestoredMsg struct {
	session authdto.SessionOutput
	err     error
}

type loggedOutMsg struct{ err error }

type refreshedMsg struct{ err error }

// minuteTickMsg re-renders the now indicator. The generation counter makes
// ticks armed for an earlier signed-in period inert after a logout.
type minuteTickMsg struct{ gen int }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Refresh   key.Binding
	SignOut   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		PrevWeek:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous week")),
		NextWeek:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←", "previous month")),
		NextMonth: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("shift+→", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		SignOut:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "sign out")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevWeek, k.NextWeek, k.Today, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevWeek, k.NextWeek, k.PrevMonth, k.NextMonth},
		{k.Today, k.Refresh, k.SignOut},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns screen routing between login
// and calendar, session lifecycle, the help overlay, and the periodic tick
// that keeps the now indicator current. All business logic is behind ports;
// all rendering is delegated to sub-views.
type Model struct {
	auth    authPort
	refresh refreshPort

	loginView    loginview.Model
	calendarView calendarview.Model

	screen   screenID
	session  authdto.SessionOutput
	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	tickGen  int
	width    int
	height   int
}

func NewModel(auth authPort, refresh refreshPort, schedule calendarview.SchedulePort) Model {
	return Model{
		auth:         auth,
		refresh:      refresh,
		loginView:    loginview.New(auth),
		calendarView: calendarview.New(schedule),
		screen:       screenLoading,
		keys:         defaultKeys(),
		help:         help.New(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loginView.Init(), m.restoreSessionCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		sz := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 2}
		m.loginView, _ = m.loginView.Update(sz)
		m.calendarView, _ = m.calendarView.Update(sz)
		return m, nil

	case sessionRestoredMsg:
		if msg.err != nil {
			m.screen = screenLogin
			if !errors.Is(msg.err, apperrors.ErrNotLoggedIn) {
				m.status = "session restore: " + msg.err.Error()
			}
			return m, nil
		}
		return m.enterCalendar(msg.session)

	case loginview.LoggedInMsg:
		var cmd tea.Cmd
		m.loginView, cmd = m.loginView.Update(msg)
		if msg.Err == nil {
			return m.enterCalendar(msg.Session)
		}
		return m, cmd

	case loggedOutMsg:
		m.screen = screenLogin
		m.session = authdto.SessionOutput{}
		m.tickGen++
		if msg.err != nil {
			m.status = "sign out: " + msg.err.Error()
		} else {
			m.status = "signed out"
		}
		return m, nil

	case refreshedMsg:
		if msg.err != nil {
			return m.handleDataError(msg.err)
		}
		m.status = "refreshed"
		return m, m.calendarView.Reload()

	case minuteTickMsg:
		if msg.gen != m.tickGen || m.screen != screenCalendar {
			return m, nil
		}
		return m, tea.Batch(m.calendarView.Reload(), m.tickCmd())

	case calendarview.WeekLoadedMsg:
		if msg.Err != nil {
			if model, cmd, handled := m.interceptDataError(msg.Err); handled {
				return model, cmd
			}
		}

	case calendarview.WeeksLoadedMsg:
		if msg.Err != nil {
			if model, cmd, handled := m.interceptDataError(msg.Err); handled {
				return model, cmd
			}
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		}
		if m.screen == screenCalendar {
			switch {
			case key.Matches(msg, m.keys.Refresh):
				m.status = "refreshing"
				return m, m.refreshCmd()
			case key.Matches(msg, m.keys.SignOut):
				return m, m.logoutCmd()
			}
		}
	}

	return m.routeToScreen(msg)
}

func (m Model) routeToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case screenCalendar:
		m.calendarView, cmd = m.calendarView.Update(msg)
	}
	return m, cmd
}

func (m Model) enterCalendar(session authdto.SessionOutput) (tea.Model, tea.Cmd) {
	m.screen = screenCalendar
	m.session = session
	m.status = "signed in as " + session.Email
	m.tickGen++
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 2}
	m.calendarView, _ = m.calendarView.Update(sz)
	return m, tea.Batch(m.calendarView.Init(), m.tickCmd())
}

// interceptDataError routes auth failures from data loads to the login
// screen; other errors stay with the calendar view, which displays them.
func (m Model) interceptDataError(err error) (tea.Model, tea.Cmd, bool) {
	if !errors.Is(err, apperrors.ErrSessionExpired) {
		return m, nil, false
	}
	model, cmd := m.handleDataError(err)
	return model, cmd, true
}

func (m Model) handleDataError(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, apperrors.ErrSessionExpired) {
		m.screen = screenLogin
		m.session = authdto.SessionOutput{}
		m.tickGen++
		m.status = "session expired, please sign in again"
		return m, nil
	}
	m.status = err.Error()
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.screen == screenLoading:
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("restoring session"))
	case m.screen == screenLogin:
		content = m.loginView.View()
	default:
		content = m.calendarView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.screen == screenCalendar && m.session.Email != "" {
		left = theme.Hot.Render("● "+m.session.FirstName+" "+m.session.LastName) + "  " + left
	}
	right := theme.Muted.Render("?:help  t:today  r:refresh  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) restoreSessionCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.Current(context.Background())
		return sessionRestoredMsg{session: session, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.auth.Logout(context.Background())}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{err: m.refresh.Refresh(context.Background())}
	}
}

func (m Model) tickCmd() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(time.Minute, func(time.Time) tea.Msg {
		return minuteTickMsg{gen: gen}
	})
}
