package login

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "planview/internal/modules/auth/dto"
	apperrors "planview/internal/platform/errors"
	"planview/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AuthPort interface {
	Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoggedInMsg bubbles to the top level so the app can switch to the calendar.
type LoggedInMsg struct {
	Session authdto.SessionOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	fieldEmail = iota
	fieldPassword
)

type Model struct {
	port AuthPort

	email    textinput.Model
	password textinput.Model
	focused  int
	spinner  spinner.Model
	busy     bool
	errMsg   string
	width    int
	height   int
}

func New(port AuthPort) Model {
	email := textinput.New()
	email.Placeholder = "student@school.edu"
	email.Prompt = "email    > "
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "password > "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, email: email, password: password, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoggedInMsg:
		m.busy = false
		if msg.Err != nil {
			m.errMsg = describe(msg.Err)
			m.password.SetValue("")
		}
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focused = (m.focused + 1) % 2
			if m.focused == fieldEmail {
				m.password.Blur()
				return m, m.email.Focus()
			}
			m.email.Blur()
			return m, m.password.Focus()
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focused == fieldEmail {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	if email == "" || password == "" {
		m.errMsg = "email and password are required"
		return m, nil
	}
	m.busy = true
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, m.loginCmd(email, password))
}

func (m Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.port.Login(context.Background(), authdto.LoginInput{Email: email, Password: password})
		return LoggedInMsg{Session: session, Err: err}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("planview") + "\n")
	b.WriteString(theme.Muted.Render("sign in with your student account") + "\n\n")
	b.WriteString(m.email.View() + "\n")
	b.WriteString(m.password.View() + "\n\n")
	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " signing in")
	case m.errMsg != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Red).Render(m.errMsg))
	default:
		b.WriteString(theme.Muted.Render("enter: sign in  tab: next field"))
	}

	card := theme.PaneActive.Width(min(m.width-4, 52)).Render(b.String())
	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return "email and password are required"
	default:
		return "sign in failed: " + err.Error()
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
