package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)

	// One style per attendance state; the calendar colors each event block by
	// its recorded state.
	Present   = lipgloss.NewStyle().Foreground(Base).Background(Green)
	Absent    = lipgloss.NewStyle().Foreground(Base).Background(Red)
	Justified = lipgloss.NewStyle().Foreground(Base).Background(Peach)
	Unmarked  = lipgloss.NewStyle().Foreground(Base).Background(Sapphire)
)

// Attendance maps a state name to its block style, defaulting to unmarked.
func Attendance(state string) lipgloss.Style {
	switch state {
	case "present":
		return Present
	case "absent":
		return Absent
	case "justified":
		return Justified
	default:
		return Unmarked
	}
}
