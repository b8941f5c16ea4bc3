package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by all commands.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Path    lipgloss.Style

	// Status markers; render with String().
	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
}

func newStyles(lg *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1:       lg.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2:       lg.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:          lg.NewStyle().Bold(true),
		Muted:         lg.NewStyle().Foreground(lipgloss.Color("8")),
		Success:       lg.NewStyle().Foreground(lipgloss.Color("2")),
		Warning:       lg.NewStyle().Foreground(lipgloss.Color("3")),
		Error:         lg.NewStyle().Foreground(lipgloss.Color("1")),
		Info:          lg.NewStyle().Foreground(lipgloss.Color("4")),
		Path:          lg.NewStyle().Foreground(lipgloss.Color("6")),
		StatusSuccess: lg.NewStyle().Foreground(lipgloss.Color("2")).SetString("✓"),
		StatusFailed:  lg.NewStyle().Foreground(lipgloss.Color("1")).SetString("✗"),
	}
}
