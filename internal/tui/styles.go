package tui

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles of the watch view.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Status    map[string]lipgloss.Style
}

// NewStyle returns the styles for a dark or light terminal background.
func NewStyle(dark bool) Style {
	fg := lipgloss.Color("#3C3C3C")
	muted := lipgloss.Color("#6C6C6C")

	if dark {
		fg = lipgloss.Color("#ABB2BF")
		muted = lipgloss.Color("#636B78")
	}

	green := lipgloss.Color("#98C379")
	yellow := lipgloss.Color("#E5C07B")
	red := lipgloss.Color("#E06C75")
	blue := lipgloss.Color("#61AFEF")
	magenta := lipgloss.Color("#C678DD")

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Title:     lipgloss.NewStyle().Foreground(fg).Bold(true),
		Secondary: lipgloss.NewStyle().Foreground(fg),
		Hint:      lipgloss.NewStyle().Foreground(muted),
		Warning:   lipgloss.NewStyle().Foreground(yellow).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(red),
		Status: map[string]lipgloss.Style{
			"scheduled":   lipgloss.NewStyle().Foreground(muted),
			"active":      lipgloss.NewStyle().Foreground(blue).Bold(true),
			"paused":      lipgloss.NewStyle().Foreground(magenta).Bold(true),
			"completed":   lipgloss.NewStyle().Foreground(green).Bold(true),
			"overdue":     lipgloss.NewStyle().Foreground(yellow).Bold(true),
			"interrupted": lipgloss.NewStyle().Foreground(red).Bold(true),
		},
	}
}
