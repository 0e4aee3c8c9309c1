package styles

import (
	"scour/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the core UI styles
var Theme = struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Help     lipgloss.Style
	Warning  lipgloss.Style
	Danger   lipgloss.Style
	Emphasis lipgloss.Style
	Dim      lipgloss.Style
	Pane     lipgloss.Style
	Status   lipgloss.Style
}{
	App: lipgloss.NewStyle().
		Padding(1, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")).
		MarginBottom(1),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")),
	Warning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#E5C07B")),
	Danger: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#E06C75")),
	Emphasis: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#73F59F")),
	Dim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")),
	Pane: lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7B61FF")),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")).
		MarginTop(1),
}

// Apply recolors the theme from the configuration.
func Apply(cfg *config.Config) {
	Theme.Title = Theme.Title.Foreground(lipgloss.Color(cfg.Theme.Primary))
	Theme.Pane = Theme.Pane.BorderForeground(lipgloss.Color(cfg.Theme.Primary))
	Theme.Help = Theme.Help.Foreground(lipgloss.Color(cfg.Theme.Help))
	Theme.Status = Theme.Status.Foreground(lipgloss.Color(cfg.Theme.Help))
	Theme.Warning = Theme.Warning.Foreground(lipgloss.Color(cfg.Theme.Warning))
	Theme.Danger = Theme.Danger.Foreground(lipgloss.Color(cfg.Theme.Danger))
	Theme.Emphasis = Theme.Emphasis.Foreground(lipgloss.Color(cfg.Theme.Emphasis))
}
