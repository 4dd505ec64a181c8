package tui

import "github.com/charmbracelet/lipgloss"

// theme holds the shell's color palette. Themes are selected by name
// through shell.theme in the config.
type theme struct {
	primary lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
}

var themes = map[string]theme{
	"default": {
		primary: lipgloss.Color("99"),  // Purple
		muted:   lipgloss.Color("241"), // Gray
		accent:  lipgloss.Color("35"),  // Green
	},
	"monokai": {
		primary: lipgloss.Color("#F92672"),
		muted:   lipgloss.Color("#75715E"),
		accent:  lipgloss.Color("#A6E22E"),
	},
	"dracula": {
		primary: lipgloss.Color("#BD93F9"),
		muted:   lipgloss.Color("#6272A4"),
		accent:  lipgloss.Color("#50FA7B"),
	},
	"nord": {
		primary: lipgloss.Color("#88C0D0"),
		muted:   lipgloss.Color("#4C566A"),
		accent:  lipgloss.Color("#A3BE8C"),
	},
}

// themeByName returns the named theme, falling back to the default
// palette for unknown names.
func themeByName(name string) theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

func (t theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.primary)
}

func (t theme) helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.muted)
}

func (t theme) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.accent)
}
