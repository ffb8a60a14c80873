package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles used when reporting to a terminal.
type Theme struct {
	Name  string
	Error lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
}

// DefaultTheme returns the standard color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:  "default",
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:  lipgloss.NewStyle().Bold(true),
	}
}

// MonoTheme returns a style-free theme for non-TTY output and NO_COLOR.
func MonoTheme() Theme {
	return Theme{
		Name:  "mono",
		Error: lipgloss.NewStyle(),
		Value: lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle(),
		Bold:  lipgloss.NewStyle(),
	}
}

// ThemeByName returns the named theme, falling back to the default.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
