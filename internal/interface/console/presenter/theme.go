package presenter

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles applied to console output.
// Only headings and failure lines are styled; report lines stay plain.
type Theme struct {
	Title lipgloss.Style
	Rule  lipgloss.Style
	OK    lipgloss.Style
	Fail  lipgloss.Style
}

// DefaultTheme returns the colored theme. lipgloss drops the escape codes
// by itself when stdout is not a terminal.
func DefaultTheme() Theme {
	blue := lipgloss.Color("#5EEBFF")
	mint := lipgloss.Color("#67F0A8")
	brick := lipgloss.Color("#FF6F91")
	muted := lipgloss.Color("#4B5F8A")

	return Theme{
		Title: lipgloss.NewStyle().Foreground(blue).Bold(true),
		Rule:  lipgloss.NewStyle().Foreground(muted),
		OK:    lipgloss.NewStyle().Foreground(mint),
		Fail:  lipgloss.NewStyle().Foreground(brick),
	}
}

// PlainTheme returns a theme that renders text unchanged.
func PlainTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle(),
		Rule:  lipgloss.NewStyle(),
		OK:    lipgloss.NewStyle(),
		Fail:  lipgloss.NewStyle(),
	}
}

// ThemeFor picks the theme for the given color setting.
func ThemeFor(noColor bool) Theme {
	if noColor {
		return PlainTheme()
	}
	return DefaultTheme()
}
