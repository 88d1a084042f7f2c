package theme

import "github.com/charmbracelet/lipgloss"

// Colors holds the terminal palette used across the CLI.
type Colors struct {
	Green  lipgloss.TerminalColor
	Yellow lipgloss.TerminalColor
	Red    lipgloss.TerminalColor
	Orange lipgloss.TerminalColor
	Cyan   lipgloss.TerminalColor
	Blue   lipgloss.TerminalColor
	Violet lipgloss.TerminalColor
}

// Theme groups the reusable styles for help output and log formatting.
type Theme struct {
	Colors Colors

	Title   lipgloss.Style
	Muted   lipgloss.Style // De-emphasized text
	Italic  lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultTheme is the default theme instance. Kanagawa Dragon palette.
var DefaultTheme = initDefaultTheme()

func initDefaultTheme() *Theme {
	colors := Colors{
		Green:  lipgloss.AdaptiveColor{Dark: "#98BB6C", Light: "#4E7C5A"},
		Yellow: lipgloss.AdaptiveColor{Dark: "#FF9E3B", Light: "#A68A64"},
		Red:    lipgloss.AdaptiveColor{Dark: "#FF5D62", Light: "#C34043"},
		Orange: lipgloss.AdaptiveColor{Dark: "#FFA066", Light: "#CC6B4E"},
		Cyan:   lipgloss.AdaptiveColor{Dark: "#7E9CD8", Light: "#5B8BBE"},
		Blue:   lipgloss.AdaptiveColor{Dark: "#7FB4CA", Light: "#4F7CAC"},
		Violet: lipgloss.AdaptiveColor{Dark: "#957FB8", Light: "#674D7A"},
	}

	return &Theme{
		Colors:  colors,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colors.Orange),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#727169", Light: "#6C7086"}),
		Italic:  lipgloss.NewStyle().Italic(true),
		Accent:  lipgloss.NewStyle().Foreground(colors.Violet),
		Success: lipgloss.NewStyle().Foreground(colors.Green),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(colors.Red),
		Warning: lipgloss.NewStyle().Foreground(colors.Yellow),
	}
}

// StatusStyle renders text with the style matching a status keyword.
func StatusStyle(status, text string) string {
	switch status {
	case "passed", "ok":
		return DefaultTheme.Success.Render(text)
	case "failed", "error":
		return DefaultTheme.Error.Render(text)
	case "skipped", "warning":
		return DefaultTheme.Warning.Render(text)
	default:
		return text
	}
}
