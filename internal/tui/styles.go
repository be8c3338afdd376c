package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the browser.
type Styles struct {
	Pane         lipgloss.Style
	Title        lipgloss.Style
	TrackTitle   lipgloss.Style
	Artist       lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Lyric        lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	Warning      lipgloss.Style
	SearchActive lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // pane borders
	warn := lipgloss.AdaptiveColor{Light: "#9A6A2E", Dark: "#C0924E"}

	return Styles{
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		TrackTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Artist: lipgloss.NewStyle().
			Foreground(primary),

		Item: lipgloss.NewStyle().
			Foreground(primary),

		ItemSelected: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Value: lipgloss.NewStyle().
			Foreground(primary),

		Lyric: lipgloss.NewStyle().
			Foreground(subtle),

		Help: lipgloss.NewStyle().
			Foreground(subtle),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		Warning: lipgloss.NewStyle().
			Foreground(warn),

		SearchActive: lipgloss.NewStyle().
			Foreground(accent),
	}
}
