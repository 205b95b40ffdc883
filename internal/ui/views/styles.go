package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title      lipgloss.Style
	Dim        lipgloss.Style
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Cursor     lipgloss.Style
	Sentinel   lipgloss.Style
	Checked    lipgloss.Style
	Status     lipgloss.Style
	Empty      lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Sentinel: lipgloss.NewStyle().Italic(true),
		Checked:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Empty: lipgloss.NewStyle().Faint(true).Italic(true),
		Help:  lipgloss.NewStyle().Faint(true),
	}
}

// GetOptionColor returns the ANSI color code for a catalog color tag
func GetOptionColor(name string) string {
	switch name {
	case "red":
		return "203"
	case "green":
		return "78"
	case "blue":
		return "33"
	case "yellow":
		return "214"
	case "cyan":
		return "51"
	case "magenta":
		return "201"
	case "white":
		return "255"
	case "black":
		return "240"
	default:
		return "252" // neutral for unknown tags
	}
}
