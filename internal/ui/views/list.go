package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tickbox/internal/domain"
)

// ListRenderer handles rendering of the filtered item list
type ListRenderer struct {
	styles *Styles
}

// NewListRenderer creates a new list renderer
func NewListRenderer(styles *Styles) *ListRenderer {
	return &ListRenderer{styles: styles}
}

// RenderItems renders the visible items inside their bordered box. maxRows
// caps how many items are shown; the remainder collapses into a dim count.
func (l *ListRenderer) RenderItems(items []domain.Item, total int, width int, maxRows int) string {
	content := &strings.Builder{}
	content.WriteString(l.styles.PanelTitle.Render(fmt.Sprintf("Items (%d/%d)", len(items), total)))
	content.WriteString("\n")

	if len(items) == 0 {
		content.WriteString("\n")
		content.WriteString(l.styles.Empty.Render("nothing matches"))
		return l.styles.Panel.Width(width).Render(content.String())
	}

	if maxRows < 1 {
		maxRows = 1
	}
	shown := items
	if len(shown) > maxRows {
		shown = shown[:maxRows]
	}

	for _, it := range shown {
		content.WriteString("\n")
		content.WriteString(l.renderItem(it))
	}

	if hidden := len(items) - len(shown); hidden > 0 {
		content.WriteString("\n")
		content.WriteString(l.styles.Dim.Render(fmt.Sprintf("… and %d more", hidden)))
	}

	return l.styles.Panel.Width(width).Render(content.String())
}

// renderItem renders one item line, name colored by its tag
func (l *ListRenderer) renderItem(it domain.Item) string {
	colorCode := GetOptionColor(it.Color)
	name := lipgloss.NewStyle().Foreground(lipgloss.Color(colorCode)).Render(it.Name)
	tag := l.styles.Dim.Render(fmt.Sprintf("(%s)", it.Color))
	return fmt.Sprintf("  %s %s", name, tag)
}
