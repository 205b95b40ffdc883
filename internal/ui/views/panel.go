package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tickbox/internal/checkbox"
	"tickbox/internal/selection"
)

// PanelRenderer handles rendering of the checkbox panel
type PanelRenderer struct {
	styles *Styles
}

// NewPanelRenderer creates a new panel renderer
func NewPanelRenderer(styles *Styles) *PanelRenderer {
	return &PanelRenderer{styles: styles}
}

// RenderPanel renders the checkbox list inside its bordered box. Controls
// arrive in surface order, one row each, with the cursor row prefixed.
func (p *PanelRenderer) RenderPanel(controls []checkbox.Control, cursor int, width int) string {
	content := &strings.Builder{}
	content.WriteString(p.styles.PanelTitle.Render("Filters"))
	content.WriteString("\n")

	for i, c := range controls {
		content.WriteString("\n")
		content.WriteString(p.renderControl(c, i == cursor))
	}

	return p.styles.Panel.Width(width).Render(content.String())
}

// renderControl renders a single checkbox row
func (p *PanelRenderer) renderControl(c checkbox.Control, isCursor bool) string {
	marker := "[ ]"
	if c.Checked {
		marker = "[x]"
	}

	prefix := "  "
	if isCursor {
		prefix = p.styles.Cursor.Render("> ")
	}

	label := c.Value
	if c.Value == selection.All {
		label = p.styles.Sentinel.Render(label)
	} else {
		colorCode := GetOptionColor(c.Value)
		label = lipgloss.NewStyle().Foreground(lipgloss.Color(colorCode)).Render(label)
	}

	if c.Checked {
		marker = p.styles.Checked.Render(marker)
	}

	return fmt.Sprintf("%s%s %s", prefix, marker, label)
}
