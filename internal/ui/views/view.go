package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tickbox/internal/checkbox"
	"tickbox/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width    int
	Height   int
	Cursor   int
	Controls []checkbox.Control
	Items    []domain.Item
	Total    int
	Checked  []string
	Clock    string
	HelpView string
}

const panelWidth = 22

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	panel  *PanelRenderer
	list   *ListRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		panel:  NewPanelRenderer(styles),
		list:   NewListRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	listWidth := state.Width - panelWidth - 8
	if listWidth < 30 {
		listWidth = 30
	}
	if listWidth > 60 {
		listWidth = 60
	}

	maxRows := state.Height - 10
	if maxRows < 3 {
		maxRows = 3
	}

	panel := r.panel.RenderPanel(state.Controls, state.Cursor, panelWidth)
	list := r.list.RenderItems(state.Items, state.Total, listWidth, maxRows)
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panel, " ", list))
	content.WriteString("\n")

	content.WriteString(r.styles.Status.Render(r.summary(state)))
	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render(state.HelpView))

	return content.String()
}

// renderTitleLine builds the title with the clock right-aligned
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("tickbox")
	if state.Clock == "" {
		return logo
	}

	clock := r.styles.Dim.Render(state.Clock)
	padding := state.Width - lipgloss.Width(logo) - lipgloss.Width(clock)
	if padding < 1 {
		padding = 1
	}
	return logo + strings.Repeat(" ", padding) + clock
}

// summary builds the status line under the panels
func (r *Renderer) summary(state ViewState) string {
	checked := "nothing checked"
	if len(state.Checked) > 0 {
		checked = "checked: " + strings.Join(state.Checked, ", ")
	}
	return fmt.Sprintf("%s | %d of %d items", checked, len(state.Items), state.Total)
}
