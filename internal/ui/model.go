package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tickbox/internal/checkbox"
	"tickbox/internal/domain"
	"tickbox/internal/filter"
	"tickbox/internal/selection"
	"tickbox/internal/ui/logic"
	"tickbox/internal/ui/views"
)

// Model is the Bubble Tea model for the checkbox filter UI. It owns the
// selection state, the surface the binding renders into, and the filtered
// item list derived from the catalog.
type Model struct {
	state   *selection.State
	surface *checkbox.ListSurface
	binding *checkbox.Binding
	unsub   func()

	items   []domain.Item
	visible []domain.Item

	cursor int
	width  int
	height int

	keys     KeyMap
	helpBar  help.Model
	renderer *views.Renderer
	pager    *PagerOps
	program  *tea.Program

	now      time.Time
	paused   bool
	quitting bool
}

// NewModel creates the UI model from a catalog and the initially checked
// values.
func NewModel(catalog domain.Catalog, checked []string) *Model {
	state := selection.New(catalog.Colors, checked)
	surface := checkbox.NewListSurface()

	m := &Model{
		state:    state,
		surface:  surface,
		items:    catalog.Items,
		keys:     DefaultKeyMap(),
		helpBar:  help.New(),
		renderer: views.NewRenderer(),
	}

	// The binding keeps the surface in sync with the state; the model's own
	// subscription recomputes the filtered items.
	m.binding = checkbox.New(surface, state)
	m.unsub = state.Subscribe(func(checked []string) {
		m.visible = filter.Apply(m.items, checked)
		log.Printf("Checked set now %v, %d of %d items visible", checked, len(m.visible), len(m.items))
	})
	m.visible = filter.Apply(m.items, state.Checked())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// State exposes the selection state, for the CLI layer.
func (m *Model) State() *selection.State {
	return m.state
}

// Init starts the clock tick.
func (m *Model) Init() tea.Cmd {
	m.now = time.Now()
	return m.tick()
}

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpBar.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, m.tick()

	case pauseRenderingMsg:
		m.paused = true
		return m, nil

	case resumeRenderingMsg:
		m.paused = false
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses through the key map.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.binding.Close()
		m.unsub()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = logic.Move(m.cursor, -1, m.surface.Len())

	case key.Matches(msg, m.keys.Down):
		m.cursor = logic.Move(m.cursor, 1, m.surface.Len())

	case key.Matches(msg, m.keys.Toggle):
		m.toggleAtCursor()

	case key.Matches(msg, m.keys.All):
		m.toggleSentinel()

	case key.Matches(msg, m.keys.Help):
		return m, m.showHelpPager()
	}

	return m, nil
}

// toggleAtCursor flips the checkbox under the cursor and reports the change
// to the binding, which reads the surface and submits the full set.
func (m *Model) toggleAtCursor() {
	value, ok := m.surface.ToggleAt(m.cursor)
	if !ok {
		return
	}
	log.Printf("Toggled %q", value)
	m.binding.HandleToggle()
}

// toggleSentinel moves the cursor to the "all" row and flips it.
func (m *Model) toggleSentinel() {
	i := logic.FindControl(m.surface.Controls(), selection.All)
	if i < 0 {
		return
	}
	m.cursor = i
	m.toggleAtCursor()
}

// showHelpPager returns a command that shows help using the ov pager
func (m *Model) showHelpPager() tea.Cmd {
	if m.program == nil || m.pager == nil {
		return nil
	}
	content := helpText()
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerClosedMsg{err: err}
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the full screen.
func (m *Model) View() string {
	if m.paused || m.quitting {
		return ""
	}

	return m.renderer.Render(views.ViewState{
		Width:    m.width,
		Height:   m.height,
		Cursor:   m.cursor,
		Controls: m.surface.Controls(),
		Items:    m.visible,
		Total:    len(m.items),
		Checked:  m.state.Checked(),
		Clock:    m.now.Format("15:04:05"),
		HelpView: m.helpBar.View(m.keys),
	})
}
