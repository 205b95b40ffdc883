package checkbox

import (
	"tickbox/internal/selection"
)

// Binding keeps a Surface in sync with a selection.State. It re-renders the
// whole surface on every state change and, in the other direction, submits
// the surface's live flags back to the state when the owner reports a user
// toggle.
type Binding struct {
	surface Surface
	state   *selection.State
	unsub   func()
}

// New wires the binding: it subscribes a re-render to the state and draws
// the initial controls.
func New(surface Surface, state *selection.State) *Binding {
	b := &Binding{
		surface: surface,
		state:   state,
	}
	b.unsub = state.Subscribe(func([]string) {
		b.Render()
	})
	b.Render()
	return b
}

// Render replaces the surface contents wholesale: clear, then one batch
// append with exactly one control per option in option order. There are no
// partial updates, so enumerating the surface between renders always sees a
// complete snapshot.
func (b *Binding) Render() {
	options := b.state.Options()
	controls := make([]Control, 0, len(options))
	for _, o := range options {
		controls = append(controls, Control{
			Value:   o,
			Checked: b.state.IsChecked(o),
		})
	}
	b.surface.Clear()
	b.surface.Append(controls...)
}

// HandleToggle reads every live control flag from the surface, assembles the
// checked values and submits the full set to the state. The flags are read
// fresh each time, so a control flipped by any means is picked up. The
// state's notification then re-renders the surface, which is how a toggle
// the reconciliation rewrote (checking "all", say) settles back to the
// committed form.
func (b *Binding) HandleToggle() {
	controls := b.surface.Controls()
	checked := make([]string, 0, len(controls))
	for _, c := range controls {
		if c.Checked {
			checked = append(checked, c.Value)
		}
	}
	b.state.SetChecked(checked)
}

// Close removes the state subscription. Safe to call more than once.
func (b *Binding) Close() {
	if b.unsub != nil {
		b.unsub()
		b.unsub = nil
	}
}
