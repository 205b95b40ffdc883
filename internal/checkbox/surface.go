// Package checkbox binds a selection.State to a rendering surface holding
// one checkbox control per option.
package checkbox

// Control is one rendered checkbox: its option value and its flag.
type Control struct {
	Value   string
	Checked bool
}

// Surface is the narrow capability set a rendering target must offer.
// Anything that can drop its children, take an ordered batch of controls and
// enumerate them can host a Binding; change events stay on the owner's side,
// which calls Binding.HandleToggle after a user flip has landed.
type Surface interface {
	Clear()
	Append(controls ...Control)
	Controls() []Control
}

// ListSurface is a slice-backed Surface used by the TUI view and by tests.
type ListSurface struct {
	controls []Control
}

// NewListSurface creates an empty list surface.
func NewListSurface() *ListSurface {
	return &ListSurface{}
}

// Clear removes all controls.
func (l *ListSurface) Clear() {
	l.controls = nil
}

// Append adds controls in order.
func (l *ListSurface) Append(controls ...Control) {
	l.controls = append(l.controls, controls...)
}

// Controls returns a copy of the current controls.
func (l *ListSurface) Controls() []Control {
	out := make([]Control, len(l.controls))
	copy(out, l.controls)
	return out
}

// Len returns the number of controls, for cursor clamping.
func (l *ListSurface) Len() int {
	return len(l.controls)
}

// ToggleAt flips the control at index i, simulating a user click, and
// returns its value. Reports false when i is out of range.
func (l *ListSurface) ToggleAt(i int) (string, bool) {
	if i < 0 || i >= len(l.controls) {
		return "", false
	}
	l.controls[i].Checked = !l.controls[i].Checked
	return l.controls[i].Value, true
}
