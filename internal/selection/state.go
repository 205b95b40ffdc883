// Package selection holds the checked-set state behind a checkbox filter
// panel, including the "all" sentinel option and its reconciliation rules.
package selection

// All is the sentinel option meaning "no filtering". It is appended to the
// option list at construction if the caller did not include it.
const All = "all"

type subscriber struct {
	id int
	fn func(checked []string)
}

// State is an ordered option list plus the set of currently checked values.
// Mutations go through SetChecked, which reconciles the sentinel against the
// previous set and notifies subscribers exactly once.
//
// State is not safe for concurrent use; it is owned by the UI update loop.
type State struct {
	options   []string
	optionSet map[string]bool
	checked   map[string]bool
	order     []string // committed checked values in submission order
	subs      []subscriber
	nextID    int
}

// New builds a State from the given options and initial checked values.
// Options are deduplicated preserving first occurrence and the sentinel is
// appended once if absent. A nil checked defaults to the sentinel; pass an
// empty non-nil slice for nothing checked. The initial values pass through
// the same reconciliation as SetChecked, against an empty previous set.
func New(options []string, checked []string) *State {
	if checked == nil {
		checked = []string{All}
	}
	s := &State{
		optionSet: make(map[string]bool),
		checked:   make(map[string]bool),
	}
	for _, o := range options {
		if s.optionSet[o] {
			continue
		}
		s.optionSet[o] = true
		s.options = append(s.options, o)
	}
	if !s.optionSet[All] {
		s.optionSet[All] = true
		s.options = append(s.options, All)
	}
	s.commit(s.reconcile(dedupe(checked)))
	return s
}

// Options returns a copy of the ordered option list.
func (s *State) Options() []string {
	out := make([]string, len(s.options))
	copy(out, s.options)
	return out
}

// Checked returns a copy of the checked values: options first in option
// order, then any checked values that are not options, in submission order.
func (s *State) Checked() []string {
	out := make([]string, 0, len(s.order))
	for _, o := range s.options {
		if s.checked[o] {
			out = append(out, o)
		}
	}
	for _, v := range s.order {
		if !s.optionSet[v] {
			out = append(out, v)
		}
	}
	return out
}

// IsChecked reports whether v is currently checked.
func (s *State) IsChecked(v string) bool {
	return s.checked[v]
}

// SetChecked replaces the checked set with the reconciled form of values.
// Exactly one reconciliation runs per call and subscribers are notified
// exactly once, even when the result equals the previous set.
//
// Reconciliation: if the incoming set contains the sentinel and the previous
// set did too, the sentinel is dropped and the rest is kept (the user added
// a specific value while "all" was held). If the sentinel arrives fresh, the
// result collapses to just the sentinel. Otherwise the incoming set is
// committed unchanged; an empty set is valid and means nothing matches.
func (s *State) SetChecked(values []string) {
	s.commit(s.reconcile(dedupe(values)))
	s.notify()
}

// Toggle flips a single value and submits the resulting set through
// SetChecked, so sentinel reconciliation applies as if the user had clicked
// that one checkbox.
func (s *State) Toggle(v string) {
	cur := s.Checked()
	if s.checked[v] {
		next := make([]string, 0, len(cur))
		for _, c := range cur {
			if c != v {
				next = append(next, c)
			}
		}
		s.SetChecked(next)
		return
	}
	s.SetChecked(append(cur, v))
}

// Subscribe registers fn to be called synchronously after every commit, with
// a copy of the checked values. The returned function removes the
// subscription and is safe to call more than once.
func (s *State) Subscribe(fn func(checked []string)) func() {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// reconcile applies the sentinel rules to the deduplicated incoming values,
// using the currently committed set as the previous state.
func (s *State) reconcile(in []string) []string {
	hasAll := false
	for _, v := range in {
		if v == All {
			hasAll = true
			break
		}
	}
	if !hasAll {
		return in
	}
	if s.checked[All] {
		// Sentinel was already held: keep the specifics, drop the sentinel.
		out := make([]string, 0, len(in))
		for _, v := range in {
			if v != All {
				out = append(out, v)
			}
		}
		return out
	}
	// Sentinel arrived fresh: it wins outright.
	return []string{All}
}

// commit replaces the checked set in a single assignment so subscribers and
// re-entrant reads only ever observe complete states.
func (s *State) commit(values []string) {
	checked := make(map[string]bool, len(values))
	for _, v := range values {
		checked[v] = true
	}
	s.checked = checked
	s.order = values
}

func (s *State) notify() {
	// Iterate a snapshot so callbacks may subscribe or unsubscribe freely.
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(s.Checked())
	}
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
