package filter

import (
	"tickbox/internal/domain"
	"tickbox/internal/selection"
)

// Apply returns the items visible under the given checked values. The
// sentinel means everything, an empty set means nothing, and otherwise an
// item shows when its color is checked. Order is preserved and the input is
// never mutated.
func Apply(items []domain.Item, checked []string) []domain.Item {
	set := make(map[string]bool, len(checked))
	for _, v := range checked {
		set[v] = true
	}
	if set[selection.All] {
		out := make([]domain.Item, len(items))
		copy(out, items)
		return out
	}
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if set[it.Color] {
			out = append(out, it)
		}
	}
	return out
}

// Matches reports whether a single item is visible under checked.
func Matches(item domain.Item, checked []string) bool {
	for _, v := range checked {
		if v == selection.All || v == item.Color {
			return true
		}
	}
	return false
}
