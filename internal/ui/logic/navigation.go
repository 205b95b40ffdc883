// Package logic holds the pure helpers behind the interactive model.
// Keeping them free of terminal concerns keeps them trivially testable.
package logic

import (
	"tickbox/internal/checkbox"
)

// Move shifts a cursor by delta and clamps the result to [0, count-1].
func Move(cursor, delta, count int) int {
	if count <= 0 {
		return 0
	}
	next := cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= count {
		next = count - 1
	}
	return next
}

// FindControl returns the index of the control holding the given value,
// or -1 when no control carries it.
func FindControl(controls []checkbox.Control, value string) int {
	for i, c := range controls {
		if c.Value == value {
			return i
		}
	}
	return -1
}
