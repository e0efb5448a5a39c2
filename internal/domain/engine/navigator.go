package engine

import m "github.com/mouse-blink/schemescope/internal/model"

// Navigator is a wrapping cursor over a ranked match list.
type Navigator struct {
	list  m.RankedMatchList
	index int
}

// Reset replaces the list and moves the cursor to the first match.
func (n *Navigator) Reset(list m.RankedMatchList) {
	n.list = list
	n.index = 0
}

// List returns the current list.
func (n *Navigator) List() m.RankedMatchList {
	return n.list
}

// Len returns the list length.
func (n *Navigator) Len() int {
	return len(n.list)
}

// Index returns the 0-based cursor.
func (n *Navigator) Index() int {
	return n.index
}

// Position returns the 1-based cursor, or 0 for an empty list.
func (n *Navigator) Position() int {
	if len(n.list) == 0 {
		return 0
	}

	return n.index + 1
}

// Current returns the candidate under the cursor.
func (n *Navigator) Current() (m.ScoredCandidate, bool) {
	if len(n.list) == 0 {
		return m.ScoredCandidate{}, false
	}

	return n.list[n.index], true
}

// Next advances the cursor, wrapping at the end. It reports whether the
// cursor moved; lists of one or no entries never move.
func (n *Navigator) Next() bool {
	if len(n.list) <= 1 {
		return false
	}

	n.index = (n.index + 1) % len(n.list)

	return true
}

// Prev moves the cursor back, wrapping at the start.
func (n *Navigator) Prev() bool {
	if len(n.list) <= 1 {
		return false
	}

	n.index = (n.index - 1 + len(n.list)) % len(n.list)

	return true
}
