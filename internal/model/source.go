// Package model defines the data structures shared by the scheme scope engine.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Region is a half-open byte range [A, B) inside a document.
// A may be greater than B when a selection was made backwards.
type Region struct {
	A int
	B int
}

// NewRegion returns the region spanning a to b.
func NewRegion(a, b int) Region {
	return Region{A: a, B: b}
}

// Begin returns the smaller offset of the region.
func (r Region) Begin() int {
	return min(r.A, r.B)
}

// End returns the larger offset of the region.
func (r Region) End() int {
	return max(r.A, r.B)
}

// Size returns the number of bytes covered by the region.
func (r Region) Size() int {
	return r.End() - r.Begin()
}

// Empty reports whether the region covers no bytes.
func (r Region) Empty() bool {
	return r.A == r.B
}

// Contains reports whether offset falls inside the region.
func (r Region) Contains(offset int) bool {
	return offset >= r.Begin() && offset < r.End()
}

func (r Region) String() string {
	return fmt.Sprintf("(%d, %d)", r.A, r.B)
}

// Layout is the pane arrangement of the host window.
type Layout int

const (
	// LayoutSingle is one pane filling the window.
	LayoutSingle Layout = iota
	// LayoutSplit is two side-by-side panes.
	LayoutSplit
)

// Panes returns the number of panes of the layout.
func (l Layout) Panes() int {
	if l == LayoutSplit {
		return 2
	}

	return 1
}
