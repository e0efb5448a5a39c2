package controller

import (
	"fmt"
	"time"
)

// Message types.
type tickMsg time.Time

// startMsg toggles the session on the source view once the program runs.
type startMsg struct{}

// notifyMsg carries queued cursor notifications, oldest first. Each
// Update delivers the first one.
type notifyMsg struct {
	viewIDs []int
}

// List item types.
type matchItem struct {
	scheme   string
	rank     int
	score    int
	selector string
	segment  string
	line     int
	column   int
	context  string
}

func (i matchItem) FilterValue() string {
	return i.selector + " " + i.segment
}

func (i matchItem) location() string {
	return fmt.Sprintf("%d:%d", i.line, i.column)
}
