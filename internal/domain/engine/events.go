package engine

// EventKind tags an Event.
type EventKind int

const (
	EventToggle EventKind = iota
	EventCursorMoved
	EventNextMatch
	EventPrevMatch
	EventViewClosed
	EventTextCommand
	numEventKinds
)

var eventKindNames = [numEventKinds]string{
	EventToggle:      "toggle",
	EventCursorMoved: "cursor_moved",
	EventNextMatch:   "next_match",
	EventPrevMatch:   "prev_match",
	EventViewClosed:  "view_closed",
	EventTextCommand: "text_command",
}

func (k EventKind) String() string {
	if k < 0 || k >= numEventKinds {
		return "unknown"
	}

	return eventKindNames[k]
}

// Text commands after which the host raises one extra selection
// notification on the view that ran them.
const (
	CommandDragSelect    = "drag_select"
	CommandShowScopeName = "show_scope_name"
)

// Event is a host notification or user command delivered to a Session.
// View is the view the event originates from; Command is only set for
// EventTextCommand.
type Event struct {
	Kind    EventKind
	View    View
	Command string
}

// ToggleEvent starts or stops editing the scheme of view.
func ToggleEvent(view View) Event {
	return Event{Kind: EventToggle, View: view}
}

// CursorMovedEvent reports a selection change in view.
func CursorMovedEvent(view View) Event {
	return Event{Kind: EventCursorMoved, View: view}
}

// NextMatchEvent moves to the next ranked match.
func NextMatchEvent() Event {
	return Event{Kind: EventNextMatch}
}

// PrevMatchEvent moves to the previous ranked match.
func PrevMatchEvent() Event {
	return Event{Kind: EventPrevMatch}
}

// ViewClosedEvent reports that view was closed.
func ViewClosedEvent(view View) Event {
	return Event{Kind: EventViewClosed, View: view}
}

// TextCommandEvent reports a text command run in view.
func TextCommandEvent(view View, command string) Event {
	return Event{Kind: EventTextCommand, View: view, Command: command}
}

// State of a Session.
type State int

const (
	// StateIdle has no scheme view.
	StateIdle State = iota
	// StateTracking has a scheme view and no ranked matches.
	StateTracking
	// StateResolved has a scheme view and a non-empty ranked list.
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}
