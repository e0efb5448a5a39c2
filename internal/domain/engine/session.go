package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mouse-blink/schemescope/internal/adapter"
	m "github.com/mouse-blink/schemescope/internal/model"
)

// Status messages shown by a Session.
const (
	StatusSameFile   = "Select different file from the scheme you want to edit"
	StatusOpenFailed = "Could not open the scheme file"
	StatusNoScheme   = "No color scheme configured for this view"
	StatusNoScope    = "No scope under the cursor"
)

// View is an open document in the host.
type View interface {
	ID() int
	Path() m.Path
	Document() adapter.Document
	// ScopeNameAt returns the space separated scope name at offset.
	ScopeNameAt(offset int) string
	// Cursor returns the offset of the first selection.
	Cursor() int
	// IsWidget reports input fields and other non-document views.
	IsWidget() bool
}

// Host is the editor a Session drives. Select must raise exactly one
// cursor notification for the view it changes.
type Host interface {
	// OpenFile opens path or returns the view already showing it.
	OpenFile(path m.Path) (View, error)
	ViewCount() int
	ActiveView() View
	ColorSchemePath(view View) m.Path
	Select(view View, r m.Region)
	ShowAt(view View, r m.Region)
	Focus(view View)
	PaneCount() int
	ActivePane() int
	ViewsInPane(pane int) int
	SetLayout(layout m.Layout)
	MoveView(view View, pane, index int)
	Status(msg string)
}

// Session is the state of one scheme editing session inside a host window.
type Session struct {
	host     Host
	resolver *Resolver
	logger   *slog.Logger

	state        State
	scheme       View
	createdSplit bool
	skipNext     bool
	resolution   Resolution
	nav          Navigator
}

type handler func(*Session, Event)

var dispatchTable = [numEventKinds]handler{
	EventToggle:      (*Session).onToggle,
	EventCursorMoved: (*Session).onCursorMoved,
	EventNextMatch:   (*Session).onNext,
	EventPrevMatch:   (*Session).onPrev,
	EventViewClosed:  (*Session).onViewClosed,
	EventTextCommand: (*Session).onTextCommand,
}

// NewSession returns an idle session.
func NewSession(host Host, resolver *Resolver, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{host: host, resolver: resolver, logger: logger}
}

// Dispatch handles one event and returns the resulting state.
func (s *Session) Dispatch(ev Event) State {
	if ev.Kind < 0 || ev.Kind >= numEventKinds {
		s.logger.Warn("unknown event", "kind", int(ev.Kind))
		return s.state
	}

	before := s.state
	dispatchTable[ev.Kind](s, ev)

	if before != s.state {
		s.logger.Debug("session state changed", "event", ev.Kind.String(), "from", before.String(), "to", s.state.String())
	}

	return s.state
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Active reports whether a scheme view is attached.
func (s *Session) Active() bool {
	return s.state != StateIdle
}

// SchemeView returns the scheme view, nil when idle.
func (s *Session) SchemeView() View {
	return s.scheme
}

// Resolution returns the last resolution.
func (s *Session) Resolution() Resolution {
	return s.resolution
}

// Matches returns the current ranked list.
func (s *Session) Matches() m.RankedMatchList {
	return s.nav.List()
}

// Position returns the 1-based position in the ranked list and its length.
func (s *Session) Position() (int, int) {
	return s.nav.Position(), s.nav.Len()
}

// SkipPending reports whether the next cursor notification is suppressed.
func (s *Session) SkipPending() bool {
	return s.skipNext
}

// CreatedSplit reports whether the session switched the host to two panes.
func (s *Session) CreatedSplit() bool {
	return s.createdSplit
}

func (s *Session) onToggle(ev Event) {
	if s.Active() {
		s.teardown()
		return
	}

	s.start(ev.View)
}

func (s *Session) start(view View) {
	if view == nil {
		return
	}

	schemePath := s.host.ColorSchemePath(view)
	if schemePath == "" {
		s.host.Status(StatusNoScheme)
		return
	}

	if schemePath == view.Path() {
		s.host.Status(StatusSameFile)
		return
	}

	before := s.host.ViewCount()

	scheme, err := s.host.OpenFile(schemePath)
	if err != nil || scheme == nil {
		s.logger.Warn("open scheme failed", "path", string(schemePath), "error", err)
		s.host.Status(StatusOpenFailed)

		return
	}

	s.placeScheme(scheme, s.host.ViewCount() != before)
	s.host.Focus(view)

	s.scheme = scheme
	s.state = StateTracking
	s.logger.Info("session started", "scheme", string(schemePath), "source", string(view.Path()))

	s.resolve(view)
}

func (s *Session) placeScheme(scheme View, opened bool) {
	panes := s.host.PaneCount()

	switch {
	case panes <= 1:
		s.createdSplit = true
		s.host.SetLayout(m.LayoutSplit)
		s.host.MoveView(scheme, 1, 0)
	case opened:
		pane, index := s.host.ActivePane()+1, 0
		if pane == panes {
			pane = panes - 2
			index = s.host.ViewsInPane(pane)
		}

		s.host.MoveView(scheme, pane, index)
	default:
		s.host.Focus(scheme)
	}
}

func (s *Session) teardown() {
	if s.createdSplit {
		s.host.SetLayout(m.LayoutSingle)
	}

	s.logger.Info("session stopped")

	s.state = StateIdle
	s.scheme = nil
	s.createdSplit = false
	s.skipNext = false
	s.resolution = Resolution{}
	s.nav.Reset(nil)
}

func (s *Session) onViewClosed(ev Event) {
	if !s.Active() || ev.View == nil {
		return
	}

	if ev.View.ID() == s.scheme.ID() {
		s.teardown()
	}
}

func (s *Session) onCursorMoved(ev Event) {
	if !s.Active() || ev.View == nil {
		return
	}

	if s.skipNext {
		s.skipNext = false
		return
	}

	if ev.View.ID() == s.scheme.ID() || ev.View.IsWidget() {
		return
	}

	s.resolve(ev.View)
}

func (s *Session) onTextCommand(ev Event) {
	if !s.Active() {
		return
	}

	if ev.Command == CommandDragSelect || ev.Command == CommandShowScopeName {
		s.skipNext = true
	}
}

func (s *Session) onNext(Event) {
	s.step((*Navigator).Next)
}

func (s *Session) onPrev(Event) {
	s.step((*Navigator).Prev)
}

func (s *Session) step(move func(*Navigator) bool) {
	if !s.Active() || s.nav.Len() == 0 {
		return
	}

	if move(&s.nav) {
		current, _ := s.nav.Current()
		s.display(current.Region)
	}

	s.host.Status(fmt.Sprintf("Scope %d of %d", s.nav.Position(), s.nav.Len()))
}

func (s *Session) resolve(view View) {
	scopeName := view.ScopeNameAt(view.Cursor())
	if strings.TrimSpace(scopeName) == "" {
		s.host.Status(StatusNoScope)
		return
	}

	s.resolution = s.resolver.Resolve(s.scheme.Document(), scopeName)
	s.nav.Reset(s.resolution.Matches)

	s.logger.Debug("scope resolved", "scope", scopeName, "matches", s.nav.Len())
	s.host.Status(fmt.Sprintf("matches %d: %s", s.nav.Len(), s.resolution.Chain.Pretty()))

	top, ok := s.nav.Current()
	if !ok {
		s.state = StateTracking
		s.display(m.NewRegion(0, 0))

		return
	}

	s.state = StateResolved
	s.display(top.Region)
}

// display selects r in the scheme view and gives focus back to the view
// that had it. The selection raises one notification, skipped by the flag.
func (s *Session) display(r m.Region) {
	active := s.host.ActiveView()

	s.skipNext = true
	s.host.Select(s.scheme, r)
	s.host.ShowAt(s.scheme, r)
	s.host.Focus(s.scheme)

	if active != nil {
		s.host.Focus(active)
	}
}
