package controller

import (
	"fmt"
	"slices"

	"github.com/mouse-blink/schemescope/internal/adapter"
	"github.com/mouse-blink/schemescope/internal/domain/engine"
	m "github.com/mouse-blink/schemescope/internal/model"
)

// editorView is a read-only document open in the editor.
type editorView struct {
	id     int
	path   m.Path
	doc    *adapter.TextDocument
	src    []byte
	scopes adapter.ScopeProvider
	sel    m.Region
	top    int // first visible line
	widget bool
}

func (v *editorView) ID() int                    { return v.id }
func (v *editorView) Path() m.Path               { return v.path }
func (v *editorView) Document() adapter.Document { return v.doc }
func (v *editorView) Cursor() int                { return v.sel.Begin() }
func (v *editorView) IsWidget() bool             { return v.widget }
func (v *editorView) ScopeNameAt(offset int) string {
	if v.widget || v.scopes == nil {
		return ""
	}

	return v.scopes.ScopeNameAt(v.path, v.src, offset)
}

// editorHost is the window state of the interactive editor: views laid out
// in panes, focus, the status line and pending cursor notifications.
//
// Notifications are kept in two queues. pending holds the ones caused by
// user input and is delivered through the program loop. echoes holds the
// ones the host raises itself (programmatic selections, the extra event of
// drag_select and show_scope_name) and must be delivered before the next
// input is handled.
type editorHost struct {
	fs     adapter.SourceFSAdapter
	scopes adapter.ScopeProvider
	scheme m.Path

	views      []*editorView
	panes      [][]*editorView
	front      []*editorView
	activePane int
	active     *editorView
	status     string
	pending    []int
	echoes     []int
	nextID     int
	lines      int // visible text lines per pane
}

var _ engine.Host = (*editorHost)(nil)

func newEditorHost(fs adapter.SourceFSAdapter, scopes adapter.ScopeProvider, scheme m.Path) *editorHost {
	return &editorHost{
		fs:     fs,
		scopes: scopes,
		scheme: scheme,
		panes:  [][]*editorView{{}},
		front:  []*editorView{nil},
		nextID: 1,
		lines:  20,
	}
}

// open returns the view showing path, loading it into the active pane when
// it is not open yet.
func (h *editorHost) open(path m.Path) (*editorView, error) {
	for _, v := range h.views {
		if !v.widget && h.fs.SameFile(v.path, path) {
			h.Focus(v)
			return v, nil
		}
	}

	src, err := h.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	v := &editorView{
		id:     h.nextID,
		path:   path,
		doc:    adapter.NewTextDocument(path, string(src)),
		src:    src,
		scopes: h.scopes,
	}
	h.nextID++

	h.views = append(h.views, v)
	h.panes[h.activePane] = append(h.panes[h.activePane], v)
	h.Focus(v)

	return v, nil
}

// newWidget registers an input view that is not laid out in a pane.
func (h *editorHost) newWidget() *editorView {
	v := &editorView{id: h.nextID, widget: true, doc: adapter.NewTextDocument("", "")}
	h.nextID++

	return v
}

func (h *editorHost) OpenFile(path m.Path) (engine.View, error) {
	v, err := h.open(path)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (h *editorHost) ViewCount() int {
	return len(h.views)
}

func (h *editorHost) ActiveView() engine.View {
	if h.active == nil {
		return nil
	}

	return h.active
}

// ColorSchemePath returns the configured scheme for every document view.
func (h *editorHost) ColorSchemePath(view engine.View) m.Path {
	if view == nil || view.IsWidget() {
		return ""
	}

	return h.scheme
}

// Select replaces the selection of view and queues its cursor notification.
func (h *editorHost) Select(view engine.View, r m.Region) {
	v := h.lookup(view)
	if v == nil {
		return
	}

	v.sel = m.NewRegion(clampOffset(r.A, v.doc.Len()), clampOffset(r.B, v.doc.Len()))
	h.echo(v)
}

// ShowAt scrolls view so that r is vertically centred.
func (h *editorHost) ShowAt(view engine.View, r m.Region) {
	v := h.lookup(view)
	if v == nil {
		return
	}

	line, _ := v.doc.Position(r.Begin())
	v.top = max(0, min(line-h.lines/2, v.doc.LineCount()-1))
}

func (h *editorHost) Focus(view engine.View) {
	v := h.lookup(view)
	if v == nil {
		return
	}

	pane := h.paneOf(v)
	if pane < 0 {
		return
	}

	h.active = v
	h.activePane = pane
	h.front[pane] = v
}

func (h *editorHost) PaneCount() int {
	return len(h.panes)
}

func (h *editorHost) ActivePane() int {
	return h.activePane
}

func (h *editorHost) ViewsInPane(pane int) int {
	if pane < 0 || pane >= len(h.panes) {
		return 0
	}

	return len(h.panes[pane])
}

// SetLayout switches between one and two panes. Going back to one pane
// gathers every view into it.
func (h *editorHost) SetLayout(layout m.Layout) {
	switch layout {
	case m.LayoutSplit:
		for len(h.panes) < layout.Panes() {
			h.panes = append(h.panes, []*editorView{})
			h.front = append(h.front, nil)
		}
	case m.LayoutSingle:
		var merged []*editorView
		for _, pane := range h.panes {
			merged = append(merged, pane...)
		}

		h.panes = [][]*editorView{merged}
		h.front = []*editorView{h.active}
		h.activePane = 0
	}
}

// MoveView moves view to position index of pane.
func (h *editorHost) MoveView(view engine.View, pane, index int) {
	v := h.lookup(view)
	if v == nil || pane < 0 || pane >= len(h.panes) {
		return
	}

	if from := h.paneOf(v); from >= 0 {
		h.panes[from] = slices.DeleteFunc(h.panes[from], func(o *editorView) bool { return o == v })
		if h.front[from] == v {
			h.front[from] = lastView(h.panes[from])
		}
	}

	index = max(0, min(index, len(h.panes[pane])))
	h.panes[pane] = slices.Insert(h.panes[pane], index, v)
	h.front[pane] = v

	if h.active == v {
		h.activePane = pane
	}
}

func (h *editorHost) Status(msg string) {
	h.status = msg
}

// Drain returns and clears the queued user cursor notifications.
func (h *editorHost) Drain() []int {
	pending := h.pending
	h.pending = nil

	return pending
}

// DrainEchoes returns and clears the notifications raised by the host.
func (h *editorHost) DrainEchoes() []int {
	echoes := h.echoes
	h.echoes = nil

	return echoes
}

// closeView removes v from the window and focuses the front view of the
// active pane, or any remaining view.
func (h *editorHost) closeView(v *editorView) {
	h.views = slices.DeleteFunc(h.views, func(o *editorView) bool { return o == v })

	if pane := h.paneOf(v); pane >= 0 {
		h.panes[pane] = slices.DeleteFunc(h.panes[pane], func(o *editorView) bool { return o == v })
		if h.front[pane] == v {
			h.front[pane] = lastView(h.panes[pane])
		}
	}

	if h.active != v {
		return
	}

	h.active = nil

	if next := h.front[h.activePane]; next != nil {
		h.Focus(next)
		return
	}

	for i, f := range h.front {
		if f != nil {
			h.activePane = i
			h.Focus(f)

			return
		}
	}
}

// moveCursor places an empty selection at offset, scrolling to keep it
// visible, and queues the cursor notification.
func (h *editorHost) moveCursor(v *editorView, offset int) {
	offset = clampOffset(offset, v.doc.Len())
	v.sel = m.NewRegion(offset, offset)

	line, _ := v.doc.Position(offset)
	if line < v.top {
		v.top = line
	} else if line >= v.top+h.lines {
		v.top = line - h.lines + 1
	}

	h.notify(v)
}

// placeCursor moves the cursor to a 1-based line and column.
func (h *editorHost) placeCursor(v *editorView, line, column int) {
	h.moveCursor(v, v.doc.Offset(max(line, 1)-1, max(column, 1)-1))
	h.ShowAt(v, v.sel)
}

func (h *editorHost) notify(v *editorView) {
	h.pending = append(h.pending, v.id)
}

func (h *editorHost) echo(v *editorView) {
	h.echoes = append(h.echoes, v.id)
}

func (h *editorHost) byID(id int) *editorView {
	for _, v := range h.views {
		if v.id == id {
			return v
		}
	}

	return nil
}

func (h *editorHost) lookup(view engine.View) *editorView {
	if view == nil {
		return nil
	}

	if v, ok := view.(*editorView); ok && v.widget {
		return nil
	}

	return h.byID(view.ID())
}

func (h *editorHost) paneOf(v *editorView) int {
	for i, pane := range h.panes {
		if slices.Contains(pane, v) {
			return i
		}
	}

	return -1
}

func (h *editorHost) title(v *editorView) string {
	if v == nil {
		return ""
	}

	line, col := v.doc.Position(v.Cursor())

	return fmt.Sprintf("%s  %d:%d", v.path, line+1, col+1)
}

func lastView(views []*editorView) *editorView {
	if len(views) == 0 {
		return nil
	}

	return views[len(views)-1]
}

func clampOffset(offset, size int) int {
	return max(0, min(offset, size))
}
