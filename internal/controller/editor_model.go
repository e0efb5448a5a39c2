package controller

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/schemescope/internal/domain/engine"
)

const gutterWidth = 5

var (
	paneTitleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activePaneTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	gutterStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectionStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	cursorStyle          = lipgloss.NewStyle().Reverse(true)
	statusStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	separatorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type editorKeyMap struct {
	Toggle   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Pane     key.Binding
	Scope    key.Binding
	GotoLine key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func newEditorKeyMap(keys EditorKeys) editorKeyMap {
	toggle := orDefault(keys.Toggle, "ctrl+t")
	next := orDefault(keys.Next, "ctrl+n")
	prev := orDefault(keys.Prev, "ctrl+p")

	return editorKeyMap{
		Toggle:   key.NewBinding(key.WithKeys(toggle), key.WithHelp(toggle, "scheme")),
		Next:     key.NewBinding(key.WithKeys(next), key.WithHelp(next, "next match")),
		Prev:     key.NewBinding(key.WithKeys(prev), key.WithHelp(prev, "prev match")),
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Left:     key.NewBinding(key.WithKeys("left", "h")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:     key.NewBinding(key.WithKeys("home", "g")),
		End:      key.NewBinding(key.WithKeys("end", "G")),
		Pane:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pane")),
		Scope:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scope")),
		GotoLine: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "line")),
		Close:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Next, k.Prev, k.Pane, k.Scope, k.GotoLine, k.Close, k.Quit}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

// editorModel drives a Session from terminal input. Cursor notifications
// queued by the host are delivered back through Update one at a time.
type editorModel struct {
	host    *editorHost
	session *engine.Session
	keys    editorKeyMap
	help    help.Model
	logger  *slog.Logger

	prompt    textinput.Model
	widget    *editorView
	prompting bool

	ratio    float64
	width    int
	height   int
	quitting bool
}

func newEditorModel(host *editorHost, session *engine.Session, keys EditorKeys, ratio float64, logger *slog.Logger) editorModel {
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}

	if logger == nil {
		logger = slog.Default()
	}

	prompt := textinput.New()
	prompt.Prompt = "Go to line: "
	prompt.CharLimit = 9

	return editorModel{
		host:    host,
		session: session,
		keys:    newEditorKeyMap(keys),
		help:    help.New(),
		logger:  logger,
		prompt:  prompt,
		widget:  host.newWidget(),
		ratio:   ratio,
		width:   80,
		height:  24,
	}
}

func (e editorModel) Init() tea.Cmd {
	return func() tea.Msg {
		return startMsg{}
	}
}

func (e editorModel) resize(width, height int) editorModel {
	e.width = width
	e.height = height
	e.help.Width = width
	e.host.lines = max(e.height-3, 1)

	return e
}

func (e editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return e.resize(msg.Width, msg.Height), nil

	case startMsg:
		return e, e.dispatch(engine.ToggleEvent(e.host.ActiveView()))

	case notifyMsg:
		return e.handleNotify(msg)

	case tea.MouseMsg:
		return e.handleMouse(msg)

	case tea.KeyMsg:
		if e.prompting {
			return e.handlePromptKey(msg)
		}

		return e.handleKey(msg)
	}

	return e, nil
}

// dispatch hands ev to the session and schedules what the host queued.
func (e editorModel) dispatch(ev engine.Event) tea.Cmd {
	e.session.Dispatch(ev)
	e.settle()

	return e.flush(nil)
}

// settle delivers the notifications the host raised while handling the
// last event, before any further input can reach the session.
func (e editorModel) settle() {
	for i := 0; i < 16; i++ {
		echoes := e.host.DrainEchoes()
		if len(echoes) == 0 {
			return
		}

		for _, id := range echoes {
			if view := e.viewByID(id); view != nil {
				e.session.Dispatch(engine.CursorMovedEvent(view))
			}
		}
	}

	e.logger.Warn("cursor notifications did not settle")
}

func (e editorModel) flush(rest []int) tea.Cmd {
	ids := append(rest, e.host.Drain()...)
	if len(ids) == 0 {
		return nil
	}

	return func() tea.Msg {
		return notifyMsg{viewIDs: ids}
	}
}

func (e editorModel) viewByID(id int) engine.View {
	if v := e.host.byID(id); v != nil {
		return v
	}

	if e.widget.id == id {
		return e.widget
	}

	return nil
}

func (e editorModel) handleNotify(msg notifyMsg) (tea.Model, tea.Cmd) {
	if len(msg.viewIDs) == 0 {
		return e, nil
	}

	id, rest := msg.viewIDs[0], msg.viewIDs[1:]

	if view := e.viewByID(id); view != nil {
		e.session.Dispatch(engine.CursorMovedEvent(view))
		e.settle()
	}

	return e, e.flush(rest)
}

//nolint:cyclop // Key handling requires multiple cases for editor navigation
func (e editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := e.host.active

	switch {
	case key.Matches(msg, e.keys.Quit):
		e.quitting = true
		return e, tea.Quit

	case key.Matches(msg, e.keys.Toggle):
		return e, e.dispatch(engine.ToggleEvent(e.host.ActiveView()))

	case key.Matches(msg, e.keys.Next):
		return e, e.dispatch(engine.NextMatchEvent())

	case key.Matches(msg, e.keys.Prev):
		return e, e.dispatch(engine.PrevMatchEvent())

	case active == nil:
		return e, nil

	case key.Matches(msg, e.keys.Pane):
		e.focusNextPane()
		return e, nil

	case key.Matches(msg, e.keys.Scope):
		scope := active.ScopeNameAt(active.Cursor())
		e.session.Dispatch(engine.TextCommandEvent(active, engine.CommandShowScopeName))
		e.host.Status(scope)
		e.host.echo(active)
		e.settle()

		return e, e.flush(nil)

	case key.Matches(msg, e.keys.GotoLine):
		e.prompting = true
		e.prompt.SetValue("")

		return e, e.prompt.Focus()

	case key.Matches(msg, e.keys.Close):
		e.host.closeView(active)
		cmd := e.dispatch(engine.ViewClosedEvent(active))

		if e.host.ViewCount() == 0 {
			e.quitting = true
			return e, tea.Quit
		}

		return e, cmd
	}

	offset, ok := e.cursorTarget(msg, active)
	if !ok {
		return e, nil
	}

	e.host.moveCursor(active, offset)

	return e, e.flush(nil)
}

func (e editorModel) cursorTarget(msg tea.KeyMsg, v *editorView) (int, bool) {
	line, col := v.doc.Position(v.Cursor())

	switch {
	case key.Matches(msg, e.keys.Up):
		return v.doc.Offset(line-1, col), line > 0
	case key.Matches(msg, e.keys.Down):
		return v.doc.Offset(line+1, col), line+1 < v.doc.LineCount()
	case key.Matches(msg, e.keys.Left):
		return v.Cursor() - 1, v.Cursor() > 0
	case key.Matches(msg, e.keys.Right):
		return v.Cursor() + 1, v.Cursor() < v.doc.Len()
	case key.Matches(msg, e.keys.PageUp):
		return v.doc.Offset(max(line-e.host.lines, 0), col), true
	case key.Matches(msg, e.keys.PageDown):
		return v.doc.Offset(min(line+e.host.lines, v.doc.LineCount()-1), col), true
	case key.Matches(msg, e.keys.Home):
		return 0, true
	case key.Matches(msg, e.keys.End):
		return v.doc.Len(), true
	}

	return 0, false
}

func (e editorModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		e.prompting = false
		e.prompt.Blur()

		return e, nil

	case tea.KeyEnter:
		e.prompting = false
		e.prompt.Blur()

		line, err := strconv.Atoi(strings.TrimSpace(e.prompt.Value()))
		if err != nil || e.host.active == nil {
			e.host.Status(fmt.Sprintf("not a line number: %q", e.prompt.Value()))
			return e, nil
		}

		e.host.placeCursor(e.host.active, line, 1)

		return e, e.flush(nil)
	}

	var cmd tea.Cmd

	before := e.prompt.Value()
	e.prompt, cmd = e.prompt.Update(msg)

	if e.prompt.Value() != before {
		e.host.notify(e.widget)
	}

	return e, tea.Batch(cmd, e.flush(nil))
}

// handleMouse runs drag_select for a left click in a pane. The click moves
// the cursor and the host raises one extra notification for the drag.
func (e editorModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if v := e.viewAtColumn(msg.X); v != nil {
			delta := 3
			if msg.Button == tea.MouseButtonWheelUp {
				delta = -3
			}

			v.top = max(0, min(v.top+delta, v.doc.LineCount()-1))
		}

		return e, nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return e, nil
		}
	default:
		return e, nil
	}

	v, offset, ok := e.hit(msg.X, msg.Y)
	if !ok {
		return e, nil
	}

	e.session.Dispatch(engine.TextCommandEvent(v, engine.CommandDragSelect))
	e.host.Focus(v)
	e.host.moveCursor(v, offset)
	e.host.echo(v)
	e.settle()

	return e, e.flush(nil)
}

func (e editorModel) focusNextPane() {
	panes := e.host.PaneCount()
	for i := 1; i <= panes; i++ {
		if v := e.host.front[(e.host.activePane+i)%panes]; v != nil {
			e.host.Focus(v)
			return
		}
	}
}

func (e editorModel) paneWidths() []int {
	if e.host.PaneCount() < 2 {
		return []int{e.width}
	}

	left := int(float64(e.width) * e.ratio)

	return []int{left, max(e.width-left-1, 0)}
}

// paneAt maps a screen column to a pane and the column inside it.
func (e editorModel) paneAt(x int) (int, int) {
	start := 0
	for pane, width := range e.paneWidths() {
		if x < start {
			return -1, 0
		}

		if x < start+width {
			return pane, x - start
		}

		start += width + 1
	}

	return -1, 0
}

func (e editorModel) viewAtColumn(x int) *editorView {
	pane, _ := e.paneAt(x)
	if pane < 0 {
		return nil
	}

	return e.host.front[pane]
}

func (e editorModel) hit(x, y int) (*editorView, int, bool) {
	pane, px := e.paneAt(x)
	if pane < 0 || y < 1 || y > e.host.lines {
		return nil, 0, false
	}

	v := e.host.front[pane]
	if v == nil {
		return nil, 0, false
	}

	line := v.top + y - 1
	if line >= v.doc.LineCount() {
		line = v.doc.LineCount() - 1
	}

	return v, v.doc.Offset(line, max(px-gutterWidth, 0)), true
}

func (e editorModel) View() string {
	if e.quitting {
		return ""
	}

	widths := e.paneWidths()
	columns := make([]string, 0, 2*len(widths))

	for pane, width := range widths {
		if pane > 0 {
			columns = append(columns, separatorStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", e.host.lines+1), "\n")))
		}

		columns = append(columns, e.renderPane(pane, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		e.renderStatus(),
		e.help.View(e.keys),
	)
}

func (e editorModel) renderPane(pane, width int) string {
	v := e.host.front[pane]
	box := lipgloss.NewStyle().Width(width).MaxWidth(width)

	titleStyle := paneTitleStyle
	if pane == e.host.activePane {
		titleStyle = activePaneTitleStyle
	}

	rows := make([]string, 0, e.host.lines+1)
	rows = append(rows, box.Render(titleStyle.Render(truncateToWidth(e.host.title(v), width))))

	for i := range e.host.lines {
		if v == nil || v.top+i >= v.doc.LineCount() {
			rows = append(rows, box.Render(gutterStyle.Render("~")))
			continue
		}

		rows = append(rows, box.Render(e.renderLine(v, v.top+i, width-gutterWidth)))
	}

	return strings.Join(rows, "\n")
}

func (e editorModel) renderLine(v *editorView, line, width int) string {
	region := v.doc.LineRegion(line)
	text := cutBytes(strings.ReplaceAll(v.doc.Line(line), "\t", " "), width)
	gutter := gutterStyle.Render(fmt.Sprintf("%4d ", line+1))

	sel := v.sel
	if sel.Empty() {
		if v != e.host.active || !region.Contains(sel.A) && sel.A != region.End() {
			return gutter + text
		}

		col := sel.A - region.Begin()
		if col >= len(text) {
			return gutter + text + cursorStyle.Render(" ")
		}

		_, size := utf8.DecodeRuneInString(text[col:])

		return gutter + text[:col] + cursorStyle.Render(text[col:col+size]) + text[col+size:]
	}

	start := min(max(sel.Begin(), region.Begin())-region.Begin(), len(text))
	end := min(max(sel.End(), region.Begin())-region.Begin(), len(text))

	if start >= end {
		return gutter + text
	}

	return gutter + text[:start] + selectionStyle.Render(text[start:end]) + text[end:]
}

func (e editorModel) renderStatus() string {
	if e.prompting {
		return e.prompt.View()
	}

	right := e.session.State().String()
	if pos, total := e.session.Position(); total > 0 {
		right = fmt.Sprintf("%d/%d", pos, total)
	}

	left := truncateToWidth(e.host.status, max(e.width-lipgloss.Width(right)-3, 1))
	gap := max(e.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)

	return statusStyle.Render(" " + left + strings.Repeat(" ", gap) + right + " ")
}

// cutBytes shortens s to at most n bytes on a rune boundary.
func cutBytes(s string, n int) string {
	if n <= 0 {
		return ""
	}

	if len(s) <= n {
		return s
	}

	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n]
}

var _ tea.Model = editorModel{}
