package controller

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/schemescope/internal/adapter"
	"github.com/mouse-blink/schemescope/internal/domain/engine"
	"github.com/mouse-blink/schemescope/internal/logging"
	m "github.com/mouse-blink/schemescope/internal/model"
)

type editorFixture struct {
	model   editorModel
	host    *editorHost
	session *engine.Session
	source  *editorView
}

func newEditorFixture(t *testing.T) *editorFixture {
	t.Helper()

	host := newTestHost(t)

	source, err := host.open(absPath(t, testSource))
	require.NoError(t, err)

	host.placeCursor(source, 5, 4)
	host.Drain()

	logger := logging.NewDiscardLogger()
	session := engine.NewSession(host, engine.NewResolver(adapter.NewScopeMatcher()), logger)
	model := newEditorModel(host, session, EditorKeys{}, 0.5, logger).resize(120, 40)
	model.prompt.Cursor.SetMode(cursor.CursorStatic)

	return &editorFixture{model: model, host: host, session: session, source: source}
}

// send delivers msg and every cursor notification it causes, the way the
// program loop would.
func (f *editorFixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()

	updated, cmd := f.model.Update(msg)
	f.model = updated.(editorModel)

	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 100, "notification loop")

		next, ok := cmd().(notifyMsg)
		if !ok {
			return cmd
		}

		updated, cmd = f.model.Update(next)
		f.model = updated.(editorModel)
	}

	return nil
}

func (f *editorFixture) start(t *testing.T) {
	t.Helper()

	msg := f.model.Init()()
	require.IsType(t, startMsg{}, msg)
	f.send(t, msg)
}

func (f *editorFixture) schemeLine() int {
	scheme := f.session.SchemeView().(*editorView)
	line, _ := scheme.doc.Position(scheme.sel.Begin())

	return line + 1
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEditorModel_StartResolvesTheCursorScope(t *testing.T) {
	f := newEditorFixture(t)
	f.start(t)

	assert.Equal(t, engine.StateResolved, f.session.State())
	assert.Equal(t, 2, f.host.PaneCount())
	assert.True(t, f.session.CreatedSplit())
	assert.False(t, f.session.SkipPending())
	assert.Same(t, f.source, f.host.active)
	assert.Equal(t, "matches 4: source.go > comment.line.double-slash.go", f.host.status)
	assert.Equal(t, 44, f.schemeLine())

	view := f.model.View()
	assert.Contains(t, view, "comment.line.double-slash.go")
	assert.Contains(t, view, "1/4")
}

func TestEditorModel_Navigation(t *testing.T) {
	f := newEditorFixture(t)
	f.start(t)

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, "Scope 2 of 4", f.host.status)
	assert.Equal(t, 33, f.schemeLine())
	assert.Same(t, f.source, f.host.active)

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlP})
	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, "Scope 4 of 4", f.host.status)
	assert.Equal(t, 22, f.schemeLine())
	assert.False(t, f.session.SkipPending())
}

func TestEditorModel_CursorMovesResolveAgain(t *testing.T) {
	f := newEditorFixture(t)
	f.start(t)

	f.send(t, tea.KeyMsg{Type: tea.KeyDown})

	line, _ := f.source.doc.Position(f.source.Cursor())
	assert.Equal(t, 5, line)
	assert.True(t, strings.HasPrefix(f.host.status, "matches "), f.host.status)
	assert.NotContains(t, f.host.status, "comment")

	f.send(t, runes(":"))
	assert.True(t, f.model.prompting)
	assert.Contains(t, f.model.View(), "Go to line")

	f.send(t, runes("5"))
	f.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, f.model.prompting)

	line, _ = f.source.doc.Position(f.source.Cursor())
	assert.Equal(t, 4, line)
	assert.Equal(t, "matches 4: source.go > comment.line.double-slash.go", f.host.status)
}

func TestEditorModel_UserMovesAroundDisplayAreResolved(t *testing.T) {
	update := func(f *editorFixture, msg tea.Msg) tea.Cmd {
		updated, cmd := f.model.Update(msg)
		f.model = updated.(editorModel)

		return cmd
	}

	assertResolvedAtCursor := func(t *testing.T, f *editorFixture) {
		t.Helper()

		scope := f.source.ScopeNameAt(f.source.Cursor())
		assert.Equal(t, "source.go", scope)
		assert.True(t, strings.HasSuffix(f.host.status, ": "+m.ParseScopeChain(scope).Pretty()), f.host.status)
		assert.NotContains(t, f.host.status, "storage.type")
		assert.False(t, f.session.SkipPending())
		assert.Empty(t, f.host.echoes)
	}

	t.Run("each move delivered before the next key", func(t *testing.T) {
		f := newEditorFixture(t)
		f.start(t)

		first := update(f, runes("j"))
		require.NotNil(t, first)
		assert.Nil(t, update(f, first()))
		assert.Contains(t, f.host.status, "storage.type.go")
		assert.False(t, f.session.SkipPending())

		second := update(f, runes("j"))
		require.NotNil(t, second)
		assert.Nil(t, update(f, second()))

		assertResolvedAtCursor(t, f)
	})

	t.Run("second key before the first notification", func(t *testing.T) {
		f := newEditorFixture(t)
		f.start(t)

		first := update(f, runes("j"))
		second := update(f, runes("j"))
		require.NotNil(t, first)
		require.NotNil(t, second)

		assert.Nil(t, update(f, first()))
		assert.Nil(t, update(f, second()))

		assertResolvedAtCursor(t, f)
	})
}

func TestEditorModel_ShowScopeNameIsNotResolved(t *testing.T) {
	f := newEditorFixture(t)
	f.start(t)
	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlN})

	f.send(t, runes("s"))

	assert.Equal(t, "source.go comment.line.double-slash.go", f.host.status)
	assert.False(t, f.session.SkipPending())
	pos, total := f.session.Position()
	assert.Equal(t, 2, pos)
	assert.Equal(t, 4, total)
}

func TestEditorModel_MouseClick(t *testing.T) {
	f := newEditorFixture(t)
	f.start(t)
	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlN})

	t.Run("in the scheme pane", func(t *testing.T) {
		scheme := f.session.SchemeView().(*editorView)

		f.send(t, tea.MouseMsg{X: 61 + gutterWidth + 2, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

		assert.Same(t, scheme, f.host.active)
		assert.Equal(t, scheme.top, f.schemeLine()-1)
		assert.Equal(t, "Scope 2 of 4", f.host.status)
		assert.False(t, f.session.SkipPending())
	})

	t.Run("in the source pane", func(t *testing.T) {
		// line 3 holds the import string
		f.send(t, tea.MouseMsg{X: gutterWidth + 8, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

		assert.Same(t, f.source, f.host.active)
		assert.Equal(t, "matches 3: source.go > string.quoted.double.go", f.host.status)
		assert.Equal(t, engine.StateResolved, f.session.State())
	})

	t.Run("releases and the separator are ignored", func(t *testing.T) {
		before := f.source.Cursor()

		f.send(t, tea.MouseMsg{X: 10, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
		f.send(t, tea.MouseMsg{X: 60, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

		assert.Equal(t, before, f.source.Cursor())
	})
}

func TestEditorModel_ToggleAndClose(t *testing.T) {
	t.Run("toggle off restores one pane", func(t *testing.T) {
		f := newEditorFixture(t)
		f.start(t)

		f.send(t, tea.KeyMsg{Type: tea.KeyCtrlT})

		assert.Equal(t, engine.StateIdle, f.session.State())
		assert.Equal(t, 1, f.host.PaneCount())
		assert.Equal(t, 2, f.host.ViewCount())
	})

	t.Run("closing the scheme ends the session", func(t *testing.T) {
		f := newEditorFixture(t)
		f.start(t)

		f.send(t, tea.KeyMsg{Type: tea.KeyTab})
		assert.Same(t, f.session.SchemeView(), f.host.ActiveView())

		f.send(t, runes("w"))

		assert.Equal(t, engine.StateIdle, f.session.State())
		assert.Equal(t, 1, f.host.ViewCount())
		assert.Equal(t, 1, f.host.PaneCount())
		assert.Same(t, f.source, f.host.active)
	})

	t.Run("closing the last view quits", func(t *testing.T) {
		f := newEditorFixture(t)

		cmd := f.send(t, runes("w"))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, f.model.View())
	})

	t.Run("quit", func(t *testing.T) {
		f := newEditorFixture(t)

		cmd := f.send(t, runes("q"))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}

func TestEditorModel_SchemeAsSourceIsRefused(t *testing.T) {
	f := newEditorFixture(t)

	_, err := f.host.open(absPath(t, testScheme))
	require.NoError(t, err)

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.Equal(t, engine.StatusSameFile, f.host.status)
	assert.Equal(t, engine.StateIdle, f.session.State())
}

func TestCutBytes(t *testing.T) {
	assert.Equal(t, "abc", cutBytes("abc", 5))
	assert.Equal(t, "ab", cutBytes("abc", 2))
	assert.Equal(t, "", cutBytes("abc", 0))
	assert.Equal(t, "a", cutBytes("aé", 2))
}
