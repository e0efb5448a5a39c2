package controller

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/schemescope/internal/model"
)

func TestTUI_DisplayResolution_PrintsStaticTables(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&bytes.Buffer{}, &buf)

	stale := sampleReport()
	stale.Stale = true

	require.NoError(t, tui.DisplayResolution([]m.Report{
		sampleReport(),
		{Scheme: "broken.tmTheme", Err: errors.New("boom")},
		{Scheme: "empty.tmTheme", Chain: m.ScopeChain{"text.plain"}},
		stale,
	}))

	output := buf.String()
	for _, want := range []string{
		"schemes/Mono.tmTheme",
		"source.go > comment.line.double-slash.go",
		"Selector",
		"44:12",
		"error: boom",
		"no matching selectors",
		"stale:",
	} {
		assert.Contains(t, output, want)
	}
}

func TestTUI_DisplaySchemes(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&bytes.Buffer{}, &buf)

	require.NoError(t, tui.DisplaySchemes([]m.SchemeInfo{
		{Path: "a.tmTheme", Rules: 8, Selectors: 11},
		{Path: "c.tmTheme", Err: errors.New("permission denied")},
	}))

	output := buf.String()
	for _, want := range []string{"Color Schemes", "a.tmTheme", "permission denied", "2 schemes, 8 rules, 11 selectors"} {
		assert.Contains(t, output, want)
	}

	buf.Reset()
	require.NoError(t, tui.DisplaySchemes(nil))
	assert.Contains(t, buf.String(), "no color schemes found")
}

func TestTUI_EditMissingSource(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{}, &bytes.Buffer{})

	host := newTestHost(t)
	err := tui.Edit(EditorArgs{Source: "missing.go", Scheme: host.scheme, FS: host.fs, Scopes: host.scopes})
	assert.ErrorContains(t, err, "open source")
}

func TestTUI_SizeWithoutTerminal(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{}, &bytes.Buffer{})

	_, _, ok := tui.size()
	assert.False(t, ok)
}
