package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/schemescope/internal/adapter"
	m "github.com/mouse-blink/schemescope/internal/model"
)

func TestExtractSelectors(t *testing.T) {
	t.Run("trims padding and keeps exact regions", func(t *testing.T) {
		text := "<key>scope</key>\n\t<string> foo.bar , baz.qux </string>"

		entries := ExtractSelectors(m.NewRegion(100, 100+len(text)), text)
		require.Len(t, entries, 2)

		assert.Equal(t, m.SelectorEntry{Region: m.NewRegion(127, 134), Text: "foo.bar", Pad: 1}, entries[0])
		assert.Equal(t, m.SelectorEntry{Region: m.NewRegion(137, 144), Text: "baz.qux", Pad: 1}, entries[1])
	})

	t.Run("regions cover the selector text only", func(t *testing.T) {
		doc := newSchemeDoc(t)
		raw := regionOf(t, doc, "<key>scope</key>\n\t\t\t<string> foo.bar , baz.qux </string>", 0)

		for _, e := range ExtractSelectors(raw, doc.Substr(raw)) {
			got := doc.Substr(e.Region)
			assert.Equal(t, e.Text, got)
			assert.Equal(t, strings.TrimSpace(got), got)
			assert.NotContains(t, got, ",")
		}
	})

	t.Run("skips empty tokens", func(t *testing.T) {
		text := "<string>a,, ,b</string>"

		entries := ExtractSelectors(m.NewRegion(0, len(text)), text)
		require.Len(t, entries, 2)
		assert.Equal(t, "a", entries[0].Text)
		assert.Equal(t, "b", entries[1].Text)
		assert.Equal(t, m.NewRegion(13, 14), entries[1].Region)
	})

	t.Run("wrapped list", func(t *testing.T) {
		text := "<string>string,\n\tcomment.line\n</string>"

		entries := ExtractSelectors(m.NewRegion(0, len(text)), text)
		require.Len(t, entries, 2)
		assert.Equal(t, m.SelectorEntry{Region: m.NewRegion(17, 29), Text: "comment.line", Pad: 2}, entries[1])
	})

	t.Run("no string marker", func(t *testing.T) {
		assert.Empty(t, ExtractSelectors(m.NewRegion(0, 5), "scope"))
	})
}

func TestRegexSelectorSource(t *testing.T) {
	doc := newSchemeDoc(t)
	source := NewRegexSelectorSource()

	t.Run("collects every selector of matching entries", func(t *testing.T) {
		entries, err := source.Selectors(doc, "comment.line.double-slash.go")
		require.NoError(t, err)

		var texts []string
		for _, e := range entries {
			texts = append(texts, e.Text)
			assert.Equal(t, e.Text, doc.Substr(e.Region))
		}

		assert.Equal(t, []string{"comment", "comment.line", "string.quoted", "comment.line.double-slash.go"}, texts)
	})

	t.Run("empty segment", func(t *testing.T) {
		_, err := source.Selectors(doc, "")
		assert.ErrorIs(t, err, ErrEmptySegment)
	})

	t.Run("nothing found", func(t *testing.T) {
		entries, err := source.Selectors(adapter.NewTextDocument("empty.tmTheme", ""), "comment")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestRuleSelectors(t *testing.T) {
	rules, entries := RuleSelectors(newSchemeDoc(t))

	assert.Equal(t, 6, rules)
	assert.Len(t, entries, 8)
}
