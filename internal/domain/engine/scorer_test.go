package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/schemescope/internal/adapter"
	adaptermocks "github.com/mouse-blink/schemescope/internal/adapter/mocks"
	m "github.com/mouse-blink/schemescope/internal/model"
)

func TestScorer_Score(t *testing.T) {
	t.Run("drops non positive scores", func(t *testing.T) {
		matcher := adaptermocks.NewMockScopeMatcher(t)
		matcher.EXPECT().ScoreSelector("comment.line", "comment").Return(1)
		matcher.EXPECT().ScoreSelector("comment.line", "keyword").Return(0)
		matcher.EXPECT().ScoreSelector("comment.line", "string").Return(-1)

		entries := []m.SelectorEntry{
			{Region: m.NewRegion(0, 7), Text: "comment"},
			{Region: m.NewRegion(9, 16), Text: "keyword"},
			{Region: m.NewRegion(18, 24), Text: "string"},
		}

		got := NewScorer(matcher).Score("comment.line", entries)
		require.Len(t, got, 1)
		assert.Equal(t, m.ScoredCandidate{
			Score:    1,
			Region:   m.NewRegion(0, 7),
			Selector: "comment",
			Segment:  "comment.line",
		}, got[0])
	})

	t.Run("empty selectors are not scored", func(t *testing.T) {
		matcher := adaptermocks.NewMockScopeMatcher(t)

		got := NewScorer(matcher).Score("comment", []m.SelectorEntry{{Text: ""}})
		assert.Empty(t, got)
	})

	t.Run("ancestor prefixes score lower than exact selectors", func(t *testing.T) {
		scorer := NewScorer(adapter.NewScopeMatcher())
		segment := "comment.line.double-slash.go"

		got := scorer.Score(segment, []m.SelectorEntry{
			{Text: "comment"},
			{Text: "comment.line"},
			{Text: "comment.block"},
			{Text: segment},
		})
		require.Len(t, got, 3)

		assert.Equal(t, "comment", got[0].Selector)
		assert.Equal(t, "comment.line", got[1].Selector)
		assert.Equal(t, segment, got[2].Selector)
		assert.Less(t, got[0].Score, got[1].Score)
		assert.Less(t, got[1].Score, got[2].Score)
	})
}
