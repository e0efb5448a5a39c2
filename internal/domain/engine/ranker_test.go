package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/schemescope/internal/adapter"
	m "github.com/mouse-blink/schemescope/internal/model"
)

func TestRank(t *testing.T) {
	candidates := []m.ScoredCandidate{
		{Score: 1, Region: m.NewRegion(5, 6), Selector: "a"},
		{Score: 3, Region: m.NewRegion(50, 51), Selector: "b"},
		{Score: 3, Region: m.NewRegion(10, 11), Selector: "c"},
		{Score: 1, Region: m.NewRegion(5, 6), Selector: "d"},
	}

	ranked := Rank(candidates)

	var selectors []string
	for _, c := range ranked {
		selectors = append(selectors, c.Selector)
	}

	assert.Equal(t, []string{"c", "b", "a", "d"}, selectors)
	assert.Equal(t, "a", candidates[0].Selector, "input must not be reordered")
}

func TestResolver_Resolve(t *testing.T) {
	doc := newSchemeDoc(t)
	resolver := NewResolver(adapter.NewScopeMatcher())

	t.Run("ranks by score then position", func(t *testing.T) {
		res := resolver.Resolve(doc, "source.go comment.line.double-slash.go")

		assert.Equal(t, m.ScopeChain{"comment.line.double-slash.go", "source.go"}, res.Chain)
		require.Len(t, res.Matches, 4)

		want := []m.Region{
			regionOf(t, doc, "comment.line.double-slash.go", 0),
			regionOf(t, doc, "comment.line", 0),
			regionOf(t, doc, "<string>source.go", 0),
			regionOf(t, doc, ">comment<", 0),
		}
		want[2] = m.NewRegion(want[2].Begin()+len("<string>"), want[2].End())
		want[3] = m.NewRegion(want[3].Begin()+1, want[3].End()-1)

		assert.Equal(t, want, res.Matches.Regions())
		assert.Equal(t, []int{4, 2, 2, 1}, scores(res.Matches))
	})

	t.Run("zero matches", func(t *testing.T) {
		res := resolver.Resolve(doc, "markup.heading")
		assert.Empty(t, res.Matches)
		assert.Equal(t, "markup.heading", res.Chain.Pretty())
	})

	t.Run("blank scope", func(t *testing.T) {
		res := resolver.Resolve(doc, "   ")
		assert.Empty(t, res.Chain)
		assert.Empty(t, res.Matches)
	})

	t.Run("idempotent", func(t *testing.T) {
		first := resolver.Resolve(doc, "source.go comment.line.double-slash.go")
		second := resolver.Resolve(doc, "source.go comment.line.double-slash.go")
		assert.Equal(t, first, second)
	})

	t.Run("superset of every suffix chain", func(t *testing.T) {
		chain := m.ParseScopeChain("source.go comment.line comment.line.double-slash.go")
		full := regionSet(resolver.ResolveChain(doc, chain))

		for i := 1; i <= len(chain); i++ {
			for r := range regionSet(resolver.ResolveChain(doc, chain.Suffix(i))) {
				assert.Contains(t, full, r, "suffix %d", i)
			}
		}
	})

	t.Run("keeps duplicates across segments by default", func(t *testing.T) {
		res := resolver.Resolve(doc, "comment.line comment.line.double-slash.go")
		assert.Len(t, res.Matches, 5)
	})

	t.Run("dedupe keeps the best score per region", func(t *testing.T) {
		deduped := NewResolver(adapter.NewScopeMatcher(), WithDedupe(true))

		res := deduped.Resolve(doc, "comment.line comment.line.double-slash.go")
		require.Len(t, res.Matches, 3)
		assert.Equal(t, []int{4, 2, 1}, scores(res.Matches))
		assert.Equal(t, "comment.line.double-slash.go", res.Matches[1].Segment)
	})
}

func TestResolver_WithSelectorSource(t *testing.T) {
	source := selectorSourceFunc(func(_ adapter.Document, segment string) ([]m.SelectorEntry, error) {
		if segment == "broken" {
			return nil, ErrEmptySegment
		}

		return []m.SelectorEntry{{Region: m.NewRegion(1, 2), Text: segment}}, nil
	})

	resolver := NewResolver(adapter.NewScopeMatcher(), WithSelectorSource(source))

	res := resolver.Resolve(adapter.NewTextDocument("x", ""), "broken keyword")
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "keyword", res.Matches[0].Selector)
}

type selectorSourceFunc func(adapter.Document, string) ([]m.SelectorEntry, error)

func (f selectorSourceFunc) Selectors(doc adapter.Document, segment string) ([]m.SelectorEntry, error) {
	return f(doc, segment)
}

func scores(list m.RankedMatchList) []int {
	out := make([]int, 0, len(list))
	for _, c := range list {
		out = append(out, c.Score)
	}

	return out
}

func regionSet(list m.RankedMatchList) map[m.Region]struct{} {
	set := make(map[m.Region]struct{}, len(list))
	for _, r := range list.Regions() {
		set[r] = struct{}{}
	}

	return set
}
