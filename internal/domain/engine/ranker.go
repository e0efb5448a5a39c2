package engine

import (
	"log/slog"
	"sort"

	"github.com/mouse-blink/schemescope/internal/adapter"
	m "github.com/mouse-blink/schemescope/internal/model"
)

// Resolution is the outcome of resolving one scope name against a scheme.
type Resolution struct {
	Scope   string
	Chain   m.ScopeChain
	Matches m.RankedMatchList
}

// Resolver runs pattern search, extraction and scoring for every segment of
// a scope chain and ranks the result.
type Resolver struct {
	source SelectorSource
	scorer *Scorer
	dedupe bool
	logger *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDedupe collapses candidates pointing at the same region, keeping the
// highest score. By default every segment keeps its own candidate.
func WithDedupe(dedupe bool) ResolverOption {
	return func(r *Resolver) {
		r.dedupe = dedupe
	}
}

// WithSelectorSource replaces the regex based selector search.
func WithSelectorSource(source SelectorSource) ResolverOption {
	return func(r *Resolver) {
		r.source = source
	}
}

// WithLogger sets the logger used for skipped segments.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver constructs a Resolver scoring selectors with matcher.
func NewResolver(matcher adapter.ScopeMatcher, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		source: NewRegexSelectorSource(),
		scorer: NewScorer(matcher),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve ranks the selectors of doc matching the scope name.
func (r *Resolver) Resolve(doc adapter.Document, scopeName string) Resolution {
	chain := m.ParseScopeChain(scopeName)

	return Resolution{
		Scope:   scopeName,
		Chain:   chain,
		Matches: r.ResolveChain(doc, chain),
	}
}

// ResolveChain scans every segment, most specific first. Ancestor segments
// are never skipped: they add lower but valid candidates.
func (r *Resolver) ResolveChain(doc adapter.Document, chain m.ScopeChain) m.RankedMatchList {
	var candidates []m.ScoredCandidate

	for _, segment := range chain {
		entries, err := r.source.Selectors(doc, segment)
		if err != nil {
			r.logger.Debug("segment skipped", "segment", segment, "error", err)
			continue
		}

		candidates = append(candidates, r.scorer.Score(segment, entries)...)
	}

	if r.dedupe {
		candidates = dedupeByRegion(candidates)
	}

	return Rank(candidates)
}

// Rank orders candidates by descending score, then by ascending position.
// Candidates equal on both keep their input order.
func Rank(candidates []m.ScoredCandidate) m.RankedMatchList {
	ranked := make(m.RankedMatchList, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].Region.Begin() < ranked[j].Region.Begin()
	})

	return ranked
}

func dedupeByRegion(candidates []m.ScoredCandidate) []m.ScoredCandidate {
	index := make(map[m.Region]int, len(candidates))
	out := make([]m.ScoredCandidate, 0, len(candidates))

	for _, c := range candidates {
		if i, ok := index[c.Region]; ok {
			if c.Score > out[i].Score {
				out[i] = c
			}

			continue
		}

		index[c.Region] = len(out)
		out = append(out, c)
	}

	return out
}
