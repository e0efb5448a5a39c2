package engine

import (
	"github.com/mouse-blink/schemescope/internal/adapter"
	m "github.com/mouse-blink/schemescope/internal/model"
)

// Scorer turns selector entries into scored candidates for one segment.
type Scorer struct {
	matcher adapter.ScopeMatcher
}

// NewScorer constructs a Scorer backed by the host's selector matcher.
func NewScorer(matcher adapter.ScopeMatcher) *Scorer {
	return &Scorer{matcher: matcher}
}

// Score keeps the entries whose selector scores above zero against segment.
func (s *Scorer) Score(segment string, entries []m.SelectorEntry) []m.ScoredCandidate {
	candidates := make([]m.ScoredCandidate, 0, len(entries))

	for _, entry := range entries {
		if entry.Text == "" {
			continue
		}

		score := s.matcher.ScoreSelector(segment, entry.Text)
		if score <= 0 {
			continue
		}

		candidates = append(candidates, m.ScoredCandidate{
			Score:    score,
			Region:   entry.Region,
			Selector: entry.Text,
			Segment:  segment,
		})
	}

	return candidates
}
