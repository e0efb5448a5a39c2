package model

// SelectorEntry is one selector token found in a rule's selector list.
type SelectorEntry struct {
	Region Region // exact range of Text in the scheme document
	Text   string // selector with surrounding spaces removed
	Pad    int    // leading spaces trimmed before Region.A
}

// ScoredCandidate is a selector that matched a scope segment.
type ScoredCandidate struct {
	Score    int
	Region   Region
	Selector string
	Segment  string // scope segment the selector was scored against
}

// RankedMatchList holds candidates ordered by descending score, then by
// ascending position in the scheme document. It is replaced as a whole and
// never modified in place.
type RankedMatchList []ScoredCandidate

// Len returns the number of candidates.
func (l RankedMatchList) Len() int {
	return len(l)
}

// Regions returns the regions of all candidates in rank order.
func (l RankedMatchList) Regions() []Region {
	regions := make([]Region, 0, len(l))
	for _, c := range l {
		regions = append(regions, c.Region)
	}

	return regions
}
