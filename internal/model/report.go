package model

// Report is a snapshot of one resolution of a scope against a scheme.
type Report struct {
	Scheme     Path
	SchemeHash string // content hash of the scheme when it was resolved
	Scope      string
	Chain      ScopeChain
	Matches    []ReportMatch
	Err        error // resolution error, not persisted
	// Stale marks a loaded report whose scheme changed after it was written.
	Stale bool
}

// ReportMatch is one ranked candidate with its human readable location.
type ReportMatch struct {
	Rank     int
	Score    int
	Selector string
	Segment  string
	Region   Region
	Line     int // 1-based
	Column   int // 1-based
	Context  string
}

// SchemeInfo summarises a color scheme file found on disk.
type SchemeInfo struct {
	Path      Path
	Rules     int
	Selectors int
	Err       error
}
