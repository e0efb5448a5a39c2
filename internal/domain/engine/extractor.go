package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mouse-blink/schemescope/internal/adapter"
	m "github.com/mouse-blink/schemescope/internal/model"
)

const (
	stringOpen  = "<string>"
	stringClose = "</string>"
)

// SelectorSource finds the selector entries of a scheme document that may
// apply to a scope segment. The regex implementation works on raw text; a
// structured reader of the rule list can replace it without touching the
// scorer or the ranker.
type SelectorSource interface {
	Selectors(doc adapter.Document, segment string) ([]m.SelectorEntry, error)
}

// RegexSelectorSource searches rule entries with BuildPattern and splits
// their selector lists with ExtractSelectors.
type RegexSelectorSource struct{}

// NewRegexSelectorSource constructs a RegexSelectorSource.
func NewRegexSelectorSource() *RegexSelectorSource {
	return &RegexSelectorSource{}
}

// Selectors returns every selector of every rule entry matching segment.
func (s *RegexSelectorSource) Selectors(doc adapter.Document, segment string) ([]m.SelectorEntry, error) {
	pattern, err := BuildPattern(segment)
	if err != nil {
		return nil, fmt.Errorf("pattern for %q: %w", segment, err)
	}

	var entries []m.SelectorEntry

	for _, raw := range doc.FindAll(pattern) {
		entries = append(entries, ExtractSelectors(raw, doc.Substr(raw))...)
	}

	return entries, nil
}

// ExtractSelectors splits the <string> payload of a raw rule match into
// selector entries. raw is the region of text in the document. Regions of
// the entries cover the selector text only: no markup, commas or padding.
func ExtractSelectors(raw m.Region, text string) []m.SelectorEntry {
	open := strings.Index(text, stringOpen)
	if open < 0 {
		return nil
	}

	pos := open + len(stringOpen)

	end := strings.Index(text[pos:], stringClose)
	if end < 0 {
		end = len(text)
	} else {
		end += pos
	}

	var entries []m.SelectorEntry

	offset := raw.Begin() + pos

	for _, token := range strings.Split(text[pos:end], ",") {
		left := strings.TrimLeft(token, selectorSpace)
		pad := len(token) - len(left)

		if selector := strings.TrimRight(left, selectorSpace); selector != "" {
			begin := offset + pad
			entries = append(entries, m.SelectorEntry{
				Region: m.NewRegion(begin, begin+len(selector)),
				Text:   selector,
				Pad:    pad,
			})
		}

		offset += len(token) + 1
	}

	return entries
}

// selectorSpace is the padding trimmed around each selector, the same set
// \s stands for in selectorChars.
const selectorSpace = " \t\n\f\r"

var rulePattern = regexp.MustCompile(`<key>scope</key>\s*<string>[^<]*</string>`)

// RuleSelectors returns the number of rule entries of doc and all of their
// selectors.
func RuleSelectors(doc adapter.Document) (int, []m.SelectorEntry) {
	rules := doc.FindAll(rulePattern)

	var entries []m.SelectorEntry
	for _, raw := range rules {
		entries = append(entries, ExtractSelectors(raw, doc.Substr(raw))...)
	}

	return len(rules), entries
}
