// Package engine resolves the scope under a cursor to the selector entries
// of a color scheme document that style it, ranks them by specificity and
// keeps the navigation state of an edit session.
package engine

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptySegment is returned for scope segments that cannot be searched.
var ErrEmptySegment = errors.New("empty scope segment")

// selectorChars matches one character of a selector list other than the
// comma separator. "<" is excluded so a match never leaves its <string>.
// Lists may wrap across lines or be indented with tabs.
const selectorChars = `[\w.\-+\s|&()]`

// PatternSource returns the expression BuildPattern compiles for segment.
//
// For "string.quoted.double" the selector part is
//
//	string(\.quoted(\.double)?)?
//
// so the one expression accepts the segment and each of its dot prefixes,
// optionally surrounded by other selectors of the same list.
func PatternSource(segment string) (string, error) {
	if segment == "" {
		return "", ErrEmptySegment
	}

	components := strings.Split(segment, ".")

	var body strings.Builder

	body.WriteString(regexp.QuoteMeta(components[0]))

	for _, component := range components[1:] {
		body.WriteString(`(\.`)
		body.WriteString(regexp.QuoteMeta(component))
	}

	body.WriteString(strings.Repeat(")?", len(components)-1))

	return `<key>scope</key>\s*<string>(?:` + selectorChars + `*,)*` +
		selectorChars + `*` + body.String() +
		`\s*(?:,` + selectorChars + `*)*</string>`, nil
}

// BuildPattern compiles the search pattern for one scope segment.
func BuildPattern(segment string) (*regexp.Regexp, error) {
	source, err := PatternSource(segment)
	if err != nil {
		return nil, err
	}

	return regexp.Compile(source)
}
