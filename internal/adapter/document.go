package adapter

import (
	"regexp"
	"sort"

	m "github.com/mouse-blink/schemescope/internal/model"
)

// Document is the read-only text surface the engine searches. It mirrors the
// host editor's view API: full-text regex search, substring by region and
// offset/line conversion.
type Document interface {
	Name() m.Path
	Text() string
	Len() int
	// FindAll returns the regions of all non-overlapping matches of pattern.
	FindAll(pattern *regexp.Regexp) []m.Region
	// Substr returns the text covered by r, clamped to the document.
	Substr(r m.Region) string
	// Position converts a byte offset to a 0-based line and byte column.
	Position(offset int) (line, column int)
	// Offset converts a 0-based line and byte column to an offset.
	Offset(line, column int) int
	LineCount() int
	// Line returns line i without its trailing newline.
	Line(i int) string
	LineRegion(i int) m.Region
}

// TextDocument is an in-memory Document with a newline index.
type TextDocument struct {
	name       m.Path
	text       string
	lineStarts []int
}

// NewTextDocument indexes text under the given name.
func NewTextDocument(name m.Path, text string) *TextDocument {
	starts := []int{0}

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return &TextDocument{name: name, text: text, lineStarts: starts}
}

// Name returns the path the document was loaded from.
func (d *TextDocument) Name() m.Path {
	return d.name
}

// Text returns the whole document.
func (d *TextDocument) Text() string {
	return d.text
}

// Len returns the document size in bytes.
func (d *TextDocument) Len() int {
	return len(d.text)
}

// FindAll runs pattern over the whole text.
func (d *TextDocument) FindAll(pattern *regexp.Regexp) []m.Region {
	if pattern == nil {
		return nil
	}

	matches := pattern.FindAllStringIndex(d.text, -1)

	regions := make([]m.Region, 0, len(matches))
	for _, loc := range matches {
		regions = append(regions, m.NewRegion(loc[0], loc[1]))
	}

	return regions
}

// Substr returns the text of r.
func (d *TextDocument) Substr(r m.Region) string {
	begin := d.clamp(r.Begin())
	end := d.clamp(r.End())

	return d.text[begin:end]
}

// Position converts offset to line and column.
func (d *TextDocument) Position(offset int) (int, int) {
	offset = d.clamp(offset)
	line := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	}) - 1

	return line, offset - d.lineStarts[line]
}

// Offset converts line and column to an offset, clamping both to the text.
func (d *TextDocument) Offset(line, column int) int {
	if line < 0 {
		return 0
	}

	if line >= len(d.lineStarts) {
		return len(d.text)
	}

	lr := d.LineRegion(line)

	return lr.Begin() + max(0, min(column, lr.Size()))
}

// LineCount returns the number of lines; an empty text has one empty line.
func (d *TextDocument) LineCount() int {
	return len(d.lineStarts)
}

// Line returns line i without its newline.
func (d *TextDocument) Line(i int) string {
	return d.Substr(d.LineRegion(i))
}

// LineRegion returns the region of line i excluding the newline.
func (d *TextDocument) LineRegion(i int) m.Region {
	if i < 0 || i >= len(d.lineStarts) {
		return m.NewRegion(len(d.text), len(d.text))
	}

	begin := d.lineStarts[i]

	end := len(d.text)
	if i+1 < len(d.lineStarts) {
		end = d.lineStarts[i+1] - 1
	}

	if end > begin && d.text[end-1] == '\r' {
		end--
	}

	return m.NewRegion(begin, end)
}

func (d *TextDocument) clamp(offset int) int {
	return max(0, min(offset, len(d.text)))
}
