package adapter

import (
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/schemescope/internal/model"
)

// ScopeProvider reports the hierarchical scope name at a byte offset of a
// source file, outermost scope first, space separated
// (e.g. "source.go meta.function.go string.quoted.double.go").
type ScopeProvider interface {
	ScopeNameAt(path m.Path, src []byte, offset int) string
}

// languageScopeProvider is a ScopeProvider limited to some file types.
type languageScopeProvider interface {
	ScopeProvider
	Supports(path m.Path) bool
}

var baseScopes = map[string]string{
	".go":             "source.go",
	".py":             "source.python",
	".js":             "source.js",
	".mjs":            "source.js",
	".json":           "source.json",
	".yaml":           "source.yaml",
	".yml":            "source.yaml",
	".sh":             "source.shell",
	".md":             "text.html.markdown",
	".xml":            "text.xml",
	".tmtheme":        "text.xml.plist",
	".hidden-tmtheme": "text.xml.plist",
}

// BaseScope returns the root scope the host assigns to a whole file.
func BaseScope(path m.Path) string {
	if scope, ok := baseScopes[strings.ToLower(filepath.Ext(string(path)))]; ok {
		return scope
	}

	return "text.plain"
}

type chainScopeProvider struct {
	providers []languageScopeProvider
}

// NewScopeProvider returns the provider used by the editor: syntax trees
// where a grammar is compiled in, the Go scanner for Go sources otherwise,
// and the file's base scope as a last resort.
func NewScopeProvider() ScopeProvider {
	providers := make([]languageScopeProvider, 0, 2)
	if syntax := newSyntaxScopeProvider(); syntax != nil {
		providers = append(providers, syntax)
	}

	providers = append(providers, NewGoScannerScopeProvider())

	return &chainScopeProvider{providers: providers}
}

func (c *chainScopeProvider) ScopeNameAt(path m.Path, src []byte, offset int) string {
	for _, p := range c.providers {
		if !p.Supports(path) {
			continue
		}

		if scope := p.ScopeNameAt(path, src, offset); scope != "" {
			return scope
		}
	}

	return BaseScope(path)
}

// commentScope classifies a comment by its opening marker.
func commentScope(text string) string {
	switch {
	case strings.HasPrefix(text, "/*"):
		return "comment.block"
	case strings.HasPrefix(text, "#"):
		return "comment.line.number-sign"
	default:
		return "comment.line.double-slash"
	}
}

// stringScope classifies a string literal by its quote character, skipping
// prefixes such as Python's r"" or f"".
func stringScope(text string) string {
	text = strings.TrimLeft(text, "rRbBuUfF")
	switch {
	case strings.HasPrefix(text, `"""`), strings.HasPrefix(text, `'''`):
		return "string.quoted.triple"
	case strings.HasPrefix(text, "'"):
		return "string.quoted.single"
	case strings.HasPrefix(text, "`"):
		return "string.quoted.raw"
	default:
		return "string.quoted.double"
	}
}

// joinScopes appends the language suffix to each stem and prefixes the base.
func joinScopes(base, suffix string, stems []string) string {
	scopes := make([]string, 0, len(stems)+1)
	scopes = append(scopes, base)

	for _, stem := range stems {
		scopes = append(scopes, stem+"."+suffix)
	}

	return strings.Join(scopes, " ")
}
