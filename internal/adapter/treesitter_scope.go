//go:build cgo

package adapter

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"

	m "github.com/mouse-blink/schemescope/internal/model"
)

// grammar maps the syntax nodes of one tree-sitter language to scope stems.
// Stems get the language suffix appended ("string.quoted.double" + ".go").
type grammar struct {
	language func() *sitter.Language
	base     string
	suffix   string
	// nodes maps a node type to its stem. The special stems "comment" and
	// "string" are refined from the node text.
	nodes map[string]string
	// parents maps "type<parent" to a stem, checked before nodes.
	parents map[string]string
}

var goGrammar = &grammar{
	language: golang.GetLanguage,
	base:     "source.go",
	suffix:   "go",
	nodes: map[string]string{
		"function_declaration":       "meta.function",
		"method_declaration":         "meta.function",
		"func_literal":               "meta.function.anonymous",
		"block":                      "meta.block",
		"import_declaration":         "meta.import",
		"interpreted_string_literal": "string",
		"raw_string_literal":         "string.quoted.raw",
		"rune_literal":               "constant.character",
		"escape_sequence":            "constant.character.escape",
		"comment":                    "comment",
		"int_literal":                "constant.numeric.integer",
		"float_literal":              "constant.numeric.float",
		"imaginary_literal":          "constant.numeric.imaginary",
		"true":                       "constant.language",
		"false":                      "constant.language",
		"nil":                        "constant.language",
		"iota":                       "constant.language",
		"type_identifier":            "storage.type",
		"field_identifier":           "variable.other.member",
		"package_identifier":         "entity.name.package",
		"func":                       "storage.type",
		"var":                        "storage.type",
		"const":                      "storage.type",
		"type":                       "storage.type",
		"struct":                     "storage.type",
		"interface":                  "storage.type",
		"map":                        "storage.type",
		"chan":                       "storage.type",
		"package":                    "keyword.other",
		"import":                     "keyword.other",
		"return":                     "keyword.control",
		"if":                         "keyword.control",
		"else":                       "keyword.control",
		"for":                        "keyword.control",
		"range":                      "keyword.control",
		"switch":                     "keyword.control",
		"case":                       "keyword.control",
		"default":                    "keyword.control",
		"go":                         "keyword.control",
		"defer":                      "keyword.control",
		"select":                     "keyword.control",
		"break":                      "keyword.control",
		"continue":                   "keyword.control",
		"goto":                       "keyword.control",
		"fallthrough":                "keyword.control",
	},
	parents: map[string]string{
		"identifier<function_declaration":     "entity.name.function",
		"field_identifier<method_declaration": "entity.name.function",
		"type_identifier<type_spec":           "entity.name.type",
		"identifier<call_expression":          "variable.function",
	},
}

var pythonGrammar = &grammar{
	language: python.GetLanguage,
	base:     "source.python",
	suffix:   "python",
	nodes: map[string]string{
		"function_definition": "meta.function",
		"class_definition":    "meta.class",
		"lambda":              "meta.function.inline",
		"string":              "string",
		"escape_sequence":     "constant.character.escape",
		"comment":             "comment",
		"integer":             "constant.numeric.integer",
		"float":               "constant.numeric.float",
		"true":                "constant.language",
		"false":               "constant.language",
		"none":                "constant.language",
		"decorator":           "meta.annotation",
		"def":                 "storage.type.function",
		"class":               "storage.type.class",
		"return":              "keyword.control",
		"if":                  "keyword.control",
		"elif":                "keyword.control",
		"else":                "keyword.control",
		"for":                 "keyword.control",
		"while":               "keyword.control",
		"in":                  "keyword.control",
		"try":                 "keyword.control",
		"except":              "keyword.control",
		"finally":             "keyword.control",
		"raise":               "keyword.control",
		"with":                "keyword.control",
		"yield":               "keyword.control",
		"pass":                "keyword.control",
		"import":              "keyword.control.import",
		"from":                "keyword.control.import",
		"as":                  "keyword.control.import",
	},
	parents: map[string]string{
		"identifier<function_definition": "entity.name.function",
		"identifier<class_definition":    "entity.name.class",
		"identifier<call":                "variable.function",
	},
}

var javascriptGrammar = &grammar{
	language: javascript.GetLanguage,
	base:     "source.js",
	suffix:   "js",
	nodes: map[string]string{
		"function_declaration": "meta.function",
		"function_expression":  "meta.function",
		"arrow_function":       "meta.function.arrow",
		"method_definition":    "meta.function.method",
		"class_declaration":    "meta.class",
		"string":               "string",
		"template_string":      "string.template",
		"regex":                "string.regexp",
		"escape_sequence":      "constant.character.escape",
		"comment":              "comment",
		"number":               "constant.numeric",
		"true":                 "constant.language",
		"false":                "constant.language",
		"null":                 "constant.language",
		"undefined":            "constant.language",
		"const":                "storage.type",
		"let":                  "storage.type",
		"var":                  "storage.type",
		"class":                "storage.type.class",
		"return":               "keyword.control",
		"if":                   "keyword.control",
		"else":                 "keyword.control",
		"for":                  "keyword.control",
		"while":                "keyword.control",
		"switch":               "keyword.control",
		"case":                 "keyword.control",
		"break":                "keyword.control",
		"continue":             "keyword.control",
		"throw":                "keyword.control",
		"try":                  "keyword.control",
		"catch":                "keyword.control",
		"new":                  "keyword.operator.new",
		"import":               "keyword.control.import",
		"export":               "keyword.control.export",
	},
	parents: map[string]string{
		"identifier<function_declaration":       "entity.name.function",
		"property_identifier<method_definition": "entity.name.function",
		"identifier<class_declaration":          "entity.name.class",
		"identifier<call_expression":            "variable.function",
	},
}

var grammarsByExt = map[string]*grammar{
	".go":  goGrammar,
	".py":  pythonGrammar,
	".js":  javascriptGrammar,
	".mjs": javascriptGrammar,
}

// TreeSitterScopeProvider derives scope names from tree-sitter syntax trees.
// The last parsed tree is kept so repeated queries on unchanged text only
// walk the tree.
type TreeSitterScopeProvider struct {
	parser *sitter.Parser

	cachedPath m.Path
	cachedSrc  []byte
	cachedTree *sitter.Tree
}

// NewTreeSitterScopeProvider constructs a TreeSitterScopeProvider.
func NewTreeSitterScopeProvider() *TreeSitterScopeProvider {
	return &TreeSitterScopeProvider{parser: sitter.NewParser()}
}

func newSyntaxScopeProvider() languageScopeProvider {
	return NewTreeSitterScopeProvider()
}

// Supports reports whether a grammar is compiled in for path.
func (p *TreeSitterScopeProvider) Supports(path m.Path) bool {
	_, ok := grammarsByExt[strings.ToLower(filepath.Ext(string(path)))]
	return ok
}

// ScopeNameAt parses src (or reuses the cached tree) and maps the nodes from
// the root down to the leaf at offset onto scope names.
func (p *TreeSitterScopeProvider) ScopeNameAt(path m.Path, src []byte, offset int) string {
	g, ok := grammarsByExt[strings.ToLower(filepath.Ext(string(path)))]
	if !ok {
		return ""
	}

	tree, err := p.parse(path, src, g)
	if err != nil {
		return ""
	}

	point := pointAt(src, offset)

	named := tree.RootNode().NamedDescendantForPointRange(point, point)
	if named == nil {
		return g.base
	}

	leaf := leafAt(named, offset)

	var stems []string

	for node := leaf; node != nil; node = node.Parent() {
		if stem := g.classify(node, src); stem != "" {
			stems = append(stems, stem)
		}
	}

	// Collected leaf first; scope names list the outermost first.
	for i, j := 0, len(stems)-1; i < j; i, j = i+1, j-1 {
		stems[i], stems[j] = stems[j], stems[i]
	}

	return joinScopes(g.base, g.suffix, stems)
}

func (p *TreeSitterScopeProvider) parse(path m.Path, src []byte, g *grammar) (*sitter.Tree, error) {
	if p.cachedTree != nil && p.cachedPath == path && bytes.Equal(p.cachedSrc, src) {
		return p.cachedTree, nil
	}

	p.parser.SetLanguage(g.language())

	tree, err := p.parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, err
	}

	p.cachedPath = path
	p.cachedSrc = bytes.Clone(src)
	p.cachedTree = tree

	return tree, nil
}

func (g *grammar) classify(node *sitter.Node, src []byte) string {
	typ := node.Type()

	if parent := node.Parent(); parent != nil {
		if stem, ok := g.parents[typ+"<"+parent.Type()]; ok {
			return stem
		}
	}

	stem, ok := g.nodes[typ]
	if !ok {
		return ""
	}

	switch stem {
	case "comment":
		return commentScope(node.Content(src))
	case "string":
		return stringScope(node.Content(src))
	}

	return stem
}

// leafAt descends from node into the innermost child, named or not, that
// spans offset. Keywords and punctuation are anonymous nodes.
func leafAt(node *sitter.Node, offset int) *sitter.Node {
	at := uint32(max(offset, 0))

	for {
		var next *sitter.Node

		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child != nil && child.StartByte() <= at && at < child.EndByte() {
				next = child
				break
			}
		}

		if next == nil {
			return node
		}

		node = next
	}
}

// pointAt converts a byte offset to a tree-sitter row/column point.
func pointAt(src []byte, offset int) sitter.Point {
	offset = max(0, min(offset, len(src)))
	row := bytes.Count(src[:offset], []byte{'\n'})
	col := offset - (bytes.LastIndexByte(src[:offset], '\n') + 1)

	return sitter.Point{Row: uint32(row), Column: uint32(col)}
}
