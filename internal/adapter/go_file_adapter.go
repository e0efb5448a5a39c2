package adapter

import (
	"go/scanner"
	"go/token"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/schemescope/internal/model"
)

var goStorageKeywords = map[token.Token]bool{
	token.FUNC:      true,
	token.VAR:       true,
	token.CONST:     true,
	token.TYPE:      true,
	token.STRUCT:    true,
	token.INTERFACE: true,
	token.MAP:       true,
	token.CHAN:      true,
}

var goLanguageConstants = map[string]bool{
	"true":  true,
	"false": true,
	"nil":   true,
	"iota":  true,
}

// GoScannerScopeProvider assigns scopes to Go sources from the token stream
// of go/scanner. It knows nothing about nesting beyond the file, so every
// scope name has at most two elements.
type GoScannerScopeProvider struct{}

// NewGoScannerScopeProvider constructs a GoScannerScopeProvider.
func NewGoScannerScopeProvider() *GoScannerScopeProvider {
	return &GoScannerScopeProvider{}
}

// Supports reports whether path is a Go source file.
func (p *GoScannerScopeProvider) Supports(path m.Path) bool {
	return strings.EqualFold(filepath.Ext(string(path)), ".go")
}

// ScopeNameAt scans src up to offset and classifies the token under it.
func (p *GoScannerScopeProvider) ScopeNameAt(path m.Path, src []byte, offset int) string {
	fileSet := token.NewFileSet()
	file := fileSet.AddFile(string(path), fileSet.Base(), len(src))

	var s scanner.Scanner

	// Errors are ignored: a half-typed file still has classifiable tokens.
	s.Init(file, src, nil, scanner.ScanComments)

	prev := token.ILLEGAL

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		start := file.Offset(pos)
		if start > offset {
			break
		}

		text := lit
		if text == "" {
			text = tok.String()
		}

		if offset < start+len(text) {
			if stem := goTokenScope(tok, lit, prev); stem != "" {
				return joinScopes("source.go", "go", []string{stem})
			}

			return "source.go"
		}

		prev = tok
	}

	return "source.go"
}

func goTokenScope(tok token.Token, lit string, prev token.Token) string {
	switch {
	case tok == token.COMMENT:
		return commentScope(lit)
	case tok == token.STRING:
		return stringScope(lit)
	case tok == token.CHAR:
		return "constant.character"
	case tok == token.INT:
		return "constant.numeric.integer"
	case tok == token.FLOAT:
		return "constant.numeric.float"
	case tok == token.IMAG:
		return "constant.numeric.imaginary"
	case goStorageKeywords[tok]:
		return "storage.type"
	case tok == token.PACKAGE || tok == token.IMPORT:
		return "keyword.other"
	case tok.IsKeyword():
		return "keyword.control"
	case tok == token.IDENT && goLanguageConstants[lit]:
		return "constant.language"
	case tok == token.IDENT && prev == token.FUNC:
		return "entity.name.function"
	case tok.IsOperator() && !isGoPunctuation(tok):
		return "keyword.operator"
	}

	return ""
}

func isGoPunctuation(tok token.Token) bool {
	switch tok {
	case token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.LBRACK, token.RBRACK,
		token.COMMA, token.PERIOD, token.SEMICOLON, token.COLON:
		return true
	default:
		return false
	}
}
