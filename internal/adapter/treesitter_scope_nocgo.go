//go:build !cgo

package adapter

// Without cgo there are no tree-sitter grammars; NewScopeProvider falls back
// to the Go scanner and base scopes.
func newSyntaxScopeProvider() languageScopeProvider {
	return nil
}
