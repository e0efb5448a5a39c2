package model

import "strings"

// ScopeChain is the ordered list of scope segments active at a position,
// most specific first. For the scope name "source.go string.quoted.double.go"
// the chain is ["string.quoted.double.go", "source.go"].
type ScopeChain []string

// ParseScopeChain derives a chain from a space separated scope name as the
// host reports it (outermost scope first). Empty segments are dropped.
func ParseScopeChain(scopeName string) ScopeChain {
	fields := strings.Split(strings.Trim(scopeName, " "), " ")

	chain := make(ScopeChain, 0, len(fields))
	for i := len(fields) - 1; i >= 0; i-- {
		if fields[i] == "" {
			continue
		}

		chain = append(chain, fields[i])
	}

	return chain
}

// Pretty renders the chain outermost first, separated by " > ".
func (c ScopeChain) Pretty() string {
	parts := make([]string, len(c))
	for i, segment := range c {
		parts[len(c)-1-i] = segment
	}

	return strings.Join(parts, " > ")
}

// Suffix returns the sub-chain starting at segment i.
func (c ScopeChain) Suffix(i int) ScopeChain {
	if i >= len(c) {
		return ScopeChain{}
	}

	return c[i:]
}
