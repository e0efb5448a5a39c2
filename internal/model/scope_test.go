package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScopeChain(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  ScopeChain
	}{
		{"single", "source.go", ScopeChain{"source.go"}},
		{"reversed", "source.go meta.function.go string.quoted.double.go", ScopeChain{"string.quoted.double.go", "meta.function.go", "source.go"}},
		{"surrounding spaces", "  source.go comment.go ", ScopeChain{"comment.go", "source.go"}},
		{"double spaces", "source.go  comment.go", ScopeChain{"comment.go", "source.go"}},
		{"empty", "", ScopeChain{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseScopeChain(tt.scope))
		})
	}
}

func TestScopeChain_Pretty(t *testing.T) {
	chain := ParseScopeChain("source.go comment.line.go")
	assert.Equal(t, "source.go > comment.line.go", chain.Pretty())
	assert.Empty(t, ScopeChain{}.Pretty())
}

func TestScopeChain_Suffix(t *testing.T) {
	chain := ScopeChain{"c", "b", "a"}
	assert.Equal(t, ScopeChain{"b", "a"}, chain.Suffix(1))
	assert.Equal(t, ScopeChain{}, chain.Suffix(3))
}

func TestRegion(t *testing.T) {
	r := NewRegion(9, 4)
	assert.Equal(t, 4, r.Begin())
	assert.Equal(t, 9, r.End())
	assert.Equal(t, 5, r.Size())
	assert.False(t, r.Empty())
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(9))
	assert.True(t, NewRegion(3, 3).Empty())
}
