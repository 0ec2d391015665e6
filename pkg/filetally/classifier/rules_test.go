package classifier

import (
	"testing"

	"github.com/jamesainslie/filetally/pkg/filetally/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuffixRule_Match(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		suffixes []string
		want     bool
	}{
		{name: "match", input: "main.c", suffixes: []string{".c"}, want: true},
		{name: "exact", input: ".c", suffixes: []string{".c"}, want: true},
		{name: "shorter than suffix", input: "c", suffixes: []string{".c"}, want: false},
		{name: "empty name", input: "", suffixes: []string{".c"}, want: false},
		{name: "short name long suffix", input: "make", suffixes: []string{"makefile", "Makefile"}, want: false},
		{name: "case sensitive", input: "MAIN.C", suffixes: []string{".c"}, want: false},
		{name: "suffix in middle", input: "a.c.txt", suffixes: []string{".c"}, want: false},
		{name: "path with directory", input: "src/lib/x.o", suffixes: []string{".o"}, want: true},
		{name: "second suffix", input: "build/Makefile", suffixes: []string{"makefile", "Makefile"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := suffixRule(types.Other, tt.suffixes...).Match(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRules_Order(t *testing.T) {
	rules := Rules()
	require.Len(t, rules, 8)

	want := []struct {
		name string
		cat  types.Category
	}{
		{"suffix .c", types.CSource},
		{"suffix makefile|Makefile", types.Make},
		{"suffix .o", types.Object},
		{"suffix .h", types.CHeader},
		{"exact /subdir/", types.Other},
		{"signature shell", types.Shell},
		{"signature executable", types.Executable},
		{"fallback", types.Other},
	}

	for i, w := range want {
		assert.Equal(t, w.name, rules[i].Name, "rule %d", i)
		assert.Equal(t, w.cat, rules[i].Category, "rule %d", i)
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	rules := Rules()
	rules[0].Name = "mutated"

	assert.Equal(t, "suffix .c", Rules()[0].Name)
}

func TestRules_ExactSubdirIsLiteral(t *testing.T) {
	rule := Rules()[4]

	ok, err := rule.Match("/subdir/")
	require.NoError(t, err)
	assert.True(t, ok)

	for _, other := range []string{"/subdir", "subdir/", "/a/subdir/", "/subdir/file"} {
		ok, err := rule.Match(other)
		require.NoError(t, err)
		assert.False(t, ok, other)
	}
}

func TestRules_SignatureRuleMissingFile(t *testing.T) {
	rule := Rules()[5]

	ok, err := rule.Match("/definitely/not/here")
	assert.False(t, ok)
	assert.Error(t, err)
}
