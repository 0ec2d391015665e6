package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_ReportOrder(t *testing.T) {
	want := []Category{CSource, CHeader, Object, Make, Executable, Shell, Other}
	assert.Equal(t, want, Categories())
}

func TestCategory_Labels(t *testing.T) {
	tests := []struct {
		cat   Category
		id    string
		label string
	}{
		{CSource, "c-source", "C source"},
		{CHeader, "c-header", "C header"},
		{Object, "object", "Object"},
		{Make, "make", "Make"},
		{Executable, "executable", "Executable"},
		{Shell, "shell", "Shell"},
		{Other, "other", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.True(t, tt.cat.Valid())
			assert.Equal(t, tt.id, tt.cat.String())
			assert.Equal(t, tt.label, tt.cat.Label())
		})
	}
}

func TestCategory_Invalid(t *testing.T) {
	c := Category(42)
	assert.False(t, c.Valid())
	assert.Equal(t, "unknown", c.String())
	assert.Equal(t, "Unknown", c.Label())
	assert.False(t, Category(-1).Valid())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "c source", input: "c-source", want: CSource},
		{name: "upper case", input: "SHELL", want: Shell},
		{name: "whitespace", input: "  make ", want: Make},
		{name: "executable", input: "executable", want: Executable},
		{name: "unknown", input: "python", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCategory))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTally_AddCountTotal(t *testing.T) {
	tally := NewTally()
	assert.Equal(t, 0, tally.Total())

	tally.Add(CSource)
	tally.Add(CSource)
	tally.Add(Shell)
	tally.Add(Category(99)) // ignored

	assert.Equal(t, 2, tally.Count(CSource))
	assert.Equal(t, 1, tally.Count(Shell))
	assert.Equal(t, 0, tally.Count(Other))
	assert.Equal(t, 3, tally.Total())
}

func TestTally_PairsIncludesZeros(t *testing.T) {
	tally := NewTally()
	tally.Add(Other)

	pairs := tally.Pairs()
	require.Len(t, pairs, 7)
	for i, c := range Categories() {
		assert.Equal(t, c, pairs[i].Category)
	}
	assert.Equal(t, 1, pairs[6].Count)
	assert.Equal(t, 0, pairs[0].Count)
}

func TestTally_Merge(t *testing.T) {
	a := NewTally()
	a.Add(Make)
	b := NewTally()
	b.Add(Make)
	b.Add(Object)

	a.Merge(b)

	assert.Equal(t, 2, a.Count(Make))
	assert.Equal(t, 1, a.Count(Object))
	assert.Equal(t, 1, b.Count(Make), "merge must not modify the source tally")
}

func TestTally_String(t *testing.T) {
	tally := NewTally()
	tally.Add(CHeader)

	assert.Equal(t,
		"[c-source: 0, c-header: 1, object: 0, make: 0, executable: 0, shell: 0, other: 0]",
		tally.String())
}
