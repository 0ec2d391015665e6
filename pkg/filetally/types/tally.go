package types

import (
	"fmt"
	"strings"
)

// Tally stores the number of paths counted per Category.
// The zero value reads as all-zero counts but cannot be added to; create
// one with NewTally.
type Tally struct {
	counts map[Category]int
}

// Pair holds a single category and its count.
type Pair struct {
	Category Category
	Count    int
}

// NewTally creates an empty Tally.
func NewTally() Tally {
	return Tally{
		counts: make(map[Category]int, numCategories),
	}
}

// Add increments the count for c by one.
// Invalid categories are ignored.
func (t Tally) Add(c Category) {
	if !c.Valid() {
		return
	}
	t.counts[c]++
}

// Count returns the count for c.
func (t Tally) Count(c Category) int {
	return t.counts[c]
}

// Total returns the sum of all counts.
func (t Tally) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Merge adds every count from other into t.
func (t Tally) Merge(other Tally) {
	for c, n := range other.counts {
		t.counts[c] += n
	}
}

// Pairs returns one Pair per category in report order, including zero counts,
// so that the output is deterministic.
func (t Tally) Pairs() []Pair {
	pairs := make([]Pair, 0, numCategories)
	for _, c := range Categories() {
		pairs = append(pairs, Pair{Category: c, Count: t.counts[c]})
	}
	return pairs
}

// String returns a compact representation such as "[c-source: 1, c-header: 0, ...]".
func (t Tally) String() string {
	parts := make([]string, 0, numCategories)
	for _, p := range t.Pairs() {
		parts = append(parts, fmt.Sprintf("%s: %d", p.Category, p.Count))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
