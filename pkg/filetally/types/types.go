// Package types provides the core data types for the filetally classifier:
// the fixed set of file categories and the Tally that counts them.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies the kind of file a path was classified as.
type Category int

// Categories in report order.
const (
	CSource Category = iota
	CHeader
	Object
	Make
	Executable
	Shell
	Other

	numCategories
)

// Category identifier constants.
const (
	categoryCSource    = "c-source"
	categoryCHeader    = "c-header"
	categoryObject     = "object"
	categoryMake       = "make"
	categoryExecutable = "executable"
	categoryShell      = "shell"
	categoryOther      = "other"
)

var categoryIDs = [numCategories]string{
	CSource:    categoryCSource,
	CHeader:    categoryCHeader,
	Object:     categoryObject,
	Make:       categoryMake,
	Executable: categoryExecutable,
	Shell:      categoryShell,
	Other:      categoryOther,
}

var categoryLabels = [numCategories]string{
	CSource:    "C source",
	CHeader:    "C header",
	Object:     "Object",
	Make:       "Make",
	Executable: "Executable",
	Shell:      "Shell",
	Other:      "Other",
}

// String returns the stable identifier of the category (e.g. "c-source").
func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryIDs[c]
}

// Label returns the human-readable label used in the summary report.
func (c Category) Label() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryLabels[c]
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c >= CSource && c < numCategories
}

// Categories returns every category in report order.
func Categories() []Category {
	cats := make([]Category, 0, numCategories)
	for c := CSource; c < numCategories; c++ {
		cats = append(cats, c)
	}
	return cats
}

// ErrInvalidCategory indicates that a category identifier could not be parsed.
var ErrInvalidCategory = errors.New("invalid category")

// ParseCategory parses a category identifier such as "c-source" or "shell".
// Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	for c, known := range categoryIDs {
		if id == known {
			return Category(c), nil
		}
	}
	return Other, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}
