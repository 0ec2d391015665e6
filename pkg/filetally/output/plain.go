package output

import (
	"bytes"
	"fmt"
)

// labelWidth is the column where counts start in plain output.
const labelWidth = 15

// PlainFormatter prints one "<Label>: <count>" line per category.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	for _, p := range r.Lines() {
		if _, err := fmt.Fprintf(w, "%-*s%d\n", labelWidth, p.Category.Label()+":", p.Count); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
