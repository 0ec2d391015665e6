package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jamesainslie/filetally/pkg/filetally/classifier"
	"github.com/jamesainslie/filetally/pkg/filetally/types"
)

// printRules writes the rule chain as an aligned table. When category is
// non-empty only the rules assigning that category are listed; the position
// column keeps each rule's place in the full chain.
func printRules(out io.Writer, category string) error {
	var (
		filter   types.Category
		filtered bool
	)
	if category != "" {
		c, err := types.ParseCategory(category)
		if err != nil {
			return fmt.Errorf("invalid --category (available: %v): %w", types.Categories(), err)
		}
		filter, filtered = c, true
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "#\tRULE\tCATEGORY"); err != nil {
		return err
	}
	for i, rule := range classifier.Rules() {
		if filtered && rule.Category != filter {
			continue
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, rule.Name, rule.Category); err != nil {
			return err
		}
	}
	return tw.Flush()
}
