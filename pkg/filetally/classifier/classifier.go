// Package classifier sorts command-line paths into file categories using
// filename suffixes and, when those are inconclusive, leading-byte
// signatures. Paths are processed one at a time in argument order.
package classifier

import (
	"fmt"
	"io"
	"os"

	"github.com/jamesainslie/filetally/pkg/filetally/logging"
	"github.com/jamesainslie/filetally/pkg/filetally/types"
)

// logger is the package-level logger for classification decisions.
var logger = logging.Get("classifier")

// Decision records how a single path was classified.
type Decision struct {
	// Path is the argument exactly as supplied.
	Path string

	// Category is the category the path was counted under.
	Category types.Category

	// Rule is the name of the rule that decided the category.
	Rule string
}

// Summary is the outcome of classifying a list of paths.
type Summary struct {
	// Tally holds one increment per existing path.
	Tally types.Tally

	// Decisions lists every classified path in argument order.
	Decisions []Decision

	// Skipped lists paths that did not exist.
	Skipped []string
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithDiagnostics sets the writer that receives "File does not exist" lines.
// The default is os.Stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(c *Classifier) {
		if w != nil {
			c.diag = w
		}
	}
}

// Classifier applies the fixed rule chain to paths.
type Classifier struct {
	diag  io.Writer
	rules []Rule
}

// New creates a Classifier with the given options.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		diag:  os.Stderr,
		rules: defaultRules,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify classifies every path and returns a fresh Tally.
func (c *Classifier) Classify(paths []string) types.Tally {
	return c.ClassifyInto(types.NewTally(), paths)
}

// ClassifyInto classifies every path, adding the counts to t, and returns t.
func (c *Classifier) ClassifyInto(t types.Tally, paths []string) types.Tally {
	t.Merge(c.Run(paths).Tally)
	return t
}

// Run classifies every path and returns the tally together with the
// per-path decisions and the skipped paths.
func (c *Classifier) Run(paths []string) Summary {
	summary := Summary{
		Tally:     types.NewTally(),
		Decisions: make([]Decision, 0, len(paths)),
	}

	for _, path := range paths {
		d, ok := c.ClassifyPath(path)
		if !ok {
			summary.Skipped = append(summary.Skipped, path)
			continue
		}
		summary.Tally.Add(d.Category)
		summary.Decisions = append(summary.Decisions, d)
	}

	return summary
}

// ClassifyPath classifies a single path. It returns false, after writing a
// diagnostic line, when the path does not exist.
func (c *Classifier) ClassifyPath(path string) (Decision, bool) {
	log := logger.With("path", path)

	if !exists(path) {
		fmt.Fprintf(c.diag, "File does not exist %s\n", path)
		log.Debug("skipped", "reason", "not found")
		return Decision{}, false
	}

	for _, rule := range c.rules {
		matched, err := rule.Match(path)
		if err != nil {
			log.Debug("rule failed, treating as no match", "rule", rule.Name, "error", err)
			continue
		}
		if matched {
			d := Decision{Path: path, Category: rule.Category, Rule: rule.Name}
			log.Debug("classified", "category", d.Category, "rule", d.Rule)
			return d, true
		}
	}

	// Unreachable while the chain ends with the fallback rule.
	return Decision{Path: path, Category: types.Other, Rule: "fallback"}, true
}
