package classifier

import (
	"strings"

	"github.com/jamesainslie/filetally/pkg/filetally/signature"
	"github.com/jamesainslie/filetally/pkg/filetally/types"
)

// legacySubdirName is matched literally against the whole argument.
// It is not a directory test.
const legacySubdirName = "/subdir/"

// Rule is one step of the classification chain.
type Rule struct {
	// Name describes the rule in logs and in the rules listing (e.g. "suffix .c").
	Name string

	// Category is the category assigned when the rule matches.
	Category types.Category

	// match reports whether the rule applies to path. A non-nil error means
	// the rule could not be evaluated and is treated as a non-match.
	match func(path string) (bool, error)
}

// Match reports whether the rule applies to path.
func (r Rule) Match(path string) (bool, error) {
	return r.match(path)
}

func suffixRule(cat types.Category, suffixes ...string) Rule {
	return Rule{
		Name:     "suffix " + strings.Join(suffixes, "|"),
		Category: cat,
		match: func(path string) (bool, error) {
			for _, s := range suffixes {
				if strings.HasSuffix(path, s) {
					return true, nil
				}
			}
			return false, nil
		},
	}
}

func exactRule(cat types.Category, name string) Rule {
	return Rule{
		Name:     "exact " + name,
		Category: cat,
		match: func(path string) (bool, error) {
			return path == name, nil
		},
	}
}

func signatureRule(cat types.Category, sig signature.Signature) Rule {
	return Rule{
		Name:     "signature " + sig.Name,
		Category: cat,
		match: func(path string) (bool, error) {
			return signature.Matches(sig, path)
		},
	}
}

func fallbackRule(cat types.Category) Rule {
	return Rule{
		Name:     "fallback",
		Category: cat,
		match: func(string) (bool, error) {
			return true, nil
		},
	}
}

// defaultRules is the fixed classification chain in priority order.
// The first matching rule wins.
var defaultRules = []Rule{
	suffixRule(types.CSource, ".c"),
	suffixRule(types.Make, "makefile", "Makefile"),
	suffixRule(types.Object, ".o"),
	suffixRule(types.CHeader, ".h"),
	exactRule(types.Other, legacySubdirName),
	signatureRule(types.Shell, signature.Shell),
	signatureRule(types.Executable, signature.Executable),
	fallbackRule(types.Other),
}

// Rules returns a copy of the classification chain in priority order.
func Rules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}
