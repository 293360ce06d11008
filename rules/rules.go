// Package rules defines the declarative correction rule sets the engine
// applies: grammar, spelling, and style. Each rule pairs a compiled pattern
// with a message, an author-assigned confidence, and a replacement that is
// either a literal string or derived from the matched text.
//
// The rule tables are compiled once at package initialization and are
// immutable afterwards; the accessor functions are safe for concurrent use.
// A malformed pattern is a programming error and fails initialization with
// the offending rule's ID.
package rules

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/kanishk-jain-01/wordwise-ai/internal/textcase"
)

// Kind classifies a rule and the suggestions it produces.
type Kind int

const (
	Grammar Kind = iota
	Spelling
	Style
)

var kindNames = map[Kind]string{
	Grammar:  "grammar",
	Spelling: "spelling",
	Style:    "style",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON encodes the kind as its lowercase name.
func (k Kind) MarshalJSON() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("rules: unknown kind %d", int(k))
	}
	return []byte(`"` + name + `"`), nil
}

// UnmarshalJSON decodes a lowercase kind name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for kind, n := range kindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("rules: unknown kind %q", name)
}

// Replacement is the fix a rule offers: either a Literal string or a
// Derived function of the matched text. A nil Replacement flags the match
// without offering a fix.
type Replacement interface {
	apply(match string) string
}

// Literal replaces the match with a fixed string.
type Literal string

func (l Literal) apply(string) string { return string(l) }

// Derived computes the replacement from the matched text.
type Derived func(match string) string

func (d Derived) apply(match string) string { return d(match) }

// Apply resolves r against the matched text. A nil replacement yields
// ("", false), meaning the rule flags without fixing.
func Apply(r Replacement, match string) (string, bool) {
	if r == nil {
		return "", false
	}
	return r.apply(match), true
}

// Rule is one correction rule. Rules are immutable after compilation.
type Rule struct {
	ID           string
	Pattern      *regexp.Regexp
	Kind         Kind
	Message      string
	ShortMessage string
	Category     string
	// Confidence is the author-assigned prior in [0,1].
	Confidence  float64
	Replacement Replacement
	// Global reports all non-overlapping matches; otherwise only the first
	// match is reported.
	Global bool
	// RequiresValidation routes accepted suggestions through the validator.
	RequiresValidation bool
}

// definition is the source form of a rule, compiled into a Rule at init.
type definition struct {
	id           string
	pattern      string
	message      string
	shortMessage string
	category     string
	confidence   float64
	replacement  Replacement
	firstOnly    bool
	validate     bool
}

func compile(kind Kind, defs []definition) []Rule {
	out := make([]Rule, 0, len(defs))
	for _, d := range defs {
		re, err := regexp.Compile(d.pattern)
		if err != nil {
			panic(fmt.Sprintf("rules: rule %q: %v", d.id, err))
		}
		out = append(out, Rule{
			ID:                 d.id,
			Pattern:            re,
			Kind:               kind,
			Message:            d.message,
			ShortMessage:       d.shortMessage,
			Category:           d.category,
			Confidence:         d.confidence,
			Replacement:        d.replacement,
			Global:             !d.firstOnly,
			RequiresValidation: d.validate,
		})
	}
	return out
}

var (
	grammarRules  = compile(Grammar, grammarDefs)
	spellingRules = compile(Spelling, spellingDefs)
	styleRules    = compile(Style, styleDefs)
)

// GrammarRules returns the compiled grammar rule set. Callers must not
// mutate the returned slice.
func GrammarRules() []Rule { return grammarRules }

// SpellingRules returns the compiled common-misspelling rule set.
func SpellingRules() []Rule { return spellingRules }

// StyleRules returns the compiled style rule set.
func StyleRules() []Rule { return styleRules }

// preserveCase returns a Derived replacement that transfers the matched
// text's case shape onto fixed.
func preserveCase(fixed string) Derived {
	return func(match string) string {
		return textcase.ApplyCase(match, fixed)
	}
}

// misspelling builds a whole-word rule correcting wrong to right, carrying
// optional inflection suffixes across and preserving the original case.
func misspelling(id, wrong, right, category string) definition {
	return misspellingConf(id, wrong, right, category, 0.93)
}

func misspellingConf(id, wrong, right, category string, confidence float64) definition {
	return definition{
		id:           id,
		pattern:      `(?i)\b` + wrong + `(s|d|ed|es|ing|ly)?\b`,
		message:      fmt.Sprintf("%q is a misspelling of %q.", wrong, right),
		shortMessage: "Misspelling",
		category:     category,
		confidence:   confidence,
		replacement: Derived(func(match string) string {
			suffix := strings.TrimPrefix(strings.ToLower(match), wrong)
			return textcase.ApplyCase(match, right+suffix)
		}),
	}
}
