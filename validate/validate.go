// Package validate assesses the risk of applying a proposed text
// replacement before it is surfaced as a suggestion.
//
// Given the original text, a byte span, and a candidate replacement, the
// validator:
//
//   - structurally checks the edited text (sentence count must not change,
//     the touched sentence must stay complete if it was complete,
//     capitalization and punctuation must stay consistent),
//   - scores the quality of the surrounding context in [0.1, 1.0],
//   - classifies the edit as Safe, Moderate, or Risky,
//   - adjusts the rule's prior confidence accordingly.
//
// Results are cached in a fixed-capacity LRU keyed by the request shape;
// the cache is a pure performance aid and may be dropped at any time.
// A Validator is safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Completeness checks reuse the sentence package's lightweight
//     subject/verb heuristics and inherit their false negatives.
//   - Punctuation consistency looks for local artifacts (doubled periods,
//     stray commas), not full punctuation grammar.
//   - Context quality is a heuristic product of fixed multipliers, not a
//     probabilistic model.
package validate

import (
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kanishk-jain-01/wordwise-ai/rules"
)

// Risk classifies how likely a replacement is to damage the text.
type Risk int

const (
	Safe Risk = iota
	Moderate
	Risky
)

var riskNames = map[Risk]string{
	Safe:     "safe",
	Moderate: "moderate",
	Risky:    "risky",
}

func (r Risk) String() string {
	if name, ok := riskNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Risk(%d)", int(r))
}

// MarshalJSON encodes the risk as its lowercase name.
func (r Risk) MarshalJSON() ([]byte, error) {
	name, ok := riskNames[r]
	if !ok {
		return nil, fmt.Errorf("validate: unknown risk %d", int(r))
	}
	return []byte(`"` + name + `"`), nil
}

// UnmarshalJSON decodes a lowercase risk name.
func (r *Risk) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for risk, n := range riskNames {
		if n == name {
			*r = risk
			return nil
		}
	}
	return fmt.Errorf("validate: unknown risk %q", name)
}

// Request describes one proposed replacement against the original text.
type Request struct {
	Text        string // the full input the span indexes into
	Offset      int    // byte offset of the span
	Length      int    // byte length of the span
	Replacement string
	RuleID      string
	Kind        rules.Kind
	// Confidence is the rule's prior before validation.
	Confidence float64
}

// Result is the validator's verdict.
type Result struct {
	Valid          bool     `json:"valid"` // structural checks passed
	Risk           Risk     `json:"risk"`
	Confidence     float64  `json:"confidence"` // adjusted, in [0.1, 1.0]
	Issues         []string `json:"issues,omitempty"`
	ContextQuality float64  `json:"contextQuality"` // in [0.1, 1.0]
}

// cacheSize bounds the result cache; oldest entries are evicted first.
const cacheSize = 200

// Validator checks replacements and caches verdicts.
type Validator struct {
	cache *lru.Cache[string, Result]
}

// New returns a Validator with an empty result cache.
func New() *Validator {
	cache, err := lru.New[string, Result](cacheSize)
	if err != nil {
		// lru.New fails only on a non-positive size.
		panic(fmt.Sprintf("validate: %v", err))
	}
	return &Validator{cache: cache}
}

// Check validates one proposed replacement. Out-of-range spans yield an
// invalid, Risky result rather than a panic.
func (v *Validator) Check(req Request) Result {
	if req.Offset < 0 || req.Length <= 0 || req.Offset+req.Length > len(req.Text) {
		return Result{
			Valid:          false,
			Risk:           Risky,
			Confidence:     0.1,
			Issues:         []string{"span out of range"},
			ContextQuality: 0.1,
		}
	}

	key := cacheKey(req)
	if cached, ok := v.cache.Get(key); ok {
		return cached
	}

	result := evaluate(req)
	v.cache.Add(key, result)
	return result
}

// cacheKey identifies a request by rule, span, replacement, and input
// length. Two different inputs of equal length at the same span would
// collide, but the engine always validates against one input per call.
func cacheKey(req Request) string {
	return fmt.Sprintf("%s\x00%d\x00%d\x00%s\x00%d",
		req.RuleID, req.Offset, req.Length, req.Replacement, len(req.Text))
}
