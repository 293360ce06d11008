// Package tone performs lexicon-based tone analysis of English text.
//
// The analyzer tokenizes input, counts whole-word occurrences from an
// embedded tone lexicon across eight lexical categories, and adjusts the
// counts with structural signals (exclamation density, question density,
// average sentence length). The highest-scoring category decides the
// user-facing label; a zero maximum yields Neutral.
//
// Two convenience functions are provided:
//
//   - Analyze returns a full Result with the label and category scores.
//   - Detect returns only the label.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//   - No negation handling ("not great" counts as positive).
//   - Single-word lexicon lookups only; idioms and phrasal tones are missed.
//   - Structural boosts use fixed thresholds, not a trained model.
package tone

import (
	"encoding/json"
	"fmt"
)

// maxInputBytes is the maximum input size. Inputs exceeding this return a zero Result.
const maxInputBytes = 1 << 20 // 1 MiB

// Label is the user-facing tone classification.
type Label int

const (
	Neutral Label = iota
	Positive
	Negative
	Formal
	Casual
	Confident
	Tentative
	Friendly
	Assertive
	Enthusiastic
	Curious
)

// labelNames maps Label values to their string names.
var labelNames = map[Label]string{
	Neutral:      "neutral",
	Positive:     "positive",
	Negative:     "negative",
	Formal:       "formal",
	Casual:       "casual",
	Confident:    "confident",
	Tentative:    "tentative",
	Friendly:     "friendly",
	Assertive:    "assertive",
	Enthusiastic: "enthusiastic",
	Curious:      "curious",
}

// labelFromName maps string names back to Label values.
var labelFromName = func() map[string]Label {
	m := make(map[string]Label, len(labelNames))
	for l, name := range labelNames {
		m[name] = l
	}
	return m
}()

// String returns the name of the label.
func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// MarshalJSON encodes the label as a JSON string.
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a JSON string into a Label.
func (l *Label) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, ok := labelFromName[str]
	if !ok {
		return fmt.Errorf("tone: unknown label: %q", str)
	}
	*l = v
	return nil
}

// Result holds the tone analysis output.
type Result struct {
	Label Label `json:"label"`
	// Scores holds the nonzero category scores that produced the label,
	// keyed by category name ("positive", "informal", "excited", ...).
	Scores map[string]int `json:"scores,omitempty"`
}

// String returns a debug representation of the result.
func (r Result) String() string {
	return fmt.Sprintf("%s%v", r.Label, r.Scores)
}

// Analyze returns detailed tone analysis of text.
// Returns a zero (Neutral) Result for empty or oversized input.
func Analyze(text string) Result {
	if text == "" || len(text) > maxInputBytes {
		return Result{}
	}
	return analyze(text)
}

// Detect returns only the tone label for text.
func Detect(text string) Label {
	return Analyze(text).Label
}
