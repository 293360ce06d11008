package validate

import (
	"testing"

	"github.com/kanishk-jain-01/wordwise-ai/rules"
)

// FuzzCheck exercises Check with arbitrary spans and replacements: it must
// never panic and always return a clamped, well-formed result.
func FuzzCheck(f *testing.F) {
	f.Add("There is many issues with this sentence.", 0, 13, "There are many")
	f.Add("Basically, it works.", 0, 11, "")
	f.Add("", 0, 0, "x")
	f.Add("one two three.", -5, 100, "four")
	f.Add("café menu.", 2, 3, "\xff\xfe")

	v := New()

	f.Fuzz(func(t *testing.T, text string, offset, length int, replacement string) {
		got := v.Check(Request{
			Text:        text,
			Offset:      offset,
			Length:      length,
			Replacement: replacement,
			RuleID:      "fuzz",
			Kind:        rules.Style,
			Confidence:  0.8,
		})

		if got.Confidence < 0.1 || got.Confidence > 1.0 {
			t.Errorf("confidence %v out of [0.1, 1.0]", got.Confidence)
		}
		if got.ContextQuality < 0.1 || got.ContextQuality > 1.0 {
			t.Errorf("context quality %v out of [0.1, 1.0]", got.ContextQuality)
		}
		if got.Risk != Safe && got.Risk != Moderate && got.Risk != Risky {
			t.Errorf("unknown risk %v", got.Risk)
		}
	})
}
