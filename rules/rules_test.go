package rules

import (
	"strings"
	"testing"
)

func TestRuleSetsWellFormed(t *testing.T) {
	t.Parallel()

	sets := map[string][]Rule{
		"grammar":  GrammarRules(),
		"spelling": SpellingRules(),
		"style":    StyleRules(),
	}

	seen := make(map[string]string)
	for name, set := range sets {
		if len(set) == 0 {
			t.Errorf("%s rule set is empty", name)
		}
		for _, r := range set {
			if r.ID == "" {
				t.Errorf("%s: rule with empty ID", name)
			}
			if prev, dup := seen[r.ID]; dup {
				t.Errorf("rule ID %q appears in both %s and %s", r.ID, prev, name)
			}
			seen[r.ID] = name
			if r.Pattern == nil {
				t.Errorf("rule %q: nil pattern", r.ID)
			}
			if r.Confidence <= 0 || r.Confidence > 1 {
				t.Errorf("rule %q: confidence %v out of range", r.ID, r.Confidence)
			}
			if r.Message == "" {
				t.Errorf("rule %q: empty message", r.ID)
			}
		}
	}
}

func findRule(t *testing.T, set []Rule, id string) Rule {
	t.Helper()
	for _, r := range set {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("rule %q not found", id)
	return Rule{}
}

func TestGrammarReplacements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ruleID string
		input  string
		match  string
		want   string
	}{
		{ruleID: "there-is-plural", input: "There is many issues here.", match: "There is many", want: "There are many"},
		{ruleID: "there-is-plural", input: "there is several ways.", match: "there is several", want: "there are several"},
		{ruleID: "modal-of", input: "You could of asked.", match: "could of", want: "could have"},
		{ruleID: "modal-of", input: "Should of known better.", match: "Should of", want: "Should have"},
		{ruleID: "plural-pronoun-was", input: "They was late.", match: "They was", want: "They were"},
		{ruleID: "singular-pronoun-dont", input: "She dont care.", match: "She dont", want: "She doesn't"},
		{ruleID: "a-before-vowel-sound", input: "That is a issue.", match: "a issue", want: "an issue"},
		{ruleID: "your-youre", input: "Your welcome!", match: "Your welcome", want: "You're welcome"},
		{ruleID: "double-negative", input: "I don't know nothing.", match: "don't know nothing", want: "don't know anything"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.ruleID+"/"+tc.match, func(t *testing.T) {
			t.Parallel()

			r := findRule(t, GrammarRules(), tc.ruleID)
			got := r.Pattern.FindString(tc.input)
			if got != tc.match {
				t.Fatalf("pattern matched %q, want %q", got, tc.match)
			}
			repl, ok := Apply(r.Replacement, got)
			if !ok {
				t.Fatal("rule offered no replacement")
			}
			if repl != tc.want {
				t.Errorf("replacement: got %q, want %q", repl, tc.want)
			}
		})
	}
}

func TestSpellingReplacements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "recieve", want: "receive"},
		{input: "Recieve", want: "Receive"},
		{input: "RECIEVE", want: "RECEIVE"},
		{input: "recieved", want: "received"},
		{input: "seperate", want: "separate"},
		{input: "seperately", want: "separately"},
		{input: "definately", want: "definitely"},
		{input: "occured", want: "occurred"},
		{input: "teh", want: "the"},
		{input: "Alot", want: "A lot"},
		{input: "untill", want: "until"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			var matched bool
			for _, r := range SpellingRules() {
				m := r.Pattern.FindString(tc.input)
				if m != tc.input {
					continue
				}
				matched = true
				repl, ok := Apply(r.Replacement, m)
				if !ok {
					t.Fatalf("rule %q offered no replacement", r.ID)
				}
				if repl != tc.want {
					t.Errorf("rule %q: got %q, want %q", r.ID, repl, tc.want)
				}
				break
			}
			if !matched {
				t.Fatalf("no spelling rule matched %q", tc.input)
			}
		})
	}
}

func TestSpellingRulesDoNotMatchCorrectForms(t *testing.T) {
	t.Parallel()

	for _, correct := range []string{"receive", "separate", "definitely", "the", "that", "which", "their"} {
		for _, r := range SpellingRules() {
			if m := r.Pattern.FindString(correct); m == correct {
				t.Errorf("rule %q matches the correct spelling %q", r.ID, correct)
			}
		}
	}
}

func TestStyleReplacements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ruleID string
		input  string
		match  string
		want   string
		flag   bool // flag-only rules return no replacement
	}{
		{ruleID: "passive-voice", input: "The memo was written by the team.", match: "was written by", flag: true},
		{ruleID: "passive-voice", input: "Mistakes were made by everyone.", match: "were made by", flag: true},
		{ruleID: "in-order-to", input: "We met in order to plan.", match: "in order to", want: "to"},
		{ruleID: "in-order-to", input: "In order to win, train.", match: "In order to", want: "To"},
		{ruleID: "due-to-the-fact-that", input: "due to the fact that it rained", match: "due to the fact that", want: "because"},
		{ruleID: "utilize", input: "We utilize tools.", match: "utilize", want: "use"},
		{ruleID: "utilize", input: "Utilizing the cache.", match: "Utilizing", want: "Using"},
		{ruleID: "make-a-decision", input: "We must make a decision soon.", match: "make a decision", want: "decide"},
		{ruleID: "very-good", input: "The food was very good.", match: "very good", want: "excellent"},
		{ruleID: "there-are-many", input: "There are many reasons.", match: "There are many", want: "Many"},
		{ruleID: "a-lot-of", input: "A lot of water.", match: "A lot of", want: "Many"},
		{ruleID: "basically", input: "Basically, it works.", match: "Basically, ", want: ""},
		{ruleID: "it-is-important", input: "It is important to note that costs rose.", match: "It is important to note that ", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.ruleID+"/"+strings.TrimSpace(tc.match), func(t *testing.T) {
			t.Parallel()

			r := findRule(t, StyleRules(), tc.ruleID)
			got := r.Pattern.FindString(tc.input)
			if got != tc.match {
				t.Fatalf("pattern matched %q, want %q", got, tc.match)
			}
			repl, ok := Apply(r.Replacement, got)
			if tc.flag {
				if ok {
					t.Fatalf("flag-only rule returned replacement %q", repl)
				}
				return
			}
			if !ok {
				t.Fatal("rule offered no replacement")
			}
			if repl != tc.want {
				t.Errorf("replacement: got %q, want %q", repl, tc.want)
			}
		})
	}
}

func TestProblematicRulesRequireValidation(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"there-are-many", "a-lot-of", "it-is-important", "basically"} {
		if r := findRule(t, StyleRules(), id); !r.RequiresValidation {
			t.Errorf("rule %q should require validation", id)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if Grammar.String() != "grammar" || Spelling.String() != "spelling" || Style.String() != "style" {
		t.Error("Kind.String mismatch")
	}
	b, err := Style.MarshalJSON()
	if err != nil || string(b) != `"style"` {
		t.Errorf("MarshalJSON: got %s, %v", b, err)
	}
	if _, err := Kind(42).MarshalJSON(); err == nil {
		t.Error("unknown kind marshaled without error")
	}
}
