package rules

import (
	"strings"

	"github.com/kanishk-jain-01/wordwise-ai/internal/textcase"
)

// swapWords returns a Derived replacement that rewrites specific words inside
// the matched text (matched case-insensitively, case shape preserved) and
// normalizes interior whitespace to single spaces.
func swapWords(repl map[string]string) Derived {
	return func(match string) string {
		parts := strings.Fields(match)
		for i, p := range parts {
			if fixed, ok := repl[strings.ToLower(p)]; ok {
				parts[i] = textcase.ApplyCase(p, fixed)
			}
		}
		return strings.Join(parts, " ")
	}
}

var grammarDefs = []definition{
	{
		id:           "there-is-plural",
		pattern:      `(?i)\bthere\s+is\s+(many|several|numerous|few|lots)\b`,
		message:      `The verb "is" does not agree with the plural quantifier that follows; use "are".`,
		shortMessage: "Subject-verb agreement",
		category:     "subject-verb-agreement",
		confidence:   0.9,
		replacement:  swapWords(map[string]string{"is": "are"}),
	},
	{
		id:           "modal-of",
		pattern:      `(?i)\b(could|would|should|must|might)\s+of\b`,
		message:      `"Of" after a modal verb is a mistranscription of "have".`,
		shortMessage: "Modal + of",
		category:     "modal-verb",
		confidence:   0.95,
		replacement:  swapWords(map[string]string{"of": "have"}),
	},
	{
		id:           "plural-pronoun-was",
		pattern:      `(?i)\b(they|we|you)\s+was\b`,
		message:      `Plural pronouns take "were", not "was".`,
		shortMessage: "Subject-verb agreement",
		category:     "subject-verb-agreement",
		confidence:   0.9,
		replacement:  swapWords(map[string]string{"was": "were"}),
	},
	{
		id:           "singular-pronoun-dont",
		pattern:      `(?i)\b(he|she|it)\s+don'?t\b`,
		message:      `Singular pronouns take "doesn't", not "don't".`,
		shortMessage: "Subject-verb agreement",
		category:     "subject-verb-agreement",
		confidence:   0.9,
		replacement:  swapWords(map[string]string{"don't": "doesn't", "dont": "doesn't"}),
	},
	{
		id:           "a-before-vowel-sound",
		pattern:      `(?i)\ba\s+(apple|hour|honest|idea|umbrella|error|example|issue|item|argument|orange|elephant|heir)\b`,
		message:      `Use "an" before a word that starts with a vowel sound.`,
		shortMessage: "Article choice",
		category:     "article",
		confidence:   0.85,
		replacement:  swapWords(map[string]string{"a": "an"}),
	},
	{
		id:           "your-youre",
		pattern:      `(?i)\byour\s+(welcome|wrong|right|going|coming|doing)\b`,
		message:      `"Your" is possessive; the contraction of "you are" is "you're".`,
		shortMessage: "Your / you're",
		category:     "homophone",
		confidence:   0.8,
		replacement:  swapWords(map[string]string{"your": "you're"}),
	},
	{
		id:           "double-negative",
		pattern:      `(?i)\b(don't|doesn't|didn't|can't|won't|couldn't|wouldn't)\s+(know|have|want|need|see|do)\s+(nothing|nobody|nowhere|none)\b`,
		message:      `Double negatives cancel each other; use the "any-" form.`,
		shortMessage: "Double negative",
		category:     "double-negative",
		confidence:   0.8,
		replacement: swapWords(map[string]string{
			"nothing": "anything",
			"nobody":  "anybody",
			"nowhere": "anywhere",
			"none":    "any",
		}),
	},
}
