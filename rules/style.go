package rules

import (
	"strings"

	"github.com/kanishk-jain-01/wordwise-ai/internal/textcase"
)

var styleDefs = []definition{
	{
		id:           "passive-voice",
		pattern:      `(?i)\b(was|were|is|are|am|been|being)\s+([a-z]{2,}ed|written|given|taken|made|done|seen|known|found|told|shown|sent|built|kept|held|brought|caught|taught|bought|thought|paid|said|left|lost|met|read|set|put|chosen|spoken|broken|driven|eaten|forgotten|hidden|thrown|drawn|grown|worn|understood|heard|meant|sold|spent)\s+by\b`,
		message:      "This sentence is in the passive voice. Consider naming the actor as the subject.",
		shortMessage: "Passive voice",
		category:     "passive-voice",
		confidence:   0.6,
		replacement:  nil, // flag only
	},
	{
		id:           "in-order-to",
		pattern:      `(?i)\bin\s+order\s+to\b`,
		message:      `"In order to" can almost always be shortened to "to".`,
		shortMessage: "Wordiness",
		category:     "wordiness",
		confidence:   0.85,
		replacement:  preserveCase("to"),
	},
	{
		id:           "due-to-the-fact-that",
		pattern:      `(?i)\bdue\s+to\s+the\s+fact\s+that\b`,
		message:      `"Due to the fact that" is a wordy way of saying "because".`,
		shortMessage: "Wordiness",
		category:     "wordiness",
		confidence:   0.85,
		replacement:  preserveCase("because"),
	},
	{
		id:           "at-this-point-in-time",
		pattern:      `(?i)\bat\s+this\s+point\s+in\s+time\b`,
		message:      `"At this point in time" means "now".`,
		shortMessage: "Wordiness",
		category:     "wordiness",
		confidence:   0.85,
		replacement:  preserveCase("now"),
	},
	{
		id:           "utilize",
		pattern:      `(?i)\butiliz(e|es|ed|ing)\b`,
		message:      `"Utilize" rarely says more than "use".`,
		shortMessage: "Word choice",
		category:     "word-choice",
		confidence:   0.7,
		replacement: Derived(func(match string) string {
			return utilizeToUse(match)
		}),
	},
	{
		id:           "make-a-decision",
		pattern:      `(?i)\bmake\s+a\s+decision\b`,
		message:      `"Make a decision" hides the verb; write "decide".`,
		shortMessage: "Nominalization",
		category:     "nominalization",
		confidence:   0.75,
		replacement:  preserveCase("decide"),
	},
	{
		id:           "give-consideration-to",
		pattern:      `(?i)\bgive\s+consideration\s+to\b`,
		message:      `"Give consideration to" hides the verb; write "consider".`,
		shortMessage: "Nominalization",
		category:     "nominalization",
		confidence:   0.75,
		replacement:  preserveCase("consider"),
	},
	{
		id:           "very-good",
		pattern:      `(?i)\bvery\s+good\b`,
		message:      `"Very good" can be strengthened to a single word.`,
		shortMessage: "Weak intensifier",
		category:     "strengthen",
		confidence:   0.7,
		replacement:  preserveCase("excellent"),
	},
	{
		id:           "very-important",
		pattern:      `(?i)\bvery\s+important\b`,
		message:      `"Very important" can be strengthened to a single word.`,
		shortMessage: "Weak intensifier",
		category:     "strengthen",
		confidence:   0.7,
		replacement:  preserveCase("crucial"),
	},

	// The rules below are unsafe as bare pattern replacements; the engine
	// routes them through the context-aware processor, which may decline to
	// suggest anything. The replacements here are the plain-match fallback.
	{
		id:           "there-are-many",
		pattern:      `(?i)\bthere\s+are\s+many\b`,
		message:      `"There are many X that ..." is often tighter as "Many X ...".`,
		shortMessage: "Wordiness",
		category:     "wordiness",
		confidence:   0.55,
		replacement:  Literal("Many"),
		validate:     true,
	},
	{
		id:           "a-lot-of",
		pattern:      `(?i)\ba\s+lot\s+of\b`,
		message:      `"A lot of" is informal; use "many" or "much" depending on the noun.`,
		shortMessage: "Informal quantifier",
		category:     "word-choice",
		confidence:   0.55,
		replacement:  preserveCase("many"),
		validate:     true,
	},
	{
		id:           "it-is-important",
		pattern:      `(?i)\bit\s+is\s+important\s+to\s+note\s+that\s+`,
		message:      `"It is important to note that" can usually be deleted outright.`,
		shortMessage: "Filler",
		category:     "wordiness",
		confidence:   0.5,
		replacement:  Literal(""),
		validate:     true,
	},
	{
		id:           "basically",
		pattern:      `(?i)\bbasically\b,?\s?`,
		message:      `"Basically" adds nothing; delete it.`,
		shortMessage: "Filler",
		category:     "filler",
		confidence:   0.6,
		replacement:  Literal(""),
		validate:     true,
	},
}

var utilizeForms = map[string]string{
	"utilize": "use", "utilizes": "uses", "utilized": "used", "utilizing": "using",
}

// utilizeToUse maps each inflection of "utilize" onto the same inflection
// of "use", preserving case.
func utilizeToUse(match string) string {
	if fixed, ok := utilizeForms[strings.ToLower(match)]; ok {
		return textcase.ApplyCase(match, fixed)
	}
	return match
}
