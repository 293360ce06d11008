// Package style implements the context-aware style rule processor. A small
// set of style rules produce grammatically broken text when applied as bare
// pattern replacements ("There are many issues." must not become "Many
// issues." when no verb survives the cut); this package wraps those rules
// with sentence-position and grammatical checks that may decline to suggest
// anything for a given occurrence.
//
// A Processor is immutable after construction and safe for concurrent use.
package style

import (
	"regexp"
	"strings"

	"github.com/kanishk-jain-01/wordwise-ai/internal/textcase"
	"github.com/kanishk-jain-01/wordwise-ai/sentence"
)

// ContextualRule is a style rule whose replacement depends on the textual
// surroundings of each match. Replace returns the replacement string and
// true, or ("", false) to suggest nothing for this occurrence.
type ContextualRule struct {
	ID           string
	Pattern      *regexp.Regexp
	Message      string
	ShortMessage string
	Category     string
	Confidence   float64
	Replace      func(match string, meta sentence.Metadata) (string, bool)
	// RequiresValidation routes accepted matches through the suggestion
	// validator before they reach the caller.
	RequiresValidation bool
}

// Match is one accepted contextual suggestion.
type Match struct {
	RuleID             string
	Offset             int // byte offset into the processed text
	Length             int
	Text               string // the matched substring
	Replacement        string
	Message            string
	ShortMessage       string
	Category           string
	Confidence         float64
	RequiresValidation bool
}

// Processor scans text with a fixed set of contextual rules.
type Processor struct {
	rules []ContextualRule
}

// NewProcessor returns a Processor with the default contextual rule set.
func NewProcessor() *Processor {
	return &Processor{rules: defaultContextualRules()}
}

// NewProcessorWithRules returns a Processor over an explicit rule set.
func NewProcessorWithRules(rules []ContextualRule) *Processor {
	return &Processor{rules: rules}
}

// Rules returns the processor's rule set. Callers must not mutate it.
func (p *Processor) Rules() []ContextualRule { return p.rules }

// Process runs every contextual rule over text and returns the accepted
// matches in (rule order, match order). Declined occurrences produce
// nothing.
func (p *Processor) Process(text string) []Match {
	var out []Match
	for i := range p.rules {
		rule := &p.rules[i]
		for _, loc := range rule.Pattern.FindAllStringIndex(text, -1) {
			matched := text[loc[0]:loc[1]]
			meta := sentence.MetadataAt(text, loc[0], loc[1]-loc[0])
			repl, ok := rule.Replace(matched, meta)
			if !ok {
				continue
			}
			out = append(out, Match{
				RuleID:             rule.ID,
				Offset:             loc[0],
				Length:             loc[1] - loc[0],
				Text:               matched,
				Replacement:        repl,
				Message:            rule.Message,
				ShortMessage:       rule.ShortMessage,
				Category:           rule.Category,
				Confidence:         rule.Confidence,
				RequiresValidation: rule.RequiresValidation,
			})
		}
	}
	return out
}

// uncountableNouns head "a lot of X" toward "much"; anything plural heads
// toward "many"; all other heads are left alone.
var uncountableNouns = map[string]bool{
	"water": true, "money": true, "information": true, "advice": true,
	"research": true, "knowledge": true, "equipment": true, "furniture": true,
	"time": true, "work": true, "food": true, "music": true, "traffic": true,
	"evidence": true, "feedback": true, "progress": true, "luggage": true,
}

var irregularPlurals = map[string]bool{
	"people": true, "children": true, "men": true, "women": true,
	"feet": true, "teeth": true, "mice": true,
}

func defaultContextualRules() []ContextualRule {
	return []ContextualRule{
		{
			ID:                 "there-are-many-ctx",
			Pattern:            regexp.MustCompile(`(?i)\bthere\s+are\s+many\b`),
			Message:            `"There are many X ..." is tighter as "Many X ...".`,
			ShortMessage:       "Wordiness",
			Category:           "wordiness",
			Confidence:         0.7,
			Replace:            thereAreManyReplacement,
			RequiresValidation: true,
		},
		{
			ID:                 "a-lot-of-ctx",
			Pattern:            regexp.MustCompile(`(?i)\ba\s+lot\s+of\b`),
			Message:            `"A lot of" is informal; use "much" or "many" depending on the noun.`,
			ShortMessage:       "Informal quantifier",
			Category:           "word-choice",
			Confidence:         0.7,
			Replace:            aLotOfReplacement,
			RequiresValidation: true,
		},
		{
			ID:                 "it-is-important-ctx",
			Pattern:            regexp.MustCompile(`(?i)\bit\s+is\s+important\s+to\s+note\s+that\s+([A-Za-z]+)`),
			Message:            `"It is important to note that" can be deleted outright.`,
			ShortMessage:       "Filler",
			Category:           "wordiness",
			Confidence:         0.65,
			Replace:            itIsImportantReplacement,
			RequiresValidation: true,
		},
		{
			ID:                 "basically-ctx",
			Pattern:            regexp.MustCompile(`(?i)\bbasically\b,?\s?([A-Za-z]+)?`),
			Message:            `"Basically" adds nothing; delete it.`,
			ShortMessage:       "Filler",
			Category:           "filler",
			Confidence:         0.75,
			Replace:            basicallyReplacement,
			RequiresValidation: true,
		},
	}
}

// thereAreManyReplacement rewrites "There are many" to "Many" only at a
// sentence start, and only when a verb survives among the words that follow;
// otherwise the cut would leave a fragment.
func thereAreManyReplacement(match string, meta sentence.Metadata) (string, bool) {
	if !meta.SentenceStart {
		return "", false
	}
	verbFollows := false
	for _, w := range meta.WordsAfter {
		if sentence.IsVerb(w) {
			verbFollows = true
			break
		}
	}
	if !verbFollows {
		return "", false
	}
	return textcase.ApplyCase(match, "many"), true
}

// aLotOfReplacement picks "much" or "many" from the head noun after the
// phrase, or declines when the head is ambiguous.
func aLotOfReplacement(match string, meta sentence.Metadata) (string, bool) {
	if len(meta.WordsAfter) == 0 {
		return "", false
	}
	head := strings.ToLower(meta.WordsAfter[0])
	switch {
	case uncountableNouns[head]:
		return textcase.ApplyCase(match, "much"), true
	case irregularPlurals[head],
		len(head) >= 4 && strings.HasSuffix(head, "s") && !strings.HasSuffix(head, "ss"):
		return textcase.ApplyCase(match, "many"), true
	default:
		return "", false
	}
}

// itIsImportantReplacement deletes the filler at a sentence start when the
// remainder is substantial, recapitalizing the word the match swallowed.
func itIsImportantReplacement(match string, meta sentence.Metadata) (string, bool) {
	if !meta.SentenceStart {
		return "", false
	}
	fields := strings.Fields(match)
	if len(fields) == 0 {
		return "", false
	}
	first := fields[len(fields)-1] // the captured word after "that"
	remainder := first
	for _, w := range meta.WordsAfter {
		remainder += " " + w
	}
	if len(remainder) < 10 || !textcase.IsAlphabetic(first[:1]) {
		return "", false
	}
	return textcase.UpperFirst(first), true
}

// basicallyReplacement always removes the filler; the span swallows the
// following word so a sentence-start deletion can recapitalize it.
func basicallyReplacement(match string, meta sentence.Metadata) (string, bool) {
	fields := strings.Fields(match)
	trailing := ""
	if len(fields) > 1 {
		trailing = fields[len(fields)-1]
	}
	if meta.SentenceStart {
		return textcase.UpperFirst(trailing), true
	}
	return trailing, true
}
