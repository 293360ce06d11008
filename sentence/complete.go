package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kanishk-jain-01/wordwise-ai/tokenizer"
)

// subjectPronouns are words that act as a subject on their own, including the
// expletive "there" ("There are many issues") and bare quantifiers heading a
// noun phrase ("Many people came").
var subjectPronouns = map[string]bool{
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true, "this": true, "that": true, "these": true,
	"those": true, "there": true, "who": true, "someone": true,
	"something": true, "everyone": true, "everything": true, "nobody": true,
	"nothing": true, "one": true,
	"many": true, "some": true, "all": true, "most": true, "both": true,
	"several": true, "few": true,
}

// articles and possessives introduce a noun phrase; the following word is
// taken as the subject head.
var articles = map[string]bool{
	"a": true, "an": true, "the": true,
}

var possessives = map[string]bool{
	"my": true, "your": true, "his": true, "her": true, "its": true,
	"our": true, "their": true,
}

// commonVerbs is the fixed verb indicator list: auxiliaries, copulas, and
// high-frequency lexical verbs in their common inflections.
var commonVerbs = map[string]bool{
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "am": true,
	"have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "done": true,
	"will": true, "would": true, "shall": true, "should": true,
	"can": true, "could": true, "may": true, "might": true, "must": true,
	"go": true, "goes": true, "went": true, "gone": true,
	"make": true, "makes": true, "made": true,
	"take": true, "takes": true, "took": true, "taken": true,
	"get": true, "gets": true, "got": true,
	"see": true, "sees": true, "saw": true, "seen": true,
	"know": true, "knows": true, "knew": true, "known": true,
	"think": true, "thinks": true, "thought": true,
	"come": true, "comes": true, "came": true,
	"want": true, "wants": true, "wanted": true,
	"say": true, "says": true, "said": true,
	"need": true, "needs": true, "needed": true,
	"use": true, "uses": true, "used": true,
	"seem": true, "seems": true, "seemed": true,
	"look": true, "looks": true, "looked": true,
	"work": true, "works": true, "worked": true,
	"contain": true, "contains": true, "contained": true,
	"remain": true, "remains": true, "remained": true,
	"become": true, "becomes": true, "became": true,
	"include": true, "includes": true, "included": true,
	"exist": true, "exists": true, "existed": true,
	"explain": true, "explains": true, "explained": true,
	"help": true, "helps": true, "helped": true,
	"provide": true, "provides": true, "provided": true,
}

// subordinators open dependent clauses; a sentence starting with one and
// carrying no main clause is a fragment even when subject and verb are found.
var subordinators = map[string]bool{
	"because": true, "although": true, "while": true, "if": true,
	"since": true, "unless": true, "whereas": true, "whenever": true,
	"wherever": true, "though": true, "when": true, "after": true,
	"before": true, "until": true, "once": true, "as": true,
}

// Minimum lengths for the suffix-based verb detector, preventing short-word
// false positives ("red", "ring", "its").
const (
	minEdVerbLen  = 4
	minIngVerbLen = 5
	minSVerbLen   = 4
)

// IsCompleteSentence reports whether s reads as a complete sentence. It is
// the classifier behind Boundary.IsComplete, exposed for replacement
// validation: a proposed edit can be checked by reconstructing the affected
// sentence and re-running this predicate.
func IsCompleteSentence(s string) bool {
	return isComplete(s)
}

// IsVerb reports whether the lowercase word w is a verb by the conservative
// detector: a common-verb list member, or an "-ed"/"-ing" form meeting the
// length thresholds. The bare "-s" suffix is deliberately not consulted here
// because plural nouns would pass; callers that need the looser detector use
// sentence completeness instead.
func IsVerb(w string) bool {
	if commonVerbs[w] {
		return true
	}
	n := utf8.RuneCountInString(w)
	if n >= minEdVerbLen && strings.HasSuffix(w, "ed") {
		return true
	}
	return n >= minIngVerbLen && strings.HasSuffix(w, "ing")
}

// isComplete reports whether s reads as a complete sentence: terminal
// punctuation, at least two words, and both subject and verb indicators.
func isComplete(s string) bool {
	trimmed := strings.TrimRightFunc(s, unicode.IsSpace)
	if !endsTerminal(trimmed) {
		return false
	}

	words := lowerWords(trimmed)
	if len(words) < 2 {
		return false
	}

	return hasSubject(trimmed, words) && hasVerbIndicator(words)
}

// endsTerminal reports whether s ends with sentence-terminal punctuation.
func endsTerminal(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r == '.' || r == '!' || r == '?' || r == '…'
}

// lowerWords returns the lowercase word tokens of s.
func lowerWords(s string) []string {
	words := tokenizer.Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// hasSubject looks for a subject indicator: a subject pronoun, an article or
// possessive introducing a noun phrase, or a capitalized proper noun in a
// non-initial position.
func hasSubject(original string, words []string) bool {
	for i, w := range words {
		if subjectPronouns[w] {
			return true
		}
		if (articles[w] || possessives[w]) && i+1 < len(words) {
			return true
		}
	}

	// Proper noun: a title-case word that is not the sentence opener.
	caseWords := tokenizer.Words(original)
	for i := 1; i < len(caseWords); i++ {
		first, _ := utf8.DecodeRuneInString(caseWords[i])
		if unicode.IsUpper(first) {
			return true
		}
	}

	return false
}

// hasVerbIndicator looks for a verb: a common-verb list member, or a token
// with a verbal suffix subject to length thresholds. Plural-looking "-ss"
// endings are excluded ("class", "issues" does still pass; the list-based
// detector is the reliable signal).
func hasVerbIndicator(words []string) bool {
	for _, w := range words {
		if isVerbLike(w) {
			return true
		}
	}
	return false
}

// isVerbLike reports whether a single lowercase word looks like a verb.
func isVerbLike(w string) bool {
	if commonVerbs[w] {
		return true
	}
	n := utf8.RuneCountInString(w)
	if n >= minEdVerbLen && strings.HasSuffix(w, "ed") {
		return true
	}
	if n >= minIngVerbLen && strings.HasSuffix(w, "ing") {
		return true
	}
	if n >= minSVerbLen && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
		return true
	}
	return false
}

// isSubordinateFragment reports whether s opens with a subordinating
// conjunction and contains no comma-delimited main clause, e.g.
// "Because it rained." but not "Because it rained, we stayed."
func isSubordinateFragment(s string) bool {
	words := lowerWords(s)
	if len(words) == 0 || !subordinators[words[0]] {
		return false
	}
	return !strings.Contains(s, ",")
}
