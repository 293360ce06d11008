// Package sentence splits English text into sentences and answers positional
// questions about byte offsets within them.
//
// The package provides three API layers:
//
//   - Split returns []Boundary with byte offsets, completeness, and fragment
//     classification. The invariant text[b.Start:b.End] == b.Text holds for
//     every boundary.
//   - PositionAt buckets an offset as Start, Middle, End, or Standalone
//     relative to its owning sentence.
//   - MetadataAt combines sentence position, paragraph boundaries, and the
//     surrounding words into a Metadata value for replacement validation.
//
// Sentence boundaries are detected at runs of terminal punctuation (. ! ?)
// followed by whitespace or end of input. A built-in abbreviation list
// (dr., mr., etc., inc., …) and a single-letter initial check suppress false
// breaks. Runs like "!!!" and "..." are treated as a single terminal mark.
//
// Completeness is a heuristic: a sentence is complete when it ends in
// terminal punctuation, has at least two words, and both a subject indicator
// and a verb indicator are found. Fragments are the complement, plus
// sentences opened by a subordinating conjunction with no main clause.
//
// All functions are stateless and safe for concurrent use.
//
// Known limitations:
//
//   - Quote and parenthesis nesting is not tracked; terminal punctuation
//     inside quotes may cause false breaks.
//   - An abbreviation at the true end of a sentence ("... birds, cats, etc.")
//     suppresses that break.
//   - The subject/verb detectors are word-list heuristics, not a parser.
package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Boundary is one detected sentence with its byte range in the input.
type Boundary struct {
	Start      int    // byte offset, inclusive
	End        int    // byte offset, exclusive
	Text       string // text[Start:End], including trailing punctuation
	IsComplete bool   // subject + verb found and terminally punctuated
	IsFragment bool   // complement of IsComplete, or subordinate opener
}

// Position classifies where an offset falls within its owning sentence.
type Position int

const (
	Start      Position = iota // first 10% of the sentence
	Middle                     // between the first and last 10%
	End                        // last 10% of the sentence
	Standalone                 // not inside any detected sentence
)

// String returns the name of the position.
func (p Position) String() string {
	switch p {
	case Start:
		return "start"
	case Middle:
		return "middle"
	case End:
		return "end"
	case Standalone:
		return "standalone"
	default:
		return "unknown"
	}
}

// Metadata describes the textual surroundings of a span, computed on demand
// for replacement validation and context-aware style rules.
type Metadata struct {
	Position       Position // sentence-relative bucket of the span's start
	SentenceStart  bool     // span begins at the first word of its sentence
	SentenceEnd    bool     // span ends at the last word of its sentence
	ParagraphStart bool     // span's sentence opens its paragraph
	ParagraphEnd   bool     // span's sentence closes its paragraph
	WordsBefore    []string // up to 3 words immediately before the span
	WordsAfter     []string // up to 3 words immediately after the span
}

// abbreviations holds lowercase abbreviated words (without the trailing dot)
// whose period does not terminate a sentence.
var abbreviations = map[string]bool{
	"dr": true, "mr": true, "mrs": true, "ms": true, "prof": true,
	"vs": true, "etc": true, "inc": true, "ltd": true, "st": true,
	"approx": true, "phd": true, "jr": true, "sr": true, "dept": true,
	"fig": true, "vol": true, "est": true, "eg": true, "ie": true,
	"hon": true, "rev": true, "gen": true, "col": true, "capt": true,
	"lt": true, "sgt": true,
}

// Split divides text into sentences. Adjacent boundaries never overlap and
// each satisfies text[b.Start:b.End] == b.Text. Whitespace between sentences
// belongs to neither. Empty input yields nil; input with no terminal
// punctuation yields a single boundary classified as a fragment unless the
// completeness heuristic passes.
func Split(text string) []Boundary {
	if text == "" {
		return nil
	}

	var bounds []Boundary
	sentStart := -1 // -1 means we are between sentences

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		if sentStart < 0 {
			if unicode.IsSpace(r) {
				i += size
				continue
			}
			sentStart = i
		}

		if r == '.' || r == '!' || r == '?' || r == '…' {
			// Consume the whole punctuation cluster: "...", "?!", "!!!".
			j := i + size
			for j < len(text) {
				nr, ns := utf8.DecodeRuneInString(text[j:])
				if nr == '.' || nr == '!' || nr == '?' || nr == '…' {
					j += ns
				} else {
					break
				}
			}

			// A single period after an abbreviation or initial is not terminal.
			if j == i+1 && text[i] == '.' && nonTerminalPeriod(text, i) {
				i = j
				continue
			}

			if j >= len(text) || followedBySpace(text, j) {
				bounds = append(bounds, newBoundary(text, sentStart, j))
				sentStart = -1
			}
			i = j
			continue
		}

		// A blank line ends the sentence even without punctuation.
		if r == '\n' && strings.HasPrefix(text[i+1:], "\n") {
			bounds = append(bounds, newBoundary(text, sentStart, i))
			sentStart = -1
			i += size
			continue
		}

		i += size
	}

	if sentStart >= 0 && sentStart < len(text) {
		end := len(text)
		// Trim trailing whitespace from the final sentence.
		for end > sentStart {
			r, size := utf8.DecodeLastRuneInString(text[:end])
			if !unicode.IsSpace(r) {
				break
			}
			end -= size
		}
		if end > sentStart {
			bounds = append(bounds, newBoundary(text, sentStart, end))
		}
	}

	return bounds
}

// newBoundary builds a Boundary for text[start:end] and classifies it.
func newBoundary(text string, start, end int) Boundary {
	t := text[start:end]
	complete := isComplete(t)
	return Boundary{
		Start:      start,
		End:        end,
		Text:       t,
		IsComplete: complete,
		IsFragment: !complete || isSubordinateFragment(t),
	}
}

// followedBySpace reports whether position pos is at a whitespace rune.
func followedBySpace(text string, pos int) bool {
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return unicode.IsSpace(r)
}

// nonTerminalPeriod reports whether the period at dotPos follows a known
// abbreviation or a single-letter initial.
func nonTerminalPeriod(text string, dotPos int) bool {
	word := wordBefore(text, dotPos)
	if word == "" {
		return false
	}
	if utf8.RuneCountInString(word) == 1 && isLetterString(word) {
		return true // an initial, e.g. "J. Smith"
	}
	return abbreviations[strings.ToLower(word)]
}

// wordBefore returns the run of letters immediately preceding byte position pos.
func wordBefore(text string, pos int) string {
	i := pos
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if !unicode.IsLetter(r) {
			break
		}
		i -= size
	}
	return text[i:pos]
}

// isLetterString reports whether s consists entirely of letters.
func isLetterString(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
