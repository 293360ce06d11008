package sentence

import (
	"strings"

	"github.com/kanishk-jain-01/wordwise-ai/tokenizer"
)

// Fraction of a sentence's length treated as its start and end zones.
const edgeFraction = 0.10

// contextWordWindow is how many words before and after a span MetadataAt collects.
const contextWordWindow = 3

// PositionAt buckets the byte offset within its owning sentence: the first
// 10% of the sentence is Start, the last 10% is End, everything between is
// Middle. Offsets that fall outside every detected sentence (inter-sentence
// whitespace, empty input) are Standalone.
func PositionAt(text string, offset int) Position {
	if offset < 0 || offset >= len(text) {
		return Standalone
	}

	for _, b := range Split(text) {
		if offset < b.Start || offset >= b.End {
			continue
		}
		length := b.End - b.Start
		if length <= 0 {
			return Standalone
		}
		rel := float64(offset-b.Start) / float64(length)
		switch {
		case rel < edgeFraction:
			return Start
		case rel >= 1-edgeFraction:
			return End
		default:
			return Middle
		}
	}

	return Standalone
}

// MetadataAt computes the context metadata for the span
// text[offset : offset+length]. Out-of-range spans are clamped. The result
// is derived on demand; callers may cache it but nothing here does.
func MetadataAt(text string, offset, length int) Metadata {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	end := offset + length
	if end > len(text) {
		end = len(text)
	}

	meta := Metadata{
		Position:    PositionAt(text, offset),
		WordsBefore: wordsEndingBefore(text[:offset]),
		WordsAfter:  wordsStartingAfter(text[end:]),
	}

	owner, ok := owningBoundary(text, offset)
	if ok {
		meta.SentenceStart = spanAtSentenceStart(text, owner, offset)
		meta.SentenceEnd = spanAtSentenceEnd(owner, end)

		paraStart, paraEnd := paragraphBounds(text, owner.Start)
		meta.ParagraphStart = owner.Start <= firstContentOffset(text, paraStart)
		meta.ParagraphEnd = owner.End >= lastContentOffset(text, paraEnd)
	}

	return meta
}

// owningBoundary finds the sentence containing the offset.
func owningBoundary(text string, offset int) (Boundary, bool) {
	for _, b := range Split(text) {
		if offset >= b.Start && offset < b.End {
			return b, true
		}
	}
	return Boundary{}, false
}

// spanAtSentenceStart reports whether only whitespace separates the sentence
// start from the span.
func spanAtSentenceStart(text string, b Boundary, offset int) bool {
	return strings.TrimSpace(text[b.Start:offset]) == ""
}

// spanAtSentenceEnd reports whether only whitespace and terminal punctuation
// follow the span within its sentence.
func spanAtSentenceEnd(b Boundary, end int) bool {
	if end >= b.End {
		return true
	}
	rest := strings.TrimSpace(b.Text[end-b.Start:])
	return strings.Trim(rest, ".!?…") == ""
}

// paragraphBounds returns the byte range of the paragraph containing offset.
// Paragraphs are separated by blank lines.
func paragraphBounds(text string, offset int) (int, int) {
	start := 0
	if idx := strings.LastIndex(text[:offset], "\n\n"); idx >= 0 {
		start = idx + 2
	}
	end := len(text)
	if idx := strings.Index(text[offset:], "\n\n"); idx >= 0 {
		end = offset + idx
	}
	return start, end
}

// firstContentOffset returns the offset of the first non-space byte at or
// after from.
func firstContentOffset(text string, from int) int {
	for i := from; i < len(text); i++ {
		if !isSpaceByte(text[i]) {
			return i
		}
	}
	return len(text)
}

// lastContentOffset returns the offset just past the last non-space byte at
// or before upto.
func lastContentOffset(text string, upto int) int {
	for i := upto; i > 0; i-- {
		if !isSpaceByte(text[i-1]) {
			return i
		}
	}
	return 0
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// wordsEndingBefore returns up to contextWordWindow trailing words of s.
func wordsEndingBefore(s string) []string {
	words := tokenizer.Words(s)
	if len(words) > contextWordWindow {
		words = words[len(words)-contextWordWindow:]
	}
	return words
}

// wordsStartingAfter returns up to contextWordWindow leading words of s.
func wordsStartingAfter(s string) []string {
	words := tokenizer.Words(s)
	if len(words) > contextWordWindow {
		words = words[:contextWordWindow]
	}
	return words
}
