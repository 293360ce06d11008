// Package tokenizer splits English text into word-level tokens with byte
// offsets.
//
// The package provides two API layers:
//
//   - Structured: Tokens returns []Token with byte offsets and type
//     metadata. The invariant s[t.Start:t.End] == t.Text holds for every
//     token, and concatenating all token texts reconstructs the original
//     string.
//
//   - Convenience: Words returns []string for callers that only need the
//     word texts.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Contractions are kept as a single Word token ("don't"), including the
//     apostrophe; callers that need the parts must split themselves.
//   - Numbers use the English convention: dot as decimal separator, comma
//     as thousand separator.
package tokenizer

import "fmt"

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // alphabetic word, including internal hyphens and apostrophes
	Number                       // digits with optional decimal point or thousand-separator commas
	Punctuation                  // punctuation marks: . , ! ? : ; ( ) etc.
	Space                        // contiguous whitespace (spaces, tabs, newlines)
	Symbol                       // everything else: emoji, box drawing, math symbols
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // the token text
	Start int       // byte offset in the original string (inclusive)
	End   int       // byte offset in the original string (exclusive)
	Type  TokenType // classification of the token
}

// String returns a debug representation, e.g. Word("hello")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokens splits s into tokens with metadata.
// The byte offset invariant s[t.Start:t.End] == t.Text holds for every token,
// and concatenating all token texts reconstructs s.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Words returns only Word-type token texts from s.
// For offsets and other token types, use Tokens and filter by Type.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := scan(s)
	words := make([]string, 0, len(tokens)/2)
	for _, t := range tokens {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}
