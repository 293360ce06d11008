// Package textcase provides case-pattern helpers shared by the spelling and
// style packages: transferring the case shape of an original word onto a
// suggested replacement, and classifying words as title-case or all-upper.
//
// All functions are safe for concurrent use.
package textcase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsTitleCase reports whether s starts with an uppercase rune and contains at
// least one lowercase letter afterwards. Single runes and all-caps words
// (acronyms, shouting) are not title-case.
func IsTitleCase(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return false
	}
	rest := s[size:]
	if rest == "" {
		return false
	}
	for _, c := range rest {
		if unicode.IsLetter(c) && !unicode.IsUpper(c) {
			return true
		}
	}
	return false
}

// IsAllUpper reports whether every letter in s is uppercase and s contains
// at least one letter.
func IsAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// ContainsDigit reports whether s contains any decimal digit.
func ContainsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// IsAlphabetic reports whether s is non-empty and consists entirely of letters.
func IsAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// UpperFirst returns s with its first rune uppercased.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(s[size:])
	return b.String()
}

// LowerFirst returns s with its first rune lowercased.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToLower(r))
	b.WriteString(s[size:])
	return b.String()
}

// ApplyCase transfers the case pattern of original onto replacement.
// Three patterns are recognized: all-upper, first-rune-upper, and lowercase.
func ApplyCase(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	if IsAllUpper(original) {
		return strings.ToUpper(replacement)
	}
	first, _ := utf8.DecodeRuneInString(original)
	if unicode.IsUpper(first) {
		return UpperFirst(replacement)
	}
	return replacement
}
