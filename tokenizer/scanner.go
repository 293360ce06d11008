package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// scan splits s rune by rune into tokens. The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - whitespace merging
//   - number grouping (comma as thousand separator, dot as decimal point)
//   - word scanning (internal single hyphens and apostrophes join)
//   - punctuation (runs of the same mark merge, e.g. "..." and "--")
//   - default: Symbol
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if unicode.IsSpace(r) {
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})
			continue
		}

		if unicode.IsDigit(r) {
			tok := scanNumber(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		if unicode.IsLetter(r) {
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		if unicode.IsPunct(r) || unicode.IsSymbol(r) && isSentenceMark(r) {
			start := i
			i += size
			// Merge runs of the same mark ("...", "???", "--").
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if nr != r {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})
			continue
		}

		tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
		i += size
	}

	return tokens
}

// isSentenceMark reports whether r is a mark the scanner treats as punctuation
// even though unicode classifies it as a symbol.
func isSentenceMark(r rune) bool {
	return r == '`' || r == '´'
}

// scanNumber reads a number token starting at pos.
// Handles thousand-separator commas (groups of exactly 3) and a decimal point.
func scanNumber(s string, pos int) Token {
	i := pos

	for i < len(s) && isDigitByte(s[i]) {
		i++
	}

	// Thousand-separator commas: \d{1,3}(,\d{3})+
	for i < len(s) && s[i] == ',' {
		if i+4 <= len(s) && isDigitByte(s[i+1]) && isDigitByte(s[i+2]) && isDigitByte(s[i+3]) {
			if i+4 >= len(s) || !isDigitByte(s[i+4]) {
				i += 4
				continue
			}
		}
		break
	}

	// Decimal point: must be followed by at least one digit.
	if i < len(s) && s[i] == '.' && i+1 < len(s) && isDigitByte(s[i+1]) {
		i++
		for i < len(s) && isDigitByte(s[i]) {
			i++
		}
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Number}
}

// scanWord reads a word token starting at pos.
// A word begins with a letter and may contain digits ("A4"), a single hyphen
// between letters/digits ("well-known"), and apostrophes between letters
// ("don't", "it’s"; both U+0027 and U+2019 are accepted).
func scanWord(s string, pos int) Token {
	i := alnumRun(s, pos)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if r == '-' {
			next := i + size
			if next < len(s) {
				nr, _ := utf8.DecodeRuneInString(s[next:])
				if nr != '-' && (unicode.IsLetter(nr) || unicode.IsDigit(nr)) {
					i = alnumRun(s, next)
					continue
				}
			}
			break
		}

		if r == '\'' || r == '’' {
			next := i + size
			if next < len(s) {
				nr, _ := utf8.DecodeRuneInString(s[next:])
				prev, _ := utf8.DecodeLastRuneInString(s[pos:i])
				if unicode.IsLetter(nr) && unicode.IsLetter(prev) {
					i = next
					for i < len(s) {
						lr, ls := utf8.DecodeRuneInString(s[i:])
						if !unicode.IsLetter(lr) {
							break
						}
						i += ls
					}
					continue
				}
			}
			break
		}

		break
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// alnumRun consumes a contiguous run of letters and digits starting at pos
// and returns the byte offset just past it.
func alnumRun(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		pos += size
	}
	return pos
}

// isDigitByte reports whether b is an ASCII digit.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
