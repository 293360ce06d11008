package spelling

import "strings"

// phoneticCode reduces a word to a simplified sound signature: lowercase,
// doubled letters collapsed, voiced/unvoiced consonant pairs merged
// (c/k -> k, s/z -> s, p/b -> b, t/d -> t, f/ph -> f), vowels stripped.
// Words that sound alike produce equal codes ("recieve" and "receive" both
// become "rkv").
func phoneticCode(word string) string {
	lower := strings.ToLower(word)
	lower = strings.ReplaceAll(lower, "ph", "f")

	var b strings.Builder
	b.Grow(len(lower))
	var prev rune
	for _, r := range lower {
		if r < 'a' || r > 'z' {
			continue
		}
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			continue
		case 'c', 'q':
			r = 'k'
		case 'z':
			r = 's'
		case 'p':
			r = 'b'
		case 'd':
			r = 't'
		}
		if r == prev {
			continue // collapse doubles after normalization
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// phoneticScore compares the phonetic codes of two words: 1.0 for equal
// codes, otherwise decaying with the edit distance between the codes.
func phoneticScore(a, b string) float64 {
	ca, cb := phoneticCode(a), phoneticCode(b)
	if ca == cb {
		return 1.0
	}
	return 1 / (1 + float64(unitDistance(ca, cb)))
}

// unitDistance is the plain unit-cost edit distance used for comparing the
// short phonetic codes.
func unitDistance(a, b string) int {
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
