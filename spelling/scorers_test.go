package spelling

import (
	"math"
	"testing"
)

func TestKeyDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b byte
		want int
	}{
		{name: "same key", a: 'h', b: 'h', want: 0},
		{name: "horizontal neighbors", a: 'g', b: 'h', want: 1},
		{name: "vertical neighbors", a: 'h', b: 'y', want: 1},
		{name: "lower row neighbor", a: 'h', b: 'n', want: 1},
		{name: "diagonal is two", a: 'h', b: 'u', want: 2},
		{name: "far apart", a: 'q', b: 'p', want: 9},
		{name: "case folded", a: 'G', b: 'h', want: 1},
		{name: "off layout", a: '3', b: 'h', want: unknownKeyDistance},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := keyDistance(tc.a, tc.b); got != tc.want {
				t.Errorf("keyDistance(%q, %q): got %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if got := keyDistance(tc.b, tc.a); got != tc.want {
				t.Errorf("keyDistance(%q, %q): got %d, want %d", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestKeyboardScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "cat", b: "cat", want: 1.0},
		{name: "length mismatch is neutral", a: "cat", b: "cart", want: 0.5},
		{name: "empty is neutral", a: "", b: "", want: 0.5},
		// One adjacent-key slip over three positions: avg 1/3.
		{name: "adjacent slip", a: "wag", b: "wah", want: 1 / (1 + 1.0/3)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := keyboardScore(tc.a, tc.b); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("keyboardScore(%q, %q): got %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestAdjacentVariants(t *testing.T) {
	t.Parallel()

	got := adjacentVariants("wah")
	set := make(map[string]bool, len(got))
	for _, v := range got {
		set[v] = true
	}
	// h has neighbors g, j, y, n; replacing it must yield these.
	for _, want := range []string{"wag", "waj", "way", "wan"} {
		if !set[want] {
			t.Errorf("adjacentVariants(\"wah\") missing %q: %v", want, got)
		}
	}
	if set["wah"] {
		t.Error("adjacentVariants returned the input itself")
	}
}

func TestPhoneticCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want string
	}{
		{word: "receive", want: "rkv"},
		{word: "recieve", want: "rkv"},
		{word: "What", want: "wht"},
		{word: "phone", want: "fn"},
		{word: "pub", want: "b"},   // p -> b, then the double collapses
		{word: "added", want: "t"}, // every d maps to t and collapses
		{word: "aeiou", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.word, func(t *testing.T) {
			t.Parallel()

			if got := phoneticCode(tc.word); got != tc.want {
				t.Errorf("phoneticCode(%q): got %q, want %q", tc.word, got, tc.want)
			}
		})
	}
}

func TestPhoneticScore(t *testing.T) {
	t.Parallel()

	if got := phoneticScore("recieve", "receive"); got != 1.0 {
		t.Errorf("homophone score: got %v, want 1.0", got)
	}
	// "wht" vs "ws": distance 2 -> 1/3.
	if got := phoneticScore("what", "was"); math.Abs(got-1.0/3) > 1e-12 {
		t.Errorf("distant codes: got %v, want 1/3", got)
	}
}

func TestUnitDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"cat", "cat", 0},
		{"cat", "cut", 1},
		{"cat", "cast", 1},
		{"recieve", "receive", 2},
		{"wah", "what", 2},
	}

	for _, tc := range tests {
		tc := tc
		if got := unitDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("unitDistance(%q, %q): got %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestWeightedDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "equal", a: "cat", b: "cat", want: 0},
		{name: "insertion", a: "cat", b: "cart", want: insertCost},
		{name: "deletion", a: "cart", b: "cat", want: deleteCost},
		{name: "adjacent substitution", a: "wah", b: "wag", want: adjacentSubCost},
		{name: "plain substitution", a: "wah", b: "was", want: otherSubCost},
		{name: "empty to word", a: "", b: "abc", want: 3 * insertCost},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := weightedDistance(tc.a, tc.b); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("weightedDistance(%q, %q): got %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestFrequencyScore(t *testing.T) {
	t.Parallel()

	f := FrequenciesFromCounts(map[string]int64{
		"the":  60000,
		"way":  300,
		"rare": 3,
	})

	if got := f.Count("THE"); got != 60000 {
		t.Errorf("Count is not case insensitive: got %d", got)
	}
	if got := f.Count("missing"); got != unknownFrequency {
		t.Errorf("Count(missing): got %d, want %d", got, unknownFrequency)
	}
	if got := f.Score("the"); got != 1.0 {
		t.Errorf("high-count score not clamped to 1: got %v", got)
	}
	want := math.Log10(301) / 4
	if got := f.Score("way"); math.Abs(got-want) > 1e-12 {
		t.Errorf("Score(way): got %v, want %v", got, want)
	}
	if f.Score("rare") >= f.Score("way") {
		t.Error("rarer word scored at least as high as a more frequent one")
	}
}

func TestDefaultFrequencies(t *testing.T) {
	t.Parallel()

	f := DefaultFrequencies()
	if f.Count("the") <= f.Count("wag") {
		t.Error("embedded table: \"the\" should far outnumber \"wag\"")
	}
	if DefaultFrequencies() != f {
		t.Error("DefaultFrequencies is not a singleton")
	}
}

func TestBigrams(t *testing.T) {
	t.Parallel()

	b := BigramsFromPairs(map[string][]string{
		"what": {"is", "are", "do"},
	})

	if !b.Related("what", "is") {
		t.Error("Related(what, is): got false")
	}
	if !b.Related("What", "IS") {
		t.Error("Related is not case insensitive")
	}
	if b.Related("what", "banana") {
		t.Error("Related(what, banana): got true")
	}
	if b.Related("unknown", "is") {
		t.Error("Related on unknown head word: got true")
	}

	if got := b.contextScore("what", []string{"up", "is"}); got != 1.0 {
		t.Errorf("contextScore with neighbor hit: got %v, want 1.0", got)
	}
	if got := b.contextScore("what", []string{"up"}); got != 0.5 {
		t.Errorf("contextScore with no hit: got %v, want 0.5", got)
	}
	if got := b.contextScore("what", nil); got != 0.5 {
		t.Errorf("contextScore with empty context: got %v, want 0.5", got)
	}
}

func TestDefaultBigrams(t *testing.T) {
	t.Parallel()

	b := DefaultBigrams()
	if !b.Related("what", "is") {
		t.Error("embedded table: what/is should be related")
	}
}
