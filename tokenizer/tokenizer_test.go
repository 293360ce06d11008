package tokenizer

import (
	"strings"
	"testing"
)

func TestTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "single word",
			input: "hello",
			want: []Token{
				{Text: "hello", Start: 0, End: 5, Type: Word},
			},
		},
		{
			name:  "two words with space",
			input: "hello world",
			want: []Token{
				{Text: "hello", Start: 0, End: 5, Type: Word},
				{Text: " ", Start: 5, End: 6, Type: Space},
				{Text: "world", Start: 6, End: 11, Type: Word},
			},
		},
		{
			name:  "sentence with period",
			input: "Go on.",
			want: []Token{
				{Text: "Go", Start: 0, End: 2, Type: Word},
				{Text: " ", Start: 2, End: 3, Type: Space},
				{Text: "on", Start: 3, End: 5, Type: Word},
				{Text: ".", Start: 5, End: 6, Type: Punctuation},
			},
		},
		{
			name:  "contraction stays one word",
			input: "don't",
			want: []Token{
				{Text: "don't", Start: 0, End: 5, Type: Word},
			},
		},
		{
			name:  "curly apostrophe contraction",
			input: "it’s",
			want: []Token{
				{Text: "it’s", Start: 0, End: 6, Type: Word},
			},
		},
		{
			name:  "hyphenated word",
			input: "well-known",
			want: []Token{
				{Text: "well-known", Start: 0, End: 10, Type: Word},
			},
		},
		{
			name:  "double hyphen splits",
			input: "a--b",
			want: []Token{
				{Text: "a", Start: 0, End: 1, Type: Word},
				{Text: "--", Start: 1, End: 3, Type: Punctuation},
				{Text: "b", Start: 3, End: 4, Type: Word},
			},
		},
		{
			name:  "number with decimal point",
			input: "3.14",
			want: []Token{
				{Text: "3.14", Start: 0, End: 4, Type: Number},
			},
		},
		{
			name:  "number with thousand separators",
			input: "1,234,567",
			want: []Token{
				{Text: "1,234,567", Start: 0, End: 9, Type: Number},
			},
		},
		{
			name:  "trailing comma is not a separator",
			input: "12, and",
			want: []Token{
				{Text: "12", Start: 0, End: 2, Type: Number},
				{Text: ",", Start: 2, End: 3, Type: Punctuation},
				{Text: " ", Start: 3, End: 4, Type: Space},
				{Text: "and", Start: 4, End: 7, Type: Word},
			},
		},
		{
			name:  "ellipsis merges",
			input: "wait...",
			want: []Token{
				{Text: "wait", Start: 0, End: 4, Type: Word},
				{Text: "...", Start: 4, End: 7, Type: Punctuation},
			},
		},
		{
			name:  "repeated exclamation merges",
			input: "go!!!",
			want: []Token{
				{Text: "go", Start: 0, End: 2, Type: Word},
				{Text: "!!!", Start: 2, End: 5, Type: Punctuation},
			},
		},
		{
			name:  "mixed punctuation does not merge",
			input: "what?!",
			want: []Token{
				{Text: "what", Start: 0, End: 4, Type: Word},
				{Text: "?", Start: 4, End: 5, Type: Punctuation},
				{Text: "!", Start: 5, End: 6, Type: Punctuation},
			},
		},
		{
			name:  "emoji is a symbol",
			input: "ok \U0001F600",
			want: []Token{
				{Text: "ok", Start: 0, End: 2, Type: Word},
				{Text: " ", Start: 2, End: 3, Type: Space},
				{Text: "\U0001F600", Start: 3, End: 7, Type: Symbol},
			},
		},
		{
			name:  "word with digits",
			input: "A4 paper",
			want: []Token{
				{Text: "A4", Start: 0, End: 2, Type: Word},
				{Text: " ", Start: 2, End: 3, Type: Space},
				{Text: "paper", Start: 3, End: 8, Type: Word},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Tokens(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("Tokens(%q): got %d tokens %v, want %d %v",
					tc.input, len(got), got, len(tc.want), tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

// TestTokensReconstruction verifies the core invariants: every token's text
// matches its offsets, and concatenating all tokens rebuilds the input.
func TestTokensReconstruction(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"The quick brown fox jumps over the lazy dog.",
		"It's a well-known fact -- isn't it? -- that 1,234 birds can't fly.",
		"Multiple   spaces\tand\nnewlines.",
		"Ellipsis... and marks?! Repeated!!! Done.",
		"números con acentos y façade naïve",
		"emoji \U0001F600 inline",
	}

	for _, input := range inputs {
		tokens := Tokens(input)
		var b strings.Builder
		for _, tok := range tokens {
			if input[tok.Start:tok.End] != tok.Text {
				t.Errorf("offset invariant broken for %v in %q", tok, input)
			}
			b.WriteString(tok.Text)
		}
		if b.String() != input {
			t.Errorf("reconstruction failed: got %q, want %q", b.String(), input)
		}
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "simple", input: "one two three", want: []string{"one", "two", "three"}},
		{name: "skips numbers and punctuation", input: "2 cats, 3 dogs!", want: []string{"cats", "dogs"}},
		{name: "contraction is one word", input: "we can't stop", want: []string{"we", "can't", "stop"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Words(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("Words(%q) = %v, want %v", tc.input, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("word %d: got %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}
