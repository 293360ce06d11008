// Package spelling ranks correction candidates for misspelled English words.
//
// Candidates are drawn from three generators (dictionary edit-distance
// neighbors, a table of common letter substitutions, and keyboard-adjacent
// variants) and scored across five independent dimensions:
//
//   - edit distance under a typo-aware cost model (weight 0.30)
//   - corpus frequency (0.25)
//   - keyboard proximity (0.20)
//   - phonetic similarity (0.15)
//   - bigram context fit (0.10)
//
// The ranking is fully deterministic: identical inputs produce identical
// output, with final-score ties broken lexicographically.
//
// A Ranker is immutable after construction and safe for concurrent use.
package spelling

import (
	"sort"
	"strings"

	"github.com/kanishk-jain-01/wordwise-ai/dictionary"
)

// Dimension weights. They sum to 1.
const (
	editWeight     = 0.30
	freqWeight     = 0.25
	keyboardWeight = 0.20
	phoneticWeight = 0.15
	contextWeight  = 0.10
)

const (
	// maxDictionaryCandidates caps the dictionary-neighbor generator.
	maxDictionaryCandidates = 10
	// defaultMaxSuggestions applies when Options.MaxSuggestions is zero.
	defaultMaxSuggestions = 5
	// closeEditBoost and farEditPenalty adjust confidence by edit distance.
	closeEditBoost  = 1.2
	farEditPenalty  = 0.8
	closeEditCutoff = 1
	// neutralScore stands in for dimensions that cannot be computed.
	neutralScore = 0.5
)

// substitutionPairs are letter confusions applied wherever they occur in the
// misspelled word. Each pair is tried in both directions.
var substitutionPairs = [][2]string{
	{"a", "e"}, {"i", "e"}, {"c", "k"}, {"s", "z"}, {"f", "ph"},
}

// Options controls one ranking call.
type Options struct {
	MaxSuggestions  int      // top-N to return; 0 means 5
	IncludePhonetic bool     // score the phonetic dimension (neutral 0.5 when false)
	ContextWords    []string // words surrounding the misspelling, for bigram fit
	MinConfidence   float64  // candidates below this confidence are dropped
}

// DefaultOptions returns the options the engine uses for its spelling pass.
func DefaultOptions() Options {
	return Options{
		MaxSuggestions:  defaultMaxSuggestions,
		IncludePhonetic: true,
		MinConfidence:   0.3,
	}
}

// Candidate is one scored correction. Candidates exist only for the duration
// of a ranking call.
type Candidate struct {
	Word           string
	EditDistance   int     // unit-cost distance from the input
	FrequencyScore float64 // [0,1]
	KeyboardScore  float64 // (0,1]
	PhoneticScore  float64 // (0,1]
	ContextScore   float64 // 0.5 or 1.0
	FinalScore     float64 // weighted sum of the five dimensions
	Confidence     float64 // FinalScore adjusted by edit distance, capped at 1
}

// Ranker scores and ranks spelling candidates against a dictionary, a word
// frequency table, and a bigram table.
type Ranker struct {
	dict    *dictionary.Dictionary
	freq    *Frequencies
	bigrams *Bigrams
}

// New returns a Ranker over dict using the embedded frequency and bigram
// tables.
func New(dict *dictionary.Dictionary) *Ranker {
	return NewWithTables(dict, DefaultFrequencies(), DefaultBigrams())
}

// NewWithTables returns a Ranker with explicit tables, for callers that
// bring their own corpus statistics (and for tests).
func NewWithTables(dict *dictionary.Dictionary, freq *Frequencies, bigrams *Bigrams) *Ranker {
	return &Ranker{dict: dict, freq: freq, bigrams: bigrams}
}

// Suggest returns the ranked correction words for a misspelling.
func (r *Ranker) Suggest(word string, opts Options) []string {
	candidates := r.Rank(word, opts)
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Word
	}
	return out
}

// Rank generates, scores, filters, and orders correction candidates for
// word. The input is lowercased for matching; callers re-apply case.
func (r *Ranker) Rank(word string, opts Options) []Candidate {
	if word == "" || r.dict.IsPermissive() {
		return nil
	}
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = defaultMaxSuggestions
	}

	lower := strings.ToLower(word)
	words := r.generate(lower)
	if len(words) == 0 {
		return nil
	}

	candidates := make([]Candidate, 0, len(words))
	for _, cand := range words {
		candidates = append(candidates, r.score(lower, cand, opts))
	}

	// Order by score descending; lexicographic tie-break keeps the ranking
	// deterministic across runs.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].FinalScore != candidates[j].FinalScore {
			return candidates[i].FinalScore > candidates[j].FinalScore
		}
		return candidates[i].Word < candidates[j].Word
	})

	filtered := candidates[:0]
	for _, c := range candidates {
		if c.Confidence >= opts.MinConfidence {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) > opts.MaxSuggestions {
		filtered = filtered[:opts.MaxSuggestions]
	}
	return filtered
}

// generate unions the three candidate sources, keeping dictionary-valid
// words different from the input, in deterministic order.
func (r *Ranker) generate(lower string) []string {
	seen := map[string]bool{lower: true}
	var out []string

	add := func(w string) {
		w = strings.ToLower(w)
		if seen[w] {
			return
		}
		seen[w] = true
		if r.dict.IsValid(w) {
			out = append(out, w)
		}
	}

	for _, w := range r.dict.Suggestions(lower, maxDictionaryCandidates) {
		add(w)
	}
	for _, pair := range substitutionPairs {
		for _, v := range substitutionVariants(lower, pair[0], pair[1]) {
			add(v)
		}
		for _, v := range substitutionVariants(lower, pair[1], pair[0]) {
			add(v)
		}
	}
	for _, v := range adjacentVariants(lower) {
		add(v)
	}

	return out
}

// substitutionVariants replaces each occurrence of from (one at a time)
// with to.
func substitutionVariants(word, from, to string) []string {
	var out []string
	for i := 0; i+len(from) <= len(word); i++ {
		if word[i:i+len(from)] == from {
			out = append(out, word[:i]+to+word[i+len(from):])
		}
	}
	return out
}

// score computes the five dimensions and the combined confidence for one
// candidate.
func (r *Ranker) score(input, candidate string, opts Options) Candidate {
	c := Candidate{
		Word:           candidate,
		EditDistance:   unitDistance(input, candidate),
		FrequencyScore: r.freq.Score(candidate),
		KeyboardScore:  keyboardScore(input, candidate),
		PhoneticScore:  neutralScore,
		ContextScore:   r.bigrams.contextScore(candidate, opts.ContextWords),
	}
	if opts.IncludePhonetic {
		c.PhoneticScore = phoneticScore(input, candidate)
	}

	editScore := 1 / (weightedDistance(input, candidate) + 1)

	c.FinalScore = editWeight*editScore +
		freqWeight*c.FrequencyScore +
		keyboardWeight*c.KeyboardScore +
		phoneticWeight*c.PhoneticScore +
		contextWeight*c.ContextScore

	boost := farEditPenalty
	if c.EditDistance <= closeEditCutoff {
		boost = closeEditBoost
	}
	c.Confidence = c.FinalScore * boost
	if c.Confidence > 1 {
		c.Confidence = 1
	}
	return c
}
