package spelling

import (
	"strings"
	"sync"

	"github.com/kanishk-jain-01/wordwise-ai/data"
)

// Bigrams records which words are commonly seen adjacent to a given word.
// It backs the context-relevance dimension of the ranker: a candidate whose
// neighbor set contains one of the misspelling's surrounding words fits its
// context better than one that does not.
type Bigrams struct {
	neighbors map[string]map[string]bool
}

// BigramsFromPairs builds a table from word -> neighbor list.
func BigramsFromPairs(pairs map[string][]string) *Bigrams {
	m := make(map[string]map[string]bool, len(pairs))
	for w, ns := range pairs {
		set := make(map[string]bool, len(ns))
		for _, n := range ns {
			set[strings.ToLower(n)] = true
		}
		m[strings.ToLower(w)] = set
	}
	return &Bigrams{neighbors: m}
}

var (
	defaultBigramsOnce sync.Once
	defaultBigrams     *Bigrams
)

// DefaultBigrams returns the table parsed from the embedded bigram file.
// File format: "word<TAB>neighbor neighbor ...". Parsed once.
func DefaultBigrams() *Bigrams {
	defaultBigramsOnce.Do(func() {
		m := make(map[string]map[string]bool, 64)
		for _, line := range strings.Split(data.Bigrams, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || line[0] == '#' {
				continue
			}
			parts := strings.SplitN(line, "\t", 2)
			if len(parts) != 2 {
				continue
			}
			set := make(map[string]bool)
			for _, n := range strings.Fields(parts[1]) {
				set[strings.ToLower(n)] = true
			}
			m[strings.ToLower(parts[0])] = set
		}
		defaultBigrams = &Bigrams{neighbors: m}
	})
	return defaultBigrams
}

// Related reports whether context appears in word's neighbor set.
func (b *Bigrams) Related(word, context string) bool {
	set, ok := b.neighbors[strings.ToLower(word)]
	if !ok {
		return false
	}
	return set[strings.ToLower(context)]
}

// contextScore returns 1.0 when any context word is a known neighbor of the
// candidate, otherwise the neutral 0.5. An empty context is also neutral.
func (b *Bigrams) contextScore(candidate string, contextWords []string) float64 {
	for _, c := range contextWords {
		if b.Related(candidate, c) {
			return 1.0
		}
	}
	return 0.5
}
