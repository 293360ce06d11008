package spelling

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/kanishk-jain-01/wordwise-ai/data"
)

// unknownFrequency is the count assumed for words absent from the table.
const unknownFrequency = 1

// freqScoreDivisor normalizes log10 counts into [0,1]; a word with count
// 10^4-1 or higher scores 1.0.
const freqScoreDivisor = 4

// Frequencies maps words to corpus occurrence counts.
type Frequencies struct {
	counts map[string]int64
}

// FrequenciesFromCounts builds a table from an explicit map. Intended for
// tests and callers with their own corpus statistics.
func FrequenciesFromCounts(counts map[string]int64) *Frequencies {
	m := make(map[string]int64, len(counts))
	for w, c := range counts {
		if c > 0 {
			m[strings.ToLower(w)] = c
		}
	}
	return &Frequencies{counts: m}
}

var (
	defaultFreqOnce sync.Once
	defaultFreq     *Frequencies
)

// DefaultFrequencies returns the table parsed from the embedded
// "word count" file. Parsed once, immutable afterwards.
func DefaultFrequencies() *Frequencies {
	defaultFreqOnce.Do(func() {
		defaultFreq = parseFrequencies(data.WordFreq)
	})
	return defaultFreq
}

// parseFrequencies parses "word count" lines, skipping malformed ones.
func parseFrequencies(raw []byte) *Frequencies {
	lines := bytes.Split(raw, []byte("\n"))
	m := make(map[string]int64, len(lines))
	for _, line := range lines {
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		sp := bytes.LastIndexByte(line, ' ')
		if sp <= 0 {
			continue
		}
		count, err := strconv.ParseInt(string(bytes.TrimSpace(line[sp+1:])), 10, 64)
		if err != nil || count <= 0 {
			continue
		}
		m[string(line[:sp])] = count
	}
	return &Frequencies{counts: m}
}

// Count returns the corpus count for word, or unknownFrequency when absent.
func (f *Frequencies) Count(word string) int64 {
	if c, ok := f.counts[strings.ToLower(word)]; ok {
		return c
	}
	return unknownFrequency
}

// Score maps the word's count onto [0,1] via log10(count+1)/4, clamped.
func (f *Frequencies) Score(word string) float64 {
	s := math.Log10(float64(f.Count(word))+1) / freqScoreDivisor
	if s > 1 {
		return 1
	}
	if s < 0 {
		return 0
	}
	return s
}
