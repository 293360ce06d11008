// Package dictionary provides the English word list backing the spelling
// pipeline: membership queries and bounded-edit-distance candidate search.
//
// A Dictionary is an explicitly constructed, immutable value. Construct one
// from the embedded word list with Default, from an arbitrary reader with
// New, or from a slice with FromWords (handy for small test dictionaries).
// After construction a Dictionary is read-only and safe for concurrent use
// by any number of goroutines.
//
// When the backing word list is unavailable the dictionary degrades to
// permissive mode: every word is considered valid and no suggestions are
// produced. Missing spelling suggestions are preferable to blocking the
// whole analysis pipeline.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/agext/levenshtein"

	"github.com/kanishk-jain-01/wordwise-ai/data"
)

const (
	// maxSuggestDistance is the highest edit distance kept by Suggestions.
	maxSuggestDistance = 2
	// narrowLengthDelta is the length window for the first-letter search pass.
	narrowLengthDelta = 2
	// broadLengthDelta is the length window for the full-vocabulary fallback.
	broadLengthDelta = 1
	// maxWordBytes guards against pathological single "words".
	maxWordBytes = 256
)

// Dictionary holds the loaded word set and its first-letter index.
type Dictionary struct {
	words      map[string]struct{}
	byLetter   map[rune][]string // first letter -> sorted words
	sortedAll  []string          // all words, sorted, for the broad pass
	permissive bool
}

// New reads a newline-delimited lowercase word list from r.
// Blank lines and lines starting with '#' are skipped. A read error returns
// a permissive dictionary along with the error, so callers can log and
// continue with spelling checks disabled.
func New(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		d.words[strings.ToLower(word)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return Permissive(), fmt.Errorf("dictionary: reading word list: %w", err)
	}

	d.buildIndex()
	return d, nil
}

// FromWords builds a dictionary from a word slice. Intended for tests and
// callers with an in-memory vocabulary.
func FromWords(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" {
			d.words[w] = struct{}{}
		}
	}
	d.buildIndex()
	return d
}

// Permissive returns a dictionary that treats every word as valid and
// produces no suggestions. Used as the degraded mode when no word list is
// available.
func Permissive() *Dictionary {
	return &Dictionary{permissive: true}
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the dictionary built from the embedded word list.
// The list is parsed once; subsequent calls return the same value.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := New(strings.NewReader(string(data.Words)))
		if err != nil {
			// Embedded data cannot fail to read, but keep the degraded path.
			d = Permissive()
		}
		defaultDict = d
	})
	return defaultDict
}

// buildIndex constructs the first-letter index and the sorted word list.
func (d *Dictionary) buildIndex() {
	d.sortedAll = make([]string, 0, len(d.words))
	for w := range d.words {
		d.sortedAll = append(d.sortedAll, w)
	}
	sort.Strings(d.sortedAll)

	d.byLetter = make(map[rune][]string)
	for _, w := range d.sortedAll {
		first, _ := utf8.DecodeRuneInString(w)
		d.byLetter[first] = append(d.byLetter[first], w)
	}
}

// Size returns the number of words in the dictionary.
func (d *Dictionary) Size() int {
	return len(d.words)
}

// IsPermissive reports whether the dictionary is in degraded mode.
func (d *Dictionary) IsPermissive() bool {
	return d.permissive
}

// IsValid reports whether word is in the dictionary, case-insensitively.
// Empty and oversized words are valid (not spelling issues). A permissive
// dictionary accepts everything.
func (d *Dictionary) IsValid(word string) bool {
	if d.permissive || word == "" || len(word) > maxWordBytes {
		return true
	}
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Suggestions returns up to limit dictionary words within edit distance 1-2
// of word, ordered by distance ascending then lexicographically.
//
// The search runs in two passes: first over words sharing the input's first
// letter with length within ±2. Only when that yields fewer than limit
// results does it broaden to the full vocabulary with a ±1 length window.
func (d *Dictionary) Suggestions(word string, limit int) []string {
	if d.permissive || word == "" || limit <= 0 || len(word) > maxWordBytes {
		return nil
	}

	lower := strings.ToLower(word)
	wordLen := utf8.RuneCountInString(lower)

	type scored struct {
		word string
		dist int
	}
	var found []scored
	seen := make(map[string]struct{})

	collect := func(candidates []string, lengthDelta int) {
		for _, cand := range candidates {
			if cand == lower {
				continue
			}
			if _, dup := seen[cand]; dup {
				continue
			}
			candLen := utf8.RuneCountInString(cand)
			if candLen < wordLen-lengthDelta || candLen > wordLen+lengthDelta {
				continue
			}
			dist := levenshtein.Distance(lower, cand, nil)
			if dist < 1 || dist > maxSuggestDistance {
				continue
			}
			seen[cand] = struct{}{}
			found = append(found, scored{word: cand, dist: dist})
		}
	}

	first, _ := utf8.DecodeRuneInString(lower)
	collect(d.byLetter[first], narrowLengthDelta)

	if len(found) < limit {
		collect(d.sortedAll, broadLengthDelta)
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].dist != found[j].dist {
			return found[i].dist < found[j].dist
		}
		return found[i].word < found[j].word
	})

	if len(found) > limit {
		found = found[:limit]
	}
	out := make([]string, len(found))
	for i, f := range found {
		out[i] = f.word
	}
	return out
}
