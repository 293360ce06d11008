// Command freqgen regenerates the embedded vocabulary from a corpus of
// plain-text files.
//
//	go run ./cmd/freqgen -corpus ~/corpus -words data/words.txt -freq data/word_freq.txt
//
// Every .txt file under the corpus directory is tokenized; a word enters the
// vocabulary when it occurs often enough, in enough distinct files, and
// passes the shape filters (alphabetic, contains a vowel, long enough).
// Output files are sorted and deterministic for a given corpus. Commit the
// regenerated files.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kanishk-jain-01/wordwise-ai/tokenizer"
)

const (
	defaultWordsOut = "data/words.txt"
	defaultFreqOut  = "data/word_freq.txt"
	defaultMinCount = 30
	defaultMinFiles = 4
	minWordRunes    = 3
)

// shortAllowlist admits common two-letter words the length filter would
// otherwise drop.
var shortAllowlist = map[string]bool{
	"a": true, "i": true, "am": true, "an": true, "as": true, "at": true,
	"be": true, "by": true, "do": true, "go": true, "he": true, "if": true,
	"in": true, "is": true, "it": true, "me": true, "my": true, "no": true,
	"of": true, "on": true, "or": true, "so": true, "to": true, "up": true,
	"us": true, "we": true,
}

func main() {
	corpusDir := flag.String("corpus", "", "directory of .txt corpus files")
	wordsOut := flag.String("words", defaultWordsOut, "output path for the word list")
	freqOut := flag.String("freq", defaultFreqOut, "output path for the frequency table")
	minCount := flag.Int("mincount", defaultMinCount, "minimum total occurrences")
	minFiles := flag.Int("minfiles", defaultMinFiles, "minimum distinct files")
	flag.Parse()

	if *corpusDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: freqgen -corpus <dir> [-words <file>] [-freq <file>]\n")
		os.Exit(1)
	}

	counts, fileCounts, err := scanCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "freqgen: %v\n", err)
		os.Exit(1)
	}

	words := make([]string, 0, len(counts))
	for w, n := range counts {
		if n >= *minCount && fileCounts[w] >= *minFiles && acceptable(w) {
			words = append(words, w)
		}
	}
	sort.Strings(words)

	if len(words) == 0 {
		fmt.Fprintf(os.Stderr, "freqgen: no words passed the filters\n")
		os.Exit(1)
	}

	if err := writeWords(*wordsOut, words); err != nil {
		fmt.Fprintf(os.Stderr, "freqgen: %v\n", err)
		os.Exit(1)
	}
	if err := writeFreq(*freqOut, words, counts); err != nil {
		fmt.Fprintf(os.Stderr, "freqgen: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("freqgen: %d words -> %s, %s\n", len(words), *wordsOut, *freqOut)
}

// scanCorpus tokenizes every .txt file under dir and returns total and
// per-file occurrence counts for each lowercase word.
func scanCorpus(dir string) (counts map[string]int, fileCounts map[string]int, err error) {
	counts = make(map[string]int)
	fileCounts = make(map[string]int)

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		seen := make(map[string]bool)
		for _, w := range tokenizer.Words(string(data)) {
			lower := strings.ToLower(w)
			counts[lower]++
			if !seen[lower] {
				seen[lower] = true
				fileCounts[lower]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return counts, fileCounts, nil
}

// acceptable applies the shape filters: ASCII letters only, at least one
// vowel, no apostrophes (contractions stay out), and long enough unless
// allowlisted.
func acceptable(w string) bool {
	if len(w) < minWordRunes && !shortAllowlist[w] {
		return false
	}
	hasVowel := false
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			hasVowel = true
		}
	}
	return hasVowel
}

func writeWords(path string, words []string) error {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeFreq(path string, words []string, counts map[string]int) error {
	var b strings.Builder
	for _, w := range words {
		fmt.Fprintf(&b, "%s %d\n", w, counts[w])
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
