package tone

import (
	"strings"

	"github.com/kanishk-jain-01/wordwise-ai/data"
	"github.com/kanishk-jain-01/wordwise-ai/sentence"
	"github.com/kanishk-jain-01/wordwise-ai/tokenizer"
)

// category is an internal scoring bucket. The first eight are lexical and
// backed by the embedded lexicon; excited and inquisitive are structural
// pseudo-categories fed only by punctuation density. Ties between equal
// scores resolve toward the earlier category in this order.
type category int

const (
	catPositive category = iota
	catNegative
	catFormal
	catInformal
	catConfident
	catUncertain
	catFriendly
	catAggressive
	catExcited
	catInquisitive
	numCategories
)

// categoryNames follow the lexicon file's vocabulary.
var categoryNames = [numCategories]string{
	"positive", "negative", "formal", "informal", "confident",
	"uncertain", "friendly", "aggressive", "excited", "inquisitive",
}

// categoryLabels maps each internal category to its user-facing label.
var categoryLabels = [numCategories]Label{
	Positive, Negative, Formal, Casual, Confident,
	Tentative, Friendly, Assertive, Enthusiastic, Curious,
}

// Structural adjustment thresholds.
const (
	exclamationRatio   = 0.30 // share of sentences containing "!" that reads as excitement
	questionRatio      = 0.20 // share of sentences containing "?" that reads as inquiry
	longSentenceWords  = 20.0 // average above this reads as formal prose
	shortSentenceWords = 10.0 // average below this reads as informal prose
	lengthBoost        = 2
)

// lexicon maps lowercase words to their categories, built once at init.
// A word may belong to more than one category ("must" reads as both
// confident and aggressive) and then counts toward each.
var lexicon map[string][]category

func init() {
	lexicon = parseLexicon(data.ToneLexicon)
}

// parseLexicon parses tab-separated "word\tcategory" lines. Unknown
// categories and malformed lines are skipped.
func parseLexicon(raw string) map[string][]category {
	byName := make(map[string]category, numCategories)
	for c, name := range categoryNames {
		byName[name] = category(c)
	}

	m := make(map[string][]category, 128)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(parts[0]))
		cat, ok := byName[strings.TrimSpace(parts[1])]
		if !ok {
			continue
		}
		m[word] = append(m[word], cat)
	}
	return m
}

// analyze implements the core tone pipeline.
func analyze(text string) Result {
	var scores [numCategories]int

	words := tokenizer.Words(text)
	for _, w := range words {
		for _, cat := range lexicon[strings.ToLower(w)] {
			scores[cat]++
		}
	}

	adjustStructural(&scores, text, len(words))

	best, max := catPositive, 0
	for c := catPositive; c < numCategories; c++ {
		if scores[c] > max {
			best, max = c, scores[c]
		}
	}
	if max == 0 {
		return Result{Label: Neutral, Scores: nonzero(scores)}
	}
	return Result{Label: categoryLabels[best], Scores: nonzero(scores)}
}

// adjustStructural folds punctuation density and sentence length into the
// lexical counts.
func adjustStructural(scores *[numCategories]int, text string, wordCount int) {
	bounds := sentence.Split(text)
	if len(bounds) == 0 {
		return
	}

	exclaiming, asking := 0, 0
	for _, b := range bounds {
		if strings.Contains(b.Text, "!") {
			exclaiming++
		}
		if strings.Contains(b.Text, "?") {
			asking++
		}
	}

	total := float64(len(bounds))
	if float64(exclaiming)/total > exclamationRatio {
		scores[catExcited] += strings.Count(text, "!")
	}
	if float64(asking)/total > questionRatio {
		scores[catInquisitive] += strings.Count(text, "?")
	}

	avg := float64(wordCount) / total
	switch {
	case avg > longSentenceWords:
		scores[catFormal] += lengthBoost
	case avg < shortSentenceWords:
		scores[catInformal] += lengthBoost
	}
}

// nonzero copies the nonzero scores into a name-keyed map, nil when all
// scores are zero.
func nonzero(scores [numCategories]int) map[string]int {
	var m map[string]int
	for c, n := range scores {
		if n == 0 {
			continue
		}
		if m == nil {
			m = make(map[string]int, 4)
		}
		m[categoryNames[c]] = n
	}
	return m
}
