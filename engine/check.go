package engine

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/kanishk-jain-01/wordwise-ai/internal/textcase"
	"github.com/kanishk-jain-01/wordwise-ai/rules"
	"github.com/kanishk-jain-01/wordwise-ai/sentence"
	"github.com/kanishk-jain-01/wordwise-ai/spelling"
	"github.com/kanishk-jain-01/wordwise-ai/tokenizer"
	"github.com/kanishk-jain-01/wordwise-ai/validate"
)

// Dictionary-pass tuning.
const (
	minSpellCheckRunes     = 3
	maxSpellReplacements   = 3
	spellMinConfidence     = 0.3
	spellBaseConfidence    = 0.6
	spellCommonWordBonus   = 0.2
	spellCloseLengthBonus  = 0.1
	spellMultiMatchBonus   = 0.1
	spellConfidenceCeiling = 0.95
)

// riskDropThreshold: validated suggestions classified Risky below this
// confidence are dropped entirely.
const riskDropThreshold = 0.6

// problematicStyleIDs is the deny-list of style rules whose bare pattern
// replacement is unsafe; with enhanced style enabled they are routed
// through the context-aware processor instead.
var problematicStyleIDs = map[string]bool{
	"there-are-many": true, "there-are-many-ctx": true,
	"a-lot-of": true, "a-lot-of-ctx": true,
	"it-is-important": true, "it-is-important-ctx": true,
	"basically": true, "basically-ctx": true,
}

// commonWords backs the confidence bonus for dictionary-pass suggestions
// whose top candidate is a very frequent word.
var commonWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"what": true, "was": true, "is": true, "are": true, "that": true,
	"this": true, "have": true, "has": true, "it": true, "you": true,
	"be": true, "as": true, "do": true, "we": true, "they": true,
}

// pending is a suggestion before overlap resolution, tagged with its
// insertion order for the confidence tie-break.
type pending struct {
	Suggestion
	seq int
}

// CheckText runs the full pipeline over text. It never returns an error:
// empty, oversized, or pathological input yields an empty result.
func (e *Engine) CheckText(text string) Result {
	result := Result{Suggestions: []Suggestion{}}
	if text == "" || len(text) > maxInputBytes {
		return result
	}
	started := time.Now()

	var collected []pending
	add := func(s Suggestion) {
		collected = append(collected, pending{Suggestion: s, seq: len(collected)})
	}
	stats := &result.Stats

	for _, set := range [][]rules.Rule{rules.GrammarRules(), rules.SpellingRules()} {
		for i := range set {
			e.applyRule(text, &set[i], add, stats)
		}
	}
	e.applyStyle(text, add, stats)
	e.spellingPass(text, collected, add, stats)

	result.Suggestions = resolve(collected)
	assignIDs(result.Suggestions)
	for _, s := range result.Suggestions {
		switch s.Kind {
		case rules.Grammar:
			stats.GrammarCount++
		case rules.Spelling:
			stats.SpellingCount++
			if s.RuleID != "" {
				stats.RuleBasedErrors++
			} else {
				stats.DictionaryBasedErrors++
			}
		case rules.Style:
			stats.StyleCount++
		}
	}
	stats.ProcessingTime = time.Since(started)
	return result
}

// applyRule records every accepted match of one rule. A panicking rule
// (a misbehaving Derived replacement) is logged and skipped; the rest of
// the pipeline continues.
func (e *Engine) applyRule(text string, r *rules.Rule, add func(Suggestion), stats *Stats) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Printf("engine: rule %s failed: %v", r.ID, rec)
		}
	}()
	stats.RulesEvaluated++

	locs := r.Pattern.FindAllStringIndex(text, -1)
	if !r.Global && len(locs) > 1 {
		locs = locs[:1]
	}
	for _, loc := range locs {
		if loc[1] <= loc[0] {
			continue // zero-width match carries no span
		}
		matched := text[loc[0]:loc[1]]
		replacement, hasReplacement := rules.Apply(r.Replacement, matched)
		if hasReplacement && replacement == matched {
			continue // the fix would be a no-op
		}
		var replacements []string
		if hasReplacement {
			replacements = []string{replacement}
		}
		s := Suggestion{
			Kind:         r.Kind,
			Message:      r.Message,
			ShortMessage: r.ShortMessage,
			Category:     r.Category,
			Confidence:   r.Confidence,
			Offset:       loc[0],
			Length:       loc[1] - loc[0],
			OriginalText: matched,
			Replacements: replacements,
			Context:      contextWindow(text, loc[0], loc[1]),
			RuleID:       r.ID,
		}
		if r.RequiresValidation && !e.validateSuggestion(text, &s) {
			continue
		}
		add(s)
	}
}

// applyStyle runs the style stage: with enhanced style enabled, deny-listed
// rules go through the contextual processor and only the safe remainder
// runs as plain patterns. If the enhanced path fails it is logged and the
// deny-listed rules fall back to plain matching.
func (e *Engine) applyStyle(text string, add func(Suggestion), stats *Stats) {
	styleRules := rules.StyleRules()

	enhancedOK := false
	if e.enhancedStyle {
		enhancedOK = e.applyContextualStyle(text, add, stats)
	}

	for i := range styleRules {
		r := &styleRules[i]
		if enhancedOK && problematicStyleIDs[r.ID] {
			continue
		}
		e.applyRule(text, r, add, stats)
	}
}

// applyContextualStyle reports whether the enhanced pass completed.
func (e *Engine) applyContextualStyle(text string, add func(Suggestion), stats *Stats) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Printf("engine: enhanced style failed, falling back to plain rules: %v", rec)
			ok = false
		}
	}()

	stats.RulesEvaluated += len(e.styleProc.Rules())
	for _, m := range e.styleProc.Process(text) {
		s := Suggestion{
			Kind:         rules.Style,
			Message:      m.Message,
			ShortMessage: m.ShortMessage,
			Category:     m.Category,
			Confidence:   m.Confidence,
			Offset:       m.Offset,
			Length:       m.Length,
			OriginalText: m.Text,
			Replacements: []string{m.Replacement},
			Context:      contextWindow(text, m.Offset, m.Offset+m.Length),
			RuleID:       m.RuleID,
		}
		if m.RequiresValidation && !e.validateSuggestion(text, &s) {
			continue
		}
		add(s)
	}
	return true
}

// validateSuggestion runs the validator and applies the risk gate. It
// reports whether the suggestion survives, updating its confidence and
// attaching the verdict when it does.
func (e *Engine) validateSuggestion(text string, s *Suggestion) bool {
	replacement := ""
	if len(s.Replacements) > 0 {
		replacement = s.Replacements[0]
	}
	verdict := e.validator.Check(validate.Request{
		Text:        text,
		Offset:      s.Offset,
		Length:      s.Length,
		Replacement: replacement,
		RuleID:      s.RuleID,
		Kind:        s.Kind,
		Confidence:  s.Confidence,
	})
	if verdict.Risk == validate.Risky && verdict.Confidence < riskDropThreshold {
		return false
	}
	s.Confidence = verdict.Confidence
	s.Validation = &verdict
	return true
}

// spellingPass runs the enhanced ranker over alphabetic tokens that are not
// dictionary words and not already covered by a rule match. Title-case and
// all-caps tokens are skipped as likely proper nouns and acronyms.
func (e *Engine) spellingPass(text string, collected []pending, add func(Suggestion), stats *Stats) {
	for _, tok := range tokenizer.Tokens(text) {
		if tok.Type != tokenizer.Word || !textcase.IsAlphabetic(tok.Text) {
			continue
		}
		if utf8.RuneCountInString(tok.Text) < minSpellCheckRunes {
			continue
		}
		if textcase.IsTitleCase(tok.Text) || textcase.IsAllUpper(tok.Text) {
			continue
		}
		stats.WordsChecked++
		if covered(collected, tok.Start, tok.End) || e.dict.IsValid(tok.Text) {
			continue
		}

		meta := sentence.MetadataAt(text, tok.Start, tok.End-tok.Start)
		contextWords := make([]string, 0, len(meta.WordsBefore)+len(meta.WordsAfter))
		contextWords = append(contextWords, meta.WordsBefore...)
		contextWords = append(contextWords, meta.WordsAfter...)

		ranked := e.ranker.Suggest(tok.Text, spelling.Options{
			MaxSuggestions:  maxSpellReplacements,
			IncludePhonetic: true,
			ContextWords:    contextWords,
			MinConfidence:   spellMinConfidence,
		})
		if len(ranked) == 0 {
			continue
		}

		replacements := make([]string, len(ranked))
		for i, w := range ranked {
			replacements[i] = textcase.ApplyCase(tok.Text, w)
		}

		add(Suggestion{
			Kind:         rules.Spelling,
			Message:      fmt.Sprintf("%q is not in the dictionary.", tok.Text),
			ShortMessage: "Unknown word",
			Category:     "dictionary",
			Confidence:   spellConfidence(tok.Text, ranked),
			Offset:       tok.Start,
			Length:       tok.End - tok.Start,
			OriginalText: tok.Text,
			Replacements: replacements,
			Context:      contextWindow(text, tok.Start, tok.End),
		})
	}
}

// spellConfidence scores a dictionary-pass suggestion from the quality of
// its ranked candidates.
func spellConfidence(word string, ranked []string) float64 {
	confidence := spellBaseConfidence
	if commonWords[ranked[0]] {
		confidence += spellCommonWordBonus
	}
	if diff := len(word) - len(ranked[0]); diff >= -1 && diff <= 1 {
		confidence += spellCloseLengthBonus
	}
	if len(ranked) >= 2 {
		confidence += spellMultiMatchBonus
	}
	if confidence > spellConfidenceCeiling {
		confidence = spellConfidenceCeiling
	}
	return confidence
}

// covered reports whether [start, end) intersects any collected span.
func covered(collected []pending, start, end int) bool {
	for _, p := range collected {
		if start < p.Offset+p.Length && p.Offset < end {
			return true
		}
	}
	return false
}

// resolve sorts by offset and removes overlaps, keeping the suggestion
// with higher confidence; equal confidence keeps the earlier-inserted one.
func resolve(collected []pending) []Suggestion {
	sorted := make([]pending, len(collected))
	copy(sorted, collected)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	var kept []pending
	for _, s := range sorted {
		dropped := false
		for len(kept) > 0 {
			last := kept[len(kept)-1]
			if s.Offset >= last.Offset+last.Length {
				break
			}
			if s.Confidence > last.Confidence ||
				(s.Confidence == last.Confidence && s.seq < last.seq) {
				kept = kept[:len(kept)-1] // the newcomer wins; re-check further back
				continue
			}
			dropped = true
			break
		}
		if !dropped {
			kept = append(kept, s)
		}
	}

	out := make([]Suggestion, len(kept))
	for i, p := range kept {
		out[i] = p.Suggestion
	}
	return out
}

// assignIDs numbers suggestions per kind in final order, deterministically.
func assignIDs(suggestions []Suggestion) {
	counts := make(map[rules.Kind]int, 3)
	for i := range suggestions {
		counts[suggestions[i].Kind]++
		suggestions[i].ID = fmt.Sprintf("%s-%d", suggestions[i].Kind, counts[suggestions[i].Kind])
	}
}

// contextWindow clamps a fixed-radius window around [start, end).
func contextWindow(text string, start, end int) Context {
	from := start - contextRadius
	if from < 0 {
		from = 0
	}
	to := end + contextRadius
	if to > len(text) {
		to = len(text)
	}
	return Context{Text: text[from:to], Offset: from, Length: to - from}
}
