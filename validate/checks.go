package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kanishk-jain-01/wordwise-ai/rules"
	"github.com/kanishk-jain-01/wordwise-ai/sentence"
)

// Context quality multipliers and the document-boundary margin.
const (
	fragmentPenalty    = 0.6
	incompletePenalty  = 0.7
	boundaryPenalty    = 0.8
	thinContextPenalty = 0.7
	clearPositionBoost = 1.1
	boundaryMargin     = 10 // bytes from document start or end
	minContextWords    = 2
)

// Confidence adjustment factors per risk class.
const (
	riskyFactor      = 0.3
	moderateFactor   = 0.7
	safeFactor       = 1.1
	structuralFactor = 0.2
)

// evaluate runs the full validation pipeline for an in-range request.
func evaluate(req Request) Result {
	edited := req.Text[:req.Offset] + req.Replacement + req.Text[req.Offset+req.Length:]
	issues := structuralIssues(req, edited)
	structuralOK := len(issues) == 0

	meta := sentence.MetadataAt(req.Text, req.Offset, req.Length)
	owner, hasOwner := owningSentence(req.Text, req.Offset)
	quality := contextQuality(req, meta, owner, hasOwner)

	risk := assessRisk(req, meta, owner, hasOwner, structuralOK)

	confidence := req.Confidence * quality
	switch risk {
	case Risky:
		confidence *= riskyFactor
	case Moderate:
		confidence *= moderateFactor
	default:
		confidence *= safeFactor
	}
	if !structuralOK {
		confidence *= structuralFactor
	}

	return Result{
		Valid:          structuralOK,
		Risk:           risk,
		Confidence:     clamp(confidence),
		Issues:         issues,
		ContextQuality: quality,
	}
}

// structuralIssues compares the sentence structure of the text before and
// after the edit.
func structuralIssues(req Request, edited string) []string {
	var issues []string

	before := sentence.Split(req.Text)
	after := sentence.Split(edited)
	if len(before) != len(after) {
		issues = append(issues, "edit changes the number of sentences")
	}

	origIdx, origOK := sentenceIndexAt(before, req.Offset)
	editIdx, editOK := sentenceIndexAt(after, req.Offset)
	if origOK && editOK {
		orig, edit := before[origIdx], after[editIdx]
		if orig.IsComplete && !edit.IsComplete {
			issues = append(issues, "edited sentence is no longer complete")
		}
		if startsLower(edit.Text) && !startsLower(orig.Text) {
			issues = append(issues, "capitalization lost at sentence start")
		}
		if p := punctuationArtifact(edit.Text); p != "" && punctuationArtifact(orig.Text) == "" {
			issues = append(issues, "inconsistent punctuation: "+p)
		}
	}

	return issues
}

// contextQuality multiplies the base 1.0 down for weak surroundings and up
// for clear sentence positions, clamped to [0.1, 1.0].
func contextQuality(req Request, meta sentence.Metadata, owner sentence.Boundary, hasOwner bool) float64 {
	q := 1.0
	if hasOwner {
		// A fragment is also incomplete; only the stronger penalty applies.
		switch {
		case owner.IsFragment:
			q *= fragmentPenalty
		case !owner.IsComplete:
			q *= incompletePenalty
		}
	}
	if req.Offset <= boundaryMargin || len(req.Text)-(req.Offset+req.Length) <= boundaryMargin {
		q *= boundaryPenalty
	}
	if len(meta.WordsBefore) < minContextWords || len(meta.WordsAfter) < minContextWords {
		q *= thinContextPenalty
	}
	if meta.Position == sentence.Start || meta.Position == sentence.Middle {
		q *= clearPositionBoost
	}
	return clamp(q)
}

// assessRisk applies the risk ladder: structural damage, fragment edits by
// style rules, and deletions at sentence starts are Risky; style edits at
// sentence starts and low-prior rules are Moderate; everything else Safe.
func assessRisk(req Request, meta sentence.Metadata, owner sentence.Boundary, hasOwner bool, structuralOK bool) Risk {
	switch {
	case !structuralOK,
		hasOwner && owner.IsFragment && req.Kind == rules.Style,
		req.Replacement == "" && meta.SentenceStart:
		return Risky
	case meta.SentenceStart && req.Kind == rules.Style,
		req.Confidence < 0.7:
		return Moderate
	default:
		return Safe
	}
}

// owningSentence finds the boundary containing offset.
func owningSentence(text string, offset int) (sentence.Boundary, bool) {
	for _, b := range sentence.Split(text) {
		if offset >= b.Start && offset < b.End {
			return b, true
		}
	}
	return sentence.Boundary{}, false
}

func sentenceIndexAt(bounds []sentence.Boundary, offset int) (int, bool) {
	for i, b := range bounds {
		if offset >= b.Start && offset < b.End {
			return i, true
		}
	}
	// An edit can land past the last boundary (trailing replacement);
	// attribute it to the final sentence.
	if len(bounds) > 0 && offset >= bounds[len(bounds)-1].End {
		return len(bounds) - 1, true
	}
	return 0, false
}

func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(s))
	return unicode.IsLetter(r) && unicode.IsLower(r)
}

// punctuationArtifact reports the first local punctuation defect found, or
// the empty string. Ellipses are tolerated.
func punctuationArtifact(s string) string {
	if strings.Contains(s, "..") && !strings.Contains(s, "...") {
		return "doubled period"
	}
	for _, bad := range []string{",,", " ,", " .", ",."} {
		if strings.Contains(s, bad) {
			return "stray punctuation " + strings.TrimSpace(bad)
		}
	}
	return ""
}

func clamp(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
