// Package engine orchestrates the full prose check: grammar, spelling, and
// style rules, the context-aware style processor, and the dictionary-backed
// spelling pass, merged into one overlap-free suggestion list with summary
// statistics.
//
// The engine is configured once via functional options and is safe for
// concurrent use afterwards. CheckText never fails: a rule that panics is
// logged and skipped, and a failing enhanced-style pass falls back to plain
// pattern matching, so a well-formed (possibly empty) result is returned
// for any input.
package engine

import (
	"log"
	"time"

	"github.com/kanishk-jain-01/wordwise-ai/dictionary"
	"github.com/kanishk-jain-01/wordwise-ai/rules"
	"github.com/kanishk-jain-01/wordwise-ai/spelling"
	"github.com/kanishk-jain-01/wordwise-ai/style"
	"github.com/kanishk-jain-01/wordwise-ai/validate"
)

// maxInputBytes caps the accepted input size; larger inputs yield an empty
// result rather than an error.
const maxInputBytes = 1 << 20

// contextRadius is how many bytes of surrounding text each suggestion
// carries for display.
const contextRadius = 30

// Context is the window of text around a suggestion's span.
type Context struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"` // byte offset of the window
	Length int    `json:"length"`
}

// Suggestion is one proposed correction. Offset and Length are byte offsets
// into the exact text passed to CheckText, and
// text[Offset:Offset+Length] == OriginalText always holds.
type Suggestion struct {
	ID           string           `json:"id"`
	Kind         rules.Kind       `json:"kind"`
	Message      string           `json:"message"`
	ShortMessage string           `json:"shortMessage,omitempty"`
	Category     string           `json:"category,omitempty"`
	Confidence   float64          `json:"confidence"`
	Offset       int              `json:"offset"`
	Length       int              `json:"length"`
	OriginalText string           `json:"originalText"`
	Replacements []string         `json:"replacements"`
	Context      Context          `json:"context"`
	RuleID       string           `json:"ruleId,omitempty"` // empty for dictionary hits
	Validation   *validate.Result `json:"validation,omitempty"`
}

// Stats summarizes one CheckText call.
type Stats struct {
	RulesEvaluated        int           `json:"rulesEvaluated"`
	GrammarCount          int           `json:"grammarCount"`
	SpellingCount         int           `json:"spellingCount"`
	StyleCount            int           `json:"styleCount"`
	ProcessingTime        time.Duration `json:"processingTime"`
	WordsChecked          int           `json:"wordsChecked"`
	RuleBasedErrors       int           `json:"ruleBasedErrors"`
	DictionaryBasedErrors int           `json:"dictionaryBasedErrors"`
}

// Result is the outcome of one CheckText call. Suggestions are ordered by
// offset and never overlap.
type Result struct {
	Suggestions []Suggestion `json:"suggestions"`
	Stats       Stats        `json:"stats"`
}

// Engine runs the suggestion pipeline. Construct with New; the zero value
// is not usable.
type Engine struct {
	dict          *dictionary.Dictionary
	ranker        *spelling.Ranker
	validator     *validate.Validator
	styleProc     *style.Processor
	enhancedStyle bool
	logger        *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithDictionary injects the dictionary used by the spelling pass. Tests
// use small synthetic dictionaries; the default is the embedded word list.
func WithDictionary(d *dictionary.Dictionary) Option {
	return func(e *Engine) {
		e.dict = d
		e.ranker = spelling.New(d)
	}
}

// WithSpellingTables injects explicit frequency and bigram tables for the
// ranker, paired with the engine's dictionary.
func WithSpellingTables(freq *spelling.Frequencies, bigrams *spelling.Bigrams) Option {
	return func(e *Engine) {
		e.ranker = spelling.NewWithTables(e.dict, freq, bigrams)
	}
}

// WithEnhancedStyle toggles the context-aware style processor. When
// disabled, the deny-listed style rules run as plain pattern rules.
func WithEnhancedStyle(enabled bool) Option {
	return func(e *Engine) { e.enhancedStyle = enabled }
}

// WithStyleProcessor replaces the default contextual rule set.
func WithStyleProcessor(p *style.Processor) Option {
	return func(e *Engine) { e.styleProc = p }
}

// WithLogger redirects isolated-failure logging.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an Engine over the embedded dictionary and default tables.
// Options are applied in order.
func New(opts ...Option) *Engine {
	e := &Engine{
		dict:          dictionary.Default(),
		validator:     validate.New(),
		styleProc:     style.NewProcessor(),
		enhancedStyle: true,
		logger:        log.Default(),
	}
	e.ranker = spelling.New(e.dict)
	for _, opt := range opts {
		opt(e)
	}
	return e
}
