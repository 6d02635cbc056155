package tesa

import (
	"io"
	"io/fs"
	"log/slog"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"gopkg.in/neurosnap/sentences.v1"
)

// Analyzer scores short texts against a polarity lexicon.
//
// An Analyzer must be loaded before it is useful. Scoring with no lexicon
// loaded is not an error: every token is unknown and every text comes out
// Neutral with score 0. Callers that want to guard against this check
// IsLoaded.
//
// Load may be called again at any time; scoring calls running concurrently
// see either the old or the new lexicon, never a mix. All methods are safe
// for concurrent use.
type Analyzer struct {
	lexicon    atomic.Pointer[Lexicon]
	normalizer *Normalizer
	logger     *slog.Logger

	segmenterOnce sync.Once
	segmenterMu   sync.Mutex
	segmenter     *sentences.DefaultSentenceTokenizer
	segmenterErr  error
}

type AnalyzerOptFunc func(*Analyzer)

// WithNormalizer replaces the default Normalizer.
func WithNormalizer(n *Normalizer) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.normalizer = n
	}
}

// WithLogger sets the logger used for load and diagnostic messages.
func WithLogger(l *slog.Logger) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// WithLexicon installs an already built lexicon, as if Load had been
// called.
func WithLexicon(lex *Lexicon) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.lexicon.Store(lex)
	}
}

// NewAnalyzer creates an analyzer. Without WithLexicon it starts unloaded.
func NewAnalyzer(opts ...AnalyzerOptFunc) *Analyzer {
	a := &Analyzer{
		normalizer: NewNormalizer(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, applyOpt := range opts {
		applyOpt(a)
	}
	return a
}

// Load reads the lexicon sources from disk and installs the result. On
// error the previously loaded lexicon, if any, stays in place.
func (a *Analyzer) Load(src LexiconSources) error {
	lex, err := LoadLexicon(src)
	if err != nil {
		return err
	}
	a.install(lex, src)
	return nil
}

// LoadFS is Load reading from fsys.
func (a *Analyzer) LoadFS(fsys fs.FS, src LexiconSources) error {
	lex, err := LoadLexiconFS(fsys, src)
	if err != nil {
		return err
	}
	a.install(lex, src)
	return nil
}

func (a *Analyzer) install(lex *Lexicon, src LexiconSources) {
	a.lexicon.Store(lex)

	attrs := []any{
		"positive_source", src.Positive,
		"negative_source", src.Negative,
		"positive_terms", lex.Len(PositivePolarity),
		"negative_terms", lex.Len(NegativePolarity),
	}
	if src.EmojiPositive != "" || src.EmojiNegative != "" {
		attrs = append(attrs, "emoji_positive_source", src.EmojiPositive, "emoji_negative_source", src.EmojiNegative)
	}
	a.logger.Info("lexicon loaded", attrs...)

	if overlap := lex.Overlap(); len(overlap) > 0 {
		a.logger.Warn("terms present in both polarity sets resolve as positive",
			"count", len(overlap), "terms", overlap)
	}
}

// IsLoaded reports whether a lexicon has been installed.
func (a *Analyzer) IsLoaded() bool {
	return a.lexicon.Load() != nil
}

// Lexicon returns the installed lexicon, or nil.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lexicon.Load()
}

// Normalizer returns the normalizer the analyzer uses.
func (a *Analyzer) Normalizer() *Normalizer {
	return a.normalizer
}

// Score returns the label and net score of text.
func (a *Analyzer) Score(text string, opts ScoreOptions) (Result, error) {
	analysis, err := a.Analyze(text, opts)
	if err != nil {
		return Result{}, err
	}
	return analysis.Result, nil
}

// Analyze runs the full pipeline on text and returns every intermediate
// value along with the result.
func (a *Analyzer) Analyze(text string, opts ScoreOptions) (Analysis, error) {
	if !utf8.ValidString(text) {
		return Analysis{}, &InvalidInputError{Reason: "text is not valid UTF-8"}
	}

	lex := a.lexicon.Load()
	if lex == nil {
		a.logger.Debug("scoring without a loaded lexicon")
	}

	tokens := a.normalizer.Normalize(text, opts)
	matched := Match(tokens, lex)
	adjusted := AdjustNegations(tokens, matched)
	label, net := Classify(adjusted)
	pos, neg := countPolar(adjusted)

	analysis := Analysis{
		Result:   Result{Label: label, Score: net},
		Tokens:   tokens,
		Matched:  matched,
		Adjusted: adjusted,
		Flipped:  flippedPositions(matched, adjusted),
		Positive: pos,
		Negative: neg,
	}
	for i, s := range adjusted {
		if s == ScoreNeutral && matched[i] == ScoreNeutral {
			continue
		}
		analysis.Contributions = append(analysis.Contributions, WordContribution{
			Word:          tokens[i],
			Position:      i,
			BaseScore:     matched[i],
			AdjustedScore: s,
		})
	}
	return analysis, nil
}
