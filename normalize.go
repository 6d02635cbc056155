package tesa

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// cleanupRE strips @mentions, URLs and every character that is not an
// ASCII letter, digit, whitespace or part of an emoji glyph.
var cleanupRE = regexp.MustCompile(`@[A-Za-z0-9]+|\w+://\S+|[^0-9A-Za-z\s` + emojiRanges + emojiJoiners + `]`)

// Normalizer turns raw text into the token sequence that is matched
// against a lexicon. A Normalizer is safe for concurrent use.
type Normalizer struct {
	stopWords  StopList
	cleanup    *regexp.Regexp
	stemmer    Stemmer
	lemmatizer Lemmatizer
}

type NormalizerOptFunc func(*Normalizer)

// UsingStopList replaces EnglishStopWords.
func UsingStopList(x StopList) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.stopWords = x
	}
}

// UsingCleanupPattern replaces the cleanup pattern. Every match is replaced
// with a space.
func UsingCleanupPattern(x *regexp.Regexp) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.cleanup = x
	}
}

// UsingStemmer replaces the Snowball stemmer.
func UsingStemmer(x Stemmer) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.stemmer = x
	}
}

// UsingLemmatizer replaces the rule-based lemmatizer.
func UsingLemmatizer(x Lemmatizer) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.lemmatizer = x
	}
}

// NewNormalizer returns a Normalizer with the English defaults.
func NewNormalizer(opts ...NormalizerOptFunc) *Normalizer {
	n := &Normalizer{
		stopWords:  EnglishStopWords,
		cleanup:    cleanupRE,
		stemmer:    SnowballStemmer{},
		lemmatizer: NewRuleLemmatizer(),
	}
	for _, applyOpt := range opts {
		applyOpt(n)
	}
	return n
}

// Normalize runs every stage in order: lowercase, token filter, cleanup,
// re-split, stem, lemmatize, emoji split. The result is deterministic for
// a given text and options.
func (n *Normalizer) Normalize(text string, opts ScoreOptions) []string {
	text = Lowercase(text)
	tokens := strings.Fields(n.Cleanup(n.FilterTokens(text)))

	if opts.Stem {
		tokens = mapWords(tokens, n.stemmer.Stem)
	}
	if opts.Lemmatize {
		tokens = mapWords(tokens, n.lemmatizer.Lemma)
	}

	return SplitEmoji(tokens)
}

// Lowercase folds text to lower case using English casing rules and
// composes it to NFC.
func Lowercase(text string) string {
	return norm.NFC.String(cases.Lower(language.English).String(text))
}

// FilterTokens splits text on whitespace and drops stop words, tokens with
// characters other than letters and emoji, and letter-only tokens shorter
// than two runes.
func (n *Normalizer) FilterTokens(text string) []string {
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, tok := range fields {
		if n.stopWords.IsStopWord(tok) {
			continue
		}
		if !isWordToken(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// isWordToken accepts letters with at least one emoji glyph, or letter-only
// tokens of two runes or more. Joiners and selectors alone are not glyphs.
func isWordToken(tok string) bool {
	if CountEmoji(tok) > 0 {
		for _, r := range tok {
			if !isLetterOrEmoji(r) {
				return false
			}
		}
		return true
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return utf8.RuneCountInString(tok) >= 2
}

// Cleanup joins tokens with single spaces and blanks out everything the
// cleanup pattern matches. Runs of whitespace are collapsed.
func (n *Normalizer) Cleanup(tokens []string) string {
	joined := strings.Join(tokens, " ")
	return strings.Join(strings.Fields(n.cleanup.ReplaceAllString(joined, " ")), " ")
}

// mapWords applies fn to every token that carries no emoji. Tokens fn maps
// to the empty string are kept unchanged.
func mapWords(tokens []string, fn func(string) string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if hasEmoji(tok) {
			out[i] = tok
			continue
		}
		if mapped := fn(tok); mapped != "" {
			out[i] = mapped
		} else {
			out[i] = tok
		}
	}
	return out
}
