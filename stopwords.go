package tesa

import (
	"strings"
	"sync"

	"github.com/bbalet/stopwords"
)

// StopList decides which lowercase tokens the normalizer drops.
type StopList interface {
	IsStopWord(word string) bool
}

// WordSet is a StopList backed by a fixed set of words.
type WordSet map[string]bool

// IsStopWord implements StopList.
func (s WordSet) IsStopWord(word string) bool {
	return s[word]
}

// EnglishStopWords is the default stop list. It leaves out every negation
// word so that negation cues survive normalization.
var EnglishStopWords = WordSet{
	"i": true, "me": true, "my": true, "myself": true, "we": true, "our": true, "ours": true,
	"ourselves": true, "you": true, "you're": true, "you've": true, "you'll": true,
	"you'd": true, "your": true, "yours": true, "yourself": true, "yourselves": true,
	"he": true, "him": true, "his": true, "himself": true, "she": true, "she's": true, "her": true,
	"hers": true, "herself": true, "it": true, "it's": true, "its": true, "itself": true,
	"they": true, "them": true, "their": true, "theirs": true, "themselves": true, "what": true,
	"which": true, "who": true, "whom": true, "this": true, "that": true, "that'll": true,
	"these": true, "those": true, "am": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true, "had": true, "having": true,
	"do": true, "does": true, "did": true, "doing": true, "a": true, "an": true, "the": true, "and": true,
	"if": true, "or": true, "because": true, "as": true, "until": true, "while": true, "of": true,
	"at": true, "by": true, "for": true, "with": true, "about": true, "against": true, "between": true,
	"into": true, "through": true, "during": true, "before": true, "after": true, "above": true,
	"below": true, "to": true, "from": true, "up": true, "down": true, "in": true, "out": true, "on": true,
	"off": true, "over": true, "under": true, "again": true, "further": true, "then": true, "once": true,
	"here": true, "there": true, "when": true, "where": true, "why": true, "how": true, "all": true, "any": true,
	"both": true, "each": true, "few": true, "more": true, "most": true, "other": true, "some": true, "such": true,
	"only": true, "own": true, "same": true, "so": true, "than": true, "too": true, "very": true, "s": true, "t": true,
	"will": true, "just": true, "should": true, "should've": true, "now": true, "d": true, "ll": true,
	"m": true, "o": true, "re": true, "ve": true, "y": true, "ain": true, "ma": true,
	".": true, ",": true, ";": true, "!": true, "?": true,
}

// LibraryStopList extends a base list with the English stop words known to
// github.com/bbalet/stopwords. Negation cues and tokens carrying emoji are
// never treated as stop words. Lookups are cached; the zero value is not usable, use
// NewLibraryStopList.
type LibraryStopList struct {
	base  StopList
	lang  string
	cache sync.Map // word -> bool
}

// NewLibraryStopList returns a LibraryStopList over base. A nil base means
// EnglishStopWords.
func NewLibraryStopList(base StopList) *LibraryStopList {
	if base == nil {
		base = EnglishStopWords
	}
	return &LibraryStopList{base: base, lang: "en"}
}

// IsStopWord implements StopList.
func (l *LibraryStopList) IsStopWord(word string) bool {
	if IsNegationCue(word) || hasEmoji(word) {
		return false
	}
	if l.base.IsStopWord(word) {
		return true
	}
	if v, ok := l.cache.Load(word); ok {
		return v.(bool)
	}

	// The library does not export its lists; a word it strips entirely is
	// one of its stop words.
	cleaned := strings.TrimSpace(stopwords.CleanString(word, l.lang, false))
	stop := cleaned == ""
	l.cache.Store(word, stop)
	return stop
}
