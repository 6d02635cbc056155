package tesa

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/kljensen/snowball/english"
)

// Stemmer reduces a lowercase word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// Lemmatizer maps a lowercase word to its dictionary form.
type Lemmatizer interface {
	Lemma(word string) string
}

// SnowballStemmer is the English Snowball (Porter2) suffix-stripping
// stemmer.
type SnowballStemmer struct{}

// Stem implements Stemmer.
func (SnowballStemmer) Stem(word string) string {
	stem := english.Stem(word, true)
	if stem == "" {
		return word
	}
	return stem
}

// RuleLemmatizer maps English word forms to their lemma in three layers:
// entries added with LoadLemmaDictionary, then the golem English
// dictionary, then suffix rules for nouns the dictionary does not know.
type RuleLemmatizer struct {
	dict  map[string]string
	words *golem.Lemmatizer
}

var (
	englishLemmasOnce sync.Once
	englishLemmas     *golem.Lemmatizer
	englishLemmasErr  error
)

// EnglishLemmas returns the shared golem English dictionary. It is
// decompressed on first use.
func EnglishLemmas() (*golem.Lemmatizer, error) {
	englishLemmasOnce.Do(func() {
		englishLemmas, englishLemmasErr = golem.New(en.New())
	})
	return englishLemmas, englishLemmasErr
}

// NewRuleLemmatizer returns a lemmatizer backed by the English dictionary.
// If the dictionary cannot be loaded only the suffix rules apply.
func NewRuleLemmatizer() *RuleLemmatizer {
	words, _ := EnglishLemmas()
	return &RuleLemmatizer{dict: map[string]string{}, words: words}
}

// LoadLemmaDictionary reads "form,lemma" lines from path into a new
// RuleLemmatizer. Lines without exactly two fields are skipped.
func LoadLemmaDictionary(path string) (*RuleLemmatizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigurationError{Path: path, Err: err}
	}
	defer f.Close()

	lem, err := ReadLemmaDictionary(f)
	if err != nil {
		return nil, &ConfigurationError{Path: path, Err: err}
	}
	return lem, nil
}

// ReadLemmaDictionary is LoadLemmaDictionary over an io.Reader.
func ReadLemmaDictionary(r io.Reader) (*RuleLemmatizer, error) {
	lem := NewRuleLemmatizer()
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		parts := strings.Split(strings.TrimSpace(scan.Text()), ",")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		lem.dict[strings.ToLower(parts[0])] = strings.ToLower(parts[1])
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("reading lemma dictionary: %w", err)
	}
	return lem, nil
}

// Lemma implements Lemmatizer.
func (l *RuleLemmatizer) Lemma(word string) string {
	if l != nil {
		if lemma, ok := l.dict[word]; ok {
			return lemma
		}
		if l.words != nil && l.words.InDict(word) {
			return l.words.Lemma(word)
		}
	}
	if lemma, ok := irregularForms[word]; ok {
		return lemma
	}
	if invariantNouns[word] || len(word) <= 3 {
		return word
	}

	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ches"), strings.HasSuffix(word, "shes"),
		strings.HasSuffix(word, "sses"), strings.HasSuffix(word, "xes"),
		strings.HasSuffix(word, "zes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "men"):
		return word[:len(word)-3] + "man"
	case strings.HasSuffix(word, "ss"), strings.HasSuffix(word, "us"),
		strings.HasSuffix(word, "is"), strings.HasSuffix(word, "os"),
		strings.HasSuffix(word, "as"):
		return word
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1]
	}
	return word
}

var irregularForms = map[string]string{
	"goes":      "go",
	"does":      "do",
	"children":  "child",
	"feet":      "foot",
	"teeth":     "tooth",
	"geese":     "goose",
	"mice":      "mouse",
	"lice":      "louse",
	"oxen":      "ox",
	"lives":     "life",
	"wives":     "wife",
	"knives":    "knife",
	"leaves":    "leaf",
	"wolves":    "wolf",
	"halves":    "half",
	"selves":    "self",
	"thieves":   "thief",
	"shelves":   "shelf",
	"loaves":    "loaf",
	"data":      "datum",
	"criteria":  "criterion",
	"phenomena": "phenomenon",
}

// invariantNouns end in "s" but are already in dictionary form. Only
// consulted for words the English dictionary does not list.
var invariantNouns = map[string]bool{
	"news": true, "series": true, "species": true, "thanks": true, "always": true,
	"perhaps": true, "sometimes": true, "towards": true, "afterwards": true,
	"physics": true, "mathematics": true, "politics": true, "economics": true,
	"yes": true, "less": true, "unless": true, "whereas": true, "besides": true,
	"lens": true, "gas": true, "bus": true, "plus": true, "chaos": true, "jeans": true,
	"congrats": true, "means": true, "alas": true, "ethos": true,
}
