package tesa

import (
	"bufio"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultEmojiHexColumn is the header of the emoji table column holding the
// hex-encoded UTF-8 bytes of each glyph.
const DefaultEmojiHexColumn = "hex"

// emojiDelimiter separates the columns of an emoji lexicon table.
const emojiDelimiter = ';'

// LexiconSources names the files a Lexicon is built from. Positive and
// Negative are required; the emoji tables are optional.
type LexiconSources struct {
	Positive      string
	Negative      string
	EmojiPositive string
	EmojiNegative string

	// EmojiHexColumn overrides DefaultEmojiHexColumn.
	EmojiHexColumn string
}

// Lexicon holds the positive and negative term sets. It is immutable once
// built and safe for concurrent use.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// NewLexicon builds a Lexicon from in-memory term lists.
func NewLexicon(positive, negative []string) *Lexicon {
	lex := &Lexicon{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, term := range positive {
		lex.positive[term] = struct{}{}
	}
	for _, term := range negative {
		lex.negative[term] = struct{}{}
	}
	return lex
}

// Contains reports whether term is stored in the set for p. Matching is
// exact and case-sensitive.
func (l *Lexicon) Contains(term string, p Polarity) bool {
	if l == nil {
		return false
	}
	var ok bool
	switch p {
	case PositivePolarity:
		_, ok = l.positive[term]
	case NegativePolarity:
		_, ok = l.negative[term]
	}
	return ok
}

// Len returns the number of distinct terms stored for p.
func (l *Lexicon) Len(p Polarity) int {
	if l == nil {
		return 0
	}
	switch p {
	case PositivePolarity:
		return len(l.positive)
	case NegativePolarity:
		return len(l.negative)
	}
	return 0
}

// Overlap returns the terms present in both sets, sorted. Match resolves
// them as positive.
func (l *Lexicon) Overlap() []string {
	if l == nil {
		return nil
	}
	var both []string
	for term := range l.positive {
		if _, ok := l.negative[term]; ok {
			both = append(both, term)
		}
	}
	sort.Strings(both)
	return both
}

// LoadLexicon reads the sources from the local filesystem.
func LoadLexicon(src LexiconSources) (*Lexicon, error) {
	return loadLexicon(src, func(name string) (io.ReadCloser, error) {
		return os.Open(name)
	})
}

// LoadLexiconFS reads the sources from fsys, e.g. an embed.FS.
func LoadLexiconFS(fsys fs.FS, src LexiconSources) (*Lexicon, error) {
	return loadLexicon(src, func(name string) (io.ReadCloser, error) {
		return fsys.Open(name)
	})
}

type openFunc func(name string) (io.ReadCloser, error)

func loadLexicon(src LexiconSources, open openFunc) (*Lexicon, error) {
	if src.Positive == "" {
		return nil, &ConfigurationError{Err: errors.New("positive word list path is empty")}
	}
	if src.Negative == "" {
		return nil, &ConfigurationError{Err: errors.New("negative word list path is empty")}
	}

	lex := &Lexicon{
		positive: make(map[string]struct{}),
		negative: make(map[string]struct{}),
	}

	if err := readWordList(src.Positive, open, lex.positive); err != nil {
		return nil, err
	}
	if err := readWordList(src.Negative, open, lex.negative); err != nil {
		return nil, err
	}

	column := src.EmojiHexColumn
	if column == "" {
		column = DefaultEmojiHexColumn
	}
	if src.EmojiPositive != "" {
		if err := readEmojiTable(src.EmojiPositive, column, open, lex.positive); err != nil {
			return nil, err
		}
	}
	if src.EmojiNegative != "" {
		if err := readEmojiTable(src.EmojiNegative, column, open, lex.negative); err != nil {
			return nil, err
		}
	}

	return lex, nil
}

// readWordList adds one term per line to set. Only the line terminator is
// stripped; blank lines are skipped.
func readWordList(path string, open openFunc, set map[string]struct{}) error {
	f, err := open(path)
	if err != nil {
		return &ConfigurationError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		term := strings.TrimSuffix(scanner.Text(), "\r")
		if term == "" {
			continue
		}
		set[term] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return &ConfigurationError{Path: path, Err: err}
	}
	return nil
}

// readEmojiTable decodes the hex column of every row after the header and
// adds the resulting glyph to set.
func readEmojiTable(path, column string, open openFunc, set map[string]struct{}) error {
	f, err := open(path)
	if err != nil {
		return &ConfigurationError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = emojiDelimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return &FormatError{Path: path, Err: errors.New("empty table, header row expected")}
	}
	if err != nil {
		return readError(path, err)
	}

	idx := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")), column) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &FormatError{Path: path, Err: fmt.Errorf("no %q column in header %v", column, header)}
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return readError(path, err)
		}
		if idx >= len(record) {
			line, _ := r.FieldPos(0)
			return &FormatError{Path: path, Line: line, Err: fmt.Errorf("row has %d fields, hex column is %d", len(record), idx+1)}
		}
		glyph, err := DecodeEmojiHex(record[idx])
		if err != nil {
			line, _ := r.FieldPos(idx)
			return &FormatError{Path: path, Line: line, Value: record[idx], Err: err}
		}
		set[glyph] = struct{}{}
	}
}

func readError(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &FormatError{Path: path, Line: parseErr.Line, Err: err}
	}
	return &ConfigurationError{Path: path, Err: err}
}

// DecodeEmojiHex turns a hex-encoded UTF-8 byte sequence into its glyph.
// Accepted spellings include "F09F9880", "f0 9f 98 80", "0xF09F9880",
// `\xf0\x9f\x98\x80` and the byte-literal form `b'\xf0\x9f\x98\x80'`.
func DecodeEmojiHex(value string) (string, error) {
	s := strings.TrimSpace(value)
	if strings.HasPrefix(s, "b'") && strings.HasSuffix(s, "'") && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}
	s = hexNoise.Replace(s)
	if s == "" {
		return "", errors.New("empty hex value")
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", errors.New("decoded bytes are not valid UTF-8")
	}
	return norm.NFC.String(string(raw)), nil
}

var hexNoise = strings.NewReplacer(`\x`, "", `\X`, "", "0x", "", "0X", "", " ", "", "\t", "", "-", "")
