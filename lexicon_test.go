package tesa

import (
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLexicon(t *testing.T) {
	lex, err := LoadLexicon(testSources())
	require.NoError(t, err)

	tests := []struct {
		term string
		p    Polarity
		want bool
		desc string
	}{
		{"love", PositivePolarity, true, "Positive word"},
		{"hate", NegativePolarity, true, "Negative word"},
		{"love", NegativePolarity, false, "Word in the other set"},
		{"Love", PositivePolarity, false, "Matching is case-sensitive"},
		{"job", PositivePolarity, false, "Unknown word"},
		{"😀", PositivePolarity, true, "Positive emoji"},
		{"👎", NegativePolarity, true, "Negative emoji"},
		{"😀", NegativePolarity, false, "Emoji in the other set"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, lex.Contains(tt.term, tt.p))
		})
	}

	// "good" is listed twice in the fixture.
	assert.Equal(t, 11+4, lex.Len(PositivePolarity))
	assert.Equal(t, 10+3, lex.Len(NegativePolarity))
	assert.Empty(t, lex.Overlap())
}

func TestLoadLexiconWordsOnly(t *testing.T) {
	src := testSources()
	src.EmojiPositive, src.EmojiNegative = "", ""

	lex, err := LoadLexicon(src)
	require.NoError(t, err)
	assert.True(t, lex.Contains("great", PositivePolarity))
	assert.False(t, lex.Contains("😀", PositivePolarity))
}

func TestLoadLexiconErrors(t *testing.T) {
	missing := filepath.Join("testdata", "does-not-exist.txt")

	tests := []struct {
		src  LexiconSources
		want error
		desc string
	}{
		{LexiconSources{Negative: "testdata/negative.txt"}, ErrConfiguration, "Empty positive path"},
		{LexiconSources{Positive: "testdata/positive.txt"}, ErrConfiguration, "Empty negative path"},
		{LexiconSources{Positive: missing, Negative: "testdata/negative.txt"}, ErrConfiguration, "Missing positive file"},
		{LexiconSources{Positive: "testdata/positive.txt", Negative: "testdata/negative.txt", EmojiNegative: missing}, ErrConfiguration, "Missing emoji table"},
		{LexiconSources{Positive: "testdata/positive.txt", Negative: "testdata/negative.txt", EmojiNegative: "testdata/emoji_malformed.csv"}, ErrFormat, "Bad hex value"},
		{LexiconSources{Positive: "testdata/positive.txt", Negative: "testdata/negative.txt", EmojiPositive: "testdata/emoji_positive.csv", EmojiHexColumn: "bytes"}, ErrFormat, "Missing hex column"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			lex, err := LoadLexicon(tt.src)
			assert.Nil(t, lex)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadLexiconFormatErrorLine(t *testing.T) {
	src := testSources()
	src.EmojiNegative = filepath.Join("testdata", "emoji_malformed.csv")

	_, err := LoadLexicon(src)
	var ferr *FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, 3, ferr.Line)
	assert.Equal(t, "F09FZZ", ferr.Value)
	assert.Equal(t, src.EmojiNegative, ferr.Path)
}

func TestLoadLexiconFS(t *testing.T) {
	fsys := fstest.MapFS{
		"pos.txt":   {Data: []byte("good\r\n\r\nfine\n")},
		"neg.txt":   {Data: []byte("bad\nfine\n")},
		"emoji.csv": {Data: []byte("\ufeffName;HEX\nheart eyes;b'\\xf0\\x9f\\x98\\x8d'\n")},
	}

	lex, err := LoadLexiconFS(fsys, LexiconSources{
		Positive:      "pos.txt",
		Negative:      "neg.txt",
		EmojiPositive: "emoji.csv",
	})
	require.NoError(t, err)

	assert.True(t, lex.Contains("good", PositivePolarity), "CR is stripped")
	assert.True(t, lex.Contains("😍", PositivePolarity))
	assert.Equal(t, 3, lex.Len(PositivePolarity), "blank lines are skipped")
	assert.Equal(t, []string{"fine"}, lex.Overlap())
}

func TestEmptyEmojiTable(t *testing.T) {
	fsys := fstest.MapFS{
		"pos.txt":   {Data: []byte("good\n")},
		"neg.txt":   {Data: []byte("bad\n")},
		"emoji.csv": {Data: []byte{}},
	}
	_, err := LoadLexiconFS(fsys, LexiconSources{Positive: "pos.txt", Negative: "neg.txt", EmojiNegative: "emoji.csv"})
	assert.ErrorIs(t, err, ErrFormat)
}

func TestNilLexicon(t *testing.T) {
	var lex *Lexicon
	assert.False(t, lex.Contains("good", PositivePolarity))
	assert.Zero(t, lex.Len(NegativePolarity))
	assert.Nil(t, lex.Overlap())
}

func TestDecodeEmojiHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
		desc string
	}{
		{"F09F9880", "😀", "Upper case"},
		{"f09f9880", "😀", "Lower case"},
		{"f0 9f 98 80", "😀", "Spaced bytes"},
		{"0xF09F9880", "😀", "0x prefix"},
		{`\xf0\x9f\x98\x80`, "😀", "Escaped bytes"},
		{`b'\xf0\x9f\x98\x80'`, "😀", "Byte literal"},
		{" F09F918D ", "👍", "Surrounding space"},
		{"E29DA4EFB88F", "\u2764\ufe0f", "Multi-codepoint glyph"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := DecodeEmojiHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeEmojiHexErrors(t *testing.T) {
	for _, in := range []string{"", "b''", "F09FZZ", "F09F98", "FF"} {
		t.Run(in, func(t *testing.T) {
			_, err := DecodeEmojiHex(in)
			assert.Error(t, err)
		})
	}
}

func TestEmojiTableErrorLines(t *testing.T) {
	tests := []struct {
		table string
		line  int
		desc  string
	}{
		{"emoji;hex;name\n😢;F09F98A2;\"crying\nface\"\n?;F09FZZ;broken\n", 4, "Quoted field spanning lines"},
		{"emoji;hex;name\n\n😢;F09F98A2;crying\n?;F09FZZ;broken\n", 4, "Blank line before the row"},
		{"emoji;name;hex\n😢;crying;F09F98A2\n\n?;short\n", 4, "Row without the hex column"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			fsys := fstest.MapFS{
				"pos.txt":   {Data: []byte("good\n")},
				"neg.txt":   {Data: []byte("bad\n")},
				"emoji.csv": {Data: []byte(tt.table)},
			}
			_, err := LoadLexiconFS(fsys, LexiconSources{Positive: "pos.txt", Negative: "neg.txt", EmojiNegative: "emoji.csv"})

			var ferr *FormatError
			require.True(t, errors.As(err, &ferr), "got %v", err)
			assert.Equal(t, tt.line, ferr.Line)
		})
	}
}
