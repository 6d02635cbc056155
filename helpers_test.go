package tesa

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testSources() LexiconSources {
	return LexiconSources{
		Positive:      filepath.Join("testdata", "positive.txt"),
		Negative:      filepath.Join("testdata", "negative.txt"),
		EmojiPositive: filepath.Join("testdata", "emoji_positive.csv"),
		EmojiNegative: filepath.Join("testdata", "emoji_negative.csv"),
	}
}

func loadedAnalyzer(t testing.TB, opts ...AnalyzerOptFunc) *Analyzer {
	t.Helper()
	a := NewAnalyzer(opts...)
	require.NoError(t, a.Load(testSources()))
	return a
}
