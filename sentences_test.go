package tesa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSentences(t *testing.T) {
	a := loadedAnalyzer(t)
	text := "I love this great day. I hate that awful movie."

	got, err := a.ScoreSentences(text, DefaultScoreOptions())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "I love this great day.", strings.TrimSpace(got[0].Text))
	assert.Equal(t, Result{Label: Positive, Score: 2}, got[0].Result)
	assert.Equal(t, "I hate that awful movie.", strings.TrimSpace(got[1].Text))
	assert.Equal(t, Result{Label: Negative, Score: -2}, got[1].Result)

	for _, s := range got {
		assert.Equal(t, s.Text, text[s.Start:s.End])
	}
}

func TestScoreSentencesEmpty(t *testing.T) {
	a := loadedAnalyzer(t)
	got, err := a.ScoreSentences("", DefaultScoreOptions())
	require.NoError(t, err)
	assert.Empty(t, got)
}
