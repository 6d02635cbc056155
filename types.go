package tesa

import (
	"encoding/json"
	"fmt"
)

// Label is the coarse sentiment class assigned to a text.
type Label string

const (
	Negative Label = "negative"
	Neutral  Label = "neutral"
	Positive Label = "positive"
)

// String returns the label's name.
func (l Label) String() string {
	return string(l)
}

// ParseLabel converts a label name back into a Label.
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case Negative, Neutral, Positive:
		return Label(s), nil
	}
	return "", fmt.Errorf("tesa: unknown label %q", s)
}

// UnmarshalJSON rejects names other than the three labels.
func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLabel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Polarity selects one of the two lexicon sets.
type Polarity int

const (
	NegativePolarity Polarity = -1
	PositivePolarity Polarity = 1
)

func (p Polarity) String() string {
	switch p {
	case PositivePolarity:
		return "positive"
	case NegativePolarity:
		return "negative"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// Token scores produced by Match and AdjustNegations.
const (
	ScorePositive = 1
	ScoreNeutral  = 0
	ScoreNegative = -1
)

// ScoreOptions selects the optional morphology stages of the normalizer.
//
// Both flags may be set. Stemming then runs first and lemmatization runs on
// its output.
type ScoreOptions struct {
	Stem      bool
	Lemmatize bool
}

// DefaultScoreOptions returns the standard options: lemmatization on,
// stemming off.
func DefaultScoreOptions() ScoreOptions {
	return ScoreOptions{
		Stem:      false,
		Lemmatize: true,
	}
}

// Result is the outcome of scoring one text.
type Result struct {
	Label Label `json:"label"`
	Score int   `json:"score"` // positive hits minus negative hits
}

func (r Result) String() string {
	return fmt.Sprintf("%s(%d)", r.Label, r.Score)
}

// Analysis exposes every intermediate value of a scoring call.
type Analysis struct {
	Result

	Tokens   []string // normalized tokens, in text order
	Matched  []int    // lexicon scores before negation handling
	Adjusted []int    // scores after negation handling
	Flipped  []int    // positions whose score was inverted by a negation cue
	Positive int      // count of +1 in Adjusted
	Negative int      // count of -1 in Adjusted

	Contributions []WordContribution
}

// WordContribution records one polar token.
type WordContribution struct {
	Word          string
	Position      int
	BaseScore     int
	AdjustedScore int
}

// SentenceResult is the score of one sentence of a longer text.
type SentenceResult struct {
	Result

	Text  string
	Start int // byte offset into the text passed to ScoreSentences
	End   int
}
