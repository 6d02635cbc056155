package tesa

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/neurosnap/sentences.v1/english"
)

// ScoreSentences splits text into sentences and scores each one on its
// own. Offsets refer to text.
func (a *Analyzer) ScoreSentences(text string, opts ScoreOptions) ([]SentenceResult, error) {
	if !utf8.ValidString(text) {
		return nil, &InvalidInputError{Reason: "text is not valid UTF-8"}
	}

	spans, err := a.segment(text)
	if err != nil {
		return nil, err
	}

	results := make([]SentenceResult, 0, len(spans))
	for _, span := range spans {
		res, err := a.Score(span.Text, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, SentenceResult{
			Result: res,
			Text:   span.Text,
			Start:  span.Start,
			End:    span.End,
		})
	}
	return results, nil
}

type sentenceSpan struct {
	Text       string
	Start, End int
}

func (a *Analyzer) segment(text string) ([]sentenceSpan, error) {
	a.segmenterOnce.Do(func() {
		a.segmenter, a.segmenterErr = english.NewSentenceTokenizer(nil)
	})
	if a.segmenterErr != nil {
		return nil, fmt.Errorf("tesa: building sentence tokenizer: %w", a.segmenterErr)
	}

	a.segmenterMu.Lock()
	sents := a.segmenter.Tokenize(text)
	a.segmenterMu.Unlock()

	spans := make([]sentenceSpan, 0, len(sents))
	for _, s := range sents {
		spans = append(spans, sentenceSpan{Text: s.Text, Start: s.Start, End: s.End})
	}
	return spans, nil
}
