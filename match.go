package tesa

// Match scores every token against lex: ScorePositive for a positive term,
// ScoreNegative for a negative one, ScoreNeutral otherwise. A term stored in
// both sets counts as positive.
//
// A nil lexicon scores every token ScoreNeutral. The result always has the
// same length as tokens.
func Match(tokens []string, lex *Lexicon) []int {
	scores := make([]int, len(tokens))
	if lex == nil {
		return scores
	}
	for i, tok := range tokens {
		switch {
		case lex.Contains(tok, PositivePolarity):
			scores[i] = ScorePositive
		case lex.Contains(tok, NegativePolarity):
			scores[i] = ScoreNegative
		default:
			scores[i] = ScoreNeutral
		}
	}
	return scores
}
