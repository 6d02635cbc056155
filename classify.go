package tesa

// Net-score bounds. A score at or below negativeBound is negative, at or
// above positiveBound is positive, anything between is neutral.
const (
	negativeBound = -2
	positiveBound = 2
)

// Classify counts the positive and negative token scores and maps their
// difference to a Label.
func Classify(scores []int) (Label, int) {
	pos, neg := countPolar(scores)
	net := pos - neg
	return labelFor(net), net
}

func countPolar(scores []int) (pos, neg int) {
	for _, s := range scores {
		switch s {
		case ScorePositive:
			pos++
		case ScoreNegative:
			neg++
		}
	}
	return pos, neg
}

func labelFor(net int) Label {
	switch {
	case net <= negativeBound:
		return Negative
	case net >= positiveBound:
		return Positive
	default:
		return Neutral
	}
}
