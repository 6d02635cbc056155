package tesa

// negationCues invert the polarity of the token right after them.
var negationCues = map[string]bool{
	// adverbs
	"no": true, "without": true, "nil": true, "not": true, "n't": true, "never": true,
	"none": true, "neith": true, "nor": true, "non": true, "seldom": true, "rarely": true,
	"scarcely": true, "barely": true, "hardly": true, "lack": true, "lacking": true,
	"lacks": true, "neither": true, "cannot": true, "can't": true, "daren't": true,
	"doesn't": true, "didn't": true, "hadn't": true, "wasn't": true, "won't": true,
	"hadnt": true, "haven't": true, "weren't": true,
	// verbs
	"deny": true, "reject": true, "refuse": true, "subside": true, "retract": true,
}

// IsNegationCue reports whether token inverts the polarity of its successor.
func IsNegationCue(token string) bool {
	return negationCues[token]
}

// NegationCues returns a copy of the cue set.
func NegationCues() []string {
	cues := make([]string, 0, len(negationCues))
	for cue := range negationCues {
		cues = append(cues, cue)
	}
	return cues
}

type scanState int

const (
	// scanning looks for a cue at the cursor.
	scanning scanState = iota
	// cueConsumed means the cursor sits on a cue and its successor decides
	// the next move.
	cueConsumed
)

// AdjustNegations returns a copy of scores in which the score following each
// negation cue is inverted.
//
// The scan moves a cursor left to right. When a cue is followed by a polar
// token, that token is flipped and the cursor jumps past both, so each cue
// flips at most one token and a flipped token is never itself read as a
// cue. A cue followed by a neutral token advances by one so an adjacent cue
// is still seen: in "not not good" the first cue is followed by a neutral
// token and the second cue flips "good". The scan stops once the cursor
// reaches the last token; the last token is only ever a flip target.
//
// scores must have the same length as tokens.
func AdjustNegations(tokens []string, scores []int) []int {
	adjusted := make([]int, len(scores))
	copy(adjusted, scores)

	last := len(tokens) - 1
	state := scanning
	for i := 0; i < last; {
		switch state {
		case scanning:
			if IsNegationCue(tokens[i]) {
				state = cueConsumed
				continue
			}
			i++
		case cueConsumed:
			switch adjusted[i+1] {
			case ScorePositive:
				adjusted[i+1] = ScoreNegative
				i += 2
			case ScoreNegative:
				adjusted[i+1] = ScorePositive
				i += 2
			default:
				i++
			}
			state = scanning
		}
	}
	return adjusted
}

// flippedPositions lists the indexes where before and after differ.
func flippedPositions(before, after []int) []int {
	var flipped []int
	for i := range before {
		if before[i] != after[i] {
			flipped = append(flipped, i)
		}
	}
	return flipped
}
