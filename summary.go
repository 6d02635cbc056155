package tesa

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the scores of a batch of texts.
type Summary struct {
	Count  int
	Labels map[Label]int

	Mean   float64
	StdDev float64 // sample standard deviation; 0 for fewer than two texts
	Min    int
	Max    int
}

// Summarize aggregates results. Labels always holds all three labels; an
// empty slice yields zero counts and zero statistics.
func Summarize(results []Result) Summary {
	sum := Summary{
		Count:  len(results),
		Labels: map[Label]int{Negative: 0, Neutral: 0, Positive: 0},
	}
	if len(results) == 0 {
		return sum
	}

	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = float64(r.Score)
		sum.Labels[r.Label]++
	}

	sum.Mean = stat.Mean(scores, nil)
	if len(scores) > 1 {
		sum.StdDev = stat.StdDev(scores, nil)
	}
	sum.Min = int(floats.Min(scores))
	sum.Max = int(floats.Max(scores))
	return sum
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d negative=%d neutral=%d positive=%d mean=%.3f sd=%.3f min=%d max=%d",
		s.Count, s.Labels[Negative], s.Labels[Neutral], s.Labels[Positive],
		s.Mean, s.StdDev, s.Min, s.Max)
}
