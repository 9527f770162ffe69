package experiments

import (
	"math"

	"hanabi/experiments/metrics"
)

// Summary aggregates the scores of a run.
type Summary struct {
	Rounds      int     `json:"rounds"`
	Counted     int     `json:"counted"`
	Mean        float64 `json:"mean"`
	Variance    float64 `json:"variance"`
	StdErr      float64 `json:"std_err"`
	Min         int     `json:"min"`
	Max         int     `json:"max"`
	Perfect     int     `json:"perfect"`
	PerfectRate float64 `json:"perfect_rate"`
	Aborted     int     `json:"aborted"`
	// Histogram counts rounds by score, indexed by score.
	Histogram []int `json:"histogram"`
}

// Summarize computes the statistics of records. Aborted rounds score 0
// unless excludeAborted drops them. Variance is the sample variance.
func Summarize(records []metrics.RoundRecord, maxScore int, excludeAborted bool) Summary {
	s := Summary{
		Rounds:    len(records),
		Histogram: make([]int, maxScore+1),
	}
	var scores []float64
	for _, r := range records {
		if r.Aborted() {
			s.Aborted++
			if excludeAborted {
				continue
			}
		}
		if r.Perfect {
			s.Perfect++
		}
		score := r.Score
		if len(scores) == 0 || score < s.Min {
			s.Min = score
		}
		if len(scores) == 0 || score > s.Max {
			s.Max = score
		}
		if score >= 0 && score <= maxScore {
			s.Histogram[score]++
		}
		scores = append(scores, float64(score))
	}

	s.Counted = len(scores)
	if s.Counted == 0 {
		return s
	}
	s.PerfectRate = float64(s.Perfect) / float64(s.Counted)

	sum := 0.0
	for _, x := range scores {
		sum += x
	}
	s.Mean = sum / float64(s.Counted)
	if s.Counted > 1 {
		sq := 0.0
		for _, x := range scores {
			sq += (x - s.Mean) * (x - s.Mean)
		}
		s.Variance = sq / float64(s.Counted-1)
		s.StdErr = math.Sqrt(s.Variance / float64(s.Counted))
	}
	return s
}
