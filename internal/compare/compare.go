// internal/compare/compare.go
// Package compare decides which rows feed the comparison view and computes
// the headline statistics over that resolved set.
package compare

import (
	"github.com/mwiater/scorecard/internal/dataset"
	"github.com/mwiater/scorecard/internal/derive"
)

// MinRows is the smallest resolved set worth comparing. Below it the whole
// comparison view is suppressed.
const MinRows = 2

// Resolve picks the rows to visualize. An explicit selection of two or more
// rows signals deliberate comparison intent and wins outright; anything less
// falls back to everything visible under the active filter.
func Resolve(selected, filtered []dataset.Run) []dataset.Run {
	if len(selected) >= MinRows {
		return selected
	}
	return filtered
}

// Comparable reports whether the resolved set is large enough to visualize.
func Comparable(rows []dataset.Run) bool { return len(rows) >= MinRows }

// Highlight names a single standout run in the summary.
type Highlight struct {
	RunID string  `json:"runId"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Summary holds the headline stats over the resolved rows. Best and Fastest
// are nil when no run qualifies.
type Summary struct {
	Best         *Highlight `json:"best,omitempty"`    // highest score pct
	Fastest      *Highlight `json:"fastest,omitempty"` // lowest duration seconds
	MeanScorePct float64    `json:"meanScorePct"`
	ScoredRuns   int        `json:"scoredRuns"`
}

// Summarize scans the resolved rows once. Ties for best and fastest resolve
// to the first row encountered in iteration order.
func Summarize(rows []dataset.Run) Summary {
	var summary Summary
	var scoreSum int

	for _, r := range rows {
		if pct := derive.ScorePct(r); pct != nil {
			scoreSum += *pct
			summary.ScoredRuns++
			if summary.Best == nil || float64(*pct) > summary.Best.Value {
				summary.Best = &Highlight{RunID: r.ID, Label: derive.Label(r), Value: float64(*pct)}
			}
		}
		if secs := derive.DurationSeconds(r); secs != nil {
			if summary.Fastest == nil || *secs < summary.Fastest.Value {
				summary.Fastest = &Highlight{RunID: r.ID, Label: derive.Label(r), Value: *secs}
			}
		}
	}

	if summary.ScoredRuns > 0 {
		summary.MeanScorePct = float64(scoreSum) / float64(summary.ScoredRuns)
	}
	return summary
}
