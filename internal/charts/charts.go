// internal/charts/charts.go
// Package charts derives chart-ready series from a resolved set of run rows.
// Every transform is pure and independent; callers suppress a chart when its
// series falls below two entries.
package charts

import (
	"math"
	"sort"
	"time"

	"github.com/mwiater/scorecard/internal/catalog"
	"github.com/mwiater/scorecard/internal/dataset"
	"github.com/mwiater/scorecard/internal/derive"
)

// Bar is one category entry in a bar series.
type Bar struct {
	RunID string  `json:"runId"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ScoreSeries maps every resolved row to its score percentage. Rows without
// a score chart as zero bars; the series is never suppressed.
func ScoreSeries(rows []dataset.Run) []Bar {
	out := make([]Bar, 0, len(rows))
	for _, r := range rows {
		value := 0.0
		if pct := derive.ScorePct(r); pct != nil {
			value = float64(*pct)
		}
		out = append(out, Bar{RunID: r.ID, Label: derive.Label(r), Value: value})
	}
	return out
}

// DurationSeries maps every resolved row to its duration in seconds, one
// decimal, defaulting to zero; never suppressed.
func DurationSeries(rows []dataset.Run) []Bar {
	out := make([]Bar, 0, len(rows))
	for _, r := range rows {
		value := 0.0
		if secs := derive.DurationSeconds(r); secs != nil {
			value = math.Round(*secs*10) / 10
		}
		out = append(out, Bar{RunID: r.ID, Label: derive.Label(r), Value: value})
	}
	return out
}

// Point is one run in the cost-versus-score scatter.
type Point struct {
	RunID    string  `json:"runId"`
	Label    string  `json:"label"`
	Cost     float64 `json:"cost"`
	ScorePct int     `json:"scorePct"`
}

// CostScorePoints keeps the rows with both a defined cost and a defined
// score. Callers suppress the scatter below two points.
func CostScorePoints(rows []dataset.Run, index catalog.Index) []Point {
	var out []Point
	for _, r := range rows {
		pct := derive.ScorePct(r)
		cost := derive.Cost(r, joined(index, r.Model))
		if pct == nil || cost == nil {
			continue
		}
		out = append(out, Point{RunID: r.ID, Label: derive.Label(r), Cost: *cost, ScorePct: *pct})
	}
	return out
}

// TimelinePoint is one model on the score-by-release-date chart.
type TimelinePoint struct {
	ModelID     string    `json:"modelId"`
	Label       string    `json:"label"`
	ReleaseDate time.Time `json:"releaseDate"`
	ScorePct    int       `json:"scorePct"`
}

// ReleaseTimeline keeps, for each distinct model id with a release date and
// at least one scored run, only that model's highest-scoring run (the first
// encountered wins an exact tie), ordered by release date ascending. Callers
// suppress the chart below two distinct models.
func ReleaseTimeline(rows []dataset.Run, index catalog.Index) []TimelinePoint {
	best := make(map[string]int) // model id -> index into out
	var out []TimelinePoint

	for _, r := range rows {
		pct := derive.ScorePct(r)
		if pct == nil {
			continue
		}
		model, ok := index.Lookup(r.Model)
		if !ok || model.ReleaseDate == nil {
			continue
		}
		released, ok := derive.ParseDate(*model.ReleaseDate)
		if !ok {
			continue
		}
		point := TimelinePoint{ModelID: r.Model, Label: derive.Label(r), ReleaseDate: released, ScorePct: *pct}
		if i, seen := best[r.Model]; seen {
			if point.ScorePct > out[i].ScorePct {
				out[i] = point
			}
			continue
		}
		best[r.Model] = len(out)
		out = append(out, point)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReleaseDate.Before(out[j].ReleaseDate)
	})
	return out
}

// RankEntry is one run in the cost-efficiency ranking.
type RankEntry struct {
	RunID        string  `json:"runId"`
	Label        string  `json:"label"`
	PtsPerDollar float64 `json:"ptsPerDollar"`
	Cost         float64 `json:"cost"`
	ScorePct     int     `json:"scorePct"`
}

// EfficiencyRanking keeps the rows with a defined positive cost and a defined
// score, ordered by score points per dollar descending. Callers suppress the
// ranking below two entries.
func EfficiencyRanking(rows []dataset.Run, index catalog.Index) []RankEntry {
	var out []RankEntry
	for _, r := range rows {
		model := joined(index, r.Model)
		eff := derive.Efficiency(r, model)
		if eff == nil {
			continue
		}
		cost := derive.Cost(r, model)
		pct := derive.ScorePct(r)
		out = append(out, RankEntry{
			RunID:        r.ID,
			Label:        derive.Label(r),
			PtsPerDollar: *eff,
			Cost:         *cost,
			ScorePct:     *pct,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PtsPerDollar > out[j].PtsPerDollar
	})
	return out
}

// joined adapts the catalog lookup to the optional-model join derive takes.
func joined(index catalog.Index, id string) *dataset.CatalogModel {
	if m, ok := index.Lookup(id); ok {
		return &m
	}
	return nil
}
