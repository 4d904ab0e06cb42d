// internal/charts/heatmap.go
package charts

import (
	"sort"

	"github.com/mwiater/scorecard/internal/dataset"
	"github.com/mwiater/scorecard/internal/derive"
)

// Band is one of the five fixed heatmap color tiers, strongest first.
type Band int

const (
	BandPerfect Band = iota // score >= 1.0
	BandHigh                // >= 0.9
	BandGood                // >= 0.75
	BandFair                // >= 0.5
	BandLow                 // everything else
)

// HeatBand buckets a score fraction into its color band.
func HeatBand(score float64) Band {
	switch {
	case score >= 1.0:
		return BandPerfect
	case score >= 0.9:
		return BandHigh
	case score >= 0.75:
		return BandGood
	case score >= 0.5:
		return BandFair
	default:
		return BandLow
	}
}

// HeatmapRow is one run's per-file scores, aligned with Heatmap.Files. A nil
// cell means that run has no score for that file.
type HeatmapRow struct {
	RunID string     `json:"runId"`
	Label string     `json:"label"`
	Cells []*float64 `json:"cells"`
}

// Heatmap is the sparse run-by-file score matrix for the resolved rows.
type Heatmap struct {
	Files []string     `json:"files"`
	Rows  []HeatmapRow `json:"rows"`
}

// Empty reports whether no resolved run had any per-file data, in which case
// the heatmap is suppressed entirely.
func (h Heatmap) Empty() bool { return len(h.Files) == 0 }

// BuildHeatmap assembles the matrix: columns are the sorted union of file ids
// across the resolved runs, one row per resolved run that has per-file data.
// Runs absent from fileScores contribute nothing; a missing cell stays nil
// rather than zero.
func BuildHeatmap(rows []dataset.Run, fileScores map[string][]dataset.FileResult) Heatmap {
	union := make(map[string]struct{})
	for _, r := range rows {
		for _, fr := range fileScores[r.ID] {
			union[fr.FileID] = struct{}{}
		}
	}
	if len(union) == 0 {
		return Heatmap{}
	}

	files := make([]string, 0, len(union))
	for f := range union {
		files = append(files, f)
	}
	sort.Strings(files)

	fileIndex := make(map[string]int, len(files))
	for i, f := range files {
		fileIndex[f] = i
	}

	var matrix []HeatmapRow
	for _, r := range rows {
		results := fileScores[r.ID]
		if len(results) == 0 {
			continue
		}
		row := HeatmapRow{RunID: r.ID, Label: derive.Label(r), Cells: make([]*float64, len(files))}
		for _, fr := range results {
			score := fr.Score
			row.Cells[fileIndex[fr.FileID]] = &score
		}
		matrix = append(matrix, row)
	}

	return Heatmap{Files: files, Rows: matrix}
}
