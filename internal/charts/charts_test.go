// internal/charts/charts_test.go
package charts

import (
	"reflect"
	"testing"

	"github.com/mwiater/scorecard/internal/catalog"
	"github.com/mwiater/scorecard/internal/dataset"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }
func str(v string) *string   { return &v }

func pricedCatalog() catalog.Index {
	return catalog.BuildIndex([]dataset.CatalogModel{
		{ID: "model-a", DisplayName: "Model A", ReleaseDate: str("2025-03-01"), CostPerMTok: &dataset.ModelPricing{Input: 3, Output: 15}},
		{ID: "model-b", DisplayName: "Model B", ReleaseDate: str("2024-11-10"), CostPerMTok: &dataset.ModelPricing{Input: 1, Output: 5}},
		{ID: "model-c", DisplayName: "Model C"}, // no pricing, no release date
	})
}

func TestScoreSeriesDefaultsMissingScoresToZero(t *testing.T) {
	rows := []dataset.Run{
		{ID: "a", Model: "model-a", AvgScore: f64(0.95)},
		{ID: "b", Model: "model-b"},
	}
	series := ScoreSeries(rows)
	if len(series) != 2 {
		t.Fatalf("score series never drops rows, got %d bars", len(series))
	}
	if series[0].Value != 95 || series[1].Value != 0 {
		t.Fatalf("unexpected bar values %+v", series)
	}
}

func TestDurationSeriesRoundsToOneDecimal(t *testing.T) {
	rows := []dataset.Run{
		{ID: "a", Model: "model-a", DurationMs: i64(123456)},
		{ID: "b", Model: "model-b"},
	}
	series := DurationSeries(rows)
	if series[0].Value != 123.5 {
		t.Fatalf("expected 123.5s, got %v", series[0].Value)
	}
	if series[1].Value != 0 {
		t.Fatalf("expected 0 default for missing duration, got %v", series[1].Value)
	}
}

func TestCostScorePointsRequireBothMetrics(t *testing.T) {
	rows := []dataset.Run{
		{ID: "a", Model: "model-a", AvgScore: f64(0.95), InputTokens: i64(100000)},
		{ID: "b", Model: "model-c", AvgScore: f64(0.80), InputTokens: i64(100000)}, // no pricing
		{ID: "c", Model: "model-a", InputTokens: i64(100000)},                      // no score
		{ID: "d", Model: "model-b", AvgScore: f64(0.70), OutputTokens: i64(50000)},
	}
	points := CostScorePoints(rows, pricedCatalog())
	if len(points) != 2 {
		t.Fatalf("expected 2 qualifying points, got %d", len(points))
	}
	if points[0].RunID != "a" || points[1].RunID != "d" {
		t.Fatalf("unexpected points %+v", points)
	}
}

func TestReleaseTimelineKeepsBestRunPerModel(t *testing.T) {
	rows := []dataset.Run{
		{ID: "a1", Model: "model-a", AvgScore: f64(0.90)},
		{ID: "a2", Model: "model-a", AvgScore: f64(0.95)}, // best model-a run
		{ID: "a3", Model: "model-a", AvgScore: f64(0.95)}, // tie: first (a2) wins
		{ID: "b1", Model: "model-b", AvgScore: f64(0.85)},
		{ID: "c1", Model: "model-c", AvgScore: f64(0.99)}, // no release date
		{ID: "x1", Model: "unlisted", AvgScore: f64(0.50)},
	}
	timeline := ReleaseTimeline(rows, pricedCatalog())
	if len(timeline) != 2 {
		t.Fatalf("expected 2 distinct models, got %d", len(timeline))
	}
	// Sorted by release date ascending: model-b (2024) then model-a (2025).
	if timeline[0].ModelID != "model-b" || timeline[1].ModelID != "model-a" {
		t.Fatalf("unexpected timeline order %+v", timeline)
	}
	if timeline[1].ScorePct != 95 {
		t.Fatalf("expected model-a best score 95, got %d", timeline[1].ScorePct)
	}
}

func TestEfficiencyRankingOrdersByPtsPerDollar(t *testing.T) {
	// A and C priced, B not; C is cheaper than A at the same score, so C
	// ranks first and B is excluded.
	rows := []dataset.Run{
		{ID: "A", Model: "model-a", AvgScore: f64(0.95), InputTokens: i64(1000000)}, // $3.00
		{ID: "B", Model: "model-c", AvgScore: f64(0.80), InputTokens: i64(1000000)}, // no pricing
		{ID: "C", Model: "model-b", AvgScore: f64(0.95), InputTokens: i64(1000000)}, // $1.00
	}
	ranking := EfficiencyRanking(rows, pricedCatalog())
	if len(ranking) != 2 {
		t.Fatalf("expected exactly A and C, got %+v", ranking)
	}
	if ranking[0].RunID != "C" || ranking[1].RunID != "A" {
		t.Fatalf("expected C ranked above A, got %+v", ranking)
	}
	if ranking[0].PtsPerDollar != 95.0 {
		t.Fatalf("expected 95 pts/$ for C, got %v", ranking[0].PtsPerDollar)
	}
}

func TestEfficiencyRankingExcludesZeroCost(t *testing.T) {
	free := catalog.BuildIndex([]dataset.CatalogModel{
		{ID: "free-model", CostPerMTok: &dataset.ModelPricing{}},
	})
	rows := []dataset.Run{
		{ID: "z", Model: "free-model", AvgScore: f64(0.9), InputTokens: i64(1000)},
	}
	if got := EfficiencyRanking(rows, free); len(got) != 0 {
		t.Fatalf("expected zero-cost run excluded, got %+v", got)
	}
}

func TestHeatBandThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  Band
	}{
		{1.0, BandPerfect},
		{0.95, BandHigh},
		{0.9, BandHigh},
		{0.8, BandGood},
		{0.75, BandGood},
		{0.6, BandFair},
		{0.5, BandFair},
		{0.49, BandLow},
		{0, BandLow},
	}
	for _, tc := range cases {
		if got := HeatBand(tc.score); got != tc.want {
			t.Fatalf("HeatBand(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestBuildHeatmapSparseMatrix(t *testing.T) {
	rows := []dataset.Run{
		{ID: "r1", Model: "model-a"},
		{ID: "r2", Model: "model-b"},
		{ID: "r3", Model: "model-c"}, // no per-file data
	}
	fileScores := map[string][]dataset.FileResult{
		"r1": {{FileID: "b.pdf", Score: 0.9}, {FileID: "a.pdf", Score: 1.0}},
		"r2": {{FileID: "c.pdf", Score: 0.4}},
	}

	hm := BuildHeatmap(rows, fileScores)
	if hm.Empty() {
		t.Fatal("expected non-empty heatmap")
	}
	if !reflect.DeepEqual(hm.Files, []string{"a.pdf", "b.pdf", "c.pdf"}) {
		t.Fatalf("expected sorted file union, got %v", hm.Files)
	}
	if len(hm.Rows) != 2 {
		t.Fatalf("expected rows only for runs with data, got %d", len(hm.Rows))
	}

	r1 := hm.Rows[0]
	if r1.RunID != "r1" || *r1.Cells[0] != 1.0 || *r1.Cells[1] != 0.9 || r1.Cells[2] != nil {
		t.Fatalf("unexpected r1 cells %+v", r1)
	}
	r2 := hm.Rows[1]
	if r2.Cells[0] != nil || r2.Cells[1] != nil || *r2.Cells[2] != 0.4 {
		t.Fatalf("unexpected r2 cells %+v", r2)
	}
}

func TestBuildHeatmapEmptyWhenNoPerFileData(t *testing.T) {
	rows := []dataset.Run{{ID: "r1"}, {ID: "r2"}}
	hm := BuildHeatmap(rows, map[string][]dataset.FileResult{"other": {{FileID: "x", Score: 1}}})
	if !hm.Empty() {
		t.Fatalf("expected empty heatmap, got %+v", hm)
	}
}
