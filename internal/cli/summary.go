// internal/cli/summary.go
package scorecard

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mwiater/scorecard/internal/catalog"
	"github.com/mwiater/scorecard/internal/charts"
	"github.com/mwiater/scorecard/internal/compare"
	"github.com/mwiater/scorecard/internal/dataset"
	"github.com/mwiater/scorecard/internal/derive"
	"github.com/mwiater/scorecard/internal/grid"
	"github.com/mwiater/scorecard/internal/util"
	"github.com/spf13/cobra"
)

type summaryOptions struct {
	jsonPath string
	dataset  string
	provider string
}

var summaryOpts summaryOptions

// Analysis is the headless analysis document: the same series the dashboard
// charts render, computed over the (optionally filtered) run set.
type Analysis struct {
	ExportedAt string                 `json:"exportedAt"`
	RunCount   int                    `json:"runCount"`
	Summary    compare.Summary        `json:"summary"`
	Scores     []charts.Bar           `json:"scores"`
	Durations  []charts.Bar           `json:"durations"`
	CostScore  []charts.Point         `json:"costScore,omitempty"`
	Timeline   []charts.TimelinePoint `json:"timeline,omitempty"`
	Efficiency []charts.RankEntry     `json:"efficiency,omitempty"`
}

// summaryCmd prints benchmark rankings without opening the dashboard.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print benchmark rankings from the export without the dashboard",
	Long: `Load the benchmark export, compute the same derived series the dashboard
charts use (scores, durations, cost efficiency, release timeline), and print
them to the terminal. Optionally write the full analysis document as JSON.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		store := dataset.NewStore(dataset.FileLoader(cfg.DataPathOrDefault()))

		analysis, err := buildAnalysis(cmd.Context(), store, summaryOpts)
		if err != nil {
			return err
		}

		printAnalysis(cmd, analysis)

		if summaryOpts.jsonPath != "" {
			if err := writeAnalysisJSON(summaryOpts.jsonPath, analysis); err != nil {
				return err
			}
			cmd.Printf("Analysis JSON written to %s\n", summaryOpts.jsonPath)
		}
		return nil
	},
}

// buildAnalysis loads the export and derives the analysis document. The
// dataset/provider options narrow the run set through the same filter
// pipeline the dashboard grid uses.
func buildAnalysis(ctx context.Context, store *dataset.Store, opts summaryOptions) (Analysis, error) {
	export, err := store.Load(ctx)
	if err != nil {
		return Analysis{}, err
	}

	index := catalog.BuildIndex(export.Catalog.Models)
	view := grid.NewState(grid.Columns(index), grid.DefaultPageSize)
	if opts.dataset != "" {
		view.SetFilter(grid.ColDataset, opts.dataset)
	}
	if opts.provider != "" {
		view.SetFilter(grid.ColProvider, opts.provider)
	}
	rows := view.Sorted(view.Filtered(export.Runs))

	return Analysis{
		ExportedAt: export.ExportedAt,
		RunCount:   len(rows),
		Summary:    compare.Summarize(rows),
		Scores:     charts.ScoreSeries(rows),
		Durations:  charts.DurationSeries(rows),
		CostScore:  charts.CostScorePoints(rows, index),
		Timeline:   charts.ReleaseTimeline(rows, index),
		Efficiency: charts.EfficiencyRanking(rows, index),
	}, nil
}

var (
	headline = color.New(color.FgCyan, color.Bold).SprintFunc()
	best     = color.New(color.FgGreen).SprintFunc()
	muted    = color.New(color.FgHiBlack).SprintFunc()
)

// printAnalysis renders the analysis document for the terminal.
func printAnalysis(cmd *cobra.Command, a Analysis) {
	cmd.Printf("%s  %s\n\n", headline("Benchmark summary"), muted("exported "+derive.DateLabel(a.ExportedAt)))

	if a.RunCount == 0 {
		cmd.Println("No benchmark runs found.")
		return
	}
	cmd.Printf("Runs: %d\n", a.RunCount)
	if a.Summary.Best != nil {
		cmd.Printf("Best score:   %s (%.0f%%)\n", best(a.Summary.Best.Label), a.Summary.Best.Value)
	}
	if a.Summary.Fastest != nil {
		cmd.Printf("Fastest:      %s (%.1fs)\n", best(a.Summary.Fastest.Label), a.Summary.Fastest.Value)
	}
	if a.Summary.ScoredRuns > 0 {
		cmd.Printf("Mean score:   %.1f%% over %d scored runs\n", a.Summary.MeanScorePct, a.Summary.ScoredRuns)
	}

	if len(a.Efficiency) >= 2 {
		cmd.Printf("\n%s\n", headline("Cost efficiency (pts/$)"))
		for i, e := range a.Efficiency {
			cmd.Printf("  %2d. %-30s %8.1f  %s\n", i+1, e.Label, e.PtsPerDollar, muted(derive.FormatCost(e.Cost)))
		}
	}

	if len(a.Timeline) >= 2 {
		cmd.Printf("\n%s\n", headline("Best score by release date"))
		for _, p := range a.Timeline {
			cmd.Printf("  %s  %-30s %3d%%\n", muted(p.ReleaseDate.Format("2006-01")), p.Label, p.ScorePct)
		}
	}
}

// writeAnalysisJSON writes the analysis document, creating parent dirs.
func writeAnalysisJSON(path string, analysis Analysis) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal analysis JSON: %w", err)
	}

	if err := util.WriteFile(path, data); err != nil {
		return fmt.Errorf("unable to write analysis JSON %s: %w", path, err)
	}
	return nil
}

func init() {
	summaryCmd.Flags().StringVar(&summaryOpts.jsonPath, "json", "", "write the analysis document to this path")
	summaryCmd.Flags().StringVar(&summaryOpts.dataset, "dataset", "", "only include runs for this dataset")
	summaryCmd.Flags().StringVar(&summaryOpts.provider, "provider", "", "only include runs for this provider")
	rootCmd.AddCommand(summaryCmd)
}
