// internal/tui/render.go
package tui

import (
	"fmt"
	"strings"

	"github.com/mwiater/scorecard/internal/charts"
	"github.com/mwiater/scorecard/internal/compare"
	"github.com/mwiater/scorecard/internal/dataset"
	"github.com/mwiater/scorecard/internal/derive"
	"github.com/mwiater/scorecard/internal/util"
)

const (
	labelWidth = 28
	barWidth   = 32
)

// padLabel right-pads (and caps) a category label for chart alignment.
func padLabel(label string) string {
	label = util.TruncateRunes(label, labelWidth)
	return fmt.Sprintf("%-*s", labelWidth, label)
}

// bar renders a proportional block bar for value within [0, max].
func (m *Model) bar(value, max float64) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := util.Max(1, util.Min(int(value/max*barWidth), barWidth))
	return m.theme.Bar.Render(strings.Repeat("█", n))
}

// barSection renders one titled bar series.
func (m *Model) barSection(title, unit string, series []charts.Bar) string {
	var max float64
	for _, b := range series {
		if b.Value > max {
			max = b.Value
		}
	}
	var out strings.Builder
	out.WriteString(m.theme.Header.Render(title) + "\n")
	for _, b := range series {
		out.WriteString(fmt.Sprintf("  %s %s %.1f%s\n", padLabel(b.Label), m.bar(b.Value, max), b.Value, unit))
	}
	out.WriteString("\n")
	return out.String()
}

// summarySection renders the headline stats over the resolved rows.
func (m *Model) summarySection(resolved []dataset.Run) string {
	summary := compare.Summarize(resolved)
	var parts []string
	if summary.Best != nil {
		parts = append(parts, fmt.Sprintf("best score %s (%.0f%%)", summary.Best.Label, summary.Best.Value))
	}
	if summary.Fastest != nil {
		parts = append(parts, fmt.Sprintf("fastest %s (%.1fs)", summary.Fastest.Label, summary.Fastest.Value))
	}
	if summary.ScoredRuns > 0 {
		parts = append(parts, fmt.Sprintf("mean score %.1f%%", summary.MeanScorePct))
	}
	if len(parts) == 0 {
		return ""
	}
	return m.theme.Selected.Render(strings.Join(parts, "  ·  ")) + "\n\n"
}

// scoreSection renders the score comparison; never suppressed.
func (m *Model) scoreSection(resolved []dataset.Run) string {
	return m.barSection("Score", "%", charts.ScoreSeries(resolved))
}

// durationSection renders the duration comparison; never suppressed.
func (m *Model) durationSection(resolved []dataset.Run) string {
	return m.barSection("Duration", "s", charts.DurationSeries(resolved))
}

// scatterSection renders cost versus score, suppressed below two points.
func (m *Model) scatterSection(resolved []dataset.Run) string {
	points := charts.CostScorePoints(resolved, m.index)
	if len(points) < 2 {
		return ""
	}
	var max float64
	for _, p := range points {
		if p.Cost > max {
			max = p.Cost
		}
	}
	var out strings.Builder
	out.WriteString(m.theme.Header.Render("Cost vs. score") + "\n")
	for _, p := range points {
		out.WriteString(fmt.Sprintf("  %s %s %s at %d%%\n",
			padLabel(p.Label), m.bar(p.Cost, max), derive.FormatCost(p.Cost), p.ScorePct))
	}
	out.WriteString("\n")
	return out.String()
}

// timelineSection renders best score by model release date, suppressed below
// two distinct models.
func (m *Model) timelineSection(resolved []dataset.Run) string {
	timeline := charts.ReleaseTimeline(resolved, m.index)
	if len(timeline) < 2 {
		return ""
	}
	var out strings.Builder
	out.WriteString(m.theme.Header.Render("Score by release date") + "\n")
	for _, p := range timeline {
		out.WriteString(fmt.Sprintf("  %s %s %s %d%%\n",
			padLabel(p.Label), m.theme.Muted.Render(p.ReleaseDate.Format("Jan 2006")),
			m.bar(float64(p.ScorePct), 100), p.ScorePct))
	}
	out.WriteString("\n")
	return out.String()
}

// efficiencySection renders the pts-per-dollar ranking, suppressed below two
// entries.
func (m *Model) efficiencySection(resolved []dataset.Run) string {
	ranking := charts.EfficiencyRanking(resolved, m.index)
	if len(ranking) < 2 {
		return ""
	}
	var max float64
	for _, e := range ranking {
		if e.PtsPerDollar > max {
			max = e.PtsPerDollar
		}
	}
	var out strings.Builder
	out.WriteString(m.theme.Header.Render("Cost efficiency (pts/$)") + "\n")
	for i, e := range ranking {
		out.WriteString(fmt.Sprintf("  %d. %s %s %.1f pts/$ (%s, %d%%)\n",
			i+1, padLabel(e.Label), m.bar(e.PtsPerDollar, max), e.PtsPerDollar,
			derive.FormatCost(e.Cost), e.ScorePct))
	}
	out.WriteString("\n")
	return out.String()
}

// heatmapView renders the per-file score matrix for the resolved rows.
func (m *Model) heatmapView() string {
	var b strings.Builder
	b.WriteString(m.headerView() + "\n\n")

	resolved := m.resolvedRows()
	hm := charts.BuildHeatmap(resolved, m.fileScores)
	if hm.Empty() {
		b.WriteString("No per-file scores available for the resolved runs.\n")
		b.WriteString("\n" + m.theme.Help.Render("esc back · c compare · q quit"))
		return b.String()
	}

	b.WriteString(m.theme.Header.Render("Per-file scores") + "\n")

	// Column legend, one numbered file per line to keep rows narrow.
	for i, f := range hm.Files {
		b.WriteString(m.theme.Muted.Render(fmt.Sprintf("  %2d %s", i+1, util.TruncateToWidth(f, 48))) + "\n")
	}
	b.WriteString("\n")

	for _, row := range hm.Rows {
		b.WriteString("  " + padLabel(row.Label) + " ")
		for _, cell := range row.Cells {
			if cell == nil {
				b.WriteString(m.theme.Muted.Render(" ·  "))
				continue
			}
			b.WriteString(m.theme.HeatCell(*cell, fmt.Sprintf("%3.0f%%", *cell*100)))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.theme.Help.Render("esc back · c compare · t theme · q quit"))
	return b.String()
}
