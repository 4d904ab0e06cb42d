// internal/derive/derive.go
// Package derive computes display values and cost metrics from a run joined
// with its catalog metadata. Every function is pure; missing or malformed
// inputs yield "unknown" (nil / fallback strings), never a panic.
package derive

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mwiater/scorecard/internal/dataset"
	"github.com/mwiater/scorecard/internal/util"
)

const (
	// LabelMaxRunes caps chart category labels, ellipsis included.
	LabelMaxRunes = 28
	// PreviewMaxRunes caps prompt previews, ellipsis included.
	PreviewMaxRunes = 72
)

// Cost returns the dollar cost of a run, or nil when it cannot be derived.
// Cost is defined iff the joined model carries pricing AND at least one token
// count is a positive number; an unknown cost is never reported as zero.
func Cost(run dataset.Run, model *dataset.CatalogModel) *float64 {
	if model == nil || model.CostPerMTok == nil {
		return nil
	}
	in := tokenCount(run.InputTokens)
	out := tokenCount(run.OutputTokens)
	if in == 0 && out == 0 {
		return nil
	}
	cost := (float64(in)/1e6)*model.CostPerMTok.Input + (float64(out)/1e6)*model.CostPerMTok.Output
	return &cost
}

// tokenCount reads an optional token count, treating negatives as absent.
func tokenCount(v *int64) int64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

// FormatCost renders a dollar amount with precision scaled to its magnitude:
// four decimals under a cent, three under a dollar, two otherwise.
func FormatCost(v float64) string {
	switch {
	case v < 0.01:
		return fmt.Sprintf("$%.4f", v)
	case v < 1:
		return fmt.Sprintf("$%.3f", v)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// ScorePct returns the run's average score as a rounded percentage, or nil
// when the score is absent or outside the valid 0..1 range.
func ScorePct(run dataset.Run) *int {
	if run.AvgScore == nil {
		return nil
	}
	s := *run.AvgScore
	if math.IsNaN(s) || s < 0 || s > 1 {
		return nil
	}
	pct := int(math.Round(s * 100))
	return &pct
}

// Efficiency returns score points per dollar rounded to one decimal, or nil
// unless the run has both a valid score and a strictly positive cost.
func Efficiency(run dataset.Run, model *dataset.CatalogModel) *float64 {
	pct := ScorePct(run)
	if pct == nil {
		return nil
	}
	cost := Cost(run, model)
	if cost == nil || *cost <= 0 {
		return nil
	}
	eff := math.Round(float64(*pct)/(*cost)*10) / 10
	return &eff
}

// Label derives the chart category key for a run: the model id with any
// provider/ prefix stripped, truncated to LabelMaxRunes. Identical ids
// produce identical labels; deduplication is the caller's concern.
func Label(run dataset.Run) string {
	id := run.Model
	if idx := strings.Index(id, "/"); idx >= 0 {
		id = id[idx+1:]
	}
	return Truncate(id, LabelMaxRunes)
}

// Truncate caps text at max visible runes, ellipsis included when truncated.
func Truncate(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	return util.TruncateRunes(text, max-1)
}

// DurationSeconds returns the run duration in seconds, or nil when the
// duration is absent or negative.
func DurationSeconds(run dataset.Run) *float64 {
	if run.DurationMs == nil || *run.DurationMs < 0 {
		return nil
	}
	secs := float64(*run.DurationMs) / 1000
	return &secs
}

// DurationLabel formats a run duration as seconds with one decimal.
func DurationLabel(run dataset.Run) string {
	secs := DurationSeconds(run)
	if secs == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1fs", *secs)
}

// ParseDate parses an ISO-8601 date or timestamp string.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateLabel formats an ISO-8601 string for display, falling back to the raw
// value when it does not parse.
func DateLabel(value string) string {
	t, ok := ParseDate(value)
	if !ok {
		if value == "" {
			return "n/a"
		}
		return value
	}
	return t.Format("Jan 2, 2006")
}

// PromptPreview returns a single-line preview of prompt text capped at
// PreviewMaxRunes visible runes.
func PromptPreview(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	return Truncate(collapsed, PreviewMaxRunes)
}
