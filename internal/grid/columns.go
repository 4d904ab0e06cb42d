// internal/grid/columns.go
// Package grid implements the sortable, filterable, paginated, selectable
// view over benchmark run rows: column definitions, the five view-state
// slices, the row pipeline, and faceted filter values.
package grid

import (
	"fmt"

	"github.com/mwiater/scorecard/internal/catalog"
	"github.com/mwiater/scorecard/internal/dataset"
	"github.com/mwiater/scorecard/internal/derive"
)

// Column keys, used by sort and filter state.
const (
	ColStatus     = "status"
	ColDataset    = "dataset"
	ColPrompt     = "promptVersion"
	ColSchema     = "schemaVersion"
	ColHarness    = "harness"
	ColProvider   = "provider"
	ColModel      = "model"
	ColFiles      = "files"
	ColScore      = "score"
	ColDuration   = "duration"
	ColCost       = "cost"
	ColEfficiency = "efficiency"
	ColStarted    = "started"
)

// Column describes one grid column: how to stringify a row's cell (used for
// display, filter matching and facets) and how to order rows by it. A nil
// Less falls back to lexicographic order on the stringified value.
type Column struct {
	Key        string
	Title      string
	Filterable bool
	Width      int
	Value      func(run dataset.Run) string
	Less       func(a, b dataset.Run) bool
}

// lookup adapts a catalog index to the nil-model join the derive funcs take.
func lookup(index catalog.Index, id string) *dataset.CatalogModel {
	if m, ok := index.Lookup(id); ok {
		return &m
	}
	return nil
}

// lessOptionalFloat orders by an optional numeric, absent values last.
func lessOptionalFloat(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

// Columns builds the grid's column definitions. Derived columns (cost,
// efficiency, model display name) join against the catalog index; a missing
// join degrades to the raw model id and unknown metrics.
func Columns(index catalog.Index) []Column {
	return []Column{
		{
			Key: ColStatus, Title: "Status", Filterable: true, Width: 10,
			Value: func(r dataset.Run) string { return r.Status },
		},
		{
			Key: ColDataset, Title: "Dataset", Filterable: true, Width: 16,
			Value: func(r dataset.Run) string { return r.Dataset },
		},
		{
			Key: ColPrompt, Title: "Prompt", Filterable: true, Width: 8,
			Value: func(r dataset.Run) string { return r.PromptVersion },
		},
		{
			Key: ColSchema, Title: "Schema", Filterable: true, Width: 8,
			Value: func(r dataset.Run) string { return r.SchemaVersion },
		},
		{
			Key: ColHarness, Title: "Harness", Filterable: true, Width: 10,
			Value: func(r dataset.Run) string { return r.Harness },
		},
		{
			Key: ColProvider, Title: "Provider", Filterable: true, Width: 12,
			Value: func(r dataset.Run) string { return r.Provider },
		},
		{
			Key: ColModel, Title: "Model", Filterable: true, Width: 24,
			Value: func(r dataset.Run) string {
				if m, ok := index.Lookup(r.Model); ok {
					return m.DisplayName
				}
				return r.Model
			},
		},
		{
			Key: ColFiles, Title: "Files", Width: 9,
			Value: func(r dataset.Run) string {
				return fmt.Sprintf("%d/%d", r.CompletedFiles, r.TotalFiles)
			},
			Less: func(a, b dataset.Run) bool { return a.CompletedFiles < b.CompletedFiles },
		},
		{
			Key: ColScore, Title: "Score", Width: 7,
			Value: func(r dataset.Run) string {
				if pct := derive.ScorePct(r); pct != nil {
					return fmt.Sprintf("%d%%", *pct)
				}
				return "n/a"
			},
			Less: func(a, b dataset.Run) bool {
				return lessOptionalFloat(a.AvgScore, b.AvgScore)
			},
		},
		{
			Key: ColDuration, Title: "Duration", Width: 9,
			Value: derive.DurationLabel,
			Less: func(a, b dataset.Run) bool {
				return lessOptionalFloat(derive.DurationSeconds(a), derive.DurationSeconds(b))
			},
		},
		{
			Key: ColCost, Title: "Cost", Width: 9,
			Value: func(r dataset.Run) string {
				if cost := derive.Cost(r, lookup(index, r.Model)); cost != nil {
					return derive.FormatCost(*cost)
				}
				return "n/a"
			},
			Less: func(a, b dataset.Run) bool {
				return lessOptionalFloat(
					derive.Cost(a, lookup(index, a.Model)),
					derive.Cost(b, lookup(index, b.Model)),
				)
			},
		},
		{
			Key: ColEfficiency, Title: "Pts/$", Width: 8,
			Value: func(r dataset.Run) string {
				if eff := derive.Efficiency(r, lookup(index, r.Model)); eff != nil {
					return fmt.Sprintf("%.1f", *eff)
				}
				return "n/a"
			},
			Less: func(a, b dataset.Run) bool {
				return lessOptionalFloat(
					derive.Efficiency(a, lookup(index, a.Model)),
					derive.Efficiency(b, lookup(index, b.Model)),
				)
			},
		},
		{
			Key: ColStarted, Title: "Started", Width: 13,
			Value: func(r dataset.Run) string { return derive.DateLabel(r.StartedAt) },
			Less: func(a, b dataset.Run) bool {
				ta, aok := derive.ParseDate(a.StartedAt)
				tb, bok := derive.ParseDate(b.StartedAt)
				if aok && bok {
					return ta.Before(tb)
				}
				if aok != bok {
					return aok
				}
				return a.StartedAt < b.StartedAt
			},
		},
	}
}
