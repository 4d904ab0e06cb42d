// internal/tui/views.go
package tui

import (
	"fmt"
	"strings"

	"github.com/mwiater/scorecard/internal/compare"
	"github.com/mwiater/scorecard/internal/derive"
	"github.com/mwiater/scorecard/internal/grid"
)

// View renders the dashboard for the current state.
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewLoading:
		// A failed load is indistinguishable from a slow one here; the
		// table never surfaces a fetch error directly.
		return fmt.Sprintf("\n  %s Loading benchmark export...\n", m.spin.View())
	case viewTable:
		return m.tableView()
	case viewCompare:
		return m.compareView()
	case viewHeatmap:
		return m.heatmapView()
	default:
		return "Unknown state"
	}
}

// headerView renders the title bar plus the publish-date banner. A missing
// exportedAt is silently omitted.
func (m *Model) headerView() string {
	parts := []string{m.theme.Title.Render("scorecard")}
	if m.exportedAt != "" {
		parts = append(parts, m.theme.Banner.Render("data exported "+derive.DateLabel(m.exportedAt)))
	}
	parts = append(parts, m.theme.Banner.Render("theme: "+m.theme.Name))
	return strings.Join(parts, "  ")
}

// statusView summarizes the active sort, filters, and selection.
func (m *Model) statusView() string {
	var parts []string

	active := m.activeColumn()
	parts = append(parts, m.theme.Header.Render("col: "+active.Title))

	if spec := m.view.SortSpec(); len(spec) > 0 {
		var keys []string
		for _, k := range spec {
			arrow := "↑"
			if k.Direction == grid.Descending {
				arrow = "↓"
			}
			keys = append(keys, k.Column+arrow)
		}
		parts = append(parts, m.theme.Muted.Render("sort: "+strings.Join(keys, ", ")))
	}

	var filters []string
	for _, c := range m.view.Columns() {
		if v, ok := m.view.Filter(c.Key); ok {
			filters = append(filters, fmt.Sprintf("%s=%s", c.Key, v))
		}
	}
	if g := m.view.GlobalFilter(); g != "" {
		filters = append(filters, fmt.Sprintf("text~%q", g))
	}
	if len(filters) > 0 {
		parts = append(parts, m.theme.Accent.Render("filters: "+strings.Join(filters, " ")))
	}

	if n := m.view.SelectionCount(); n > 0 {
		parts = append(parts, m.theme.Selected.Render(fmt.Sprintf("%d selected", n)))
	}

	return strings.Join(parts, "  ")
}

// tableView renders the run grid with its chrome.
func (m *Model) tableView() string {
	var b strings.Builder
	b.WriteString(m.headerView() + "\n")
	b.WriteString(m.statusView() + "\n\n")

	if len(m.result.Filtered) == 0 {
		b.WriteString("No benchmark runs found.\n")
	} else {
		b.WriteString(m.tbl.View() + "\n")
		b.WriteString(m.theme.Muted.Render(fmt.Sprintf("page %d/%d  %d of %d runs shown",
			m.result.Page+1, m.result.PageCount, len(m.pageRows), len(m.result.Filtered))) + "\n")
	}

	if m.filtering {
		b.WriteString("\n" + m.filter.View() + "\n")
	}

	b.WriteString("\n" + m.theme.Help.Render(
		"space select · a select all · tab column · s sort · f filter · / search · n/p page · c compare · h heatmap · t theme · r reset · q quit"))
	return b.String()
}

// compareView renders the multi-chart comparison over the resolved rows.
func (m *Model) compareView() string {
	resolved := m.resolvedRows()

	var b strings.Builder
	b.WriteString(m.headerView() + "\n")

	if !compare.Comparable(resolved) {
		b.WriteString("\nSelect at least two runs (or widen the filter) to compare.\n")
		b.WriteString("\n" + m.theme.Help.Render("esc back · q quit"))
		return b.String()
	}

	source := "filtered rows"
	if m.view.SelectionCount() >= compare.MinRows {
		source = "selected rows"
	}
	b.WriteString(m.theme.Muted.Render(fmt.Sprintf("comparing %d runs (%s)", len(resolved), source)) + "\n\n")

	b.WriteString(m.summarySection(resolved))
	b.WriteString(m.scoreSection(resolved))
	b.WriteString(m.durationSection(resolved))
	b.WriteString(m.scatterSection(resolved))
	b.WriteString(m.timelineSection(resolved))
	b.WriteString(m.efficiencySection(resolved))

	b.WriteString("\n" + m.theme.Help.Render("esc back · h heatmap · t theme · q quit"))
	return b.String()
}
