// internal/tui/update.go
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/scorecard/internal/catalog"
	"github.com/mwiater/scorecard/internal/compare"
	"github.com/mwiater/scorecard/internal/dataset"
	"github.com/mwiater/scorecard/internal/grid"
	"github.com/mwiater/scorecard/internal/logging"
)

// Update is the central update function for the dashboard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case datasetReadyMsg:
		m.runs = msg.export.Runs
		m.index = catalog.BuildIndex(msg.export.Catalog.Models)
		m.exportedAt = msg.export.ExportedAt
		m.view = grid.NewState(grid.Columns(m.index), m.cfg.PageSizeOrDefault())
		m.initTable()
		m.syncGrid()
		m.state = viewTable
		return m, nil

	case datasetErrMsg:
		// The table view keeps its persistent loading/empty state; the
		// cause goes to the log only.
		logging.LogEvent("export load failed: %v", msg.error)
		m.err = msg.error
		return m, nil

	case fileScoresMsg:
		if msg.seq != m.scoresSeq {
			return m, nil // stale response from a superseded fetch
		}
		m.fileScores = msg.scores
		return m, nil

	case spinner.TickMsg:
		if m.state == viewLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == viewTable && !m.filtering {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleKey routes key presses by view and filter-entry mode.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter", "esc":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.view.SetGlobalFilter(m.filter.Value())
			m.syncGrid()
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "t":
		m.theme = m.theme.Toggle()
		return m, nil
	}

	if m.state == viewLoading {
		return m, nil
	}

	switch m.state {
	case viewCompare, viewHeatmap:
		switch msg.String() {
		case "esc", "backspace":
			m.state = viewTable
		case "c":
			m.state = viewCompare
			return m, m.requestFileScores()
		case "h":
			m.state = viewHeatmap
			return m, m.requestFileScores()
		}
		return m, nil
	}

	// Table view.
	switch msg.String() {
	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, nil
	case "tab":
		m.activeCol = (m.activeCol + 1) % len(m.view.Columns())
		return m, nil
	case "shift+tab":
		m.activeCol = (m.activeCol + len(m.view.Columns()) - 1) % len(m.view.Columns())
		return m, nil
	case "s":
		m.view.CycleSort(m.activeColumn().Key)
		m.syncGrid()
		return m, nil
	case "f":
		m.cycleColumnFilter()
		m.syncGrid()
		return m, nil
	case " ":
		if run, ok := m.cursorRun(); ok {
			m.view.ToggleRow(run.ID)
			m.syncGrid()
		}
		return m, nil
	case "a":
		m.view.ToggleAllMatching(m.runs)
		m.syncGrid()
		return m, nil
	case "n", "right":
		m.view.NextPage()
		m.syncGrid()
		return m, nil
	case "p", "left":
		m.view.PrevPage()
		m.syncGrid()
		return m, nil
	case "r":
		m.view.ResetAll()
		m.filter.Reset()
		m.syncGrid()
		return m, nil
	case "c":
		m.state = viewCompare
		return m, m.requestFileScores()
	case "h":
		m.state = viewHeatmap
		return m, m.requestFileScores()
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// activeColumn returns the column the sort/filter keys act on.
func (m *Model) activeColumn() grid.Column {
	return m.view.Columns()[m.activeCol]
}

// cycleColumnFilter advances the active column's filter through All plus its
// faceted values. Columns whose facet has at most one reachable value have
// their control suppressed.
func (m *Model) cycleColumnFilter() {
	col := m.activeColumn()
	if !m.view.ShowFilterControl(m.runs, col.Key) {
		return
	}
	facets := m.view.FacetedValues(m.runs, col.Key)
	current, active := m.view.Filter(col.Key)
	if !active {
		m.view.SetFilter(col.Key, facets[0])
		return
	}
	for i, v := range facets {
		if v == current {
			if i+1 < len(facets) {
				m.view.SetFilter(col.Key, facets[i+1])
			} else {
				m.view.SetFilter(col.Key, "") // wrap to All
			}
			return
		}
	}
	m.view.SetFilter(col.Key, "")
}

// cursorRun maps the table cursor back to the run on the current page.
func (m *Model) cursorRun() (dataset.Run, bool) {
	i := m.tbl.Cursor()
	if i < 0 || i >= len(m.pageRows) {
		return dataset.Run{}, false
	}
	return m.pageRows[i], true
}

// resolvedRows applies the selection-versus-filter rule for the comparison
// views: a selection of two or more rows wins, otherwise the filtered set.
func (m *Model) resolvedRows() []dataset.Run {
	return compare.Resolve(m.view.SelectedRows(m.runs), m.result.Filtered)
}

// requestFileScores issues a fresh per-file score fetch for the resolved
// rows. Bumping the sequence number first invalidates any in-flight fetch.
func (m *Model) requestFileScores() tea.Cmd {
	resolved := m.resolvedRows()
	ids := make([]string, len(resolved))
	for i, r := range resolved {
		ids[i] = r.ID
	}
	m.scoresSeq++
	return fetchFileScoresCmd(m.ctx, m.store, ids, m.scoresSeq)
}

// initTable builds the bubbles table over the grid's columns.
func (m *Model) initTable() {
	cols := []table.Column{{Title: " ", Width: 2}}
	for _, c := range m.view.Columns() {
		cols = append(cols, table.Column{Title: c.Title, Width: c.Width})
	}
	m.tbl = table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(m.view.PageSize()),
	)
}

// syncGrid reruns the row pipeline and mirrors the current page into the
// table widget. Derived values recompute on every state change.
func (m *Model) syncGrid() {
	m.result = m.view.Apply(m.runs)
	m.pageRows = m.result.PageRows

	rows := make([]table.Row, len(m.pageRows))
	for i, r := range m.pageRows {
		mark := " "
		if m.view.Selected(r.ID) {
			mark = "✓"
		}
		row := table.Row{mark}
		for _, c := range m.view.Columns() {
			row = append(row, c.Value(r))
		}
		rows[i] = row
	}
	m.tbl.SetRows(rows)
	if cursor := m.tbl.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.tbl.SetCursor(len(rows) - 1)
	}
}
