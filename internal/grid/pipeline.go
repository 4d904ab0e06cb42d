// internal/grid/pipeline.go
package grid

import (
	"sort"
	"strings"

	"github.com/mwiater/scorecard/internal/dataset"
)

// Result is one pass of the row pipeline: filter, then sort, then paginate.
type Result struct {
	Filtered  []dataset.Run
	PageRows  []dataset.Run
	Page      int
	PageCount int
}

// Apply runs the full pipeline over the loaded rows. Filtering and sorting
// never mutate the input slice. The current page index is clamped whenever
// the filtered set no longer reaches it.
func (s *State) Apply(rows []dataset.Run) Result {
	filtered := s.Filtered(rows)
	sorted := s.Sorted(filtered)

	pageCount := (len(sorted) + s.pageSize - 1) / s.pageSize
	if pageCount < 1 {
		pageCount = 1
	}
	if s.page > pageCount-1 {
		s.page = pageCount - 1
	}
	if s.page < 0 {
		s.page = 0
	}

	start := s.page * s.pageSize
	end := start + s.pageSize
	if start > len(sorted) {
		start = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}

	return Result{
		Filtered:  filtered,
		PageRows:  sorted[start:end],
		Page:      s.page,
		PageCount: pageCount,
	}
}

// Filtered returns the rows passing every column filter AND the global
// filter, in their original order.
func (s *State) Filtered(rows []dataset.Run) []dataset.Run {
	out := make([]dataset.Run, 0, len(rows))
	for _, r := range rows {
		if s.matchesColumnFilters(r, "") && s.matchesGlobal(r) {
			out = append(out, r)
		}
	}
	return out
}

// matchesColumnFilters checks every active column filter except the one named
// by exclude. Column filters are exact matches against the stringified cell.
func (s *State) matchesColumnFilters(run dataset.Run, exclude string) bool {
	for column, want := range s.filters {
		if column == exclude {
			continue
		}
		col, ok := s.byKey[column]
		if !ok {
			continue
		}
		if col.Value(run) != want {
			return false
		}
	}
	return true
}

// matchesGlobal checks the free-text filter as a case-insensitive substring
// across every filterable column.
func (s *State) matchesGlobal(run dataset.Run) bool {
	if s.global == "" {
		return true
	}
	needle := strings.ToLower(s.global)
	for _, col := range s.columns {
		if !col.Filterable {
			continue
		}
		if strings.Contains(strings.ToLower(col.Value(run)), needle) {
			return true
		}
	}
	return false
}

// Sorted returns the rows ordered by the sort spec. The sort is stable, so
// ties keep their original relative order.
func (s *State) Sorted(rows []dataset.Run) []dataset.Run {
	if len(s.sorts) == 0 {
		out := make([]dataset.Run, len(rows))
		copy(out, rows)
		return out
	}
	out := make([]dataset.Run, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		for _, key := range s.sorts {
			col, ok := s.byKey[key.Column]
			if !ok {
				continue
			}
			a, b := out[i], out[j]
			if key.Direction == Descending {
				a, b = b, a
			}
			switch {
			case s.less(col, a, b):
				return true
			case s.less(col, b, a):
				return false
			}
		}
		return false
	})
	return out
}

// less orders two rows by one column, falling back to the stringified value
// when the column has no comparator.
func (s *State) less(col Column, a, b dataset.Run) bool {
	if col.Less != nil {
		return col.Less(a, b)
	}
	return col.Value(a) < col.Value(b)
}

// FacetedValues computes the distinct stringified values of a column across
// the rows that satisfy every active filter except that column's own (the
// global filter still applies). The result is sorted ascending.
func (s *State) FacetedValues(rows []dataset.Run, column string) []string {
	col, ok := s.byKey[column]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	for _, r := range rows {
		if !s.matchesColumnFilters(r, column) || !s.matchesGlobal(r) {
			continue
		}
		seen[col.Value(r)] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// ShowFilterControl reports whether a column's filter dropdown should render.
// A facet with at most one reachable value cannot narrow anything, so its
// control is suppressed.
func (s *State) ShowFilterControl(rows []dataset.Run, column string) bool {
	col, ok := s.byKey[column]
	if !ok || !col.Filterable {
		return false
	}
	return len(s.FacetedValues(rows, column)) > 1
}

// --- selection slice ---

// ToggleRow flips one row's selection. Selection is keyed by run id and is
// independent of the active filter.
func (s *State) ToggleRow(id string) {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return
	}
	s.selected[id] = struct{}{}
}

// Selected reports whether a run id is selected.
func (s *State) Selected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// SelectionCount returns the number of selected rows.
func (s *State) SelectionCount() int { return len(s.selected) }

// SelectedRows projects the selection onto the given rows, preserving their
// order. Selected ids not present in rows are ignored.
func (s *State) SelectedRows(rows []dataset.Run) []dataset.Run {
	out := make([]dataset.Run, 0, len(s.selected))
	for _, r := range rows {
		if s.Selected(r.ID) {
			out = append(out, r)
		}
	}
	return out
}

// ToggleAllMatching toggles every row currently matching the filter: if all
// of them are selected, they are deselected; otherwise all become selected.
// Rows outside the filter keep their selection state either way.
func (s *State) ToggleAllMatching(rows []dataset.Run) {
	filtered := s.Filtered(rows)
	all := len(filtered) > 0
	for _, r := range filtered {
		if !s.Selected(r.ID) {
			all = false
			break
		}
	}
	for _, r := range filtered {
		if all {
			delete(s.selected, r.ID)
		} else {
			s.selected[r.ID] = struct{}{}
		}
	}
}

// ClearSelection empties the selection set.
func (s *State) ClearSelection() { s.selected = make(map[string]struct{}) }

// --- pagination slice ---

// Page returns the current page index.
func (s *State) Page() int { return s.page }

// PageSize returns the page size.
func (s *State) PageSize() int { return s.pageSize }

// SetPage moves to the given page index; clamping to the filtered set happens
// on the next Apply.
func (s *State) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	s.page = page
}

// NextPage advances one page.
func (s *State) NextPage() { s.page++ }

// PrevPage moves back one page.
func (s *State) PrevPage() {
	if s.page > 0 {
		s.page--
	}
}

// ResetPagination returns to the first page.
func (s *State) ResetPagination() { s.page = 0 }

// ResetAll restores every state slice to its default.
func (s *State) ResetAll() {
	s.ResetSort()
	s.ResetFilters()
	s.ClearSelection()
	s.ResetPagination()
}
