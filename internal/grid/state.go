// internal/grid/state.go
package grid

import "strings"

// Direction orders a sorted column.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortKey pairs a column with a direction inside the ordered sort spec.
type SortKey struct {
	Column    string
	Direction Direction
}

// DefaultPageSize is used when the config does not set one.
const DefaultPageSize = 15

// State holds the five orthogonal view-state slices: sort spec, per-column
// filters, global filter, selection set, and pagination. It is created on
// startup, mutated only by UI events, and never persisted.
type State struct {
	columns []Column
	byKey   map[string]Column

	sorts    []SortKey
	filters  map[string]string
	global   string
	selected map[string]struct{}
	pageSize int
	page     int
}

// NewState creates view state over the given columns with the default sort
// (start time descending) applied.
func NewState(columns []Column, pageSize int) *State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	byKey := make(map[string]Column, len(columns))
	for _, c := range columns {
		byKey[c.Key] = c
	}
	return &State{
		columns:  columns,
		byKey:    byKey,
		sorts:    defaultSort(),
		filters:  make(map[string]string),
		selected: make(map[string]struct{}),
		pageSize: pageSize,
	}
}

func defaultSort() []SortKey {
	return []SortKey{{Column: ColStarted, Direction: Descending}}
}

// Columns returns the column definitions in display order.
func (s *State) Columns() []Column { return s.columns }

// Column looks up a column definition by key.
func (s *State) Column(key string) (Column, bool) {
	c, ok := s.byKey[key]
	return c, ok
}

// --- sort slice ---

// SortSpec returns the ordered sort specification, primary key first.
func (s *State) SortSpec() []SortKey {
	out := make([]SortKey, len(s.sorts))
	copy(out, s.sorts)
	return out
}

// CycleSort advances a column through ascending → descending → unsorted. A
// newly sorted column becomes the primary key; remaining keys keep their
// relative order behind it.
func (s *State) CycleSort(column string) {
	if _, ok := s.byKey[column]; !ok {
		return
	}
	rest := make([]SortKey, 0, len(s.sorts))
	var current *SortKey
	for _, k := range s.sorts {
		if k.Column == column {
			k := k
			current = &k
			continue
		}
		rest = append(rest, k)
	}
	switch {
	case current == nil:
		s.sorts = append([]SortKey{{Column: column, Direction: Ascending}}, rest...)
	case current.Direction == Ascending:
		s.sorts = append([]SortKey{{Column: column, Direction: Descending}}, rest...)
	default:
		s.sorts = rest
	}
}

// ResetSort restores the default sort (start time descending).
func (s *State) ResetSort() { s.sorts = defaultSort() }

// --- filter slices ---

// SetFilter sets a column's filter term. An empty value ("All") removes the
// term, which is exactly equivalent to never having filtered that column.
func (s *State) SetFilter(column, value string) {
	if value == "" {
		delete(s.filters, column)
		return
	}
	s.filters[column] = value
}

// Filter returns a column's active filter term, if any.
func (s *State) Filter(column string) (string, bool) {
	v, ok := s.filters[column]
	return v, ok
}

// SetGlobalFilter sets the free-text filter applied across all filterable
// columns.
func (s *State) SetGlobalFilter(value string) { s.global = strings.TrimSpace(value) }

// GlobalFilter returns the active free-text filter.
func (s *State) GlobalFilter() string { return s.global }

// ResetFilters clears every column filter and the global filter.
func (s *State) ResetFilters() {
	s.filters = make(map[string]string)
	s.global = ""
}
