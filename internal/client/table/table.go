// Package table implements a generic sortable, optionally paginated grid,
// decoupled from what the rows mean. Pages own filtering and business
// state; the model owns presentation state (sort order, current page).
package table

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// emptyMessage is rendered as the single row of an empty table.
const emptyMessage = "Nenhum resultado encontrado"

// PageSizeChoices is the fixed set the page-size selector offers.
var PageSizeChoices = []int{5, 10, 20, 30, 40, 50}

// Column maps a record to one displayable cell. Sort, when set, supplies
// the comparison key; otherwise Cell is compared.
type Column[T any] struct {
	Key    string
	Header string
	Cell   func(T) string
	Sort   func(T) string
}

// SortState is one entry of the ordered sort sequence.
type SortState struct {
	Key  string
	Desc bool
}

// Pagination describes externally controlled ("manual") paging: the model
// never slices its data, it only reports page and size change requests
// upward and displays the supplied metadata.
type Pagination struct {
	PageIndex        int
	PageSize         int
	PageCount        int
	TotalElements    int
	OnPageChange     func(page int)
	OnPageSizeChange func(size int)
}

// Model is the table viewer for records of type T.
type Model[T any] struct {
	columns     []Column[T]
	data        []T
	sorting     []SortState
	pagination  *Pagination
	searchLabel string
	onSearch    func(query string)
}

// New creates a model over the given column descriptors.
func New[T any](columns []Column[T]) *Model[T] {
	return &Model[T]{columns: columns}
}

// SetData replaces the record sequence the model displays.
func (m *Model[T]) SetData(data []T) {
	m.data = data
}

// SetPagination switches the model to manual pagination. Passing nil turns
// paging off and all rows are shown.
func (m *Model[T]) SetPagination(p *Pagination) {
	m.pagination = p
}

// Pagination returns the current pagination descriptor, nil when unpaged.
func (m *Model[T]) Pagination() *Pagination {
	return m.pagination
}

// SetSearch wires the optional search callback and its input label.
func (m *Model[T]) SetSearch(label string, fn func(query string)) {
	m.searchLabel = label
	m.onSearch = fn
}

// SearchLabel returns the label for the search input, empty when search is
// not wired.
func (m *Model[T]) SearchLabel() string { return m.searchLabel }

// Search forwards the query to the page-owned callback. No-op when search
// is not wired; the model itself never filters.
func (m *Model[T]) Search(query string) {
	if m.onSearch != nil {
		m.onSearch(query)
	}
}

// ToggleSort makes key the primary sort, flipping direction when it already
// is. Unknown keys are ignored.
func (m *Model[T]) ToggleSort(key string) {
	if m.columnByKey(key) == nil {
		return
	}
	if len(m.sorting) > 0 && m.sorting[0].Key == key {
		m.sorting[0].Desc = !m.sorting[0].Desc
		return
	}
	m.sorting = append([]SortState{{Key: key}}, m.sorting...)
}

// Sorting returns the ordered sort sequence.
func (m *Model[T]) Sorting() []SortState {
	return append([]SortState(nil), m.sorting...)
}

// Rows returns the supplied data in display order. Sorting is client-side
// over whatever data is currently supplied; with manual pagination the
// caller already handed us exactly one page, so no slicing happens here.
func (m *Model[T]) Rows() []T {
	rows := append([]T(nil), m.data...)
	// Apply the sort sequence from least to most significant; stability
	// preserves the earlier orderings.
	for i := len(m.sorting) - 1; i >= 0; i-- {
		s := m.sorting[i]
		col := m.columnByKey(s.Key)
		if col == nil {
			continue
		}
		keyOf := col.Cell
		if col.Sort != nil {
			keyOf = col.Sort
		}
		sort.SliceStable(rows, func(a, b int) bool {
			if s.Desc {
				return keyOf(rows[a]) > keyOf(rows[b])
			}
			return keyOf(rows[a]) < keyOf(rows[b])
		})
	}
	return rows
}

// CanPrev reports whether first/previous navigation is enabled.
func (m *Model[T]) CanPrev() bool {
	return m.pagination != nil && m.pagination.PageIndex > 0
}

// CanNext reports whether next/last navigation is enabled.
func (m *Model[T]) CanNext() bool {
	return m.pagination != nil && m.pagination.PageIndex < m.pagination.PageCount-1
}

// FirstPage requests page 0. No-op at the boundary: the callback is not
// invoked, matching a disabled control.
func (m *Model[T]) FirstPage() {
	if !m.CanPrev() {
		return
	}
	m.pagination.OnPageChange(0)
}

// PrevPage requests the previous page. No-op at the boundary.
func (m *Model[T]) PrevPage() {
	if !m.CanPrev() {
		return
	}
	m.pagination.OnPageChange(m.pagination.PageIndex - 1)
}

// NextPage requests the next page. No-op at the boundary.
func (m *Model[T]) NextPage() {
	if !m.CanNext() {
		return
	}
	m.pagination.OnPageChange(m.pagination.PageIndex + 1)
}

// LastPage requests the final page. No-op at the boundary.
func (m *Model[T]) LastPage() {
	if !m.CanNext() {
		return
	}
	m.pagination.OnPageChange(m.pagination.PageCount - 1)
}

// SetPageSize requests a new page size. Only the enumerated choices are
// accepted; resetting to a valid page afterwards is the caller's concern.
func (m *Model[T]) SetPageSize(size int) {
	if m.pagination == nil || m.pagination.OnPageSizeChange == nil {
		return
	}
	for _, choice := range PageSizeChoices {
		if size == choice {
			m.pagination.OnPageSizeChange(size)
			return
		}
	}
}

// Render writes the grid to w: headers, the rows in display order (or the
// single empty-state row), and the paging footer when paginated.
func (m *Model[T]) Render(w io.Writer) {
	tw := tablewriter.NewWriter(w)

	headers := make([]string, len(m.columns))
	for i, col := range m.columns {
		headers[i] = col.Header
	}
	tw.SetHeader(headers)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)

	rows := m.Rows()
	if len(rows) == 0 {
		empty := make([]string, len(m.columns))
		if len(empty) > 0 {
			empty[0] = emptyMessage
		}
		tw.Append(empty)
	} else {
		for _, row := range rows {
			cells := make([]string, len(m.columns))
			for i, col := range m.columns {
				cells[i] = col.Cell(row)
			}
			tw.Append(cells)
		}
	}

	tw.Render()

	if p := m.pagination; p != nil {
		from := p.PageIndex*p.PageSize + 1
		to := p.PageIndex*p.PageSize + len(rows)
		if len(rows) == 0 {
			from = 0
		}
		total := p.TotalElements
		if total == 0 {
			total = p.PageCount * p.PageSize
		}
		fmt.Fprintf(w, "Mostrando %d a %d de %d resultados (página %d de %d, tamanho %d)\n",
			from, to, total, p.PageIndex+1, p.PageCount, p.PageSize)
	}
}

func (m *Model[T]) columnByKey(key string) *Column[T] {
	for i := range m.columns {
		if m.columns[i].Key == key {
			return &m.columns[i]
		}
	}
	return nil
}
