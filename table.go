package textab

import "fmt"

// Table is a mutable grid of cell references plus the column styles and
// separators that frame it. Every row always holds exactly ColCount cells;
// AddRow and AddCol grow whichever dimension falls short. Slots covered by a
// merged cell share one [Cell].
type Table struct {
	grid      [][]*Cell
	colStyles []string
	seps      []string

	caption      string
	label        string
	placement    string
	environment  string
	placeholder  string
	starred      bool
	captionAfter bool
	centered     bool
	alignSource  bool

	deps  map[string]struct{}
	rules []anchoredTex
	lines []anchoredTex
}

// anchoredTex is a LaTeX fragment anchored above a grid row.
type anchoredTex struct {
	row int
	tex string
}

// Option configures a [Table] at construction.
type Option func(*Table)

// Caption sets the float caption.
func Caption(s string) Option { return func(t *Table) { t.caption = s } }

// Label sets the float label. Render fails when a label is set without a
// caption.
func Label(s string) Option { return func(t *Table) { t.label = s } }

// Placement sets the float placement specifier. Default "h!".
func Placement(s string) Option { return func(t *Table) { t.placement = s } }

// Environment sets the outer float environment name. Default "figure".
func Environment(s string) Option { return func(t *Table) { t.environment = s } }

// Placeholder sets the text substituted for nil and padded values.
// Default empty.
func Placeholder(s string) Option { return func(t *Table) { t.placeholder = s } }

// Starred renders the starred variant of the float environment.
func Starred() Option { return func(t *Table) { t.starred = true } }

// CaptionAfter places the caption below the tabular body instead of above.
func CaptionAfter() Option { return func(t *Table) { t.captionAfter = true } }

// NoCenter omits the \centering directive.
func NoCenter() Option { return func(t *Table) { t.centered = false } }

// AlignSource pads single-column cells so the separators line up down the
// rendered source. The token stream is unchanged; only spacing differs.
func AlignSource() Option { return func(t *Table) { t.alignSource = true } }

// New returns an empty table. Columns appear on the first AddRow or AddCol.
func New(opts ...Option) *Table {
	t := &Table{
		placement:   "h!",
		environment: "figure",
		centered:    true,
		deps:        make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RowCount returns the number of grid rows.
func (t *Table) RowCount() int { return len(t.grid) }

// ColCount returns the number of grid columns.
func (t *Table) ColCount() int { return len(t.colStyles) }

// AddRow appends one row of single-slot cells. A row narrower than the table
// is padded with the placeholder; a wider one grows every existing row with
// placeholder cells first.
func (t *Table) AddRow(values ...any) {
	t.AddRowWith(nil, 0, values...)
}

// AddRowWith is [Table.AddRow] with an explicit value transform and starting
// column: values land at columns start onward and earlier columns get the
// placeholder. A nil prep means the default fmt.Sprint conversion.
func (t *Table) AddRowWith(prep Prep, start int, values ...any) {
	vals := t.convert(prep, start, values)
	// Reach the final column count before any cell captures its separators.
	if n := len(vals) - t.ColCount(); n > 0 {
		t.growCols(n)
	}
	for len(vals) < t.ColCount() {
		vals = append(vals, t.placeholder)
	}
	r := len(t.grid)
	row := make([]*Cell, len(vals))
	for c, v := range vals {
		row[c] = newCell(v, r, c, t.seps[c], t.seps[c+1])
	}
	t.grid = append(t.grid, row)
}

// AddCol appends one column of single-slot cells with the default "c" style.
// A column shorter than the table is padded with the placeholder; a longer
// one grows the row set first.
func (t *Table) AddCol(values ...any) {
	t.AddColWith(nil, 0, values...)
}

// AddColWith is [Table.AddCol] with an explicit value transform and starting
// row. Calling it with no values declares an empty column.
func (t *Table) AddColWith(prep Prep, start int, values ...any) {
	vals := t.convert(prep, start, values)
	// Grow the row set at the current width, then hang the new column's
	// cells off every row.
	if n := len(vals) - t.RowCount(); n > 0 {
		t.growRows(n)
	}
	for len(vals) < t.RowCount() {
		vals = append(vals, t.placeholder)
	}
	t.addColumn()
	c := t.ColCount() - 1
	for r, v := range vals {
		t.grid[r] = append(t.grid[r], newCell(v, r, c, t.seps[c], t.seps[c+1]))
	}
}

// convert applies prep to each value, substituting the placeholder for nils
// and prepending start placeholders. A start at or below zero prepends none.
func (t *Table) convert(prep Prep, start int, values []any) []string {
	if prep == nil {
		prep = sprint
	}
	out := make([]string, 0, max(start, 0)+len(values))
	for range start {
		out = append(out, t.placeholder)
	}
	for _, v := range values {
		if v == nil {
			out = append(out, t.placeholder)
		} else {
			out = append(out, prep(v))
		}
	}
	return out
}

// growCols appends n default columns, one placeholder cell per existing row.
func (t *Table) growCols(n int) {
	for range n {
		t.addColumn()
		c := t.ColCount() - 1
		for r := range t.grid {
			t.grid[r] = append(t.grid[r], newCell(t.placeholder, r, c, t.seps[c], t.seps[c+1]))
		}
	}
}

// growRows appends n placeholder rows at the current width.
func (t *Table) growRows(n int) {
	for range n {
		r := len(t.grid)
		row := make([]*Cell, t.ColCount())
		for c := range row {
			row[c] = newCell(t.placeholder, r, c, t.seps[c], t.seps[c+1])
		}
		t.grid = append(t.grid, row)
	}
}

// addColumn registers one column's style and trailing separator. The first
// column also seeds the leading boundary separator.
func (t *Table) addColumn() {
	t.colStyles = append(t.colStyles, "c")
	if len(t.seps) == 0 {
		t.seps = append(t.seps, "")
	}
	t.seps = append(t.seps, "")
}

// SetColStyle sets the alignment style of one column, e.g. "l" or "p{3cm}".
func (t *Table) SetColStyle(col int, style string) error {
	if col < 0 || col >= t.ColCount() {
		return fmt.Errorf("%w: column %d", ErrOutOfRange, col)
	}
	t.colStyles[col] = style
	return nil
}

// SetSep sets the separator on column boundary i, where boundary i sits left
// of column i and boundary ColCount sits after the last column. Cells
// capture their separators when created, so SetSep affects cells added
// afterwards and the tabular column spec, not the \multicolumn spec of an
// existing merge.
func (t *Table) SetSep(i int, sep string) error {
	if i < 0 || i >= len(t.seps) {
		return fmt.Errorf("%w: separator %d", ErrOutOfRange, i)
	}
	t.seps[i] = sep
	return nil
}

// CellAt returns the cell occupying slot (row, col). Slots covered by one
// merged cell return the same *Cell.
func (t *Table) CellAt(row, col int) (*Cell, error) {
	if row < 0 || row >= t.RowCount() {
		return nil, fmt.Errorf("%w: row %d", ErrOutOfRange, row)
	}
	if col < 0 || col >= t.ColCount() {
		return nil, fmt.Errorf("%w: column %d", ErrOutOfRange, col)
	}
	return t.grid[row][col], nil
}

// ColStyles returns a copy of the per-column styles.
func (t *Table) ColStyles() []string {
	out := make([]string, len(t.colStyles))
	copy(out, t.colStyles)
	return out
}

// Seps returns a copy of the boundary separators, ColCount+1 entries for a
// non-empty table.
func (t *Table) Seps() []string {
	out := make([]string, len(t.seps))
	copy(out, t.seps)
	return out
}
