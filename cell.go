package textab

import "fmt"

// Cell is one logical table entry. A cell normally occupies a single grid
// slot; cells created by [Table.Merge] span a rectangle of slots, every one
// of which references the same Cell. Value and the style fields stay mutable
// for the cell's lifetime; the anchor position, span, and captured
// separators are fixed at creation.
type Cell struct {
	// Value is the raw cell text, emitted as-is. Escaping is the caller's
	// concern.
	Value string

	// Bold and Italic wrap the rendered value in \textbf and \textit.
	Bold   bool
	Italic bool

	// Background and Rotation are set through [Slice] styling and recorded
	// for package dependency tracking.
	Background      string
	Rotation        float64
	RotationOptions string

	row, col      int
	width, height int
	lsep, rsep    string
}

func newCell(value string, row, col int, lsep, rsep string) *Cell {
	return &Cell{Value: value, row: row, col: col, width: 1, height: 1, lsep: lsep, rsep: rsep}
}

func newSpanCell(value string, row, col, width, height int, lsep, rsep string) *Cell {
	return &Cell{Value: value, row: row, col: col, width: width, height: height, lsep: lsep, rsep: rsep}
}

// Bounds returns the inclusive rectangle of grid slots the cell occupies.
func (c *Cell) Bounds() (row0, col0, row1, col1 int) {
	return c.row, c.col, c.row + c.height - 1, c.col + c.width - 1
}

// StyledValue returns Value wrapped in the style macros that are set.
// Bold applies first, so italic ends up as the outer wrapper.
func (c *Cell) StyledValue() string {
	v := c.Value
	if c.Bold {
		v = `\textbf{` + v + `}`
	}
	if c.Italic {
		v = `\textit{` + v + `}`
	}
	return v
}

func (c *Cell) contains(row, col int) bool {
	return row >= c.row && row < c.row+c.height && col >= c.col && col < c.col+c.width
}

func (c *Cell) single() bool { return c.width == 1 && c.height == 1 }

// renderAt renders the cell for one occupied slot. Only the anchor slot of a
// spanning cell produces text: the styled value wrapped in \multirow when
// the cell is more than one row tall, then in \multicolumn when more than
// one column wide. Every other occupied slot renders empty.
func (c *Cell) renderAt(row, col int) (string, error) {
	if !c.contains(row, col) {
		return "", fmt.Errorf("%w: slot (%d,%d) outside cell anchored at (%d,%d)", ErrOutOfRange, row, col, c.row, c.col)
	}
	if c.single() {
		return c.StyledValue(), nil
	}
	if row != c.row || col != c.col {
		return "", nil
	}
	v := c.StyledValue()
	if c.height > 1 {
		v = fmt.Sprintf(`\multirow{%d}{*}{%s}`, c.height, v)
	}
	if c.width > 1 {
		v = fmt.Sprintf(`\multicolumn{%d}{%s}{%s}`, c.width, c.lsep+"c"+c.rsep, v)
	}
	return v, nil
}

// sepAfter reports whether the slot's render is followed by a column
// separator: every slot except anchor-row slots left of the span's
// rightmost column.
func (c *Cell) sepAfter(row, col int) bool {
	return row != c.row || col == c.col+c.width-1
}

// tableValue renders the slot followed by its column separator when due.
func (c *Cell) tableValue(row, col int) (string, error) {
	v, err := c.renderAt(row, col)
	if err != nil {
		return "", err
	}
	if c.sepAfter(row, col) {
		v += colSep
	}
	return v, nil
}
