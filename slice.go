package textab

import "fmt"

// Slice is a view over a rectangular region of a table's grid. It holds no
// data of its own: reads and writes go straight to the cells occupying the
// region's slots, so a slice observes later changes to the table.
type Slice struct {
	table        *Table
	row, col     int
	toRow, toCol int
}

// At returns a view of the single slot (row, col).
func (t *Table) At(row, col int) (*Slice, error) {
	return t.Range(row, col, row, col)
}

// Row returns a view of one full row.
func (t *Table) Row(row int) (*Slice, error) {
	return t.Range(row, 0, row, t.ColCount()-1)
}

// Col returns a view of one full column.
func (t *Table) Col(col int) (*Slice, error) {
	return t.Range(0, col, t.RowCount()-1, col)
}

// All returns a view of the whole grid.
func (t *Table) All() (*Slice, error) {
	return t.Range(0, 0, t.RowCount()-1, t.ColCount()-1)
}

// Range returns a view of the inclusive rectangle (row0,col0)..(row1,col1).
func (t *Table) Range(row0, col0, row1, col1 int) (*Slice, error) {
	if row0 < 0 || row1 >= t.RowCount() || row0 > row1 {
		return nil, fmt.Errorf("%w: rows %d..%d", ErrOutOfRange, row0, row1)
	}
	if col0 < 0 || col1 >= t.ColCount() || col0 > col1 {
		return nil, fmt.Errorf("%w: columns %d..%d", ErrOutOfRange, col0, col1)
	}
	return &Slice{table: t, row: row0, col: col0, toRow: row1, toCol: col1}, nil
}

// cells visits the cell under every slot in the region. A merged cell is
// visited once per slot it occupies.
func (s *Slice) cells(visit func(*Cell)) {
	for r := s.row; r <= s.toRow; r++ {
		for c := s.col; c <= s.toCol; c++ {
			visit(s.table.grid[r][c])
		}
	}
}

// Value returns the region's single raw value, read at call time. It fails
// when the region's slots resolve to more than one distinct cell.
func (s *Slice) Value() (string, error) {
	first := s.table.grid[s.row][s.col]
	same := true
	s.cells(func(c *Cell) {
		if c != first {
			same = false
		}
	})
	if !same {
		return "", fmt.Errorf("%w: rows %d..%d, columns %d..%d", ErrMultipleValues, s.row, s.toRow, s.col, s.toCol)
	}
	return first.Value, nil
}

// SetValue sets the raw value of every cell in the region.
func (s *Slice) SetValue(v string) {
	s.cells(func(c *Cell) { c.Value = v })
}

// Apply replaces each cell's value with fn of it.
func (s *Slice) Apply(fn func(string) string) {
	s.cells(func(c *Cell) { c.Value = fn(c.Value) })
}

// SetBold sets the bold flag on every cell in the region.
func (s *Slice) SetBold(on bool) {
	s.cells(func(c *Cell) { c.Bold = on })
}

// SetItalic sets the italic flag on every cell in the region.
func (s *Slice) SetItalic(on bool) {
	s.cells(func(c *Cell) { c.Italic = on })
}

// SetBackground sets the background color name on every cell in the region
// and records the colortbl and xcolor dependencies.
func (s *Slice) SetBackground(color string) {
	s.table.dependsOn(pkgColortbl)
	s.table.dependsOn(pkgXcolor)
	s.cells(func(c *Cell) { c.Background = color })
}

// SetRotation sets the rotation angle and options on every cell in the
// region and records the graphicx dependency. Empty options mean "origin=c".
func (s *Slice) SetRotation(degrees float64, options string) {
	if options == "" {
		options = "origin=c"
	}
	s.table.dependsOn(pkgGraphicx)
	s.cells(func(c *Cell) {
		c.Rotation = degrees
		c.RotationOptions = options
	})
}
