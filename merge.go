package textab

import "fmt"

// MergeOpt bounds one axis of a merge rectangle. Each axis takes exactly one
// of its two forms: [Width] or [ToCol] for columns, [Height] or [ToRow] for
// rows.
type MergeOpt func(*span)

type span struct {
	width, height       int
	toRow, toCol        int
	hasWidth, hasHeight bool
	hasToRow, hasToCol  bool
}

// Width spans n columns rightward from the anchor.
func Width(n int) MergeOpt { return func(s *span) { s.width, s.hasWidth = n, true } }

// Height spans n rows downward from the anchor.
func Height(n int) MergeOpt { return func(s *span) { s.height, s.hasHeight = n, true } }

// ToRow spans down to row r inclusive.
func ToRow(r int) MergeOpt { return func(s *span) { s.toRow, s.hasToRow = r, true } }

// ToCol spans right to column c inclusive.
func ToCol(c int) MergeOpt { return func(s *span) { s.toCol, s.hasToCol = c, true } }

func (s *span) resolve(row, col int) (toRow, toCol int, err error) {
	switch {
	case s.hasHeight && s.hasToRow:
		return 0, 0, fmt.Errorf("%w: height and to-row both given", ErrSpanArgs)
	case s.hasHeight:
		toRow = row + s.height - 1
	case s.hasToRow:
		toRow = s.toRow
	default:
		return 0, 0, fmt.Errorf("%w: height or to-row required", ErrSpanArgs)
	}
	switch {
	case s.hasWidth && s.hasToCol:
		return 0, 0, fmt.Errorf("%w: width and to-col both given", ErrSpanArgs)
	case s.hasWidth:
		toCol = col + s.width - 1
	case s.hasToCol:
		toCol = s.toCol
	default:
		return 0, 0, fmt.Errorf("%w: width or to-col required", ErrSpanArgs)
	}
	return toRow, toCol, nil
}

// Merge replaces the rectangle anchored at (row, col) with one cell carrying
// value. The rectangle must lie inside the grid and every cell it touches
// must be contained by it entirely; re-merging the exact extent of an
// earlier merge replaces that cell. Validation completes before any slot is
// reassigned, so a failed merge leaves the table untouched.
func (t *Table) Merge(value string, row, col int, opts ...MergeOpt) error {
	if row < 0 || row >= t.RowCount() {
		return fmt.Errorf("%w: row %d", ErrOutOfRange, row)
	}
	if col < 0 || col >= t.ColCount() {
		return fmt.Errorf("%w: column %d", ErrOutOfRange, col)
	}

	var s span
	for _, opt := range opts {
		opt(&s)
	}
	toRow, toCol, err := s.resolve(row, col)
	if err != nil {
		return err
	}
	if toRow < row || toRow >= t.RowCount() {
		return fmt.Errorf("%w: rows %d..%d", ErrOutOfRange, row, toRow)
	}
	if toCol < col || toCol >= t.ColCount() {
		return fmt.Errorf("%w: columns %d..%d", ErrOutOfRange, col, toCol)
	}

	for r := row; r <= toRow; r++ {
		for c := col; c <= toCol; c++ {
			r0, c0, r1, c1 := t.grid[r][c].Bounds()
			if r0 < row || c0 < col || r1 > toRow || c1 > toCol {
				return fmt.Errorf("%w: cell at (%d,%d) spans (%d,%d)..(%d,%d)", ErrSpanOverlap, r, c, r0, c0, r1, c1)
			}
		}
	}

	height := toRow - row + 1
	width := toCol - col + 1
	if height > 1 {
		t.dependsOn(pkgMultirow)
	}
	cell := newSpanCell(value, row, col, width, height, t.seps[col], t.seps[toCol+1])
	for r := row; r <= toRow; r++ {
		for c := col; c <= toCol; c++ {
			t.grid[r][c] = cell
		}
	}
	return nil
}
