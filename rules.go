package textab

import "fmt"

var ruleTex = map[RuleKind]string{
	RuleTop:    `\toprule`,
	RuleMid:    `\midrule`,
	RuleBottom: `\bottomrule`,
}

// AddRule records a full-width rule above the row that would be added next,
// placing it below everything added so far. Rows added later push the rule
// up relative to them.
func (t *Table) AddRule(kind RuleKind) error {
	return t.AddRuleAt(t.RowCount(), kind)
}

// AddRuleAt records a full-width rule to render above row. The index is
// checked at render time against the final grid; row equal to the row count
// places the rule after the last row.
func (t *Table) AddRuleAt(row int, kind RuleKind) error {
	tex, ok := ruleTex[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrRuleKind, string(kind))
	}
	t.dependsOn(pkgBooktabs)
	t.rules = append(t.rules, anchoredTex{row: row, tex: tex})
	return nil
}

// AddCline records a \cline above row covering the inclusive 0-based column
// range. Negative arguments take defaults: the current row count for row, so
// the line lands above the next row added; the first column for fromCol; the
// last column for toCol. Lines on the same row render in registration order.
func (t *Table) AddCline(row, fromCol, toCol int) {
	t.dependsOn(pkgBooktabs)
	row, fromCol, toCol = t.lineRange(row, fromCol, toCol)
	t.lines = append(t.lines, anchoredTex{row: row, tex: fmt.Sprintf(`\cline{%d-%d}`, fromCol+1, toCol+1)})
}

// AddCmidrule is [Table.AddCline] with the booktabs \cmidrule macro. Empty
// options mean "lr", trimming the line on both ends.
func (t *Table) AddCmidrule(row, fromCol, toCol int, options string) {
	t.dependsOn(pkgBooktabs)
	if options == "" {
		options = "lr"
	}
	row, fromCol, toCol = t.lineRange(row, fromCol, toCol)
	t.lines = append(t.lines, anchoredTex{row: row, tex: fmt.Sprintf(`\cmidrule(%s){%d-%d}`, options, fromCol+1, toCol+1)})
}

// lineRange resolves the default row and column range for partial lines.
func (t *Table) lineRange(row, fromCol, toCol int) (int, int, int) {
	if row < 0 {
		row = t.RowCount()
	}
	if fromCol < 0 {
		fromCol = 0
	}
	if toCol < 0 {
		toCol = t.ColCount() - 1
	}
	return row, fromCol, toCol
}
