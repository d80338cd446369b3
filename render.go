package textab

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

const indent = "    "

// Render renders the table as LaTeX source: the grid linearized row by row,
// partial lines and rules anchored above their rows, the whole wrapped in a
// tabular environment inside the float environment.
func (t *Table) Render() (string, error) {
	rows, err := t.renderRows()
	if err != nil {
		return "", err
	}
	rows, err = t.applyLines(rows)
	if err != nil {
		return "", err
	}
	rows, err = t.applyRules(rows)
	if err != nil {
		return "", err
	}

	caption, err := t.captionLine()
	if err != nil {
		return "", err
	}

	body := make([]string, 0, len(rows)+4)
	if t.centered {
		body = append(body, `\centering`)
	}
	if !t.captionAfter {
		body = append(body, caption)
	}
	body = append(body, texEnv("tabular", "{"+t.colSpec()+"}", rows)...)
	if t.captionAfter {
		body = append(body, caption)
	}

	env := t.environment
	if t.starred {
		env += "*"
	}
	return strings.Join(texEnv(env, "["+t.placement+"]", body), "\n"), nil
}

// WriteTo renders the table and writes it to w followed by a newline.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	s, err := t.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, s+"\n")
	return int64(n), err
}

// renderRows linearizes the grid, one string per row: the occupied slots in
// column order with one trailing separator stripped, then the \\ terminator.
func (t *Table) renderRows() ([]string, error) {
	if t.alignSource {
		return t.renderRowsAligned()
	}
	rows := make([]string, len(t.grid))
	for r, cells := range t.grid {
		var sb strings.Builder
		for c, cell := range cells {
			v, err := cell.tableValue(r, c)
			if err != nil {
				return nil, err
			}
			sb.WriteString(v)
		}
		rows[r] = strings.TrimSuffix(sb.String(), colSep) + rowTerminator
	}
	return rows, nil
}

// renderRowsAligned is renderRows with single-column tokens padded to the
// column's maximum display width. Tokens spanning several columns are left
// unpadded, and each row is right-trimmed before the terminator.
func (t *Table) renderRowsAligned() ([]string, error) {
	tokens := make([][]string, len(t.grid))
	widths := make([]int, t.ColCount())
	for r, cells := range t.grid {
		tokens[r] = make([]string, len(cells))
		for c, cell := range cells {
			v, err := cell.renderAt(r, c)
			if err != nil {
				return nil, err
			}
			tokens[r][c] = v
			if cell.width == 1 {
				if w := runewidth.StringWidth(v); w > widths[c] {
					widths[c] = w
				}
			}
		}
	}
	rows := make([]string, len(t.grid))
	for r, cells := range t.grid {
		var sb strings.Builder
		for c, cell := range cells {
			v := tokens[r][c]
			if cell.width == 1 {
				v = padCell(v, widths[c])
			}
			if cell.sepAfter(r, c) {
				v += colSep
			}
			sb.WriteString(v)
		}
		row := strings.TrimSuffix(sb.String(), colSep)
		rows[r] = strings.TrimRight(row, " ") + rowTerminator
	}
	return rows, nil
}

func padCell(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// applyLines prefixes rows with their partial lines in registration order.
// Line rows must address an existing row.
func (t *Table) applyLines(rows []string) ([]string, error) {
	if len(t.lines) == 0 {
		return rows, nil
	}
	prefixes := make(map[int][]string)
	for _, ln := range t.lines {
		if ln.row < 0 || ln.row >= len(rows) {
			return nil, fmt.Errorf("%w: line above row %d", ErrOutOfRange, ln.row)
		}
		prefixes[ln.row] = append(prefixes[ln.row], ln.tex)
	}
	for r, p := range prefixes {
		rows[r] = strings.Join(p, " ") + " " + rows[r]
	}
	return rows, nil
}

// applyRules inserts full-width rules above their target rows. Rules sort by
// target row with ties keeping registration order, so rules aimed at the
// same row stack in the order they were added. A target equal to the row
// count lands after the last row.
func (t *Table) applyRules(rows []string) ([]string, error) {
	if len(t.rules) == 0 {
		return rows, nil
	}
	sorted := make([]anchoredTex, len(t.rules))
	copy(sorted, t.rules)
	slices.SortStableFunc(sorted, func(a, b anchoredTex) int { return cmp.Compare(a.row, b.row) })
	n := len(rows)
	for added, rule := range sorted {
		if rule.row < 0 || rule.row > n {
			return nil, fmt.Errorf("%w: rule above row %d", ErrOutOfRange, rule.row)
		}
		rows = slices.Insert(rows, rule.row+added, rule.tex)
	}
	return rows, nil
}

func (t *Table) captionLine() (string, error) {
	if t.label != "" && t.caption == "" {
		return "", ErrNoCaption
	}
	if t.caption == "" {
		return "", nil
	}
	line := `\caption{` + t.caption + `}`
	if t.label != "" {
		line += `\label{` + t.label + `}`
	}
	return line, nil
}

// colSpec builds the tabular argument: each column's leading separator and
// style, then the trailing boundary separator.
func (t *Table) colSpec() string {
	var sb strings.Builder
	for i, style := range t.colStyles {
		sb.WriteString(t.seps[i])
		sb.WriteString(style)
	}
	if n := len(t.seps); n > 0 {
		sb.WriteString(t.seps[n-1])
	}
	return sb.String()
}

// texEnv wraps body in \begin{name}suffix ... \end{name}, indenting body
// lines one level and dropping empty ones. suffix carries any [opts] or
// {args} for the begin line.
func texEnv(name, suffix string, body []string) []string {
	out := make([]string, 0, len(body)+2)
	out = append(out, `\begin{`+name+`}`+suffix)
	for _, line := range body {
		if line == "" {
			continue
		}
		out = append(out, indent+line)
	}
	out = append(out, `\end{`+name+`}`)
	return out
}
