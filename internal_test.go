package textab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderAtAnchorOnly(t *testing.T) {
	t.Parallel()
	cell := newSpanCell("X", 0, 0, 2, 2, "", "")
	got, err := cell.renderAt(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, `\multicolumn{2}{c}{\multirow{2}{*}{X}}`, got)
	for _, slot := range [][2]int{{0, 1}, {1, 0}, {1, 1}} {
		got, err := cell.renderAt(slot[0], slot[1])
		assert.NoError(t, err)
		assert.Equal(t, "", got)
	}
}

func TestRenderAtOutsideSpan(t *testing.T) {
	t.Parallel()
	cell := newSpanCell("X", 1, 1, 2, 1, "", "")
	_, err := cell.renderAt(0, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = cell.renderAt(1, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRenderAtMulticolumnSeps(t *testing.T) {
	t.Parallel()
	cell := newSpanCell("X", 0, 0, 3, 1, "|", "||")
	got, err := cell.renderAt(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, `\multicolumn{3}{|c||}{X}`, got)
}

func TestTableValueSeparators(t *testing.T) {
	t.Parallel()
	// A 2x2 span emits its separator after the rightmost anchor-row slot
	// and after every continuation-row slot.
	cell := newSpanCell("X", 0, 0, 2, 2, "", "")
	tests := map[string]struct {
		row, col int
		want     string
	}{
		"anchor":               {row: 0, col: 0, want: `\multicolumn{2}{c}{\multirow{2}{*}{X}}`},
		"anchor row rightmost": {row: 0, col: 1, want: " & "},
		"continuation left":    {row: 1, col: 0, want: " & "},
		"continuation right":   {row: 1, col: 1, want: " & "},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := cell.tableValue(tt.row, tt.col)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableValueSingle(t *testing.T) {
	t.Parallel()
	cell := newCell("v", 0, 0, "", "")
	got, err := cell.tableValue(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, "v & ", got)
}

func TestSpanResolve(t *testing.T) {
	t.Parallel()
	s := span{width: 2, hasWidth: true, height: 3, hasHeight: true}
	toRow, toCol, err := s.resolve(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, toRow)
	assert.Equal(t, 2, toCol)

	s = span{toRow: 2, hasToRow: true, toCol: 4, hasToCol: true}
	toRow, toCol, err = s.resolve(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, toRow)
	assert.Equal(t, 4, toCol)
}

func TestTexEnv(t *testing.T) {
	t.Parallel()
	got := texEnv("tabular", "{cc}", []string{"a", "", "b"})
	assert.Equal(t, []string{
		`\begin{tabular}{cc}`,
		"    a",
		"    b",
		`\end{tabular}`,
	}, got)
}

func TestTexEnvNested(t *testing.T) {
	t.Parallel()
	inner := texEnv("tabular", "{c}", []string{"x"})
	outer := texEnv("figure", "[h!]", inner)
	assert.Equal(t, []string{
		`\begin{figure}[h!]`,
		`    \begin{tabular}{c}`,
		"        x",
		`    \end{tabular}`,
		`\end{figure}`,
	}, outer)
}

func TestColSpec(t *testing.T) {
	t.Parallel()
	tbl := New()
	assert.Equal(t, "", tbl.colSpec())
	tbl.AddRow("a", "b")
	assert.Equal(t, "cc", tbl.colSpec())
	tbl.seps[0] = "|"
	tbl.seps[1] = "||"
	tbl.seps[2] = "|"
	tbl.colStyles[1] = "r"
	assert.Equal(t, "|c||r|", tbl.colSpec())
}

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", padCell("ab", 4))
	assert.Equal(t, "ab", padCell("ab", 2))
	assert.Equal(t, "ab", padCell("ab", 1))
}

func TestPadCellWideChars(t *testing.T) {
	t.Parallel()
	// "你好" occupies four display columns, so only one space is added.
	assert.Equal(t, "你好 ", padCell("你好", 5))
}

func TestConvert(t *testing.T) {
	t.Parallel()
	tbl := New(Placeholder("-"))
	got := tbl.convert(nil, 2, []any{"a", nil, 7})
	assert.Equal(t, []string{"-", "-", "a", "-", "7"}, got)
}

func TestLineRangeDefaults(t *testing.T) {
	t.Parallel()
	tbl := New()
	tbl.AddRow("a", "b", "c")
	row, from, to := tbl.lineRange(-1, -1, -1)
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, from)
	assert.Equal(t, 2, to)

	row, from, to = tbl.lineRange(0, 1, 2)
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, from)
	assert.Equal(t, 2, to)
}

func TestCaptionLine(t *testing.T) {
	t.Parallel()
	tbl := New()
	line, err := tbl.captionLine()
	assert.NoError(t, err)
	assert.Equal(t, "", line)

	tbl.caption = "Results"
	line, err = tbl.captionLine()
	assert.NoError(t, err)
	assert.Equal(t, `\caption{Results}`, line)

	tbl.label = "tab:res"
	line, err = tbl.captionLine()
	assert.NoError(t, err)
	assert.Equal(t, `\caption{Results}\label{tab:res}`, line)

	tbl.caption = ""
	_, err = tbl.captionLine()
	assert.ErrorIs(t, err, ErrNoCaption)
}
