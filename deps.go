package textab

import (
	"maps"
	"slices"
	"strings"
)

// LaTeX packages the emitted markup can require.
const (
	pkgBooktabs = "booktabs"
	pkgMultirow = "multirow"
	pkgColortbl = "colortbl"
	pkgXcolor   = "xcolor"
	pkgGraphicx = "graphicx"
)

// dependsOn records one package requirement. Recording is idempotent.
func (t *Table) dependsOn(pkg string) {
	t.deps[pkg] = struct{}{}
}

// Dependencies returns the LaTeX package names the table has accumulated,
// sorted. Rules and partial lines require booktabs, merges taller than one
// row require multirow, backgrounds require colortbl and xcolor, and
// rotations require graphicx.
func (t *Table) Dependencies() []string {
	return slices.Sorted(maps.Keys(t.deps))
}

// RenderDeps renders one \usepackage line per accumulated dependency, for
// pasting into a document preamble.
func (t *Table) RenderDeps() string {
	deps := t.Dependencies()
	lines := make([]string, len(deps))
	for i, pkg := range deps {
		lines[i] = `\usepackage{` + pkg + `}`
	}
	return strings.Join(lines, "\n")
}
