// Package textab generates LaTeX table source. A [Table] is a mutable grid
// of cells that grows on demand, supports merged spans across rows and
// columns, and renders as a tabular environment wrapped in a configurable
// float.
//
// # Building
//
// Construct with [New] and any number of options, then add content with
// [Table.AddRow] and [Table.AddCol]. Rows and columns never need to match
// the current shape: short ones are padded with the placeholder and long
// ones grow the grid, so every row always holds exactly [Table.ColCount]
// cells:
//
//	t := textab.New(textab.Caption("Revenue"), textab.Label("tab:rev"))
//	t.AddRow("Region", "Q1", "Q2")
//	t.AddRow("North", 104, 121)
//
// Values are converted with fmt.Sprint; nil becomes the placeholder. Use
// [Table.AddRowWith] or [Table.AddColWith] to supply a [Prep] transform or
// to offset the first value.
//
// # Merged Cells
//
// [Table.Merge] collapses a rectangle of slots into one cell rendered with
// \multicolumn and, when taller than one row, \multirow. Each axis of the
// rectangle takes exactly one bound:
//
//	t.Merge("Totals", 0, 1, textab.Width(2), textab.Height(1))
//
// A merge may swallow an earlier merge entirely but must not cut through
// one; a conflicting merge fails with [ErrSpanOverlap] and leaves the table
// unchanged.
//
// # Rules and Partial Lines
//
// [Table.AddRule] places a full-width booktabs rule below everything added
// so far, and [Table.AddRuleAt] anchors one above an explicit row, where row
// [Table.RowCount] means after the last row. [Table.AddCline] and
// [Table.AddCmidrule] draw partial lines over a column range. Rule and line
// positions are checked at render time against the final grid.
//
// # Slices
//
// [Table.At], [Table.Row], [Table.Col], [Table.Range], and [Table.All]
// return a [Slice], a live view over a rectangle of the grid. Slices read
// and write the underlying cells directly:
//
//	hdr, _ := t.Row(0)
//	hdr.SetBold(true)
//
// [Slice.Value] returns the single value a region resolves to and fails
// with [ErrMultipleValues] when the region covers more than one cell.
//
// # Styling
//
// Bold and italic render as \textbf and \textit. [Slice.SetBackground] and
// [Slice.SetRotation] record cell styling along with the LaTeX packages it
// requires. [Table.Dependencies] lists every package the table has
// accumulated, and [Table.RenderDeps] renders the matching \usepackage
// lines for a document preamble.
//
// # Documents
//
// A [Document] describes a table declaratively. [FromYAML] and [FromTOML]
// decode one and build the table it names, columns first so separators
// apply to every cell:
//
//	t, err := textab.FromYAML(data)
//
// # Rendering
//
// [Table.Render] returns the LaTeX source; [Table.WriteTo] writes it
// followed by a newline. Cell values pass through verbatim, so LaTeX in
// values is preserved and escaping is the caller's concern. The
// [AlignSource] option pads single-column cells so separators line up down
// the source without changing the token stream.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrOutOfRange] — index outside the grid, or a rule or line past it
//   - [ErrSpanArgs] — merge bounds missing or doubled on an axis
//   - [ErrSpanOverlap] — merge cutting through an existing cell
//   - [ErrMultipleValues] — single value read from a multi-cell region
//   - [ErrRuleKind] — unknown rule kind name
//   - [ErrNoCaption] — label set without a caption
//   - [ErrDocument] — undecodable or inconsistent table document
package textab
