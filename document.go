package textab

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Document is a declarative table description decodable from YAML or TOML.
// Zero values fall back to the same defaults as [New]: a document without
// placement renders [h!], one without centered renders \centering, and so
// on. Styles declare the columns, so rows may rely on them instead of
// growing the table; Separators, when present, must hold one entry per
// column boundary.
type Document struct {
	Caption      string   `yaml:"caption" toml:"caption"`
	Label        string   `yaml:"label" toml:"label"`
	Placement    string   `yaml:"placement" toml:"placement"`
	Environment  string   `yaml:"environment" toml:"environment"`
	Starred      bool     `yaml:"starred" toml:"starred"`
	Centered     *bool    `yaml:"centered" toml:"centered"`
	CaptionAfter bool     `yaml:"caption_after" toml:"caption_after"`
	Placeholder  string   `yaml:"placeholder" toml:"placeholder"`
	Styles       []string `yaml:"styles" toml:"styles"`
	Separators   []string `yaml:"separators" toml:"separators"`

	Rows   [][]any    `yaml:"rows" toml:"rows"`
	Merges []DocMerge `yaml:"merges" toml:"merges"`
	Rules  []DocRule  `yaml:"rules" toml:"rules"`
	Lines  []DocLine  `yaml:"lines" toml:"lines"`
}

// DocMerge merges a width by height rectangle anchored at (row, col). Width
// and height default to 1, so either axis may be omitted.
type DocMerge struct {
	Value  string `yaml:"value" toml:"value"`
	Row    int    `yaml:"row" toml:"row"`
	Col    int    `yaml:"col" toml:"col"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

// DocRule places a full-width rule of the named kind, "top", "mid", or
// "bottom". An absent row means below all rows.
type DocRule struct {
	Kind string `yaml:"kind" toml:"kind"`
	Row  *int   `yaml:"row" toml:"row"`
}

// DocLine places a partial line of kind "cline" or "cmidrule" above row,
// covering columns from..to. An absent row means below all rows; an absent
// to means the last column. Options carries \cmidrule trim flags.
type DocLine struct {
	Kind    string `yaml:"kind" toml:"kind"`
	Row     *int   `yaml:"row" toml:"row"`
	From    int    `yaml:"from" toml:"from"`
	To      *int   `yaml:"to" toml:"to"`
	Options string `yaml:"options" toml:"options"`
}

// FromYAML decodes a YAML table document and builds its table.
func FromYAML(data []byte) (*Table, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDocument, err)
	}
	return doc.Build()
}

// FromTOML decodes a TOML table document and builds its table.
func FromTOML(data []byte) (*Table, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDocument, err)
	}
	return doc.Build()
}

// Build materializes the document. Columns and separators are declared
// before any row, so every cell captures the separators the document names,
// then rows, merges, rules, and lines apply in that order.
func (d *Document) Build() (*Table, error) {
	var opts []Option
	if d.Caption != "" {
		opts = append(opts, Caption(d.Caption))
	}
	if d.Label != "" {
		opts = append(opts, Label(d.Label))
	}
	if d.Placement != "" {
		opts = append(opts, Placement(d.Placement))
	}
	if d.Environment != "" {
		opts = append(opts, Environment(d.Environment))
	}
	if d.Placeholder != "" {
		opts = append(opts, Placeholder(d.Placeholder))
	}
	if d.Starred {
		opts = append(opts, Starred())
	}
	if d.CaptionAfter {
		opts = append(opts, CaptionAfter())
	}
	if d.Centered != nil && !*d.Centered {
		opts = append(opts, NoCenter())
	}
	t := New(opts...)

	if len(d.Separators) > 0 && len(d.Separators) != len(d.Styles)+1 {
		return nil, fmt.Errorf("%w: %d separators for %d columns", ErrDocument, len(d.Separators), len(d.Styles))
	}
	for range d.Styles {
		t.AddCol()
	}
	for i, style := range d.Styles {
		if err := t.SetColStyle(i, style); err != nil {
			return nil, err
		}
	}
	for i, sep := range d.Separators {
		if err := t.SetSep(i, sep); err != nil {
			return nil, err
		}
	}

	for _, row := range d.Rows {
		t.AddRow(row...)
	}
	for _, m := range d.Merges {
		width, height := m.Width, m.Height
		if width == 0 {
			width = 1
		}
		if height == 0 {
			height = 1
		}
		if err := t.Merge(m.Value, m.Row, m.Col, Width(width), Height(height)); err != nil {
			return nil, err
		}
	}
	for _, r := range d.Rules {
		kind, err := ParseRuleKind(r.Kind)
		if err != nil {
			return nil, err
		}
		row := t.RowCount()
		if r.Row != nil {
			row = *r.Row
		}
		if err := t.AddRuleAt(row, kind); err != nil {
			return nil, err
		}
	}
	for _, ln := range d.Lines {
		row, to := -1, -1
		if ln.Row != nil {
			row = *ln.Row
		}
		if ln.To != nil {
			to = *ln.To
		}
		switch ln.Kind {
		case "cline":
			t.AddCline(row, ln.From, to)
		case "cmidrule":
			t.AddCmidrule(row, ln.From, to, ln.Options)
		default:
			return nil, fmt.Errorf("%w: line kind %q", ErrDocument, ln.Kind)
		}
	}
	return t, nil
}
