package textab

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrOutOfRange     = errors.New("index out of range")
	ErrSpanArgs       = errors.New("invalid span arguments")
	ErrSpanOverlap    = errors.New("span overlaps an existing cell")
	ErrMultipleValues = errors.New("region holds multiple values")
	ErrRuleKind       = errors.New("unknown rule kind")
	ErrNoCaption      = errors.New("label requires a caption")
	ErrDocument       = errors.New("invalid table document")
)

// LaTeX tokens shared by the cell and row renderers.
const (
	colSep        = " & "
	rowTerminator = ` \\`
)

// Prep converts one raw value to cell text. [Table.AddRowWith] and
// [Table.AddColWith] apply it to every non-nil value; nil values become the
// table's placeholder without passing through Prep.
type Prep func(v any) string

func sprint(v any) string { return fmt.Sprint(v) }

// RuleKind names the booktabs macro emitted for a full-width rule.
type RuleKind string

const (
	RuleTop    RuleKind = "top"
	RuleMid    RuleKind = "mid"
	RuleBottom RuleKind = "bottom"
)

var ruleKinds = []RuleKind{RuleTop, RuleMid, RuleBottom}

// String returns the rule kind name.
func (k RuleKind) String() string { return string(k) }

// RuleKinds returns all recognized rule kinds.
func RuleKinds() []RuleKind {
	out := make([]RuleKind, len(ruleKinds))
	copy(out, ruleKinds)
	return out
}

// ParseRuleKind parses a rule kind name as used in table documents.
func ParseRuleKind(s string) (RuleKind, error) {
	for _, k := range ruleKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrRuleKind, s)
}
