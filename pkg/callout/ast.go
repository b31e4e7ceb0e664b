package callout

import (
	"github.com/yuin/goldmark/ast"
)

// A Callout node is a blockquote rewritten into a typed admonition
// container. Its children are the original quote body, preceded by a
// CalloutTitle when one was synthesized.
type Callout struct {
	ast.BaseBlock

	// CalloutType is the lowercased type tag ("note", "warning", ...).
	CalloutType string
	// Title is the declared title text, "" when the declaration had none.
	Title string
	// Fold is the collapse marker ('+' or '-') that followed the tag, 0
	// when absent. It is carried for downstream renderers but has no
	// effect on HTML output.
	Fold byte
	// Position is the byte offset of the title line in the source.
	Position int
}

// KindCallout is a NodeKind of the Callout node.
var KindCallout = ast.NewNodeKind("Callout")

// Kind implements ast.Node.Kind.
func (n *Callout) Kind() ast.NodeKind { return KindCallout }

// Dump implements ast.Node.Dump.
func (n *Callout) Dump(source []byte, level int) {
	kv := map[string]string{"CalloutType": n.CalloutType}
	if n.Title != "" {
		kv["Title"] = n.Title
	}
	if n.Fold != 0 {
		kv["Fold"] = string(rune(n.Fold))
	}
	ast.DumpHelper(n, source, level, kv, nil)
}

// NewCallout returns a new Callout node.
func NewCallout(calloutType string) *Callout {
	return &Callout{CalloutType: calloutType}
}

// A CalloutTitle node is the header block inserted before a callout's
// body. Its children are an optional CalloutSymbol followed by the opaque
// title text.
type CalloutTitle struct {
	ast.BaseBlock
}

// KindCalloutTitle is a NodeKind of the CalloutTitle node.
var KindCalloutTitle = ast.NewNodeKind("CalloutTitle")

// Kind implements ast.Node.Kind.
func (n *CalloutTitle) Kind() ast.NodeKind { return KindCalloutTitle }

// Dump implements ast.Node.Dump.
func (n *CalloutTitle) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// NewCalloutTitle returns a new CalloutTitle node.
func NewCalloutTitle() *CalloutTitle {
	return &CalloutTitle{}
}

// A CalloutSymbol node wraps the configured symbol text inside a title.
type CalloutSymbol struct {
	ast.BaseInline
}

// KindCalloutSymbol is a NodeKind of the CalloutSymbol node.
var KindCalloutSymbol = ast.NewNodeKind("CalloutSymbol")

// Kind implements ast.Node.Kind.
func (n *CalloutSymbol) Kind() ast.NodeKind { return KindCalloutSymbol }

// Dump implements ast.Node.Dump.
func (n *CalloutSymbol) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// NewCalloutSymbol returns a new CalloutSymbol node.
func NewCalloutSymbol() *CalloutSymbol {
	return &CalloutSymbol{}
}
