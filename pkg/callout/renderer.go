package callout

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// HTMLRenderer renders Callout, CalloutTitle and CalloutSymbol nodes using
// the configured element names.
type HTMLRenderer struct {
	cfg Config
}

// NewHTMLRenderer returns a renderer.NodeRenderer for callout nodes.
func NewHTMLRenderer(cfg Config) renderer.NodeRenderer {
	return &HTMLRenderer{cfg: cfg}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *HTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindCallout, r.renderCallout)
	reg.Register(KindCalloutTitle, r.renderTitle)
	reg.Register(KindCalloutSymbol, r.renderSymbol)
}

func (r *HTMLRenderer) renderCallout(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*Callout)
	name := r.cfg.element(n.CalloutType)
	if entering {
		_, _ = w.WriteString("<")
		_, _ = w.WriteString(name)
		_, _ = w.WriteString(` class="callout callout-`)
		_, _ = w.Write(util.EscapeHTML([]byte(n.CalloutType)))
		_, _ = w.WriteString("\">\n")
	} else {
		_, _ = w.WriteString("</")
		_, _ = w.WriteString(name)
		_, _ = w.WriteString(">\n")
	}
	return ast.WalkContinue, nil
}

func (r *HTMLRenderer) renderTitle(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<")
		_, _ = w.WriteString(r.cfg.TitleElement)
		_, _ = w.WriteString(` class="callout-title">`)
	} else {
		_, _ = w.WriteString("</")
		_, _ = w.WriteString(r.cfg.TitleElement)
		_, _ = w.WriteString(">\n")
	}
	return ast.WalkContinue, nil
}

func (r *HTMLRenderer) renderSymbol(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<")
		_, _ = w.WriteString(r.cfg.SymbolElement)
		_, _ = w.WriteString(` class="callout-symbol">`)
	} else {
		_, _ = w.WriteString("</")
		_, _ = w.WriteString(r.cfg.SymbolElement)
		_, _ = w.WriteString(">")
	}
	return ast.WalkContinue, nil
}
