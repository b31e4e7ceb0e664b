package callout

import (
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Transformer locates blockquotes whose first paragraph opens with a
// callout declaration and replaces them with Callout nodes. It never
// fails: spans that cannot be rewritten are reported through the
// configured diagnostic callback and left as ordinary blockquotes.
type Transformer struct {
	cfg Config
}

// NewTransformer returns a Transformer with the given configuration.
func NewTransformer(cfg Config) *Transformer {
	return &Transformer{cfg: cfg}
}

// Transform implements parser.ASTTransformer.
func (t *Transformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()

	// Collect candidates before rewriting; replacing nodes mid-walk would
	// invalidate the traversal. The collected pointers stay valid for
	// nested quotes: rewriting an outer quote reparents them unchanged.
	var quotes []*ast.Blockquote
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if bq, ok := n.(*ast.Blockquote); ok {
				quotes = append(quotes, bq)
			}
		}
		return ast.WalkContinue, nil
	})

	for _, bq := range quotes {
		t.rewrite(bq, source)
	}
}

// rewrite replaces a single blockquote with a Callout node when its first
// paragraph declares one.
func (t *Transformer) rewrite(bq *ast.Blockquote, source []byte) {
	// The declaration must open the very first paragraph of the quote.
	para, ok := bq.FirstChild().(*ast.Paragraph)
	if !ok || para.Lines().Len() == 0 {
		return
	}

	seg := para.Lines().At(0)
	def, consumed, ok := MatchTitle(seg.Value(source))
	if !ok {
		return
	}

	prefixEnd := seg.Start + consumed
	if !stripTitlePrefix(para, prefixEnd, source) {
		t.cfg.warnf("callout: unparseable title line at byte %d, leaving quote unchanged", seg.Start)
		return
	}
	if para.ChildCount() == 0 {
		bq.RemoveChild(bq, para)
	}

	callout := NewCallout(def.Type)
	callout.Title = def.Title
	callout.Fold = def.Fold
	callout.Position = seg.Start

	for child := bq.FirstChild(); child != nil; child = bq.FirstChild() {
		bq.RemoveChild(bq, child)
		callout.AppendChild(callout, child)
	}
	parent := bq.Parent()
	parent.ReplaceChild(parent, bq, callout)

	if title, ok := t.resolveTitle(def); ok {
		block := t.newTitleBlock(def.Type, title)
		if first := callout.FirstChild(); first != nil {
			callout.InsertBefore(callout, first, block)
		} else {
			callout.AppendChild(callout, block)
		}
	}
}

// resolveTitle applies the empty-title fallback policy. ok is false when
// no title block should be emitted at all.
func (t *Transformer) resolveTitle(def Definition) (string, bool) {
	if def.Title != "" {
		return def.Title, true
	}
	switch t.cfg.TitleFallback {
	case FallbackBlank:
		return "", true
	case FallbackType:
		return capitalize(def.Type), true
	}
	return "", false
}

// newTitleBlock builds the header inserted before a callout's body: the
// title wrapper, an optional symbol wrapper, and the title text. Title and
// symbol text are opaque; they are not re-parsed as inline markup.
func (t *Transformer) newTitleBlock(calloutType, title string) *CalloutTitle {
	block := NewCalloutTitle()
	if symbol, ok := t.cfg.Symbols[calloutType]; ok {
		sn := NewCalloutSymbol()
		sn.AppendChild(sn, ast.NewString([]byte(symbol)))
		block.AppendChild(block, sn)
	}
	block.AppendChild(block, ast.NewString([]byte(title)))
	return block
}

// stripTitlePrefix removes the matched declaration from the paragraph's
// inline content and keeps the recorded source lines in step. Reports
// false when an inline node overlapping the prefix cannot be trimmed, in
// which case the caller must leave the span unmodified.
func stripTitlePrefix(para *ast.Paragraph, prefixEnd int, source []byte) bool {
	// Classify before mutating so a bail-out leaves the span untouched.
	var (
		remove   []ast.Node
		straddle *ast.Text
	)
	for child := para.FirstChild(); child != nil; child = child.NextSibling() {
		start, stop, ok := inlineSpan(child)
		if !ok {
			return false
		}
		if start >= prefixEnd {
			break
		}
		if stop > prefixEnd {
			txt, isText := child.(*ast.Text)
			if !isText {
				return false
			}
			straddle = txt
			break
		}
		remove = append(remove, child)
	}

	for _, n := range remove {
		para.RemoveChild(para, n)
	}
	if straddle != nil {
		straddle.Segment = straddle.Segment.WithStart(prefixEnd)
	}

	lines := para.Lines()
	if lines.Len() > 0 {
		first := lines.At(0)
		rest := first.WithStart(prefixEnd)
		// A leftover that is empty or a bare line terminator means the
		// declaration covered the whole line.
		if len(util.TrimRightSpace(rest.Value(source))) == 0 {
			trimmed := text.NewSegments()
			for i := 1; i < lines.Len(); i++ {
				trimmed.Append(lines.At(i))
			}
			para.SetLines(trimmed)
		} else {
			lines.Set(0, rest)
		}
	}
	return true
}

// inlineSpan reports the source range covered by an inline node, derived
// from the text segments of the node and its descendants.
func inlineSpan(n ast.Node) (start, stop int, ok bool) {
	if txt, isText := n.(*ast.Text); isText {
		return txt.Segment.Start, txt.Segment.Stop, true
	}
	start, stop = -1, -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if txt, isText := c.(*ast.Text); isText {
				if start < 0 {
					start = txt.Segment.Start
				}
				if txt.Segment.Stop > stop {
					stop = txt.Segment.Stop
				}
			}
		}
		return ast.WalkContinue, nil
	})
	if start < 0 {
		return 0, 0, false
	}
	return start, stop, true
}

// capitalize uppercases only the first rune; the rest of the string passes
// through unchanged.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
