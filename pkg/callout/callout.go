// Package callout implements an Obsidian-style callout extension for goldmark.
//
// A blockquote whose first line declares a bracketed type tag is rewritten
// into a styled container with an optional title/symbol header:
//
//	> [!note] Remember
//	> Body text.
//
// renders as
//
//	<div class="callout callout-note">
//	<h3 class="callout-title">Remember</h3>
//	<p>Body text.</p>
//	</div>
//
// The tag is case-insensitive and may be followed by a fold marker (+ or -),
// which is parsed and recorded but has no effect on rendering. Blockquotes
// whose first line does not declare a callout are left untouched.
package callout

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// TitleFallback selects what the title block contains when a callout
// declares a type tag but no title text.
type TitleFallback string

const (
	// FallbackNone suppresses the title block entirely.
	FallbackNone TitleFallback = "no"
	// FallbackBlank emits a title block with empty title text. The symbol,
	// if one is configured for the type, still appears.
	FallbackBlank TitleFallback = "blank"
	// FallbackType emits the callout type as the title, with only its first
	// rune uppercased.
	FallbackType TitleFallback = "callout-type"
)

// Config holds the rendering configuration shared by the transformer and
// the HTML renderer. It is read-only for the duration of a render.
type Config struct {
	// DefaultElement is the container element used when Elements has no
	// entry for a callout type.
	DefaultElement string
	// Elements maps lowercase callout types to container element overrides.
	Elements map[string]string
	// TitleElement wraps the title block.
	TitleElement string
	// SymbolElement wraps the symbol text inside the title block.
	SymbolElement string
	// Symbols maps lowercase callout types to symbol text.
	Symbols map[string]string
	// TitleFallback governs title rendering for callouts without a title.
	TitleFallback TitleFallback
	// Diagnostic receives non-fatal reports about spans that could not be
	// rewritten and were left as ordinary blockquotes. nil disables it.
	Diagnostic func(format string, args ...any)
}

// NewConfig returns the default configuration.
func NewConfig() Config {
	return Config{
		DefaultElement: "div",
		TitleElement:   "h3",
		SymbolElement:  "span",
		TitleFallback:  FallbackNone,
	}
}

// element returns the container element for a callout type.
func (c *Config) element(calloutType string) string {
	if e, ok := c.Elements[calloutType]; ok {
		return e
	}
	return c.DefaultElement
}

func (c *Config) warnf(format string, args ...any) {
	if c.Diagnostic != nil {
		c.Diagnostic(format, args...)
	}
}

// Option configures the callout extension.
type Option func(*Config)

// WithDefaultElement sets the container element used when no per-type
// override exists.
func WithDefaultElement(name string) Option {
	return func(c *Config) { c.DefaultElement = name }
}

// WithElements sets per-type container element overrides. Keys are
// normalized to lowercase.
func WithElements(elements map[string]string) Option {
	return func(c *Config) { c.Elements = lowerKeys(elements) }
}

// WithTitleElement sets the element wrapping the title block.
func WithTitleElement(name string) Option {
	return func(c *Config) { c.TitleElement = name }
}

// WithSymbolElement sets the element wrapping the symbol text.
func WithSymbolElement(name string) Option {
	return func(c *Config) { c.SymbolElement = name }
}

// WithSymbols sets per-type symbol text. Keys are normalized to lowercase.
func WithSymbols(symbols map[string]string) Option {
	return func(c *Config) { c.Symbols = lowerKeys(symbols) }
}

// WithTitleFallback sets the empty-title fallback policy.
func WithTitleFallback(fallback TitleFallback) Option {
	return func(c *Config) { c.TitleFallback = fallback }
}

// WithDiagnostic sets a callback for non-fatal diagnostics.
func WithDiagnostic(fn func(format string, args ...any)) Option {
	return func(c *Config) { c.Diagnostic = fn }
}

func lowerKeys(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

type calloutExtension struct {
	cfg Config
}

// New returns a goldmark extension that rewrites tagged blockquotes into
// callout containers.
func New(opts ...Option) goldmark.Extender {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &calloutExtension{cfg: cfg}
}

// Enabled is the callout extension with default configuration.
var Enabled = New()

func (e *calloutExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(util.Prioritized(NewTransformer(e.cfg), 500)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(NewHTMLRenderer(e.cfg), 500)),
	)
}
