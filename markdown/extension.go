// Package markdown integrates the mahjong notation renderer with goldmark.
//
// It registers a fenced code block language and an inline syntax:
//
//	```mahjong
//	hand: 123m456p789s11222z
//	title: Example
//	```
//
//	The winning tile was :5m:.
//
// Fenced blocks render as full hand figures; inline spans render as bare tile
// strips. Invalid inline spans are left as literal text, while an invalid
// block renders a uniform error fragment in place of the hand.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/Neumenon/mahjong/mahjong"
)

// Extender installs mahjong rendering into a goldmark.Markdown.
type Extender struct {
	theme        mahjong.Theme
	kanStyle     mahjong.KanStyle
	enableInline bool
}

// Option configures the Extender.
type Option func(*Extender)

// WithTheme sets the tile theme. Default mahjong.ThemeAuto.
func WithTheme(t mahjong.Theme) Option {
	return func(e *Extender) { e.theme = t }
}

// WithClosedKanStyle sets the closed kan depiction. Default KanStyleOuter.
func WithClosedKanStyle(s mahjong.KanStyle) Option {
	return func(e *Extender) { e.kanStyle = s }
}

// WithInline enables or disables the :1m: inline syntax. Default enabled.
func WithInline(enabled bool) Option {
	return func(e *Extender) { e.enableInline = enabled }
}

// New builds an Extender with the given options applied over defaults.
func New(opts ...Option) *Extender {
	e := &Extender{
		theme:        mahjong.ThemeAuto,
		kanStyle:     mahjong.KanStyleOuter,
		enableInline: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extension is an Extender with default configuration.
var Extension = New()

// Extend implements goldmark.Extender.
func (e *Extender) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(defaultBlockTransformer, 100),
		),
	)
	if e.enableInline {
		m.Parser().AddOptions(
			parser.WithInlineParsers(
				// Ahead of emphasis and friends; behind code spans.
				util.Prioritized(defaultInlineParser, 150),
			),
		)
	}
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(newHTMLRenderer(e.theme, e.kanStyle), 100),
		),
	)
}

// htmlRenderer renders the mahjong AST nodes through the core renderer.
type htmlRenderer struct {
	block  *mahjong.Renderer
	inline *mahjong.Renderer
}

func newHTMLRenderer(theme mahjong.Theme, kanStyle mahjong.KanStyle) *htmlRenderer {
	return &htmlRenderer{
		block: mahjong.NewRenderer(
			mahjong.WithTheme(theme),
			mahjong.WithClosedKanStyle(kanStyle),
		),
		inline: mahjong.NewRenderer(
			mahjong.WithTheme(theme),
			mahjong.WithCSSClass("mahjong-inline"),
		),
	}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *htmlRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindBlock, r.renderBlock)
	reg.Register(KindInline, r.renderInline)
}
