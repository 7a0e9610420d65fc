package mahjong

import (
	"html"
	"strings"
)

// Theme selects the tile asset variant.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	// ThemeAuto embeds both variants per tile, tagged for client-side
	// selection, so exactly one is visible in the end rendering context.
	ThemeAuto Theme = "auto"
)

// KanStyle selects which two positions of a closed kan show a face-down back.
type KanStyle string

const (
	// KanStyleOuter hides the first and last tile: back, front, front, back.
	KanStyleOuter KanStyle = "outer"
	// KanStyleInner hides the middle pair: front, back, back, front.
	KanStyleInner KanStyle = "inner"
)

// Rendered tile dimensions in CSS pixels.
const (
	TileWidth  = 45
	TileHeight = 60
)

const backTileHTML = `<span class="mahjong-tile mahjong-tile-back"></span>`

// Renderer composes hands into HTML fragments with inline SVG tiles.
//
// A Renderer is safe for concurrent use: its only mutable state is the shared
// SVG cache and ID generator, both of which serialize internally.
type Renderer struct {
	theme    Theme
	kanStyle KanStyle
	cssClass string
	loader   AssetLoader
	cache    *svgCache
	ids      *IDGen
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme sets the tile theme. Default ThemeAuto.
func WithTheme(t Theme) Option {
	return func(r *Renderer) { r.theme = t }
}

// WithClosedKanStyle sets the closed kan depiction. Default KanStyleOuter.
func WithClosedKanStyle(s KanStyle) Option {
	return func(r *Renderer) { r.kanStyle = s }
}

// WithCSSClass sets the top-level container class. Default "mahjong-hand".
func WithCSSClass(class string) Option {
	return func(r *Renderer) { r.cssClass = class }
}

// WithAssetLoader replaces the embedded default assets. A renderer with a
// custom loader gets its own SVG cache so processed content never leaks
// between loaders.
func WithAssetLoader(l AssetLoader) Option {
	return func(r *Renderer) { r.loader = l }
}

// WithIDGen replaces the shared SVG ID generator, mainly to isolate tests.
func WithIDGen(g *IDGen) Option {
	return func(r *Renderer) { r.ids = g }
}

// NewRenderer builds a Renderer with the given options applied over defaults.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		theme:    ThemeAuto,
		kanStyle: KanStyleOuter,
		cssClass: "mahjong-hand",
		ids:      defaultIDGen,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.loader == nil {
		r.loader = defaultLoader
		r.cache = defaultCache
	} else if r.cache == nil {
		r.cache = newSVGCache()
	}
	return r
}

// Render composes the full hand fragment: dora rows, closed tiles, draw tile,
// melds, and caption, inside a figure carrying the source notation.
func (r *Renderer) Render(hand *Hand, title, notation string) string {
	var sb strings.Builder

	sb.WriteString(`<figure class="` + r.cssClass + `"`)
	if notation != "" {
		sb.WriteString(` data-notation="` + html.EscapeString(notation) + `"`)
	}
	sb.WriteString(">")

	if len(hand.DoraIndicators) > 0 || len(hand.UradoraIndicators) > 0 {
		sb.WriteString(`<div class="mahjong-dora-row">`)
		if len(hand.DoraIndicators) > 0 {
			r.writeDoraSection(&sb, hand.DoraIndicators, "Dora:", "")
		}
		if len(hand.UradoraIndicators) > 0 {
			r.writeDoraSection(&sb, hand.UradoraIndicators, "Uradora:", "mahjong-uradora")
		}
		sb.WriteString("</div>")
	}

	sb.WriteString(`<div class="mahjong-hand-row">`)

	sb.WriteString(`<div class="mahjong-hand-left"><div class="mahjong-tiles">`)
	for _, tile := range hand.ClosedTiles {
		sb.WriteString(r.renderTile(tile))
	}
	sb.WriteString("</div></div>")

	if hand.DrawTile != nil {
		sb.WriteString(`<div class="mahjong-hand-draw"><div class="mahjong-tiles">`)
		sb.WriteString(r.renderTile(*hand.DrawTile))
		sb.WriteString("</div></div>")
	}

	if len(hand.Melds) > 0 {
		sb.WriteString(`<div class="mahjong-hand-melds"><div class="mahjong-tiles">`)
		for _, meld := range hand.Melds {
			r.writeMeld(&sb, meld)
		}
		sb.WriteString("</div></div>")
	}

	sb.WriteString("</div>")

	if title != "" {
		sb.WriteString(`<figcaption class="mahjong-caption">` + html.EscapeString(title) + `</figcaption>`)
	}

	sb.WriteString("</figure>")
	return sb.String()
}

// RenderTiles composes a bare tile sequence with no hand structure.
func (r *Renderer) RenderTiles(tiles []Tile) string {
	var sb strings.Builder
	sb.WriteString(`<span class="` + r.cssClass + `">`)
	for _, tile := range tiles {
		sb.WriteString(r.renderTile(tile))
	}
	sb.WriteString("</span>")
	return sb.String()
}

// ErrorHTML wraps a parse failure message in the uniform error fragment that
// callers substitute for the hand markup.
func ErrorHTML(message string) string {
	return `<div class="mahjong-error"><strong>Mahjong Error:</strong> ` +
		html.EscapeString(message) + `</div>`
}

func (r *Renderer) writeDoraSection(sb *strings.Builder, tiles []Tile, label, extraClass string) {
	cls := "mahjong-dora"
	if extraClass != "" {
		cls += " " + extraClass
	}
	sb.WriteString(`<div class="` + cls + `">`)
	sb.WriteString(`<span class="mahjong-dora-label">` + label + `</span>`)
	sb.WriteString(`<span class="mahjong-dora-tiles">`)
	for _, tile := range tiles {
		sb.WriteString(r.renderTile(tile))
	}
	sb.WriteString("</span></div>")
}

func (r *Renderer) renderTile(tile Tile) string {
	info, ok := tile.Info()
	if !ok {
		return `<span class="mahjong-tile mahjong-tile-unknown" data-tile="` +
			tile.Notation() + `">?</span>`
	}

	classes := []string{"mahjong-tile"}
	if tile.Rotated {
		classes = append(classes, "mahjong-tile-rotated")
	}
	if tile.Added {
		classes = append(classes, "mahjong-tile-added")
	}
	if r.theme == ThemeLight || r.theme == ThemeDark {
		classes = append(classes, "mahjong-theme-"+string(r.theme))
	}

	var svg string
	if r.theme == ThemeAuto {
		svg = r.themedSVG(info)
	} else {
		svg = r.tileSVG(info, r.theme)
	}

	return `<span class="` + strings.Join(classes, " ") + `" data-tile="` + tile.Notation() +
		`" title="` + info.DisplayName + `">` + svg + `</span>`
}

func (r *Renderer) writeMeld(sb *strings.Builder, meld *Meld) {
	state := "closed"
	if meld.IsOpen() {
		state = "open"
	}
	sb.WriteString(`<span class="mahjong-meld mahjong-meld-` + state + `">`)
	if meld.Type == KanAdded {
		r.writeAddedKan(sb, meld)
	} else {
		r.writeStandardMeld(sb, meld)
	}
	sb.WriteString("</span>")
}

// writeAddedKan stacks the added tile on the called base tile; where the pair
// sits in the row follows which position the source marked rotated.
func (r *Renderer) writeAddedKan(sb *strings.Builder, meld *Meld) {
	switch {
	case meld.Tiles[0].Rotated:
		sb.WriteString(`<span class="mahjong-tile-stack">`)
		sb.WriteString(r.renderTile(meld.Tiles[0]))
		sb.WriteString(r.renderTile(meld.Tiles[3]))
		sb.WriteString("</span>")
		sb.WriteString(r.renderTile(meld.Tiles[1]))
		sb.WriteString(r.renderTile(meld.Tiles[2]))
	case meld.Tiles[2].Rotated:
		sb.WriteString(r.renderTile(meld.Tiles[0]))
		sb.WriteString(r.renderTile(meld.Tiles[1]))
		sb.WriteString(`<span class="mahjong-tile-stack">`)
		sb.WriteString(r.renderTile(meld.Tiles[2]))
		sb.WriteString(r.renderTile(meld.Tiles[3]))
		sb.WriteString("</span>")
	default:
		sb.WriteString(r.renderTile(meld.Tiles[0]))
		sb.WriteString(`<span class="mahjong-tile-stack">`)
		sb.WriteString(r.renderTile(meld.Tiles[1]))
		sb.WriteString(r.renderTile(meld.Tiles[3]))
		sb.WriteString("</span>")
		sb.WriteString(r.renderTile(meld.Tiles[2]))
	}
}

func (r *Renderer) writeStandardMeld(sb *strings.Builder, meld *Meld) {
	for i, tile := range meld.Tiles {
		if meld.Type == KanClosed && r.backedPosition(i) {
			sb.WriteString(backTileHTML)
			continue
		}
		sb.WriteString(r.renderTile(tile))
	}
}

func (r *Renderer) backedPosition(i int) bool {
	if r.kanStyle == KanStyleInner {
		return i == 1 || i == 2
	}
	return i == 0 || i == 3
}

// tileSVG returns the processed asset for one embedding, with internal IDs
// freshly disambiguated.
func (r *Renderer) tileSVG(info TileInfo, theme Theme) string {
	svg, ok := r.cache.get(svgKey{info.AssetID, theme})
	if !ok {
		raw, err := r.loader.Load(info.AssetID, theme)
		if err != nil {
			svg = placeholderSVG(info)
		} else {
			svg = processSVG(string(raw))
		}
		r.cache.put(svgKey{info.AssetID, theme}, svg)
	}
	prefix := "mj" + r.ids.nextString() + "_"
	return uniquifyIDs(svg, prefix)
}

// themedSVG embeds both variants for ThemeAuto.
func (r *Renderer) themedSVG(info TileInfo) string {
	light := r.tileSVG(info, ThemeLight)
	dark := r.tileSVG(info, ThemeDark)
	return `<span class="mahjong-tile-light">` + light + `</span>` +
		`<span class="mahjong-tile-dark">` + dark + `</span>`
}
