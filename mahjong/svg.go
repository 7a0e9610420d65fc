package mahjong

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// IDGen allocates process-unique numeric prefixes for the internal IDs of
// embedded SVG instances. Every embedding of an asset gets a fresh prefix so
// repeated tiles in one document never share or misresolve references.
type IDGen struct {
	n atomic.Uint64
}

// NewIDGen returns an independent generator, mainly for test isolation.
func NewIDGen() *IDGen {
	return &IDGen{}
}

// Next returns the next unique value.
func (g *IDGen) Next() uint64 {
	return g.n.Add(1)
}

func (g *IDGen) nextString() string {
	return strconv.FormatUint(g.Next(), 10)
}

type svgKey struct {
	assetID string
	theme   Theme
}

// svgCache holds processed asset text keyed by (asset, theme). Insert-only
// for the process lifetime; a duplicate computation on a racing put is
// harmless, the first or last writer both hold identical content.
type svgCache struct {
	mu      sync.RWMutex
	entries map[svgKey]string
}

func newSVGCache() *svgCache {
	return &svgCache{entries: make(map[svgKey]string)}
}

func (c *svgCache) get(k svgKey) (string, bool) {
	c.mu.RLock()
	v, ok := c.entries[k]
	c.mu.RUnlock()
	return v, ok
}

func (c *svgCache) put(k svgKey, v string) {
	c.mu.Lock()
	c.entries[k] = v
	c.mu.Unlock()
}

// Shared across renderers built without explicit injection.
var (
	defaultIDGen = NewIDGen()
	defaultCache = newSVGCache()
)

var (
	reXMLDecl = regexp.MustCompile(`<\?xml[^?]*\?>`)
	reWidth   = regexp.MustCompile(`width="[^"]*"`)
	reHeight  = regexp.MustCompile(`height="[^"]*"`)
	reSVGID   = regexp.MustCompile(`id="([^"]+)"`)
)

// processSVG strips the XML declaration and pins the root dimensions to the
// rendered tile size. Runs once per (asset, theme); the result is cached.
func processSVG(svg string) string {
	svg = reXMLDecl.ReplaceAllString(svg, "")
	svg = replaceFirst(reWidth, svg, fmt.Sprintf(`width="%d"`, TileWidth))
	svg = replaceFirst(reHeight, svg, fmt.Sprintf(`height="%d"`, TileHeight))
	return strings.TrimSpace(svg)
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

// uniquifyIDs prefixes every internal ID and every reference to it, so one
// embedded instance is self-contained.
func uniquifyIDs(svg, prefix string) string {
	matches := reSVGID.FindAllStringSubmatch(svg, -1)
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		id := m[1]
		if seen[id] {
			continue
		}
		seen[id] = true
		svg = strings.ReplaceAll(svg, `id="`+id+`"`, `id="`+prefix+id+`"`)
		svg = strings.ReplaceAll(svg, `href="#`+id+`"`, `href="#`+prefix+id+`"`)
		svg = strings.ReplaceAll(svg, `url(#`+id+`)`, `url(#`+prefix+id+`)`)
	}
	return svg
}

// placeholderSVG stands in for a missing asset so a render degrades per tile
// instead of failing.
func placeholderSVG(info TileInfo) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 300 400">`+
			`<rect width="300" height="400" fill="#f0f0f0" stroke="#ccc" stroke-width="4" rx="20"/>`+
			`<text x="150" y="220" text-anchor="middle" font-size="48" fill="#999">%s</text>`+
			`</svg>`,
		TileWidth, TileHeight, info.DisplayName,
	)
}
