package markdown

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/Neumenon/mahjong/mahjong"
)

// Inline is an inline tile span such as :1m: or :123m456p:.
type Inline struct {
	ast.BaseInline

	// Notation is the text between the colons.
	Notation []byte
	// Tiles is the parsed tile sequence.
	Tiles []mahjong.Tile
}

// KindInline is the node kind of Inline.
var KindInline = ast.NewNodeKind("MahjongInline")

// Kind implements ast.Node.
func (n *Inline) Kind() ast.NodeKind {
	return KindInline
}

// Dump implements ast.Node.
func (n *Inline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Notation": string(n.Notation),
	}, nil)
}

// inlineParser recognizes :notation: spans. A span that is not pure tile
// notation is not consumed, so the surrounding text renders untouched.
type inlineParser struct{}

var defaultInlineParser = &inlineParser{}

// Trigger implements parser.InlineParser.
func (p *inlineParser) Trigger() []byte {
	return []byte{':'}
}

// Parse implements parser.InlineParser.
func (p *inlineParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) < 3 || line[0] != ':' {
		return nil
	}

	end := bytes.IndexByte(line[1:], ':')
	if end < 1 {
		return nil
	}
	notation := line[1 : 1+end]

	for _, b := range notation {
		if !isNotationByte(b) {
			return nil
		}
	}

	tiles, err := mahjong.NewParser().ParseTiles(string(notation))
	if err != nil || len(tiles) == 0 {
		return nil
	}

	block.Advance(end + 2)
	return &Inline{Notation: notation, Tiles: tiles}
}

func isNotationByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b == 'm' || b == 'p' || b == 's' || b == 'z':
		return true
	}
	return false
}

func (r *htmlRenderer) renderInline(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*Inline)
	_, err := w.WriteString(r.inline.RenderTiles(n.Tiles))
	return ast.WalkContinue, err
}
