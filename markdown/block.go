package markdown

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/Neumenon/mahjong/mahjong"
)

// Block is a mahjong fenced code block, swapped in for the original
// ast.FencedCodeBlock at transform time.
type Block struct {
	ast.BaseBlock

	// Content is the raw fence body: notation plus key/value options.
	Content []byte
}

// KindBlock is the node kind of Block.
var KindBlock = ast.NewNodeKind("MahjongBlock")

// Kind implements ast.Node.
func (n *Block) Kind() ast.NodeKind {
	return KindBlock
}

// Dump implements ast.Node.
func (n *Block) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Content": string(n.Content),
	}, nil)
}

// blockTransformer replaces ```mahjong fences with Block nodes.
type blockTransformer struct{}

var defaultBlockTransformer = &blockTransformer{}

const fenceLanguage = "mahjong"

// Transform implements parser.ASTTransformer.
func (t *blockTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()

	var fences []*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if string(fcb.Language(source)) == fenceLanguage {
			fences = append(fences, fcb)
		}
		return ast.WalkContinue, nil
	})

	for _, fcb := range fences {
		block := &Block{Content: fenceContent(source, fcb)}
		parent := fcb.Parent()
		if parent != nil {
			parent.ReplaceChild(parent, fcb, block)
		}
	}
}

func fenceContent(source []byte, fcb *ast.FencedCodeBlock) []byte {
	var buf bytes.Buffer
	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

func (r *htmlRenderer) renderBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*Block)

	hand, opts, notation, err := mahjong.BuildHand(string(n.Content), mahjong.NewParser())
	if err != nil {
		_, werr := w.WriteString(mahjong.ErrorHTML(err.Error()))
		return ast.WalkContinue, werr
	}

	_, werr := w.WriteString(r.block.Render(hand, opts.Title, notation))
	return ast.WalkContinue, werr
}
