// mahjong - MPSZ notation rendering CLI
//
// Usage:
//
//	mahjong render [--theme T] [--kan-style S] [file]  Render a hand block as an HTML fragment
//	mahjong md [--theme T] [--kan-style S] [file]      Render a markdown document with mahjong support
//	mahjong check [file]                               Parse a hand block and report its contents
//	mahjong tiles <notation>                           Render an inline tile strip
//	mahjong version                                    Print version info
//
// If no file is given, reads from stdin.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/Neumenon/mahjong/mahjong"
	"github.com/Neumenon/mahjong/markdown"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	theme := mahjong.ThemeAuto
	kanStyle := mahjong.KanStyleOuter
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch {
		case strings.HasPrefix(arg, "--theme="):
			theme = mahjong.Theme(strings.TrimPrefix(arg, "--theme="))
		case strings.HasPrefix(arg, "--kan-style="):
			kanStyle = mahjong.KanStyle(strings.TrimPrefix(arg, "--kan-style="))
		default:
			if !strings.HasPrefix(arg, "-") && fileArg == "" {
				fileArg = arg
			}
		}
	}

	switch cmd {
	case "render":
		cmdRender(readInput(fileArg), theme, kanStyle)
	case "md":
		cmdMarkdown(readInput(fileArg), theme, kanStyle)
	case "check":
		cmdCheck(readInput(fileArg))
	case "tiles":
		if fileArg == "" {
			fatal("tiles: missing notation argument")
		}
		cmdTiles(fileArg, theme)
	case "version", "-v", "--version":
		fmt.Printf("mahjong %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func readInput(fileArg string) string {
	var input io.Reader = os.Stdin
	if fileArg != "" && fileArg != "-" {
		f, err := os.Open(fileArg)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}
	data, err := io.ReadAll(input)
	if err != nil {
		fatal("read input: %v", err)
	}
	return string(data)
}

func cmdRender(content string, theme mahjong.Theme, kanStyle mahjong.KanStyle) {
	hand, opts, notation, err := mahjong.BuildHand(content, mahjong.NewParser())
	if err != nil {
		fmt.Println(mahjong.ErrorHTML(err.Error()))
		os.Exit(1)
	}

	r := mahjong.NewRenderer(
		mahjong.WithTheme(theme),
		mahjong.WithClosedKanStyle(kanStyle),
	)
	fmt.Println(r.Render(hand, opts.Title, notation))
}

func cmdMarkdown(content string, theme mahjong.Theme, kanStyle mahjong.KanStyle) {
	md := goldmark.New(goldmark.WithExtensions(
		markdown.New(
			markdown.WithTheme(theme),
			markdown.WithClosedKanStyle(kanStyle),
		),
	))

	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		fatal("convert markdown: %v", err)
	}
	fmt.Print(buf.String())
}

func cmdCheck(content string) {
	hand, _, notation, err := mahjong.BuildHand(content, mahjong.NewParser())
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("notation: %s\n", notation)
	fmt.Printf("tiles: %d (%d closed, %d melds)\n",
		hand.TotalTileCount(), len(hand.ClosedTiles), len(hand.Melds))
	for _, m := range hand.Melds {
		notations := make([]string, len(m.Tiles))
		for i, t := range m.Tiles {
			notations[i] = t.Notation()
		}
		fmt.Printf("meld: %s %s [%s]\n", m.Type, m.Source, strings.Join(notations, " "))
	}
	if hand.DrawTile != nil {
		fmt.Printf("draw: %s\n", hand.DrawTile.Notation())
	}
}

func cmdTiles(notation string, theme mahjong.Theme) {
	tiles, err := mahjong.NewParser().ParseTiles(notation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
		os.Exit(1)
	}

	r := mahjong.NewRenderer(
		mahjong.WithTheme(theme),
		mahjong.WithCSSClass("mahjong-inline"),
	)
	fmt.Println(r.RenderTiles(tiles))
}

func printUsage() {
	fmt.Fprint(os.Stderr, `mahjong - MPSZ notation rendering tool

Usage:
  mahjong render [options] [file]   Render a hand block as an HTML fragment
  mahjong md [options] [file]       Render a markdown document with mahjong support
  mahjong check [file]              Parse a hand block and report its contents
  mahjong tiles <notation>          Render an inline tile strip
  mahjong version                   Print version info

Options:
  --theme=T       Tile theme: light, dark, or auto (default: auto)
  --kan-style=S   Closed kan style: outer or inner (default: outer)

If no file is given, reads from stdin.

Examples:
  echo '123m456p789s11222z' | mahjong render --theme=light
  echo 'hand: 123m (456p<)
  title: Open chi' | mahjong render
  mahjong tiles 123m0p
`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
