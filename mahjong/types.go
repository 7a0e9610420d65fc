package mahjong

import "fmt"

// MeldType classifies a called tile group.
type MeldType uint8

const (
	Chi MeldType = iota
	Pon
	KanOpen
	KanClosed
	KanAdded
)

// String returns the meld type name.
func (t MeldType) String() string {
	switch t {
	case Chi:
		return "chi"
	case Pon:
		return "pon"
	case KanOpen:
		return "kan_open"
	case KanClosed:
		return "kan_closed"
	case KanAdded:
		return "kan_added"
	default:
		return "unknown"
	}
}

// MeldSource identifies which opponent supplied the called tile.
type MeldSource uint8

const (
	SourceSelf   MeldSource = iota
	SourceLeft              // kamicha, notation '<'
	SourceAcross            // toimen, notation '^'
	SourceRight             // shimocha, notation '>'
)

// String returns the source name.
func (s MeldSource) String() string {
	switch s {
	case SourceLeft:
		return "left"
	case SourceAcross:
		return "across"
	case SourceRight:
		return "right"
	default:
		return "self"
	}
}

// sourceFromByte maps a notation marker to a MeldSource.
func sourceFromByte(b byte) (MeldSource, bool) {
	switch b {
	case '<':
		return SourceLeft, true
	case '^':
		return SourceAcross, true
	case '>':
		return SourceRight, true
	}
	return SourceSelf, false
}

// Tile is a single physical tile. Suit/Number identify the tile type;
// Rotated and Added are presentation flags set during meld assembly.
type Tile struct {
	Suit   Suit
	Number int
	// Rotated marks the tile displayed sideways to show it was called.
	Rotated bool
	// Added marks the fourth tile of an added kan.
	Added bool
}

// Notation returns the tile in notation form, e.g. "1m" or "7z".
func (t Tile) Notation() string {
	return fmt.Sprintf("%d%s", t.Number, t.Suit)
}

// Info looks the tile up in the catalog.
func (t Tile) Info() (TileInfo, bool) {
	return GetTileInfo(t.Suit, t.Number)
}

// DisplayName returns the catalog name, or "Unknown (<notation>)" for tiles
// absent from the catalog.
func (t Tile) DisplayName() string {
	if info, ok := t.Info(); ok {
		return info.DisplayName
	}
	return fmt.Sprintf("Unknown (%s)", t.Notation())
}

// Meld is a called tile group: 3 tiles (chi, pon) or 4 (any kan).
type Meld struct {
	Tiles  []Tile
	Type   MeldType
	Source MeldSource
}

// IsOpen reports whether the meld is exposed. Only a closed kan is concealed.
func (m *Meld) IsOpen() bool {
	return m.Type != KanClosed
}

// Hand is the result of parsing a full hand notation.
//
// ClosedTiles and Melds keep notation order; rendering is left-to-right.
// DoraIndicators, UradoraIndicators and DrawTile are populated after the
// initial parse from sub-notations (see ApplyHandOptions).
type Hand struct {
	ClosedTiles       []Tile
	Melds             []*Meld
	DoraIndicators    []Tile
	UradoraIndicators []Tile
	DrawTile          *Tile
}

// AllTiles returns closed tiles, meld tiles, and the draw tile, in that order.
func (h *Hand) AllTiles() []Tile {
	tiles := make([]Tile, 0, h.TotalTileCount())
	tiles = append(tiles, h.ClosedTiles...)
	for _, m := range h.Melds {
		tiles = append(tiles, m.Tiles...)
	}
	if h.DrawTile != nil {
		tiles = append(tiles, *h.DrawTile)
	}
	return tiles
}

// TotalTileCount returns the number of tiles in AllTiles.
func (h *Hand) TotalTileCount() int {
	n := len(h.ClosedTiles)
	for _, m := range h.Melds {
		n += len(m.Tiles)
	}
	if h.DrawTile != nil {
		n++
	}
	return n
}
