package mahjong

import (
	"strconv"
	"strings"
)

// Parser parses MPSZ hand notation.
//
// Supported notation:
//   - Basic: 123m456p789s1122z
//   - Red dora: 1230m (0 = red 5)
//   - Melds: (123m<) for chi, [1111m] for closed kan, (111+1m<) for added kan
//   - Fillers: spaces, _ and | are ignored
//
// A Parser carries only its per-call error accumulator and is reset on every
// Parse/ParseTiles entry; it is not safe for concurrent use, but independent
// Parsers are.
type Parser struct {
	errs []ErrorDetail
}

// NewParser returns a ready-to-use Parser.
func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) errf(kind ErrorKind, fragment string) {
	p.errs = append(p.errs, ErrorDetail{Kind: kind, Fragment: fragment})
}

func (p *Parser) fail() error {
	if len(p.errs) == 0 {
		return nil
	}
	details := make([]ErrorDetail, len(p.errs))
	copy(details, p.errs)
	return &ParseError{Details: details}
}

// Parse parses a full hand notation, melds included, and validates per-tile
// counts. All problems found in one call are aggregated into a single
// *ParseError; a nil Hand is returned on any failure.
func (p *Parser) Parse(notation string) (*Hand, error) {
	p.errs = p.errs[:0]
	hand := &Hand{}

	spans, rest := extractMelds(strings.TrimSpace(notation))
	for _, span := range spans {
		if meld := p.buildMeld(span); meld != nil {
			hand.Melds = append(hand.Melds, meld)
		}
	}
	hand.ClosedTiles = p.parseTiles(rest)

	p.validateTileCounts(hand)

	if err := p.fail(); err != nil {
		return nil, err
	}
	return hand, nil
}

// ParseTiles parses a bare tile sequence with no meld or hand validation
// semantics, for inline notation and dora/draw sub-notations.
func (p *Parser) ParseTiles(notation string) ([]Tile, error) {
	p.errs = p.errs[:0]
	tiles := p.parseTiles(notation)
	if err := p.fail(); err != nil {
		return nil, err
	}
	return tiles, nil
}

// ParseHand parses notation with a throwaway Parser.
func ParseHand(notation string) (*Hand, error) {
	return NewParser().Parse(notation)
}

// parseTiles tokenizes one fragment into tiles, accumulating errors for
// uncovered notation and for digits with no catalog entry.
func (p *Parser) parseTiles(fragment string) []Tile {
	clean := cleanNotation(fragment)
	if clean == "" {
		return nil
	}

	groups, covered := tokenizeTileGroups(clean)
	if !covered {
		p.errf(ErrInvalidNotation, clean)
	}

	var tiles []Tile
	for _, g := range groups {
		suit, _ := suitFromByte(g.suit)
		for i := 0; i < len(g.digits); i++ {
			number := int(g.digits[i] - '0')
			if _, ok := GetTileInfo(suit, number); !ok {
				p.errf(ErrInvalidTile, strconv.Itoa(number)+suit.String())
				continue
			}
			tiles = append(tiles, Tile{Suit: suit, Number: number})
		}
	}
	return tiles
}

// buildMeld classifies one meld span. Returns nil when the span is discarded;
// the reason is already in the error accumulator.
func (p *Parser) buildMeld(span meldSpan) *Meld {
	if (span.open == '[' && span.close != ']') || (span.open == '(' && span.close != ')') {
		p.errf(ErrMismatchedBrackets, span.raw)
		return nil
	}

	if span.hasPlus && span.added == 0 {
		p.errf(ErrBadAddedMarker, span.raw)
		return nil
	}

	tileNotation := span.digits
	isAddedKan := false
	if span.hasPlus {
		tileNotation += string(span.added)
		isAddedKan = true
	}
	tileNotation += string(span.suit)

	tiles := p.parseTiles(tileNotation)
	if len(tiles) == 0 {
		return nil
	}

	isClosed := span.open == '[' && span.close == ']'
	if isClosed && span.source != 0 {
		p.errf(ErrClosedKanSource, span.raw)
		return nil
	}

	var meldType MeldType
	switch {
	case isAddedKan && len(tiles) == 4:
		meldType = KanAdded
	case isClosed && len(tiles) == 4:
		meldType = KanClosed
	case len(tiles) == 4:
		meldType = KanOpen
	case len(tiles) == 3:
		if isSequence(tiles) {
			meldType = Chi
		} else {
			meldType = Pon
		}
	default:
		p.errf(ErrInvalidMeldSize, strconv.Itoa(len(tiles)))
		return nil
	}

	source, _ := sourceFromByte(span.source)

	// The rotated tile depicts the calling direction: kamicha first tile,
	// toimen second, shimocha last. An added kan additionally rotates the
	// appended fourth tile, which stays stacked on the called base tile; for
	// across/right sources this leaves two distinct rotated positions, a
	// tabletop convention kept on purpose.
	if source != SourceSelf {
		var idx int
		switch {
		case source == SourceLeft:
			idx = 0
		case source == SourceAcross:
			idx = 1
		case meldType == KanOpen:
			idx = 3
		default:
			idx = 2
		}
		tiles[idx].Rotated = true

		if meldType == KanAdded {
			tiles[len(tiles)-1].Rotated = true
			tiles[len(tiles)-1].Added = true
		}
	}

	return &Meld{Tiles: tiles, Type: meldType, Source: source}
}

// isSequence reports whether three tiles form a chi: one suited category with
// consecutive numbers. A red five counts as 5 for ordering only.
func isSequence(tiles []Tile) bool {
	if len(tiles) != 3 {
		return false
	}
	suit := tiles[0].Suit
	if suit == Honor {
		return false
	}
	var nums [3]int
	for i, t := range tiles {
		if t.Suit != suit {
			return false
		}
		n := t.Number
		if n == 0 {
			n = 5
		}
		nums[i] = n
	}
	if nums[0] > nums[1] {
		nums[0], nums[1] = nums[1], nums[0]
	}
	if nums[1] > nums[2] {
		nums[1], nums[2] = nums[2], nums[1]
	}
	if nums[0] > nums[1] {
		nums[0], nums[1] = nums[1], nums[0]
	}
	return nums[1] == nums[0]+1 && nums[2] == nums[1]+1
}

// validateTileCounts reports every tile identity that appears more than four
// times across the hand. Red fives count separately from plain fives.
func (p *Parser) validateTileCounts(hand *Hand) {
	counts := make(map[tileKey]int)
	var order []tileKey
	for _, t := range hand.AllTiles() {
		k := tileKey{t.Suit, t.Number}
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}
	for _, k := range order {
		if counts[k] > 4 {
			p.errs = append(p.errs, ErrorDetail{
				Kind:     ErrTileCount,
				Fragment: strconv.Itoa(k.number) + k.suit.String(),
				Count:    counts[k],
			})
		}
	}
}
