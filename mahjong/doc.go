// Package mahjong parses compact MPSZ notation for Riichi Mahjong hands and
// renders them as HTML fragments with inline SVG tiles.
//
// # Notation
//
// A tile group is one or more digits followed by a suit letter:
//
//	123m456p789s1122z    man, pin, sou, honors
//	1230m                0 is the red five of the suit
//
// Melds are bracketed groups with an optional source marker:
//
//	(123m<)    chi called from the left player (kamicha)
//	(111p^)    pon called from across (toimen)
//	(1111z>)   open kan called from the right player (shimocha)
//	[1111z]    closed kan
//	(111+1m<)  added kan; + marks the appended fourth tile
//
// Spaces, underscores and pipes are readability fillers and carry no meaning.
//
// # Parsing
//
//	hand, err := mahjong.ParseHand("123m456p789s11222z (789s<)")
//
// Parsing never stops at the first problem: every error in the input is
// collected into one *ParseError. On failure no Hand is returned.
//
// # Rendering
//
//	r := mahjong.NewRenderer(mahjong.WithTheme(mahjong.ThemeLight))
//	html := r.Render(hand, "Example", "123m456p789s11222z (789s<)")
//
// Tiles render as inline SVG from an embedded asset set; a custom AssetLoader
// can substitute other artwork. Every embedded SVG instance gets unique
// internal IDs so repeated tiles in one document never collide.
package mahjong
