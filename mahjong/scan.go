package mahjong

import "strings"

// Two-phase notation scanning.
//
// Phase 1 (extractMelds) walks the raw notation and lifts out every span that
// has meld shape: an opening bracket, a digit run, an optional added-tile
// marker, a suit letter, an optional source marker, and a closing bracket.
// Spans keep enough structure for the parser to classify them; text that does
// not complete the shape is left in place for phase 2 to reject.
//
// Phase 2 (tokenizeTileGroups) strips filler characters and requires the
// remainder to be fully covered by back-to-back digit-run+suit groups. Any
// gap or leftover breaks the coverage invariant and the whole fragment is
// reported as invalid notation.

// meldSpan is one bracketed meld candidate found in the notation.
type meldSpan struct {
	raw     string // full span text, brackets included
	open    byte   // '(' or '['
	close   byte   // ')' or ']'
	digits  string // base tile digits
	hasPlus bool   // '+' marker present
	added   byte   // digit after '+', 0 when absent
	suit    byte   // suit letter
	source  byte   // '<', '^', '>', or 0 for self
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSuit(b byte) bool { return b == 'm' || b == 'p' || b == 's' || b == 'z' }

func isSource(b byte) bool { return b == '<' || b == '^' || b == '>' }

func isFiller(b byte) bool { return b == ' ' || b == '_' || b == '|' }

// extractMelds returns every meld-shaped span in notation plus the remaining
// text with those spans cut out.
func extractMelds(notation string) ([]meldSpan, string) {
	var spans []meldSpan
	var rest strings.Builder

	i := 0
	for i < len(notation) {
		b := notation[i]
		if b == '(' || b == '[' {
			if span, n, ok := matchMeld(notation[i:]); ok {
				span.raw = notation[i : i+n]
				spans = append(spans, span)
				i += n
				continue
			}
		}
		rest.WriteByte(b)
		i++
	}
	return spans, rest.String()
}

// matchMeld tries to read one meld span at the start of s. It accepts either
// closing bracket so that bracket mismatches and missing added digits reach
// the parser as per-meld errors instead of dissolving into the closed hand.
func matchMeld(s string) (meldSpan, int, bool) {
	var span meldSpan
	span.open = s[0]
	i := 1

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return span, 0, false
	}
	span.digits = s[start:i]

	if i < len(s) && s[i] == '+' {
		span.hasPlus = true
		i++
		if i < len(s) && isDigit(s[i]) {
			span.added = s[i]
			i++
		}
	}

	if i >= len(s) || !isSuit(s[i]) {
		return span, 0, false
	}
	span.suit = s[i]
	i++

	if i < len(s) && isSource(s[i]) {
		span.source = s[i]
		i++
	}

	if i >= len(s) || (s[i] != ')' && s[i] != ']') {
		return span, 0, false
	}
	span.close = s[i]
	i++

	return span, i, true
}

// tileGroup is a digit run bound to one suit letter, e.g. "123" + 'm'.
type tileGroup struct {
	digits string
	suit   byte
}

// cleanNotation removes filler characters, which carry no meaning.
func cleanNotation(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !isFiller(s[i]) {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// tokenizeTileGroups scans clean for tile groups. covered is true only when
// the whole input is consumed by contiguous groups with nothing left over;
// groups found either way are returned so tile errors can still be reported.
func tokenizeTileGroups(clean string) (groups []tileGroup, covered bool) {
	covered = true
	i := 0
	for i < len(clean) {
		start := i
		for i < len(clean) && isDigit(clean[i]) {
			i++
		}
		if i > start && i < len(clean) && isSuit(clean[i]) {
			groups = append(groups, tileGroup{digits: clean[start:i], suit: clean[i]})
			i++
			continue
		}
		// Gap: no digit run here, or the run is not closed by a suit letter.
		covered = false
		i = start + 1
	}
	if len(groups) == 0 && len(clean) > 0 {
		covered = false
	}
	return groups, covered
}
