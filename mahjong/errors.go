package mahjong

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a notation error.
type ErrorKind uint8

const (
	ErrInvalidTile ErrorKind = iota
	ErrInvalidNotation
	ErrMismatchedBrackets
	ErrBadAddedMarker
	ErrInvalidMeldSize
	ErrClosedKanSource
	ErrTileCount
	ErrNoNotation
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidTile:
		return "invalid_tile"
	case ErrInvalidNotation:
		return "invalid_notation"
	case ErrMismatchedBrackets:
		return "mismatched_brackets"
	case ErrBadAddedMarker:
		return "bad_added_marker"
	case ErrInvalidMeldSize:
		return "invalid_meld_size"
	case ErrClosedKanSource:
		return "closed_kan_source"
	case ErrTileCount:
		return "tile_count"
	case ErrNoNotation:
		return "no_notation"
	default:
		return "unknown"
	}
}

// ErrorDetail is one structured notation error: what went wrong and the
// offending fragment. Count is only meaningful for ErrTileCount.
type ErrorDetail struct {
	Kind     ErrorKind
	Fragment string
	Count    int
}

// Message formats the detail for display.
func (d ErrorDetail) Message() string {
	switch d.Kind {
	case ErrInvalidTile:
		return fmt.Sprintf("Invalid tile: %s", d.Fragment)
	case ErrInvalidNotation:
		return fmt.Sprintf("Invalid tile notation: %s", d.Fragment)
	case ErrMismatchedBrackets:
		return fmt.Sprintf("Mismatched brackets in meld: %s", d.Fragment)
	case ErrBadAddedMarker:
		return fmt.Sprintf("Added kan notation requires digit after '+': %s", d.Fragment)
	case ErrInvalidMeldSize:
		return fmt.Sprintf("Invalid meld size: %s tiles", d.Fragment)
	case ErrClosedKanSource:
		return fmt.Sprintf("Closed kan cannot have source marker: %s", d.Fragment)
	case ErrTileCount:
		return fmt.Sprintf("Invalid tile count: %s appears %d times (max 4)", d.Fragment, d.Count)
	case ErrNoNotation:
		return "No hand notation provided"
	default:
		return fmt.Sprintf("Invalid notation: %s", d.Fragment)
	}
}

// ParseError aggregates every error found in one parse call. A parse never
// stops at the first problem; callers get the full list in input order.
type ParseError struct {
	Details []ErrorDetail
}

func (e *ParseError) Error() string {
	msgs := make([]string, len(e.Details))
	for i, d := range e.Details {
		msgs[i] = d.Message()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any detail has the given kind.
func (e *ParseError) Has(kind ErrorKind) bool {
	for _, d := range e.Details {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
