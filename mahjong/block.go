package mahjong

import (
	"errors"
	"fmt"
	"strings"
)

// BlockOptions are the recognized key/value options of a hand block.
// Unrecognized keys are ignored.
type BlockOptions struct {
	Title   string
	Dora    string
	Uradora string
	Draw    string
}

// ParseBlockContent splits raw block content into a notation string and
// options. Lines are either "key: value" pairs (case-insensitive keys,
// surrounding quotes stripped) or bare notation; the first bare line — or the
// first unrecognized line before any notation — becomes the notation.
func ParseBlockContent(content string) (string, BlockOptions) {
	var opts BlockOptions
	var notation string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if found {
			key = strings.ToLower(strings.TrimSpace(key))
			value = strings.Trim(strings.TrimSpace(value), `"'`)

			switch key {
			case "hand":
				notation = value
			case "title":
				opts.Title = value
			case "dora":
				opts.Dora = value
			case "uradora":
				opts.Uradora = value
			case "draw":
				opts.Draw = value
			default:
				if notation == "" {
					notation = line
				}
			}
			continue
		}
		if notation == "" {
			notation = line
		}
	}
	return notation, opts
}

// ApplyHandOptions parses the dora, uradora and draw sub-notations and
// attaches the results to hand. Returned messages describe every option that
// failed; successful options are applied regardless.
func ApplyHandOptions(hand *Hand, p *Parser, opts BlockOptions) []string {
	var errs []string

	if opts.Dora != "" {
		if dora, err := p.Parse(opts.Dora); err != nil {
			errs = append(errs, fmt.Sprintf("Invalid dora notation: %v", err))
		} else {
			hand.DoraIndicators = dora.AllTiles()
		}
	}

	if opts.Uradora != "" {
		if ura, err := p.Parse(opts.Uradora); err != nil {
			errs = append(errs, fmt.Sprintf("Invalid uradora notation: %v", err))
		} else {
			hand.UradoraIndicators = ura.AllTiles()
		}
	}

	if opts.Draw != "" {
		if draw, err := p.Parse(opts.Draw); err != nil {
			errs = append(errs, fmt.Sprintf("Invalid draw notation: %v", err))
		} else if len(draw.ClosedTiles) > 0 {
			tile := draw.ClosedTiles[0]
			hand.DrawTile = &tile
		}
	}

	return errs
}

// BuildHand parses block content into a complete Hand: pre-parse the
// key/value options, parse the primary notation, then apply the sub-notation
// options. The returned string is the primary notation for data attributes.
func BuildHand(content string, p *Parser) (*Hand, BlockOptions, string, error) {
	notation, opts := ParseBlockContent(content)

	if notation == "" {
		return nil, opts, "", &ParseError{Details: []ErrorDetail{{Kind: ErrNoNotation}}}
	}

	hand, err := p.Parse(notation)
	if err != nil {
		return nil, opts, notation, err
	}

	if optErrs := ApplyHandOptions(hand, p, opts); len(optErrs) > 0 {
		return nil, opts, notation, errors.New(strings.Join(optErrs, "; "))
	}

	return hand, opts, notation, nil
}
