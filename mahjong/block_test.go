package mahjong

import (
	"errors"
	"strings"
	"testing"
)

// ============================================================
// Block Content Pre-parsing
// ============================================================

func TestParseBlockContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		notation string
		opts     BlockOptions
	}{
		{
			"bare notation",
			"123m456p789s11222z",
			"123m456p789s11222z",
			BlockOptions{},
		},
		{
			"hand key",
			"hand: 123m456p",
			"123m456p",
			BlockOptions{},
		},
		{
			"all options",
			"hand: 123m\ntitle: Complete Hand\ndora: 5m\nuradora: 3p\ndraw: 1z",
			"123m",
			BlockOptions{Title: "Complete Hand", Dora: "5m", Uradora: "3p", Draw: "1z"},
		},
		{
			"notation first then options",
			"123m456p\ntitle: Mixed Style",
			"123m456p",
			BlockOptions{Title: "Mixed Style"},
		},
		{
			"quoted title",
			`title: "Quoted"`,
			"",
			BlockOptions{Title: "Quoted"},
		},
		{
			"single quoted title",
			"title: 'Single'",
			"",
			BlockOptions{Title: "Single"},
		},
		{
			"case insensitive keys",
			"HAND: 123m\nTITLE: Uppercase Keys\nDORA: 5m",
			"123m",
			BlockOptions{Title: "Uppercase Keys", Dora: "5m"},
		},
		{
			"empty",
			"",
			"",
			BlockOptions{},
		},
		{
			"whitespace only",
			"   \n  \n  ",
			"",
			BlockOptions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notation, opts := ParseBlockContent(tt.content)
			if notation != tt.notation {
				t.Errorf("Expected notation %q, got %q", tt.notation, notation)
			}
			if opts != tt.opts {
				t.Errorf("Expected options %+v, got %+v", tt.opts, opts)
			}
		})
	}
}

// ============================================================
// Option Application
// ============================================================

func TestApplyHandOptions(t *testing.T) {
	hand := &Hand{}
	p := NewParser()
	errs := ApplyHandOptions(hand, p, BlockOptions{Dora: "5m3p", Uradora: "3p", Draw: "1z"})

	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
	if len(hand.DoraIndicators) != 2 {
		t.Errorf("Expected 2 dora indicators, got %d", len(hand.DoraIndicators))
	}
	if len(hand.UradoraIndicators) != 1 {
		t.Errorf("Expected 1 uradora indicator, got %d", len(hand.UradoraIndicators))
	}
	if hand.DrawTile == nil || hand.DrawTile.Notation() != "1z" {
		t.Errorf("Expected draw tile 1z, got %v", hand.DrawTile)
	}
}

func TestApplyHandOptions_InvalidDora(t *testing.T) {
	hand := &Hand{}
	errs := ApplyHandOptions(hand, NewParser(), BlockOptions{Dora: "8z"})

	if len(errs) != 1 || !strings.Contains(errs[0], "Invalid dora notation") {
		t.Fatalf("Expected dora error, got %v", errs)
	}
	if len(hand.DoraIndicators) != 0 {
		t.Error("Failed dora option should not attach indicators")
	}
}

func TestApplyHandOptions_InvalidDraw(t *testing.T) {
	hand := &Hand{}
	errs := ApplyHandOptions(hand, NewParser(), BlockOptions{Draw: "9z"})

	if len(errs) != 1 || !strings.Contains(errs[0], "Invalid draw notation") {
		t.Fatalf("Expected draw error, got %v", errs)
	}
	if hand.DrawTile != nil {
		t.Error("Failed draw option should not attach a tile")
	}
}

// ============================================================
// BuildHand
// ============================================================

func TestBuildHand(t *testing.T) {
	content := "hand: 123m456p789s1112z\ntitle: Waiting\ndraw: 2z"
	hand, opts, notation, err := BuildHand(content, NewParser())
	if err != nil {
		t.Fatalf("BuildHand failed: %v", err)
	}
	if notation != "123m456p789s1112z" {
		t.Errorf("Wrong notation: %q", notation)
	}
	if opts.Title != "Waiting" {
		t.Errorf("Wrong title: %q", opts.Title)
	}
	if hand.DrawTile == nil || hand.DrawTile.Notation() != "2z" {
		t.Errorf("Wrong draw tile: %v", hand.DrawTile)
	}
	if hand.TotalTileCount() != 14 {
		t.Errorf("Expected 14 tiles, got %d", hand.TotalTileCount())
	}
}

func TestBuildHand_NoNotation(t *testing.T) {
	_, _, _, err := BuildHand("title: Only a title", NewParser())
	if err == nil {
		t.Fatal("BuildHand without notation should fail")
	}
	var perr *ParseError
	if !errors.As(err, &perr) || !perr.Has(ErrNoNotation) {
		t.Errorf("Expected no_notation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "No hand notation provided") {
		t.Errorf("Unexpected message: %v", err)
	}
}

func TestBuildHand_ParseFailure(t *testing.T) {
	hand, _, _, err := BuildHand("hand: 8z", NewParser())
	if err == nil {
		t.Fatal("BuildHand should propagate parse errors")
	}
	if hand != nil {
		t.Error("No hand should be returned on failure")
	}
}

func TestBuildHand_OptionFailure(t *testing.T) {
	_, _, _, err := BuildHand("hand: 123m\ndora: 8z", NewParser())
	if err == nil {
		t.Fatal("BuildHand should propagate option errors")
	}
	if !strings.Contains(err.Error(), "Invalid dora notation") {
		t.Errorf("Unexpected message: %v", err)
	}
}
