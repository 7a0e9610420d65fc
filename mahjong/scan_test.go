package mahjong

import "testing"

func TestExtractMelds(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		spans    int
		rest     string
	}{
		{"no melds", "123m456p", 0, "123m456p"},
		{"single meld", "123m (456p<)", 1, "123m "},
		{"closed kan", "[1111z]", 1, ""},
		{"added kan", "(111+1m<)", 1, ""},
		{"multiple melds", "11z (123m<)(555p^)", 2, "11z "},
		{"incomplete meld stays", "(123m", 0, "(123m"},
		{"empty brackets stay", "()", 0, "()"},
		{"filler inside breaks shape", "(1 23m<)", 0, "(1 23m<)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, rest := extractMelds(tt.notation)
			if len(spans) != tt.spans {
				t.Errorf("Expected %d spans, got %d", tt.spans, len(spans))
			}
			if rest != tt.rest {
				t.Errorf("Expected rest %q, got %q", tt.rest, rest)
			}
		})
	}
}

func TestMatchMeld_Structure(t *testing.T) {
	span, n, ok := matchMeld("(111+1m<)rest")
	if !ok {
		t.Fatal("Expected match")
	}
	if n != 9 {
		t.Errorf("Expected 9 bytes consumed, got %d", n)
	}
	if span.digits != "111" || !span.hasPlus || span.added != '1' {
		t.Errorf("Unexpected added-kan structure: %+v", span)
	}
	if span.suit != 'm' || span.source != '<' {
		t.Errorf("Unexpected suit/source: %+v", span)
	}
}

func TestMatchMeld_AcceptsEitherCloser(t *testing.T) {
	// Bracket agreement is a classification concern, not a scanning one.
	if _, _, ok := matchMeld("(123m]"); !ok {
		t.Error("Mismatched closer should still scan as a meld span")
	}
	if _, _, ok := matchMeld("[1111z)"); !ok {
		t.Error("Mismatched closer should still scan as a meld span")
	}
}

func TestTokenizeTileGroups_Coverage(t *testing.T) {
	tests := []struct {
		name    string
		clean   string
		groups  int
		covered bool
	}{
		{"fully covered", "123m456p", 2, true},
		{"single group", "1z", 1, true},
		{"gap in middle", "12x3m", 1, false},
		{"leading garbage", "x123m", 1, false},
		{"trailing digits", "123m45", 1, false},
		{"bare suit", "m", 0, false},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, covered := tokenizeTileGroups(tt.clean)
			if len(groups) != tt.groups {
				t.Errorf("Expected %d groups, got %d", tt.groups, len(groups))
			}
			if covered != tt.covered {
				t.Errorf("Expected covered=%v, got %v", tt.covered, covered)
			}
		})
	}
}

func TestCleanNotation(t *testing.T) {
	if got := cleanNotation("123m 456p_789s|1z"); got != "123m456p789s1z" {
		t.Errorf("cleanNotation stripped wrong: %q", got)
	}
}
