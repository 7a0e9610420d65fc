package mahjong

import "fmt"

// Suit identifies a tile category.
type Suit byte

const (
	Man   Suit = 'm'
	Pin   Suit = 'p'
	Sou   Suit = 's'
	Honor Suit = 'z'
)

// String returns the notation letter for the suit.
func (s Suit) String() string {
	return string(byte(s))
}

// suitFromByte maps a notation letter to a Suit.
func suitFromByte(b byte) (Suit, bool) {
	switch b {
	case 'm', 'p', 's', 'z':
		return Suit(b), true
	}
	return 0, false
}

// TileInfo describes one tile type in the catalog.
type TileInfo struct {
	// AssetID names the SVG asset for the tile, e.g. "1m", "0p", "7z".
	AssetID string
	// DisplayName is the human-readable name, e.g. "1 Man", "East".
	DisplayName string
}

var suitNames = map[Suit]string{Man: "Man", Pin: "Pin", Sou: "Sou"}

var honorNames = [...]string{
	1: "East", 2: "South", 3: "West", 4: "North",
	5: "White Dragon", 6: "Green Dragon", 7: "Red Dragon",
}

// tileCatalog maps (suit, number) to tile metadata. Built once; read-only.
var tileCatalog = buildTileCatalog()

type tileKey struct {
	suit   Suit
	number int
}

func buildTileCatalog() map[tileKey]TileInfo {
	db := make(map[tileKey]TileInfo, 3*10+7)
	for suit, name := range suitNames {
		for n := 1; n <= 9; n++ {
			db[tileKey{suit, n}] = TileInfo{
				AssetID:     fmt.Sprintf("%d%s", n, suit),
				DisplayName: fmt.Sprintf("%d %s", n, name),
			}
		}
		// 0 is the red five of the suit, a distinct tile type.
		db[tileKey{suit, 0}] = TileInfo{
			AssetID:     fmt.Sprintf("0%s", suit),
			DisplayName: fmt.Sprintf("Red 5 %s", name),
		}
	}
	for n := 1; n <= 7; n++ {
		db[tileKey{Honor, n}] = TileInfo{
			AssetID:     fmt.Sprintf("%dz", n),
			DisplayName: honorNames[n],
		}
	}
	return db
}

// GetTileInfo looks up catalog metadata for a tile type.
// The second return is false for combinations that do not exist (e.g. 8z).
func GetTileInfo(suit Suit, number int) (TileInfo, bool) {
	info, ok := tileCatalog[tileKey{suit, number}]
	return info, ok
}
