package mahjong

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed assets
var embeddedAssets embed.FS

// AssetLoader supplies raw SVG content for a tile asset in a theme. Loading
// is the only I/O the renderer performs; a failed load degrades that tile to
// a placeholder glyph.
type AssetLoader interface {
	Load(assetID string, theme Theme) ([]byte, error)
}

// FSLoader reads assets from a filesystem laid out as <theme>/<assetID>.svg.
type FSLoader struct {
	FS fs.FS
}

// Load implements AssetLoader.
func (l FSLoader) Load(assetID string, theme Theme) ([]byte, error) {
	data, err := fs.ReadFile(l.FS, path.Join(string(theme), assetID+".svg"))
	if err != nil {
		return nil, fmt.Errorf("load asset %s/%s: %w", theme, assetID, err)
	}
	return data, nil
}

// DefaultLoader returns the loader over the embedded default tile set.
func DefaultLoader() AssetLoader {
	return defaultLoader
}

var defaultLoader AssetLoader = newEmbeddedLoader()

func newEmbeddedLoader() AssetLoader {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		panic(err)
	}
	return FSLoader{FS: sub}
}
