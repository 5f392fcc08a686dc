package wiz

import (
	"encoding/json"
	"fmt"
)

// MapLayer is one layer of a map description: a flat row-major tile-index
// sequence plus its declared row width.
type MapLayer struct {
	Name  string `json:"name,omitempty"`
	Data  []int  `json:"data"`
	Width int    `json:"width"`
}

// MapDef is a parsed map description: the tileset image to slice, the tile
// dimensions, and one or more tile layers. Entry points and characters are
// carried as plain data records for the surrounding game to consume.
type MapDef struct {
	Tileset    string `json:"tileset"`
	TileWidth  int    `json:"tilewidth"`
	TileHeight int    `json:"tileheight"`

	Layers []MapLayer `json:"layers"`

	EntryPoints map[string]Vec2         `json:"entryPoints,omitempty"`
	Characters  map[string]CharacterDef `json:"characters,omitempty"`
}

// LoadMapDef parses and validates a JSON map description.
func LoadMapDef(data []byte) (*MapDef, error) {
	var def MapDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("wiz: failed to parse map description: %w", err)
	}

	if def.Tileset == "" {
		return nil, fmt.Errorf("wiz: map description has no tileset")
	}
	if def.TileWidth < 1 || def.TileHeight < 1 {
		return nil, fmt.Errorf("wiz: map description has invalid tile dimensions %dx%d",
			def.TileWidth, def.TileHeight)
	}
	if len(def.Layers) == 0 {
		return nil, fmt.Errorf("wiz: map description has no layers")
	}

	for name, char := range def.Characters {
		if err := char.Validate(); err != nil {
			return nil, fmt.Errorf("wiz: map character %q: %w", name, err)
		}
		def.Characters[name] = char // Validate fills defaults on the copy
	}

	return &def, nil
}

// NewTilemapFromDef builds a Tilemap from a map description, resolving the
// tileset image through the backend. Only the first layer is rendered; the
// remaining layers stay available on the MapDef as data.
func NewTilemapFromDef(backend Backend, def *MapDef) (*Tilemap, error) {
	if backend == nil {
		return nil, fmt.Errorf("wiz: tilemap requires a backend")
	}
	if def == nil {
		return nil, fmt.Errorf("wiz: tilemap requires a map description")
	}
	if len(def.Layers) == 0 {
		return nil, fmt.Errorf("wiz: map description has no layers")
	}

	atlas, err := backend.LoadImage(def.Tileset)
	if err != nil {
		return nil, err
	}

	layer := def.Layers[0]
	return NewTilemap(backend, TilemapConfig{
		TileWidth:  def.TileWidth,
		TileHeight: def.TileHeight,
		Atlas:      atlas,
		FlatTiles:  layer.Data,
		RowWidth:   layer.Width,
	})
}
