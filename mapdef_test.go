package wiz

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const villageMapJSON = `{
  "tileset": "village.png",
  "tilewidth": 16,
  "tileheight": 16,
  "layers": [
    {"name": "ground", "data": [1, 2, 3, 4, 5, 6], "width": 3},
    {"name": "props",  "data": [0, 0, 7, 0, 0, 8], "width": 3}
  ],
  "entryPoints": {
    "south_gate": {"X": 24, "Y": 80}
  },
  "characters": {
    "blacksmith": {
      "name": "blacksmith",
      "entity": {
        "source": "blacksmith.png",
        "framewidth": 16,
        "frameheight": 24,
        "movement_speed": 40
      },
      "state": "idle",
      "position": {"X": 32, "Y": 48}
    }
  }
}`

func TestLoadMapDef_Valid(t *testing.T) {
	def, err := LoadMapDef([]byte(villageMapJSON))
	if err != nil {
		t.Fatalf("LoadMapDef: %v", err)
	}

	if def.Tileset != "village.png" {
		t.Errorf("Tileset = %q, want village.png", def.Tileset)
	}
	if def.TileWidth != 16 || def.TileHeight != 16 {
		t.Errorf("tile size = %dx%d, want 16x16", def.TileWidth, def.TileHeight)
	}
	if len(def.Layers) != 2 {
		t.Fatalf("layer count = %d, want 2", len(def.Layers))
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6}, def.Layers[0].Data); diff != "" {
		t.Errorf("first layer data mismatch (-want +got):\n%s", diff)
	}
	if got := def.EntryPoints["south_gate"]; got != (Vec2{X: 24, Y: 80}) {
		t.Errorf("south_gate = %+v, want (24,80)", got)
	}
	// Validation fills record defaults in place.
	if got := def.Characters["blacksmith"].Entity.FaceDirection; got != FaceDown {
		t.Errorf("blacksmith face direction = %q, want default %q", got, FaceDown)
	}
}

func TestLoadMapDef_InvalidJSON(t *testing.T) {
	_, err := LoadMapDef([]byte(`{broken`))
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoadMapDef_MissingTileset(t *testing.T) {
	_, err := LoadMapDef([]byte(`{"tilewidth":16,"tileheight":16,"layers":[{"data":[1],"width":1}]}`))
	if err == nil || !strings.Contains(err.Error(), "tileset") {
		t.Errorf("err = %v, want tileset error", err)
	}
}

func TestLoadMapDef_InvalidTileDimensions(t *testing.T) {
	_, err := LoadMapDef([]byte(`{"tileset":"a.png","tilewidth":0,"tileheight":16,"layers":[{"data":[1],"width":1}]}`))
	if err == nil {
		t.Fatal("expected error for zero tile width, got nil")
	}
}

func TestLoadMapDef_NoLayers(t *testing.T) {
	_, err := LoadMapDef([]byte(`{"tileset":"a.png","tilewidth":16,"tileheight":16}`))
	if err == nil || !strings.Contains(err.Error(), "layers") {
		t.Errorf("err = %v, want layers error", err)
	}
}

func TestLoadMapDef_InvalidCharacter(t *testing.T) {
	_, err := LoadMapDef([]byte(`{
	  "tileset": "a.png", "tilewidth": 16, "tileheight": 16,
	  "layers": [{"data": [1], "width": 1}],
	  "characters": {"ghost": {"name": "ghost", "entity": {"framewidth": 16, "frameheight": 16}}}
	}`))
	if err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Errorf("err = %v, want character validation error naming the character", err)
	}
}

func TestNewTilemapFromDef(t *testing.T) {
	backend := newFakeBackend(64, 48)
	backend.images["village.png"] = fakeImage{w: 64, h: 64}

	def, err := LoadMapDef([]byte(villageMapJSON))
	if err != nil {
		t.Fatalf("LoadMapDef: %v", err)
	}
	tm, err := NewTilemapFromDef(backend, def)
	if err != nil {
		t.Fatalf("NewTilemapFromDef: %v", err)
	}

	// The first layer's flat data split by its row width: 2 rows of 3.
	want := [][]int{{1, 2, 3}, {4, 5, 6}}
	if diff := cmp.Diff(want, tm.rows); diff != "" {
		t.Errorf("normalized map mismatch (-want +got):\n%s", diff)
	}
	if len(tm.Quads()) != 16 {
		t.Errorf("quad count = %d, want 16 from the 64x64 tileset", len(tm.Quads()))
	}
}

func TestNewTilemapFromDef_UnknownTileset(t *testing.T) {
	backend := newFakeBackend(64, 48)
	def, err := LoadMapDef([]byte(villageMapJSON))
	if err != nil {
		t.Fatalf("LoadMapDef: %v", err)
	}

	if _, err := NewTilemapFromDef(backend, def); err == nil {
		t.Error("expected error when the tileset image cannot be loaded, got nil")
	}
}
