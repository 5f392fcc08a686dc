// Package wiz renders large 2D tile grids onto a viewport, drawing only the
// visible subset of tiles from a shared texture atlas.
//
// The core type is [Tilemap]: it slices an atlas image into addressable quads,
// normalizes flat tile-index data into a row-major grid, tracks a drawable
// window into the map, and walks only that window each frame, stopping as soon
// as destination coordinates leave the screen.
//
// # Quick start
//
//	backend := wiz.NewEbitenBackend()
//	atlas, err := backend.LoadImage("tileset.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	tm, err := wiz.NewTilemap(backend, wiz.TilemapConfig{
//		TileWidth: 16, TileHeight: 16,
//		Atlas:     atlas,
//		FlatTiles: tiles, RowWidth: 64,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Then, inside ebiten.Game.Draw:
//
//	backend.SetScreen(screen)
//	camera.Apply(tm)
//	tm.Draw()
//
// # Tolerant by design
//
// The drawable window and scroll offset are never validated against the map.
// Missing rows, tile indices with no matching quad, and rows shorter than the
// window are all silent "draw nothing" states, so negative or overshooting
// camera positions render whatever is visible and skip the rest. Only
// construction reports errors.
//
// # Collaborators
//
// Rendering goes through the [Backend] interface; [EbitenBackend] implements
// it on [Ebitengine]. [SpriteSheet], [Texture], and the [MapDef] description
// cover atlas addressing, nine-slice panels, and map loading. [EntityDef],
// [CharacterDef], and [Trigger] are plain validated records for the
// surrounding game; wiz performs no entity simulation.
//
// wiz is single-threaded: all mutation and drawing happen on one render
// thread, cooperating with the host game loop.
//
// [Ebitengine]: https://ebitengine.org
package wiz
