package wiz

import "fmt"

// Tilemap renders a large 2D tile grid onto a viewport, drawing only the
// visible subset of tiles from a shared atlas image.
//
// The map is a row-major grid of tile indices. Each index refers to a quad
// sliced from the atlas at construction time (row 0 left-to-right, then
// row 1, and so on). Negative indices, indices with no matching quad, and
// rows missing from the grid are all legitimate "draw nothing" states. The
// draw loop skips them silently, which is what makes negative or overshooting
// viewport offsets safe.
//
// A Tilemap is single-threaded: construct it, mutate the drawable window and
// scroll offset, and call Draw from one render thread only.
type Tilemap struct {
	backend Backend
	atlas   Image

	tileW, tileH int
	quads        []Quad
	rows         [][]int

	// Drawable window: which part of the map is eligible for rendering.
	// Never validated against map bounds; resolved lazily during Draw.
	firstCol, firstRow int
	drawCols, drawRows int

	// Scroll-to-screen mapping, cached per scroll offset (and screen size).
	// xs[i] / ys[j] is the destination coordinate of visible cell column i /
	// row j. Tables span from the scroll offset to the screen edge at tile
	// granularity; a visible index past the table end is off-screen.
	scrollX, scrollY float64
	xs, ys           []float64
	screenW, screenH int
	cacheValid       bool
}

// TilemapConfig describes how to build a Tilemap. TileWidth, TileHeight, and
// Atlas are required. Tile data comes either from Tiles (already row-major
// 2D, used as-is) or from FlatTiles split into rows of RowWidth.
type TilemapConfig struct {
	TileWidth  int
	TileHeight int
	Atlas      Image

	Tiles     [][]int
	FlatTiles []int
	RowWidth  int
}

// NewTilemap builds a Tilemap, slicing the atlas into quads and normalizing
// the tile data. Configuration errors (missing tile dimensions or atlas, no
// tile data) abort construction before any slicing happens.
//
// The drawable window defaults to the full extent of the normalized map.
func NewTilemap(backend Backend, cfg TilemapConfig) (*Tilemap, error) {
	if backend == nil {
		return nil, fmt.Errorf("wiz: tilemap requires a backend")
	}
	if cfg.TileWidth < 1 || cfg.TileHeight < 1 {
		return nil, fmt.Errorf("wiz: tilemap requires positive tile dimensions, got %dx%d",
			cfg.TileWidth, cfg.TileHeight)
	}
	if cfg.Atlas == nil {
		return nil, fmt.Errorf("wiz: tilemap requires an atlas image")
	}
	if cfg.Tiles == nil && cfg.FlatTiles == nil {
		return nil, fmt.Errorf("wiz: tilemap requires tile data (Tiles or FlatTiles)")
	}

	rows := cfg.Tiles
	if rows == nil {
		rows = normalizeTiles(cfg.FlatTiles, cfg.RowWidth)
	}

	atlasW, atlasH := cfg.Atlas.Size()
	t := &Tilemap{
		backend: backend,
		atlas:   cfg.Atlas,
		tileW:   cfg.TileWidth,
		tileH:   cfg.TileHeight,
		quads:   SliceQuads(atlasW, atlasH, cfg.TileWidth, cfg.TileHeight),
		rows:    rows,
	}
	t.drawRows = len(rows)
	if len(rows) > 0 {
		t.drawCols = len(rows[0])
	}
	return t, nil
}

// normalizeTiles splits a flat tile-index sequence into consecutive rows of
// rowWidth elements. The final row keeps its short length when the sequence
// doesn't divide evenly. A rowWidth below 1 almost certainly indicates a
// caller bug, so it is logged; the data survives as a single implicit row
// rather than crashing.
func normalizeTiles(flat []int, rowWidth int) [][]int {
	if rowWidth < 1 {
		logger.Warn().
			Int("row_width", rowWidth).
			Int("tiles", len(flat)).
			Msg("tilemap: row width below 1, keeping flat tile data as a single row")
		return [][]int{flat}
	}

	rows := make([][]int, 0, (len(flat)+rowWidth-1)/rowWidth)
	for start := 0; start < len(flat); start += rowWidth {
		end := start + rowWidth
		if end > len(flat) {
			end = len(flat)
		}
		rows = append(rows, flat[start:end])
	}
	return rows
}

// TileSize returns the tile dimensions in pixels.
func (t *Tilemap) TileSize() (w, h int) {
	return t.tileW, t.tileH
}

// Quads returns the atlas quads in row-major slicing order. The returned
// slice is owned by the Tilemap and must not be modified.
func (t *Tilemap) Quads() []Quad {
	return t.quads
}

// Drawable returns the current drawable window.
func (t *Tilemap) Drawable() (firstCol, firstRow, cols, rows int) {
	return t.firstCol, t.firstRow, t.drawCols, t.drawRows
}

// Scroll returns the current scroll offset.
func (t *Tilemap) Scroll() (x, y float64) {
	return t.scrollX, t.scrollY
}

// DrawableOption updates one field of the drawable window.
type DrawableOption func(*Tilemap)

// FirstCol sets the first visible map column.
func FirstCol(n int) DrawableOption {
	return func(t *Tilemap) { t.firstCol = n }
}

// FirstRow sets the first visible map row.
func FirstRow(n int) DrawableOption {
	return func(t *Tilemap) { t.firstRow = n }
}

// Cols sets the number of visible columns.
func Cols(n int) DrawableOption {
	return func(t *Tilemap) { t.drawCols = n }
}

// Rows sets the number of visible rows.
func Rows(n int) DrawableOption {
	return func(t *Tilemap) { t.drawRows = n }
}

// SetDrawable updates the drawable window. Fields without an option keep
// their previous value. Values are not validated against the map: negative
// or overshooting windows simply render fewer (or zero) tiles.
//
// Call this whenever the visible region changes (camera move, window resize).
func (t *Tilemap) SetDrawable(opts ...DrawableOption) {
	for _, opt := range opts {
		opt(t)
	}
}

// ScrollOption updates one axis of the scroll offset.
type ScrollOption func(*Tilemap)

// ScrollX sets the horizontal scroll offset.
func ScrollX(x float64) ScrollOption {
	return func(t *Tilemap) {
		if x != t.scrollX {
			t.scrollX = x
			t.cacheValid = false
		}
	}
}

// ScrollY sets the vertical scroll offset.
func ScrollY(y float64) ScrollOption {
	return func(t *Tilemap) {
		if y != t.scrollY {
			t.scrollY = y
			t.cacheValid = false
		}
	}
}

// SetScroll sets both scroll offsets and, when the offset changed, rebuilds
// the destination-coordinate tables immediately.
func (t *Tilemap) SetScroll(x, y float64) {
	if x != t.scrollX || y != t.scrollY {
		t.scrollX = x
		t.scrollY = y
		t.cacheValid = false
	}
	t.ensureScrollCache()
}

// ensureScrollCache rebuilds the destination-coordinate tables when the
// scroll offset or screen size changed since the last build. The rebuild is
// eager: it always happens before the draw loop runs, never during it.
func (t *Tilemap) ensureScrollCache() {
	sw, sh := t.backend.ScreenSize()
	if t.cacheValid && sw == t.screenW && sh == t.screenH {
		return
	}
	t.screenW = sw
	t.screenH = sh

	t.xs = t.xs[:0]
	for x := t.scrollX; x <= float64(sw); x += float64(t.tileW) {
		t.xs = append(t.xs, x)
	}
	t.ys = t.ys[:0]
	for y := t.scrollY; y <= float64(sh); y += float64(t.tileH) {
		t.ys = append(t.ys, y)
	}
	t.cacheValid = true
}

// Draw renders the drawable window of the map. Scroll options update the
// stored offset first; axes without an option keep their previous value.
//
// Only the rows and columns of the drawable window are walked. Destination
// coordinates increase monotonically, so a row past the bottom screen edge
// ends the frame and a column past the right edge ends that row, without
// per-tile bounds math against the full map.
func (t *Tilemap) Draw(opts ...ScrollOption) {
	for _, opt := range opts {
		opt(t)
	}
	t.ensureScrollCache()

	for j := 0; j < t.drawRows; j++ {
		// Past the coordinate table means past the bottom edge; every
		// later row is further down still.
		if j >= len(t.ys) {
			return
		}

		ri := t.firstRow + j
		if ri < 0 || ri >= len(t.rows) {
			continue
		}
		row := t.rows[ri]

		for i := 0; i < t.drawCols; i++ {
			// Past the right edge; later rows may still be visible.
			if i >= len(t.xs) {
				break
			}

			ci := t.firstCol + i
			if ci < 0 || ci >= len(row) {
				continue
			}
			idx := row[ci]
			if idx < 0 || idx >= len(t.quads) {
				continue
			}

			t.backend.Draw(t.atlas, t.quads[idx], t.xs[i], t.ys[j])
		}
	}
}
