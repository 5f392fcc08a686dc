package wiz

import "fmt"

// TexturePart names one of the nine slices a bordered texture is built from.
type TexturePart string

const (
	PartTopLeft     TexturePart = "topleft"
	PartTop         TexturePart = "top"
	PartTopRight    TexturePart = "topright"
	PartLeft        TexturePart = "left"
	PartCenter      TexturePart = "center"
	PartRight       TexturePart = "right"
	PartBottomLeft  TexturePart = "bottomleft"
	PartBottom      TexturePart = "bottom"
	PartBottomRight TexturePart = "bottomright"
)

// DefaultTextureParts maps each slice to its index on a part sheet laid out
// as a 3x3 grid in row-major order.
var DefaultTextureParts = map[TexturePart]int{
	PartTopLeft: 0, PartTop: 1, PartTopRight: 2,
	PartLeft: 3, PartCenter: 4, PartRight: 5,
	PartBottomLeft: 6, PartBottom: 7, PartBottomRight: 8,
}

// TextureConfig describes a nine-slice texture. Width, Height, and PartSize
// are required. Source is optional (informational when the sheet was loaded
// elsewhere), Alpha defaults to false, and Parts defaults to
// DefaultTextureParts.
type TextureConfig struct {
	Width    int
	Height   int
	PartSize int

	Source string
	Alpha  bool
	Parts  map[TexturePart]int
}

// placement positions one part quad relative to the texture origin.
type placement struct {
	q    Quad
	x, y float64
}

// Texture is a bordered rectangle assembled from nine part quads: fixed
// corners, edges tiled along the sides, and a tiled center. The placement
// list is precomputed at construction and never mutated.
type Texture struct {
	w, h       int
	img        Image
	placements []placement
}

// NewTexture validates the configuration and precomputes the part placements.
// The requested size shrinks to the nearest whole multiple of PartSize inside
// the border; a shrink is logged since it usually means a sloppy caller size.
func NewTexture(sheet *SpriteSheet, cfg TextureConfig) (*Texture, error) {
	if sheet == nil {
		return nil, fmt.Errorf("wiz: texture requires a part sheet")
	}
	if cfg.PartSize < 1 {
		return nil, fmt.Errorf("wiz: texture requires a positive part size, got %d", cfg.PartSize)
	}
	if cfg.Width < 2*cfg.PartSize || cfg.Height < 2*cfg.PartSize {
		return nil, fmt.Errorf("wiz: texture size %dx%d cannot fit its %dpx border",
			cfg.Width, cfg.Height, cfg.PartSize)
	}

	parts := cfg.Parts
	if parts == nil {
		parts = DefaultTextureParts
	}

	quads := sheet.Split(cfg.PartSize, cfg.PartSize)
	part := func(p TexturePart) (Quad, error) {
		idx, ok := parts[p]
		if !ok {
			return Quad{}, fmt.Errorf("wiz: texture part %q has no index", p)
		}
		if idx < 0 || idx >= len(quads) {
			return Quad{}, fmt.Errorf("wiz: texture part %q index %d outside the sheet (%d parts)",
				p, idx, len(quads))
		}
		return quads[idx], nil
	}

	ps := cfg.PartSize
	width, height := cfg.Width, cfg.Height

	// Shrink so the tiled inner area divides evenly.
	extraW := (width - 2*ps) % ps
	extraH := (height - 2*ps) % ps
	if extraW != 0 || extraH != 0 {
		logger.Warn().
			Int("requested_w", width).Int("requested_h", height).
			Int("w", width-extraW).Int("h", height-extraH).
			Msg("texture: size adjusted to avoid part overlap")
		width -= extraW
		height -= extraH
	}

	t := &Texture{w: width, h: height, img: sheet.Image()}

	startX, startY := float64(ps), float64(ps)
	endX, endY := float64(width-ps), float64(height-ps)
	step := float64(ps)

	center, err := part(PartCenter)
	if err != nil {
		return nil, err
	}
	for y := startY; y < endY; y += step {
		for x := startX; x < endX; x += step {
			t.place(center, x, y)
		}
	}

	left, err := part(PartLeft)
	if err != nil {
		return nil, err
	}
	right, err := part(PartRight)
	if err != nil {
		return nil, err
	}
	for y := startY; y < endY; y += step {
		t.place(left, 0, y)
		t.place(right, endX, y)
	}

	top, err := part(PartTop)
	if err != nil {
		return nil, err
	}
	bottom, err := part(PartBottom)
	if err != nil {
		return nil, err
	}
	for x := startX; x < endX; x += step {
		t.place(top, x, 0)
		t.place(bottom, x, endY)
	}

	for _, corner := range []struct {
		p    TexturePart
		x, y float64
	}{
		{PartTopLeft, 0, 0},
		{PartTopRight, endX, 0},
		{PartBottomLeft, 0, endY},
		{PartBottomRight, endX, endY},
	} {
		q, err := part(corner.p)
		if err != nil {
			return nil, err
		}
		t.place(q, corner.x, corner.y)
	}

	return t, nil
}

func (t *Texture) place(q Quad, x, y float64) {
	t.placements = append(t.placements, placement{q: q, x: x, y: y})
}

// Size returns the final texture dimensions after any shrink.
func (t *Texture) Size() (w, h int) {
	return t.w, t.h
}

// Draw issues the precomputed part placements with the texture origin at (x, y).
func (t *Texture) Draw(backend Backend, x, y float64) {
	for _, p := range t.placements {
		backend.Draw(t.img, p.q, x+p.x, y+p.y)
	}
}
