package wiz

// SliceQuads partitions an atlas of the given pixel size into a dense,
// row-major sequence of tile quads. Trailing remainder pixels that don't fit
// a whole tile are discarded. Degenerate inputs (tile larger than the image,
// zero sizes) yield an empty slice; subsequent draws simply render nothing.
func SliceQuads(imgW, imgH, tileW, tileH int) []Quad {
	if tileW < 1 || tileH < 1 {
		return nil
	}
	cols := imgW / tileW
	rows := imgH / tileH
	if cols < 1 || rows < 1 {
		return nil
	}

	quads := make([]Quad, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			quads = append(quads, Quad{
				X: float64(col * tileW),
				Y: float64(row * tileH),
				W: float64(tileW),
				H: float64(tileH),
			})
		}
	}
	return quads
}

// SpriteSheet addresses sub-regions of a single image by rectangle or by a
// uniform grid split. It never copies pixel data; it only produces quads for
// the backend to resolve at draw time.
//
// The underlying image is read-only after load, so one sheet may be shared
// across multiple consumers without synchronization.
type SpriteSheet struct {
	img Image
}

// NewSpriteSheet wraps an image handle.
func NewSpriteSheet(img Image) *SpriteSheet {
	return &SpriteSheet{img: img}
}

// Image returns the underlying image handle.
func (s *SpriteSheet) Image() Image {
	return s.img
}

// QuadAt returns the quad covering the given rectangle of the sheet.
func (s *SpriteSheet) QuadAt(x, y, w, h int) Quad {
	return Quad{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}
}

// Split slices the whole sheet into frameW x frameH quads in row-major order.
func (s *SpriteSheet) Split(frameW, frameH int) []Quad {
	w, h := s.img.Size()
	return SliceQuads(w, h, frameW, frameH)
}
