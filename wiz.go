package wiz

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Quad is an immutable sub-rectangle of an atlas image, in pixels.
// Quads are plain values; the graphics backend resolves them against the
// atlas image at draw time.
type Quad struct {
	X, Y, W, H float64
}

// NewQuad returns a quad covering the given atlas rectangle.
func NewQuad(x, y, w, h float64) Quad {
	return Quad{X: x, Y: y, W: w, H: h}
}

// EmptyTile is the sentinel tile index meaning "draw nothing". Any negative
// index is treated the same way.
const EmptyTile = -1
