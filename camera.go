package wiz

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera tracks a world-space view position and derives the drawable window
// and scroll offset a Tilemap needs. It is optional: callers may drive
// Tilemap.SetDrawable and Tilemap.Draw directly instead.
type Camera struct {
	// X and Y are the world-space position of the view's top-left corner.
	X, Y float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the view stays within
	// Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	scrollTween *scrollAnim
}

// NewCamera creates a Camera at the world origin with the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Viewport: viewport}
}

// Center positions the camera so the given world point sits at the view center.
func (c *Camera) Center(wx, wy float64) {
	c.X = wx - c.Viewport.Width/2
	c.Y = wy - c.Viewport.Height/2
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ScrollToTile scrolls until the given map tile sits at the view center.
func (c *Camera) ScrollToTile(tileX, tileY int, tileW, tileH float64, duration float32, easeFn ease.TweenFunc) {
	worldX := float64(tileX)*tileW + tileW/2 - c.Viewport.Width/2
	worldY := float64(tileY)*tileH + tileH/2 - c.Viewport.Height/2
	c.ScrollTo(worldX, worldY, duration, easeFn)
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the view stays
// within Bounds. Call this after modifying X/Y directly (e.g. in a drag
// callback) to prevent a single frame outside the bounds. No-op if
// BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// Update advances the scroll tween and applies bounds clamping. Call once per
// frame tick with the elapsed time in seconds.
func (c *Camera) Update(dt float32) {
	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts camera position so the view stays within Bounds.
// If the bounds are smaller than the view, the view is centered on them.
func (c *Camera) clampToBounds() {
	maxX := c.Bounds.X + c.Bounds.Width - c.Viewport.Width
	maxY := c.Bounds.Y + c.Bounds.Height - c.Viewport.Height

	if c.Bounds.X > maxX {
		c.X = c.Bounds.X + (c.Bounds.Width-c.Viewport.Width)/2
	} else {
		c.X = math.Max(c.Bounds.X, math.Min(c.X, maxX))
	}
	if c.Bounds.Y > maxY {
		c.Y = c.Bounds.Y + (c.Bounds.Height-c.Viewport.Height)/2
	} else {
		c.Y = math.Max(c.Bounds.Y, math.Min(c.Y, maxY))
	}
}

// Apply updates a Tilemap's drawable window and scroll offset from the
// camera position. The first visible column/row comes from the camera's
// world position; the extra column and row cover partial tiles at the edges
// when the camera is not tile-aligned. Negative positions produce negative
// window offsets, which the draw loop tolerates.
func (c *Camera) Apply(t *Tilemap) {
	tw, th := t.TileSize()
	fw, fh := float64(tw), float64(th)

	firstCol := int(math.Floor(c.X / fw))
	firstRow := int(math.Floor(c.Y / fh))
	cols := int(math.Ceil(c.Viewport.Width/fw)) + 1
	rows := int(math.Ceil(c.Viewport.Height/fh)) + 1

	t.SetDrawable(FirstCol(firstCol), FirstRow(firstRow), Cols(cols), Rows(rows))
	t.SetScroll(
		float64(firstCol)*fw-c.X+c.Viewport.X,
		float64(firstRow)*fh-c.Y+c.Viewport.Y,
	)
}
