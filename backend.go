package wiz

import (
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Image is an opaque handle to a decoded image owned by the graphics backend.
type Image interface {
	// Size returns the image dimensions in pixels.
	Size() (w, h int)
}

// Backend is the graphics collaborator consumed (not owned) by wiz. It owns
// the screen dimensions and performs the actual pixel blits.
type Backend interface {
	// ScreenSize returns the current render target dimensions in pixels.
	ScreenSize() (w, h int)
	// LoadImage decodes the named image and returns a handle to it.
	LoadImage(name string) (Image, error)
	// Draw blits the quad sub-region of img at screen position (x, y).
	Draw(img Image, q Quad, x, y float64)
}

// EbitenBackend implements Backend on top of Ebitengine. SetScreen must be
// called each frame with the ebiten.Game draw target before any Draw calls.
type EbitenBackend struct {
	screen *ebiten.Image
	subs   map[subKey]*ebiten.Image
}

type subKey struct {
	img  *ebiten.Image
	rect image.Rectangle
}

// NewEbitenBackend returns an EbitenBackend with no screen attached yet.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{subs: make(map[subKey]*ebiten.Image)}
}

// SetScreen attaches the per-frame draw target. Call from ebiten.Game.Draw.
func (b *EbitenBackend) SetScreen(screen *ebiten.Image) {
	b.screen = screen
}

// ScreenSize returns the attached screen's dimensions, or (0, 0) when no
// screen has been attached yet.
func (b *EbitenBackend) ScreenSize() (w, h int) {
	if b.screen == nil {
		return 0, 0
	}
	bounds := b.screen.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// LoadImage opens and decodes an image file from disk.
func (b *EbitenBackend) LoadImage(name string) (Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("wiz: failed to open image %q: %w", name, err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("wiz: failed to decode image %q: %w", name, err)
	}
	return ebitenImage{img}, nil
}

// Draw blits the quad sub-region of img at (x, y). Sub-images are cached per
// (image, rect) pair since ebiten.Image.SubImage allocates.
func (b *EbitenBackend) Draw(img Image, q Quad, x, y float64) {
	if b.screen == nil {
		return
	}
	ei, ok := img.(ebitenImage)
	if !ok {
		return
	}

	key := subKey{
		img:  ei.img,
		rect: image.Rect(int(q.X), int(q.Y), int(q.X+q.W), int(q.Y+q.H)),
	}
	sub, ok := b.subs[key]
	if !ok {
		sub = ei.img.SubImage(key.rect).(*ebiten.Image)
		b.subs[key] = sub
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	b.screen.DrawImage(sub, op)
}

// ebitenImage adapts *ebiten.Image to the Image interface.
type ebitenImage struct {
	img *ebiten.Image
}

func (e ebitenImage) Size() (w, h int) {
	bounds := e.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// WrapImage adapts an existing ebiten.Image (e.g. one built in code or loaded
// through another pipeline) for use as a wiz atlas.
func WrapImage(img *ebiten.Image) Image {
	return ebitenImage{img}
}
