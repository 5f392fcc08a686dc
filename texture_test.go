package wiz

import (
	"testing"
)

// nineSheet is a 48x48 sheet of 16px parts laid out as the default 3x3 grid.
func nineSheet() *SpriteSheet {
	return NewSpriteSheet(fakeImage{w: 48, h: 48})
}

func TestNewTexture_MinimalNine(t *testing.T) {
	tex, err := NewTexture(nineSheet(), TextureConfig{Width: 48, Height: 48, PartSize: 16})
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}

	if w, h := tex.Size(); w != 48 || h != 48 {
		t.Errorf("size = %dx%d, want 48x48", w, h)
	}
	// One center, one of each edge, four corners.
	if len(tex.placements) != 9 {
		t.Errorf("placement count = %d, want 9", len(tex.placements))
	}
}

func TestTexture_DrawPositions(t *testing.T) {
	tex, err := NewTexture(nineSheet(), TextureConfig{Width: 48, Height: 48, PartSize: 16})
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}

	backend := newFakeBackend(640, 480)
	tex.Draw(backend, 10, 20)

	found := func(q Quad, x, y float64) bool {
		for _, c := range backend.calls {
			if c.q == q && c.x == x && c.y == y {
				return true
			}
		}
		return false
	}

	// Corners sit at the texture corners, the center fills the inside.
	if !found(Quad{X: 0, Y: 0, W: 16, H: 16}, 10, 20) {
		t.Error("top-left corner not drawn at the texture origin")
	}
	if !found(Quad{X: 32, Y: 32, W: 16, H: 16}, 42, 52) {
		t.Error("bottom-right corner not drawn at the far corner")
	}
	if !found(Quad{X: 16, Y: 16, W: 16, H: 16}, 26, 36) {
		t.Error("center part not drawn inside the border")
	}
	if !found(Quad{X: 16, Y: 0, W: 16, H: 16}, 26, 20) {
		t.Error("top edge not drawn between the corners")
	}
}

func TestNewTexture_ShrinksToPartMultiple(t *testing.T) {
	// 50x40 shrinks to 48x32; the inner height collapses to zero, leaving
	// only the top/bottom edges and corners.
	tex, err := NewTexture(nineSheet(), TextureConfig{Width: 50, Height: 40, PartSize: 16})
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}

	if w, h := tex.Size(); w != 48 || h != 32 {
		t.Errorf("size = %dx%d, want 48x32 after shrink", w, h)
	}
	if len(tex.placements) != 6 {
		t.Errorf("placement count = %d, want 6", len(tex.placements))
	}
}

func TestNewTexture_TooSmallForBorder(t *testing.T) {
	_, err := NewTexture(nineSheet(), TextureConfig{Width: 20, Height: 48, PartSize: 16})
	if err == nil {
		t.Error("expected error for a size that cannot fit the border, got nil")
	}
}

func TestNewTexture_MissingPartSize(t *testing.T) {
	_, err := NewTexture(nineSheet(), TextureConfig{Width: 48, Height: 48})
	if err == nil {
		t.Error("expected error for missing part size, got nil")
	}
}

func TestNewTexture_CustomPartsMissingEntry(t *testing.T) {
	parts := map[TexturePart]int{PartCenter: 4}
	_, err := NewTexture(nineSheet(), TextureConfig{
		Width: 48, Height: 48, PartSize: 16, Parts: parts,
	})
	if err == nil {
		t.Error("expected error for a parts map without border entries, got nil")
	}
}

func TestNewTexture_PartIndexOutsideSheet(t *testing.T) {
	parts := map[TexturePart]int{
		PartTopLeft: 0, PartTop: 1, PartTopRight: 2,
		PartLeft: 3, PartCenter: 99, PartRight: 5,
		PartBottomLeft: 6, PartBottom: 7, PartBottomRight: 8,
	}
	_, err := NewTexture(nineSheet(), TextureConfig{
		Width: 48, Height: 48, PartSize: 16, Parts: parts,
	})
	if err == nil {
		t.Error("expected error for a part index outside the sheet, got nil")
	}
}
