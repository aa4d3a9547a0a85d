package sdlkit

import (
	"image/color"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestClearAndPresent(t *testing.T) {
	ctx := newTestContext(t)

	if err := ctx.Clear(RGB(0.2, 0.4, 0.6)); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := ctx.Present(); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
}

func TestSetDrawColor(t *testing.T) {
	ctx := newTestContext(t)

	if err := ctx.SetDrawColor(Hex("#336699")); err != nil {
		t.Fatalf("SetDrawColor failed: %v", err)
	}

	r, g, b, _, err := ctx.Renderer().GetDrawColor()
	if err != nil {
		t.Fatalf("GetDrawColor failed: %v", err)
	}
	if r != 0x33 || g != 0x66 || b != 0x99 {
		t.Errorf("draw color = %02x%02x%02x, want 336699", r, g, b)
	}
}

func TestFillRect(t *testing.T) {
	ctx := newTestContext(t)

	if err := ctx.FillRect(sdl.Rect{X: 4, Y: 4, W: 16, H: 16}, Red); err != nil {
		t.Fatalf("FillRect failed: %v", err)
	}
	if err := ctx.FillRectF(sdl.FRect{X: 2.5, Y: 2.5, W: 8, H: 8}, Green); err != nil {
		t.Fatalf("FillRectF failed: %v", err)
	}
}

func TestDrawTexture(t *testing.T) {
	ctx := newTestContext(t)
	path := writeBMP(t, t.TempDir(), "a.bmp", color.RGBA{R: 255, A: 255})

	tex, err := ctx.Texture(path)
	if err != nil {
		t.Fatalf("Texture failed: %v", err)
	}

	// Whole texture onto whole target.
	if err := ctx.DrawTexture(tex, nil, nil, 0, sdl.FLIP_NONE); err != nil {
		t.Fatalf("DrawTexture failed: %v", err)
	}

	// Region copy with rotation and flip.
	src := &sdl.Rect{W: 4, H: 4}
	dst := &sdl.Rect{X: 8, Y: 8, W: 32, H: 32}
	if err := ctx.DrawTexture(tex, src, dst, 90, sdl.FLIP_HORIZONTAL); err != nil {
		t.Fatalf("DrawTexture with region failed: %v", err)
	}

	dstF := &sdl.FRect{X: 1.5, Y: 1.5, W: 16, H: 16}
	if err := ctx.DrawTextureF(tex, nil, dstF, 45, sdl.FLIP_VERTICAL); err != nil {
		t.Fatalf("DrawTextureF failed: %v", err)
	}
}
