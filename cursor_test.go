package cursorctl

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// traceSurface wraps an RGBA buffer and counts pixel writes. Because it is
// not an *image.RGBA itself, draw.Draw takes the generic path and every
// write goes through Set.
type traceSurface struct {
	*image.RGBA
	sets int
}

func newTraceSurface(w, h int, fill color.Color) *traceSurface {
	ts := &traceSurface{RGBA: image.NewRGBA(image.Rect(0, 0, w, h))}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ts.RGBA.Set(x, y, fill)
		}
	}
	return ts
}

func (ts *traceSurface) Set(x, y int, c color.Color) {
	ts.sets++
	ts.RGBA.Set(x, y, c)
}

// SetRGBA64 must be shadowed too: the promoted method from the embedded
// *image.RGBA makes traceSurface a draw.RGBA64Image, and image/draw routes
// generic-path writes through it instead of Set.
func (ts *traceSurface) SetRGBA64(x, y int, c color.RGBA64) {
	ts.sets++
	ts.RGBA.SetRGBA64(x, y, c)
}

// solidGlyph returns a w x h square of solid white.
func solidGlyph(t *testing.T, w, h int) *Glyph {
	t.Helper()
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = 1
	}
	g, err := NewGlyph(w, h, pix, color.Palette{color.Alpha{}, color.White})
	if err != nil {
		t.Fatalf("NewGlyph: %v", err)
	}
	return g
}

func TestMoveClamping(t *testing.T) {
	surface := newTraceSurface(100, 100, color.Black)
	c, err := New(surface, solidGlyph(t, 8, 8), NewConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name string
		move func()
		x, y int
	}{
		{"absolute in range", func() { c.MoveAbs(10, 20) }, 10, 20},
		{"absolute past right edge", func() { c.MoveAbs(100, 0) }, 99, 0},
		{"absolute negative", func() { c.MoveAbs(-5, -5) }, 0, 0},
		{"relative saturates right", func() { c.MoveAbs(95, 50); c.MoveRel(60, 0) }, 99, 50},
		{"relative saturates top left", func() { c.MoveAbs(3, 3); c.MoveRel(-10, -10) }, 0, 0},
		{"relative in range", func() { c.MoveAbs(50, 50); c.MoveRel(-7, 12) }, 43, 62},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.move()
			x, y := c.Position()
			if x != tt.x || y != tt.y {
				t.Errorf("position = (%d,%d), want (%d,%d)", x, y, tt.x, tt.y)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	surface := newTraceSurface(100, 100, color.Black)
	c, err := New(surface, solidGlyph(t, 8, 8), NewConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.MoveAbs(50, 50)
	if err := c.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	writes := surface.sets
	if writes == 0 {
		t.Fatal("first Render wrote nothing")
	}
	if err := c.Render(); err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if surface.sets != writes {
		t.Errorf("second Render wrote %d pixels, want 0", surface.sets-writes)
	}
}

func TestRenderMovesGlyph(t *testing.T) {
	bg := color.RGBA{0, 0, 200, 255}
	surface := newTraceSurface(100, 100, bg)
	c, err := New(surface, solidGlyph(t, 8, 8), Config{X: 50, Y: 50})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := c.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := surface.RGBA.RGBAAt(50, 50); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("glyph not drawn at (50,50): %v", got)
	}

	c.MoveRel(60, 0)
	if x, _ := c.Position(); x != 99 {
		t.Fatalf("x = %d, want 99 (hot point clamped to viewport)", x)
	}
	if err := c.Render(); err != nil {
		t.Fatalf("Render after move: %v", err)
	}

	// old region restored, new region drawn (clipped at the edge)
	if got := surface.RGBA.RGBAAt(50, 50); got != bg {
		t.Errorf("old position not erased: %v", got)
	}
	if got := surface.RGBA.RGBAAt(99, 50); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("glyph not drawn at (99,50): %v", got)
	}
}

func TestHideShow(t *testing.T) {
	bg := color.RGBA{30, 30, 30, 255}
	surface := newTraceSurface(64, 64, bg)
	c, err := New(surface, solidGlyph(t, 8, 8), Config{X: 20, Y: 20})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := c.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	c.Hide()
	if err := c.Render(); err != nil {
		t.Fatalf("Render hidden: %v", err)
	}
	if got := surface.RGBA.RGBAAt(20, 20); got != bg {
		t.Fatalf("glyph still visible while hidden: %v", got)
	}

	// repeated hidden renders stay no-ops
	writes := surface.sets
	if err := c.Render(); err != nil {
		t.Fatalf("Render hidden again: %v", err)
	}
	if surface.sets != writes {
		t.Errorf("hidden Render wrote %d pixels, want 0", surface.sets-writes)
	}

	c.Show()
	if err := c.Render(); err != nil {
		t.Fatalf("Render shown: %v", err)
	}
	if got := surface.RGBA.RGBAAt(20, 20); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("glyph did not reappear: %v", got)
	}
}

func TestMoveWhileHidden(t *testing.T) {
	surface := newTraceSurface(64, 64, color.Black)
	c, err := New(surface, solidGlyph(t, 4, 4), Config{Hidden: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.MoveAbs(30, 40)
	if x, y := c.Position(); x != 30 || y != 40 {
		t.Errorf("movement blocked while hidden: (%d,%d)", x, y)
	}
	if err := c.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if surface.sets != 0 {
		t.Errorf("hidden cursor wrote %d pixels", surface.sets)
	}
}

func TestNewConfigurationErrors(t *testing.T) {
	surface := newTraceSurface(16, 16, color.Black)

	tests := []struct {
		name string
		fn   func() error
		want error
	}{
		{
			"glyph larger than viewport",
			func() error {
				_, err := New(surface, solidGlyph(t, 20, 20), NewConfig())
				return err
			},
			ErrGlyphTooLarge,
		},
		{
			"nil surface",
			func() error {
				_, err := New(nil, nil, NewConfig())
				return err
			},
			ErrNoSurface,
		},
		{
			"viewport outside surface",
			func() error {
				conf := NewConfig()
				conf.Viewport = image.Rect(0, 0, 200, 200)
				_, err := New(surface, solidGlyph(t, 4, 4), conf)
				return err
			},
			ErrViewportMismatch,
		},
		{
			"scaled glyph larger than viewport",
			func() error {
				conf := NewConfig()
				conf.Scale = 3
				_, err := New(surface, solidGlyph(t, 8, 8), conf)
				return err
			},
			ErrGlyphTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("err = %v does not wrap ErrConfiguration", err)
			}
		})
	}
}

func TestViewportConfinement(t *testing.T) {
	surface := newTraceSurface(100, 100, color.Black)
	conf := NewConfig()
	conf.Viewport = image.Rect(10, 20, 90, 80)
	c, err := New(surface, solidGlyph(t, 8, 8), conf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.MoveAbs(0, 0)
	if x, y := c.Position(); x != 10 || y != 20 {
		t.Errorf("clamped to (%d,%d), want viewport min (10,20)", x, y)
	}
	c.MoveRel(1000, 1000)
	if x, y := c.Position(); x != 89 || y != 79 {
		t.Errorf("clamped to (%d,%d), want viewport max (89,79)", x, y)
	}
}

func TestCenter(t *testing.T) {
	surface := newTraceSurface(100, 60, color.Black)
	c, err := New(surface, solidGlyph(t, 4, 4), NewConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Center()
	if x, y := c.Position(); x != 50 || y != 30 {
		t.Errorf("Center = (%d,%d), want (50,30)", x, y)
	}
}
