package cursorctl

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Glyph is the cursor's visible shape: a small fixed-size bitmap plus a hot
// point, the glyph pixel that lands on the cursor position. A Glyph is
// immutable after construction; Scaled returns a new one.
type Glyph struct {
	img *image.RGBA
	hot image.Point
}

// NewGlyph builds a Glyph from palette-indexed pixel data, pix[y*w+x] being
// an index into palette. Index 0 is transparent regardless of its palette
// entry. This is the natural format for hand drawn cursor bitmaps; see
// DefaultGlyph for the arrow built this way.
func NewGlyph(w, h int, pix []uint8, palette color.Palette) (*Glyph, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: glyph dimensions %dx%d", ErrConfiguration, w, h)
	}
	if len(pix) != w*h {
		return nil, fmt.Errorf("%w: glyph pixel data is %d bytes, want %d", ErrConfiguration, len(pix), w*h)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("%w: glyph palette is empty", ErrConfiguration)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := pix[y*w+x]
			if int(idx) >= len(palette) {
				return nil, fmt.Errorf("%w: glyph pixel (%d,%d) references palette index %d of %d", ErrConfiguration, x, y, idx, len(palette))
			}
			if idx == 0 {
				continue
			}
			img.Set(x, y, palette[idx])
		}
	}
	return &Glyph{img: img}, nil
}

// GlyphFromImage builds a Glyph from any image; the alpha channel supplies
// transparency. The image is copied, so the caller may reuse it.
func GlyphFromImage(src image.Image) (*Glyph, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty glyph image", ErrConfiguration)
	}
	img := image.NewRGBA(image.Rectangle{Max: src.Bounds().Size()})
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return &Glyph{img: img}, nil
}

// WithHot returns a copy of g whose hot point is (x, y), which must lie
// within the glyph bounds.
func (g *Glyph) WithHot(x, y int) (*Glyph, error) {
	if !image.Pt(x, y).In(g.img.Bounds()) {
		return nil, fmt.Errorf("%w: hot point (%d,%d) outside glyph %v", ErrConfiguration, x, y, g.img.Bounds())
	}
	return &Glyph{img: g.img, hot: image.Pt(x, y)}, nil
}

// Bounds returns the glyph's extent, anchored at (0, 0).
func (g *Glyph) Bounds() image.Rectangle {
	return g.img.Bounds()
}

// Hot returns the hot point.
func (g *Glyph) Hot() image.Point {
	return g.hot
}

// Scaled returns a new Glyph enlarged by the integer factor n using
// nearest-neighbor sampling, keeping hard pixel edges. n < 2 returns g.
func (g *Glyph) Scaled(n int) *Glyph {
	if n < 2 {
		return g
	}
	b := g.img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*n, b.Dy()*n))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), g.img, b, xdraw.Src, nil)
	return &Glyph{img: dst, hot: g.hot.Mul(n)}
}

// Draw composites the glyph onto dst so that the hot point lands on pt,
// clipped to clip. Transparent glyph pixels leave dst untouched.
func (g *Glyph) Draw(dst draw.Image, pt image.Point, clip image.Rectangle) {
	r := g.img.Bounds().Sub(g.hot).Add(pt).Intersect(clip)
	if r.Empty() {
		return
	}
	sp := r.Min.Sub(pt).Add(g.hot)
	draw.Draw(dst, r, g.img, sp, draw.Over)
}
