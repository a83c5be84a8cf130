package cursorctl

import "image/color"

// Palette indices used by the built-in arrow.
const (
	arrowTransparent = iota
	arrowFill
	arrowOutline
)

var arrowPalette = color.Palette{
	color.Alpha{},            // transparent
	color.White,              // fill
	color.RGBA{0, 0, 0, 255}, // outline
}

// DefaultGlyph returns the stock 20x20 arrow: white fill, black outline,
// hot point at the tip in the top left corner.
func DefaultGlyph() *Glyph {
	const w, h = 20, 20
	pix := make([]uint8, w*h)
	set := func(x, y int, v uint8) {
		pix[y*w+x] = v
	}

	// left edge, outline
	for y := 0; y < h; y++ {
		set(0, y, arrowOutline)
	}
	// right diagonal outline, inside fill
	for x := 1; x < 15; x++ {
		set(x, x, arrowOutline)
		for y := x + 1; y < h-x; y++ {
			set(x, y, arrowFill)
		}
	}
	// bottom diagonal, outline
	for i := 1; i < 5; i++ {
		set(i, h-i, arrowOutline)
	}
	// bottom flat line, right side fill
	for i := 5; i < 15; i++ {
		set(i, 15, arrowOutline)
		set(i-1, 14, arrowFill)
		set(i-2, 13, arrowFill)
		set(i-3, 12, arrowFill)
		set(i-4, 11, arrowFill)
	}

	g, err := NewGlyph(w, h, pix, arrowPalette)
	if err != nil {
		// the stock bitmap is well formed; reaching here is a bug
		panic(err)
	}
	return g
}
