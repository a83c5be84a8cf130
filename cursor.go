package cursorctl

import (
	"image"
	"image/draw"

	"golang.org/x/exp/constraints"
)

/*
cursorctl renders a mouse cursor over UI elements on small pixel displays.
A Cursor owns an (x, y) position clamped to a viewport and keeps a bitmap
glyph synchronized with that position on an externally owned draw.Image.
The display may be a plain image buffer, a hardware backed draw.Image, or
a write-only sink wrapped with NewDisplayerSurface.
*/

// Cursor tracks a position within a viewport and draws its glyph there.
// It holds a reference to the display surface but does not own it; anything
// else may draw to the surface between calls to Render.
type Cursor struct {
	surface draw.Image
	// viewport is the region of the surface the cursor may occupy.
	viewport image.Rectangle
	glyph    *Glyph

	// x, y is the hot point position. Always within viewport after any
	// mutation; out of range input is clamped, never wrapped.
	x, y int

	hidden bool

	// drawn is the region the glyph currently occupies on the surface.
	// Empty means nothing is drawn. Only Render mutates this.
	drawn image.Rectangle
	// saveUnder is whether erase restores a snapshot of the pixels beneath
	// the glyph. False for write-only surfaces, which get a background fill.
	saveUnder bool
	under     *image.RGBA

	background Color
}

// New returns an initialized *Cursor drawing glyph onto surface. If glyph is
// nil, the built-in arrow is used. Configuration problems (nil surface, glyph
// larger than the viewport, viewport outside the surface bounds) are reported
// here rather than at render time; all errors wrap ErrConfiguration.
func New(surface draw.Image, glyph *Glyph, conf Config) (*Cursor, error) {
	if surface == nil || surface.Bounds().Empty() {
		return nil, ErrNoSurface
	}

	viewport := conf.Viewport
	if viewport.Empty() {
		viewport = surface.Bounds()
	} else if !viewport.In(surface.Bounds()) {
		return nil, ErrViewportMismatch
	}

	if glyph == nil {
		glyph = DefaultGlyph()
	}
	if conf.Scale > 1 {
		glyph = glyph.Scaled(conf.Scale)
	}
	if glyph.Bounds().Dx() > viewport.Dx() || glyph.Bounds().Dy() > viewport.Dy() {
		return nil, ErrGlyphTooLarge
	}

	if conf.Background.Color == nil {
		conf.Background = ConfigDefault.Background
	}

	c := &Cursor{
		surface:    surface,
		viewport:   viewport,
		glyph:      glyph,
		hidden:     conf.Hidden,
		background: conf.Background,
		saveUnder:  !conf.BackgroundErase && !writeOnly(surface),
	}
	c.MoveAbs(conf.X+viewport.Min.X, conf.Y+viewport.Min.Y)

	log.Info("cursor initialized",
		"viewport", viewport,
		"glyph", glyph.Bounds().Size(),
		"saveUnder", c.saveUnder)

	return c, nil
}

// writeOnly reports whether the surface declares itself write-only, meaning
// At cannot return the pixels previously written.
func writeOnly(surface draw.Image) bool {
	wo, ok := surface.(interface{ WriteOnly() bool })
	return ok && wo.WriteOnly()
}

// Position returns the cursor's current hot point in surface coordinates.
func (c *Cursor) Position() (x, y int) {
	return c.x, c.y
}

// MoveRel adjusts the position by the given deltas, saturating at the
// viewport edges. Nothing is visible until Render is called.
func (c *Cursor) MoveRel(dx, dy int) {
	c.x = bound(c.x+dx, c.viewport.Min.X, c.viewport.Max.X-1)
	c.y = bound(c.y+dy, c.viewport.Min.Y, c.viewport.Max.Y-1)
}

// MoveAbs sets the absolute position with the same clamping as MoveRel.
func (c *Cursor) MoveAbs(x, y int) {
	c.x = bound(x, c.viewport.Min.X, c.viewport.Max.X-1)
	c.y = bound(y, c.viewport.Min.Y, c.viewport.Max.Y-1)
}

// Center moves the cursor to the middle of the viewport.
func (c *Cursor) Center() {
	c.MoveAbs(c.viewport.Min.X+c.viewport.Dx()/2, c.viewport.Min.Y+c.viewport.Dy()/2)
}

// Hidden reports whether the cursor is hidden.
func (c *Cursor) Hidden() bool {
	return c.hidden
}

// Hide makes subsequent Render calls erase the glyph and draw nothing.
func (c *Cursor) Hide() {
	c.hidden = true
}

// Show undoes Hide; the glyph reappears on the next Render.
func (c *Cursor) Show() {
	c.hidden = false
}

// Bounds returns the viewport.
func (c *Cursor) Bounds() image.Rectangle {
	return c.viewport
}

// Glyph returns the cursor's glyph.
func (c *Cursor) Glyph() *Glyph {
	return c.glyph
}

func bound[N constraints.Integer](x, minimum, maximum N) N {
	return min(max(x, minimum), maximum)
}
