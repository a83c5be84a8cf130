package cursorctl

import (
	"fmt"
	"image"
	"image/draw"
)

// Render synchronizes the surface with the cursor state: the glyph is erased
// from where it was last drawn (if that differs from the current placement)
// and drawn at the current position. Calling Render twice with no intervening
// movement performs no surface writes the second time.
//
// If the surface buffers writes behind a Display method (hardware backed
// sinks do), Render flushes it; a flush failure indicates a mismatch between
// the configured viewport and the actual hardware and is returned wrapped in
// ErrConfiguration.
func (c *Cursor) Render() error {
	if c.hidden {
		if c.drawn.Empty() {
			return nil
		}
		c.erase()
		return c.flush()
	}

	placement := c.placement()
	if placement.Eq(c.drawn) {
		return nil
	}

	c.erase()
	c.draw(placement)
	return c.flush()
}

// placement returns the region of the viewport the glyph occupies at the
// current position. The hot point is what gets clamped, so a glyph may
// overhang the viewport edge; the overhang is clipped, never drawn.
func (c *Cursor) placement() image.Rectangle {
	r := c.glyph.Bounds().Sub(c.glyph.Hot()).Add(image.Pt(c.x, c.y))
	return r.Intersect(c.viewport)
}

func (c *Cursor) draw(placement image.Rectangle) {
	if c.saveUnder {
		c.under = image.NewRGBA(placement)
		draw.Draw(c.under, placement, c.surface, placement.Min, draw.Src)
	}
	c.glyph.Draw(c.surface, image.Pt(c.x, c.y), c.viewport)
	c.drawn = placement
}

func (c *Cursor) erase() {
	if c.drawn.Empty() {
		return
	}
	if c.saveUnder && c.under != nil {
		draw.Draw(c.surface, c.drawn, c.under, c.drawn.Min, draw.Src)
	} else {
		draw.Draw(c.surface, c.drawn, c.background, image.Point{}, draw.Src)
	}
	c.drawn = image.Rectangle{}
	c.under = nil
}

func (c *Cursor) flush() error {
	f, ok := c.surface.(interface{ Display() error })
	if !ok {
		return nil
	}
	if err := f.Display(); err != nil {
		log.Error("display write failed", "err", err)
		return fmt.Errorf("%w: display write failed: %v", ErrConfiguration, err)
	}
	return nil
}
