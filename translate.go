package cursorctl

import (
	"image"
	"image/color"
	"image/draw"
)

// imageTranslate works a bit like the SubImage() method on various image
// package objects. However, it wraps a draw.Image allowing both calls to
// Set() and At(). This doesn't restrict any pixel operations, so the margins
// outside the translated bounds still remain accessible. It lets a cursor
// viewport sit inside a larger framebuffer, e.g. below a status bar.
type imageTranslate struct {
	draw.Image
	offset image.Point
}

// NewImageTranslate returns a draw.Image which offsets all operations
// on img by offset.
func NewImageTranslate(offset image.Point, img draw.Image) draw.Image {
	it := &imageTranslate{
		offset: offset,
		Image:  img,
	}
	if writeOnly(img) {
		return writeOnlyTranslate{it}
	}
	return it
}

func (it *imageTranslate) Set(x, y int, c color.Color) {
	it.Image.Set(x+it.offset.X, y+it.offset.Y, c)
}

func (it *imageTranslate) At(x, y int) color.Color {
	return it.Image.At(x+it.offset.X, y+it.offset.Y)
}

func (it *imageTranslate) Bounds() image.Rectangle {
	return it.Image.Bounds().Sub(it.offset)
}

// Display passes a flush through to the wrapped surface, if it has one.
func (it *imageTranslate) Display() error {
	if f, ok := it.Image.(interface{ Display() error }); ok {
		return f.Display()
	}
	return nil
}

// writeOnlyTranslate preserves the write-only property of the wrapped
// surface across translation.
type writeOnlyTranslate struct {
	*imageTranslate
}

func (writeOnlyTranslate) WriteOnly() bool { return true }
