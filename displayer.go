package cursorctl

import (
	"image"
	"image/color"
	"image/draw"

	"tinygo.org/x/drivers"
)

// DisplayerSurface adapts a TinyGo display driver into a draw.Image so a
// Cursor can render straight onto hardware. Display drivers are write-only:
// At always returns transparent black, and the surface advertises this so
// New falls back to background-fill erasing automatically.
type DisplayerSurface struct {
	disp   drivers.Displayer
	bounds image.Rectangle
}

// NewDisplayerSurface wraps d. Render flushes d via its Display method after
// each change.
func NewDisplayerSurface(d drivers.Displayer) *DisplayerSurface {
	sx, sy := d.Size()
	return &DisplayerSurface{
		disp:   d,
		bounds: image.Rect(0, 0, int(sx), int(sy)),
	}
}

func (s *DisplayerSurface) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(s.bounds) {
		return
	}
	s.disp.SetPixel(int16(x), int16(y), color.RGBAModel.Convert(c).(color.RGBA))
}

func (s *DisplayerSurface) At(x, y int) color.Color {
	return color.RGBA{}
}

func (s *DisplayerSurface) Bounds() image.Rectangle {
	return s.bounds
}

func (s *DisplayerSurface) ColorModel() color.Model {
	return color.RGBAModel
}

// WriteOnly reports that pixels cannot be read back from the driver.
func (s *DisplayerSurface) WriteOnly() bool { return true }

// Display flushes buffered pixels to the hardware.
func (s *DisplayerSurface) Display() error {
	return s.disp.Display()
}

var _ draw.Image = (*DisplayerSurface)(nil)
