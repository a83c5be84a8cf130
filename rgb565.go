package cursorctl

import (
	"image"
	"image/color"
)

// RGB565Color is a packed 16 bit pixel, the native format of most small SPI
// displays (ST7789, ILI9341 and friends): 5 bits red, 6 green, 5 blue.
type RGB565Color uint16

func (c RGB565Color) RGBA() (r, g, b, a uint32) {
	// replicate the high bits into the low bits so full intensity maps to
	// the full 16 bit range
	r = uint32(c>>11) & 0x1f
	r = (r<<3 | r>>2) * 0x101
	g = uint32(c>>5) & 0x3f
	g = (g<<2 | g>>4) * 0x101
	b = uint32(c) & 0x1f
	b = (b<<3 | b>>2) * 0x101
	a = 0xffff
	return
}

func rgb565ColorModel(c color.Color) color.Color {
	if native, ok := c.(RGB565Color); ok {
		return native
	}
	r, g, b, _ := c.RGBA()
	return RGB565Color(uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11))
}

// RGB565Image is an in-memory framebuffer of RGB565 pixels, big endian,
// matching what the display DMA engines expect. It is a valid draw.Image,
// so it works both as a cursor surface and as a staging buffer to blit to
// hardware.
type RGB565Image struct {
	Pix []uint8
	image.Rectangle
}

func NewRGB565Image(r image.Rectangle) *RGB565Image {
	return &RGB565Image{
		Rectangle: r,
		Pix:       make([]uint8, r.Dx()*r.Dy()*2),
	}
}

func (p *RGB565Image) At(x, y int) color.Color {
	if !image.Pt(x, y).In(p.Rectangle) {
		return RGB565Color(0)
	}
	i := p.pixOffset(x, y)
	return RGB565Color(uint16(p.Pix[i])<<8 | uint16(p.Pix[i+1]))
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(p.Rectangle) {
		return
	}
	nc := rgb565ColorModel(c).(RGB565Color)
	i := p.pixOffset(x, y)
	p.Pix[i] = uint8(nc >> 8)
	p.Pix[i+1] = uint8(nc)
}

func (p *RGB565Image) pixOffset(x, y int) int {
	return ((y-p.Min.Y)*p.Dx() + (x - p.Min.X)) * 2
}

func (p *RGB565Image) Bounds() image.Rectangle {
	return p.Rectangle
}

func (p *RGB565Image) ColorModel() color.Model {
	return color.ModelFunc(rgb565ColorModel)
}
