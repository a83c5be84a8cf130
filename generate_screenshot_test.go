package cursorctl

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"testing"
)

func Test_RenderScreenshot(t *testing.T) {
	// Screen is 240x135px, the usual ST7789 dev board panel. Fill it with
	// a gradient so the arrow's outline and save-under erasing are easy to
	// eyeball in the output.
	fb := NewRGB565Image(image.Rect(0, 0, 240, 135))
	for y := 0; y < 135; y++ {
		for x := 0; x < 240; x++ {
			fb.Set(x, y, color.RGBA{uint8(x * 256 / 240), 65, 127, 255})
		}
	}

	cursor, err := New(fb, nil, NewConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cursor.Center()
	if err := cursor.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// drag it around a bit; only the final placement should remain
	for i := 0; i < 10; i++ {
		cursor.MoveRel(7, -3)
		if err := cursor.Render(); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}

	out := image.NewRGBA(fb.Bounds())
	draw.Draw(out, out.Bounds(), fb, image.Point{}, draw.Src)

	fh, err := os.Create("screenshot.png")
	if err != nil {
		panic(err)
	}

	png.Encode(fh, out)
	fh.Close()
}
