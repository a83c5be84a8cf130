package cursorctl

import "image"

// Config defines construction-time settings for a Cursor.
type Config struct {
	// X, Y is the initial position, relative to the viewport origin.
	X, Y int
	// Viewport restricts the cursor to a region of the surface. The zero
	// Rectangle means the whole surface.
	Viewport image.Rectangle
	// Scale enlarges the glyph by an integer factor in both directions.
	Scale int
	// Hidden starts the cursor hidden.
	Hidden bool
	// Speed is how far, in pixels, a Manager moves the cursor per tick of
	// held d-pad button or deflected stick.
	Speed int
	// Background is the fill used to erase the glyph on surfaces that
	// cannot be read back.
	Background Color
	// BackgroundErase forces background-fill erasing even on readable
	// surfaces.
	BackgroundErase bool
	// DeadZone is the analog stick deflection, in raw counts from the
	// sampled center, below which the cursor does not move.
	DeadZone int
	// Samples is how many analog reads are averaged per stick poll.
	Samples int
}

// ConfigDefault provides the default configuration values for a Cursor.
var ConfigDefault = Config{
	Scale:      1,
	Speed:      5,
	Background: NewOpaqueColor(0, 0, 0),
	DeadZone:   1000,
	Samples:    3,
}

func NewConfig() Config {
	return ConfigDefault
}
