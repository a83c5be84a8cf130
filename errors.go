package cursorctl

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root of every error this package returns: all of
// them indicate a setup problem to fix before deployment, none are retried.
var ErrConfiguration = errors.New("cursor configuration error")

var (
	ErrNoSurface        = fmt.Errorf("%w: nil or empty display surface", ErrConfiguration)
	ErrGlyphTooLarge    = fmt.Errorf("%w: glyph exceeds viewport", ErrConfiguration)
	ErrViewportMismatch = fmt.Errorf("%w: viewport outside surface bounds", ErrConfiguration)
	ErrNoInput          = fmt.Errorf("%w: nil cursor or input device", ErrConfiguration)
)
