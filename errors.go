package fbdraw

import "errors"

var (
	// ErrUnsupportedFormat is returned when a pixel layout cannot be packed
	// by this package, e.g. channels wider than 8 bits.
	ErrUnsupportedFormat = errors.New("fbdraw: unsupported pixel format")

	// ErrInvalidGeometry is returned when a buffer is too small for the
	// dimensions it is supposed to hold.
	ErrInvalidGeometry = errors.New("fbdraw: invalid surface geometry")

	// ErrWindowOutOfBounds is returned by SetWindow and SetCenteredWindow
	// when the requested window does not fit on the screen.
	ErrWindowOutOfBounds = errors.New("fbdraw: window does not fit the screen")
)
