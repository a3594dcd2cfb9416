package fbdraw

import (
	"fmt"
	"image"
)

// Window is the part of the screen that drawing calls address. Coordinates
// passed to the drawing methods are relative to (X, Y) and clipped to
// Width x Height.
type Window struct {
	X, Y          int
	Width, Height int
}

// EndX is the first screen column right of the window.
func (w Window) EndX() int { return w.X + w.Width }

// EndY is the first screen row below the window.
func (w Window) EndY() int { return w.Y + w.Height }

// Rect returns the window in screen coordinates.
func (w Window) Rect() image.Rectangle {
	return image.Rect(w.X, w.Y, w.EndX(), w.EndY())
}

// SetWindow restricts drawing to the w x h rectangle at screen position
// (x, y). If the rectangle does not lie entirely on the screen,
// ErrWindowOutOfBounds is returned and the current window is kept.
func (c *Canvas) SetWindow(x, y, w, h int) error {
	if x < 0 || y < 0 || w < 0 || h < 0 ||
		w > c.surf.Width-x || h > c.surf.Height-y {
		Logger().Warn("fbdraw: window rejected",
			"x", x, "y", y, "w", w, "h", h,
			"screen_w", c.surf.Width, "screen_h", c.surf.Height)
		return fmt.Errorf("%w: %dx%d at (%d, %d) on a %dx%d screen",
			ErrWindowOutOfBounds, w, h, x, y, c.surf.Width, c.surf.Height)
	}
	c.win = Window{X: x, Y: y, Width: w, Height: h}
	Logger().Debug("fbdraw: window set", "x", x, "y", y, "w", w, "h", h)
	return nil
}

// SetCenteredWindow sets a w x h window in the middle of the screen.
func (c *Canvas) SetCenteredWindow(w, h int) error {
	return c.SetWindow(c.surf.Width/2-w/2, c.surf.Height/2-h/2, w, h)
}

// ResetWindow makes the whole screen the window again.
func (c *Canvas) ResetWindow() {
	c.win = Window{Width: c.surf.Width, Height: c.surf.Height}
}

// Window returns the current window.
func (c *Canvas) Window() Window { return c.win }

// ScreenWidth returns the width of the whole screen.
func (c *Canvas) ScreenWidth() int { return c.surf.Width }

// ScreenHeight returns the height of the whole screen.
func (c *Canvas) ScreenHeight() int { return c.surf.Height }

// WindowWidth returns the width of the current window.
func (c *Canvas) WindowWidth() int { return c.win.Width }

// WindowHeight returns the height of the current window.
func (c *Canvas) WindowHeight() int { return c.win.Height }
