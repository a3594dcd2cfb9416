package fbdraw

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas draws on a [Surface] through a window. It starts out with the whole
// surface as its window.
//
// A Canvas is not safe for concurrent use. Changing the window while another
// goroutine draws leads to undefined results.
type Canvas struct {
	surf *Surface
	win  Window
}

var _ draw.Image = (*Canvas)(nil)

// New returns a canvas drawing on s.
func New(s *Surface) *Canvas {
	c := &Canvas{surf: s}
	c.ResetWindow()
	return c
}

// Surface returns the surface the canvas draws on.
func (c *Canvas) Surface() *Surface { return c.surf }

// Format returns the pixel format of the surface.
func (c *Canvas) Format() PixelFormat { return c.surf.Format }

// Pack is shorthand for c.Format().Pack(r, g, b).
func (c *Canvas) Pack(r, g, b uint8) Color {
	return c.surf.Format.Pack(r, g, b)
}

// Bounds returns the window extent, with its top left corner at the origin.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.win.Width, c.win.Height)
}

// ColorModel returns the pixel format of the surface.
func (c *Canvas) ColorModel() color.Model { return c.surf.Format }

// At returns the color at window position (x, y), or black outside the
// window.
func (c *Canvas) At(x, y int) color.Color {
	if !c.inside(x, y) {
		return colorValue{0, c.surf.Format}
	}
	return colorValue{c.PixelAt(x, y), c.surf.Format}
}

// Set sets the pixel at window position (x, y) to c, clipped like Plot.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.Plot(x, y, c.surf.Format.PackColor(col))
}

// PixelAt returns the packed pixel at window position (x, y), or 0 outside
// the window.
func (c *Canvas) PixelAt(x, y int) Color {
	if !c.inside(x, y) {
		return 0
	}
	return c.surf.read(c.surf.offset(x+c.win.X, y+c.win.Y))
}

// inside reports whether window position (x, y) lies in the window. Negative
// coordinates wrap around to huge unsigned values and fail the same test as
// coordinates past the far edge.
func (c *Canvas) inside(x, y int) bool {
	return uint(x) < uint(c.win.Width) && uint(y) < uint(c.win.Height)
}
