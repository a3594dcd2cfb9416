package fbdraw

// Plot sets the pixel at window position (x, y). Points outside the window
// are ignored.
func (c *Canvas) Plot(x, y int, col Color) {
	if c.inside(x, y) {
		c.surf.write(c.surf.offset(x+c.win.X, y+c.win.Y), col)
	}
}

// HLine draws n pixels to the right, starting at window position (x, y).
func (c *Canvas) HLine(x, y, n int, col Color) {
	if n <= 0 {
		return
	}
	if x < 0 {
		n += x
		x = 0
	}
	if n <= 0 || y < 0 || y >= c.win.Height {
		return
	}
	n = min(n, c.win.Width-x)
	if n <= 0 {
		return
	}
	c.surf.fillRow(c.surf.offset(x+c.win.X, y+c.win.Y), n, col)
}

// VLine draws n pixels downwards, starting at window position (x, y).
func (c *Canvas) VLine(x, y, n int, col Color) {
	if n <= 0 {
		return
	}
	if y < 0 {
		n += y
		y = 0
	}
	if n <= 0 || x < 0 || x >= c.win.Width {
		return
	}
	n = min(n, c.win.Height-y)
	if n <= 0 {
		return
	}
	c.surf.fillColumn(c.surf.offset(x+c.win.X, y+c.win.Y), n, col)
}

// normRect flips a rectangle with negative width or height so that it
// covers the same pixels with a positive extent.
func normRect(x, y, w, h int) (int, int, int, int) {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return x, y, w, h
}

// FillRect fills the w x h rectangle at window position (x, y). A negative
// width or height extends the rectangle left or up from (x, y).
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	x, y, w, h = normRect(x, y, w, h)
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	// Rows below the window would be dropped by HLine anyway.
	h = min(h, c.win.Height-y)
	if w <= 0 || h <= 0 {
		return
	}
	for dy := 0; dy < h; dy++ {
		c.HLine(x, y+dy, w, col)
	}
}

// DrawRect draws the outline of the w x h rectangle at window position
// (x, y), using the same conventions as FillRect.
func (c *Canvas) DrawRect(x, y, w, h int, col Color) {
	x, y, w, h = normRect(x, y, w, h)
	if w == 0 || h == 0 {
		return
	}
	c.HLine(x, y, w, col)
	c.VLine(x, y, h, col)
	c.VLine(x+w-1, y, h, col)
	c.HLine(x, y+h-1, w, col)
}

// ClearWindow fills the current window with col.
func (c *Canvas) ClearWindow(col Color) {
	c.FillRect(0, 0, c.win.Width, c.win.Height, col)
}

// ClearSurface fills the whole screen with col, ignoring the window.
func (c *Canvas) ClearSurface(col Color) {
	for y := 0; y < c.surf.Height; y++ {
		c.surf.fillRow(c.surf.offset(0, y), c.surf.Width, col)
	}
}
