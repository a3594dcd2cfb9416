package fbdraw

// DrawLine draws a line from (x0, y0) to (x1, y1), both ends included.
// Every pixel goes through Plot, so the line is clipped point by point.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col Color) {
	if abs(y1-y0) <= abs(x1-x0) {
		c.midpointLine(x0, y0, x1, y1, col, false)
	} else {
		c.midpointLine(y0, x0, y1, x1, col, true)
	}
}

// midpointLine rasterizes a line whose slope is at most 1 in magnitude,
// stepping once per x. For steep lines the caller swaps the axes and sets
// swapXY so that the pixels are plotted with x and y swapped back.
func (c *Canvas) midpointLine(x, y, x1, y1 int, col Color, swapXY bool) {
	dx := abs(x1 - x)
	dy := abs(y1 - y)
	sx := sign(x, x1)
	sy := sign(y, y1)
	incE := dy << 1
	incNE := (dy - dx) << 1

	plot := c.Plot
	if swapXY {
		plot = func(x, y int, col Color) { c.Plot(y, x, col) }
	}

	d := (dy << 1) - dx
	plot(x, y, col)
	for x != x1 {
		x += sx
		if d <= 0 {
			d += incE
		} else {
			y += sy
			d += incNE
		}
		plot(x, y, col)
	}
}
