package fbdraw

// DrawCircle draws the outline of a circle with radius r around window
// position (cx, cy). A negative radius draws nothing.
//
// This is the integer midpoint algorithm from John Kennedy's "A Fast
// Bresenham Type Algorithm For Drawing Circles": one octant is walked and
// mirrored into the other seven.
func (c *Canvas) DrawCircle(cx, cy, r int, col Color) {
	x := r
	y := 0
	xch := 1 - 2*r
	ych := 1
	rerr := 0

	for x >= y {
		c.Plot(cx+x, cy+y, col)
		c.Plot(cx-x, cy+y, col)
		c.Plot(cx-x, cy-y, col)
		c.Plot(cx+x, cy-y, col)
		c.Plot(cx+y, cy+x, col)
		c.Plot(cx-y, cy+x, col)
		c.Plot(cx-y, cy-x, col)
		c.Plot(cx+y, cy-x, col)

		y++
		rerr += ych
		ych += 2

		if 2*rerr+xch > 0 {
			x--
			rerr += xch
			xch += 2
		}
	}
}

// FillCircle fills a circle with radius r around window position (cx, cy).
//
// It tests every point of the bounding square. The limit r²+r instead of r²
// makes the disc line up with the outline drawn by DrawCircle.
func (c *Canvas) FillCircle(cx, cy, r int, col Color) {
	r2 := r*r + r
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r2 {
				c.Plot(cx+x, cy+y, col)
			}
		}
	}
}
