// Package fbdraw draws simple shapes directly into a frame buffer.
//
// A [Canvas] draws on a [Surface], a pixel buffer with a known pitch and
// [PixelFormat]. On Linux, [Acquire] maps a frame buffer device such as
// /dev/fb0 and returns a [Display] that embeds a Canvas:
//
//	d, err := fbdraw.Acquire()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer d.Release()
//
//	red := d.Pack(255, 0, 0)
//	d.ClearSurface(d.Pack(0, 0, 0))
//	d.SetCenteredWindow(d.ScreenWidth()/2, d.ScreenHeight()/2)
//	d.DrawRect(0, 0, d.WindowWidth(), d.WindowHeight(), red)
//	d.FillCircle(d.WindowWidth()/2, d.WindowHeight()/2, 40, red)
//
// All coordinates are relative to the current window, and everything outside
// the window is silently clipped.
package fbdraw
