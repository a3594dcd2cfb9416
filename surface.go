package fbdraw

import (
	"fmt"
	"image"
)

// Surface is a view of a linear pixel buffer: the whole screen, laid out row
// after row with Pitch bytes between the starts of consecutive rows. Pixels
// may be memory mapped device memory or a plain slice.
type Surface struct {
	Pixels        []byte
	Width, Height int
	Pitch         int
	Format        PixelFormat
}

// NewSurface checks that pix can hold width x height pixels of the given
// format with rows pitch bytes apart. Once it succeeds, every pixel inside
// the surface bounds is addressable without leaving pix.
func NewSurface(pix []byte, width, height, pitch int, format PixelFormat) (*Surface, error) {
	bpp := format.BytesPerPixel
	switch {
	case width <= 0 || height <= 0:
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidGeometry, width, height)
	case bpp < 1 || bpp > 4:
		return nil, fmt.Errorf("%w: %d bytes per pixel", ErrUnsupportedFormat, bpp)
	case pitch < width*bpp:
		return nil, fmt.Errorf("%w: pitch %d is shorter than a row of %d pixels", ErrInvalidGeometry, pitch, width)
	case len(pix) < (height-1)*pitch+width*bpp:
		return nil, fmt.Errorf("%w: %d bytes cannot hold %dx%d pixels with pitch %d", ErrInvalidGeometry, len(pix), width, height, pitch)
	}
	return &Surface{
		Pixels: pix,
		Width:  width,
		Height: height,
		Pitch:  pitch,
		Format: format,
	}, nil
}

// NewMemorySurface allocates a tightly packed surface in memory.
func NewMemorySurface(width, height int, format PixelFormat) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidGeometry, width, height)
	}
	pitch := width * format.BytesPerPixel
	return NewSurface(make([]byte, height*pitch), width, height, pitch, format)
}

// Bounds returns the bounds of the whole surface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// offset returns the index of the first byte of pixel (x, y).
func (s *Surface) offset(x, y int) int {
	return y*s.Pitch + x*s.Format.BytesPerPixel
}

// This assumes a little endian system. The byte order in read and write has
// to be swapped if the target system is big endian.

func (s *Surface) read(i int) Color {
	var v uint32
	for j := 0; j < s.Format.BytesPerPixel; j++ {
		v |= uint32(s.Pixels[i+j]) << (8 * j)
	}
	return Color(v)
}

func (s *Surface) write(i int, c Color) {
	for j := 0; j < s.Format.BytesPerPixel; j++ {
		s.Pixels[i+j] = byte(c >> (8 * j))
	}
}

// fillRow writes n pixels of c starting at byte index i.
func (s *Surface) fillRow(i, n int, c Color) {
	bpp := s.Format.BytesPerPixel
	for end := i + n*bpp; i < end; i += bpp {
		s.write(i, c)
	}
}

// fillColumn writes n pixels of c starting at byte index i, one per row.
func (s *Surface) fillColumn(i, n int, c Color) {
	for ; n > 0; n, i = n-1, i+s.Pitch {
		s.write(i, c)
	}
}
