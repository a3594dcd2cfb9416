package fbdraw

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a pixel value packed for one particular [PixelFormat]. Obtain it
// from [PixelFormat.Pack] or one of the Canvas helpers; a Color packed for one
// format is meaningless for another.
type Color uint32

// Channel describes where one color component lives inside a packed pixel.
type Channel struct {
	Mask   uint32
	Length uint8
	Offset uint8
}

// NewChannel returns a channel of length contiguous bits starting at offset.
func NewChannel(length, offset uint8) Channel {
	return Channel{
		Mask:   (1<<uint32(length) - 1) << offset,
		Length: length,
		Offset: offset,
	}
}

// pack reduces an 8-bit value to the channel's resolution and moves it into
// place.
func (ch Channel) pack(v uint8) uint32 {
	// Skip the math if this channel is not used
	if ch.Length == 0 {
		return 0
	}
	v >>= 8 - ch.Length
	return (uint32(v) << ch.Offset) & ch.Mask
}

// unpack extracts the channel and left-aligns it in 8 bits.
func (ch Channel) unpack(c uint32) uint8 {
	if ch.Length == 0 {
		return 0
	}
	return uint8((c & ch.Mask) >> ch.Offset << (8 - ch.Length))
}

// shift16 is pack for the 16-bit channel values used by [color.Color].
func (ch Channel) shift16(v uint32) uint32 {
	if ch.Length == 0 {
		return 0
	}
	v >>= 16 - uint32(ch.Length)
	return (v << ch.Offset) & ch.Mask
}

// unshift16 expands the channel back to 16 bits by repeating its bit
// pattern, so that all zeros and all ones map to 0 and 0xFFFF.
func (ch Channel) unshift16(c uint32) uint32 {
	if ch.Length == 0 {
		return 0
	}
	v := (c & ch.Mask) >> ch.Offset
	var out uint32
	for n := int(16 - ch.Length); n > -int(ch.Length); n -= int(ch.Length) {
		if n >= 0 {
			out |= v << uint(n)
		} else {
			out |= v >> uint(-n)
		}
	}
	return out
}

// PixelFormat is the layout of a packed pixel: how many bytes it occupies and
// where red, green and blue are stored. It is computed once when a surface is
// acquired and never changes afterwards.
type PixelFormat struct {
	R, G, B       Channel
	BytesPerPixel int
}

// Common formats. Bytes are stored little endian, as the Linux frame buffer
// does on the machines this package targets.
var (
	RGB565   = PixelFormat{NewChannel(5, 11), NewChannel(6, 5), NewChannel(5, 0), 2}
	RGB888   = PixelFormat{NewChannel(8, 16), NewChannel(8, 8), NewChannel(8, 0), 3}
	XRGB8888 = PixelFormat{NewChannel(8, 16), NewChannel(8, 8), NewChannel(8, 0), 4}
)

// NewPixelFormat validates a channel layout. Every channel must be at most 8
// bits wide and fit inside a pixel of bitsPerPixel bits, which must be a whole
// number of bytes no larger than 32 bits.
func NewPixelFormat(bitsPerPixel int, r, g, b Channel) (PixelFormat, error) {
	switch {
	case bitsPerPixel <= 0:
		return PixelFormat{}, fmt.Errorf("%w: pixel size is zero", ErrUnsupportedFormat)
	case bitsPerPixel%8 != 0:
		return PixelFormat{}, fmt.Errorf("%w: pixel size %d is not a multiple of 8", ErrUnsupportedFormat, bitsPerPixel)
	case bitsPerPixel > 32:
		return PixelFormat{}, fmt.Errorf("%w: pixel size %d is greater than 32 bits", ErrUnsupportedFormat, bitsPerPixel)
	}
	for _, ch := range []struct {
		name string
		Channel
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.Length > 8 {
			return PixelFormat{}, fmt.Errorf("%w: %s channel is %d bits wide", ErrUnsupportedFormat, ch.name, ch.Length)
		}
		if int(ch.Offset)+int(ch.Length) > bitsPerPixel {
			return PixelFormat{}, fmt.Errorf("%w: %s channel does not fit in %d bits", ErrUnsupportedFormat, ch.name, bitsPerPixel)
		}
		if ch.Mask != NewChannel(ch.Length, ch.Offset).Mask {
			return PixelFormat{}, fmt.Errorf("%w: %s mask %#x is not %d bits at %d", ErrUnsupportedFormat, ch.name, ch.Mask, ch.Length, ch.Offset)
		}
	}
	return PixelFormat{R: r, G: g, B: b, BytesPerPixel: bitsPerPixel / 8}, nil
}

// Pack converts 8-bit red, green and blue into a pixel value. Low bits that
// the format cannot represent are dropped.
func (f PixelFormat) Pack(r, g, b uint8) Color {
	return Color(f.R.pack(r) | f.G.pack(g) | f.B.pack(b))
}

// Unpack returns the components of c, each truncated to its channel width.
func (f PixelFormat) Unpack(c Color) (r, g, b uint8) {
	return f.R.unpack(uint32(c)), f.G.unpack(uint32(c)), f.B.unpack(uint32(c))
}

// PackColor packs any color.Color. Alpha is ignored.
func (f PixelFormat) PackColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color(f.R.shift16(r) | f.G.shift16(g) | f.B.shift16(b))
}

// PackHex packs a "#rrggbb" or "#rgb" color.
func (f PixelFormat) PackHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, err
	}
	r, g, b := c.Clamped().RGB255()
	return f.Pack(r, g, b), nil
}

// PackNamed packs one of the SVG 1.1 color names, such as "orange".
func (f PixelFormat) PackNamed(name string) (Color, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return 0, false
	}
	return f.Pack(c.R, c.G, c.B), true
}

// Convert implements [color.Model].
func (f PixelFormat) Convert(c color.Color) color.Color {
	if v, ok := c.(colorValue); ok && v.format == f {
		return v
	}
	return colorValue{f.PackColor(c), f}
}

// colorValue is [PixelFormat]'s implementation of [color.Color].
type colorValue struct {
	value  Color
	format PixelFormat
}

// RGBA returns each color channel as a separate value. The formats have no
// alpha channel, so alpha is always opaque.
func (c colorValue) RGBA() (r, g, b, a uint32) {
	return c.format.R.unshift16(uint32(c.value)),
		c.format.G.unshift16(uint32(c.value)),
		c.format.B.unshift16(uint32(c.value)),
		0xFFFF
}
