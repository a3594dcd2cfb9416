package fbdraw

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that PixelFormat implements color.Model.
var _ color.Model = PixelFormat{}

func TestPack(t *testing.T) {
	bgr565 := PixelFormat{NewChannel(5, 0), NewChannel(6, 5), NewChannel(5, 11), 2}
	rgb555 := PixelFormat{NewChannel(5, 10), NewChannel(5, 5), NewChannel(5, 0), 2}

	tests := []struct {
		name    string
		format  PixelFormat
		r, g, b uint8
		want    Color
	}{
		{"565 red", RGB565, 255, 0, 0, 0xF800},
		{"565 green", RGB565, 0, 255, 0, 0x07E0},
		{"565 blue", RGB565, 0, 0, 255, 0x001F},
		{"565 white", RGB565, 255, 255, 255, 0xFFFF},
		{"565 low bits dropped", RGB565, 0x07, 0x03, 0x07, 0},
		{"565 mixed", RGB565, 0x80, 0x40, 0x20, 0x8204},
		{"bgr565 red", bgr565, 255, 0, 0, 0x001F},
		{"555 white", rgb555, 255, 255, 255, 0x7FFF},
		{"888", RGB888, 0x12, 0x34, 0x56, 0x123456},
		{"8888", XRGB8888, 0xAB, 0xCD, 0xEF, 0xABCDEF},
		{"black", XRGB8888, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.Pack(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Pack(%#x, %#x, %#x) = %#x, want %#x", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestPackUnpackTruncates(t *testing.T) {
	rgb332, err := NewPixelFormat(8, NewChannel(3, 5), NewChannel(3, 2), NewChannel(2, 0))
	if err != nil {
		t.Fatal(err)
	}
	truncate := func(v uint8, ch Channel) uint8 {
		return v &^ (1<<(8-ch.Length) - 1)
	}
	for _, f := range []PixelFormat{RGB565, RGB888, XRGB8888, rgb332} {
		for v := 0; v < 256; v += 7 {
			r, g, b := uint8(v), uint8(255-v), uint8(v*3)
			gr, gg, gb := f.Unpack(f.Pack(r, g, b))
			wr, wg, wb := truncate(r, f.R), truncate(g, f.G), truncate(b, f.B)
			if gr != wr || gg != wg || gb != wb {
				t.Errorf("%+v: Unpack(Pack(%d, %d, %d)) = %d, %d, %d, want %d, %d, %d",
					f, r, g, b, gr, gg, gb, wr, wg, wb)
			}
		}
	}
}

func TestNewPixelFormat(t *testing.T) {
	f, err := NewPixelFormat(16, NewChannel(5, 11), NewChannel(6, 5), NewChannel(5, 0))
	if err != nil {
		t.Fatalf("NewPixelFormat(565) = %v", err)
	}
	if f != RGB565 {
		t.Errorf("NewPixelFormat(565) = %+v, want %+v", f, RGB565)
	}

	bad := []struct {
		name    string
		bpp     int
		r, g, b Channel
	}{
		{"zero size", 0, NewChannel(5, 11), NewChannel(6, 5), NewChannel(5, 0)},
		{"odd size", 12, NewChannel(4, 8), NewChannel(4, 4), NewChannel(4, 0)},
		{"too large", 48, NewChannel(8, 32), NewChannel(8, 16), NewChannel(8, 0)},
		{"wide channel", 32, NewChannel(10, 20), NewChannel(10, 10), NewChannel(10, 0)},
		{"channel past pixel", 16, NewChannel(8, 12), NewChannel(6, 5), NewChannel(5, 0)},
		{"bad mask", 16, Channel{Mask: 0xF000, Length: 5, Offset: 11}, NewChannel(6, 5), NewChannel(5, 0)},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPixelFormat(tt.bpp, tt.r, tt.g, tt.b)
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("NewPixelFormat() error = %v, want ErrUnsupportedFormat", err)
			}
		})
	}
}

func TestPackHex(t *testing.T) {
	got, err := RGB565.PackHex("#ff0000")
	if err != nil {
		t.Fatalf("PackHex(#ff0000) = %v", err)
	}
	if got != 0xF800 {
		t.Errorf("PackHex(#ff0000) = %#x, want 0xf800", got)
	}
	got, err = XRGB8888.PackHex("#1e90ff")
	if err != nil {
		t.Fatalf("PackHex(#1e90ff) = %v", err)
	}
	if want := XRGB8888.Pack(0x1e, 0x90, 0xff); got != want {
		t.Errorf("PackHex(#1e90ff) = %#x, want %#x", got, want)
	}
	if _, err := XRGB8888.PackHex("not a color"); err == nil {
		t.Error("PackHex(not a color) succeeded")
	}
}

func TestPackNamed(t *testing.T) {
	got, ok := XRGB8888.PackNamed("orange")
	if !ok {
		t.Fatal("PackNamed(orange) not found")
	}
	if want := XRGB8888.Pack(0xff, 0xa5, 0x00); got != want {
		t.Errorf("PackNamed(orange) = %#x, want %#x", got, want)
	}
	if _, ok := XRGB8888.PackNamed("ultraviolet"); ok {
		t.Error("PackNamed(ultraviolet) found")
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name                string
		format              PixelFormat
		in                  color.Color
		wantR, wantG, wantB uint32
	}{
		{"565 white", RGB565, color.White, 0xFFFF, 0xFFFF, 0xFFFF},
		{"565 black", RGB565, color.Black, 0, 0, 0},
		{"565 red", RGB565, color.RGBA{255, 0, 0, 255}, 0xFFFF, 0, 0},
		{"8888 gray", XRGB8888, color.Gray{Y: 0x80}, 0x8080, 0x8080, 0x8080},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.format.Convert(tt.in).RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != 0xFFFF {
				t.Errorf("Convert(%v).RGBA() = %#x %#x %#x %#x, want %#x %#x %#x 0xffff",
					tt.in, r, g, b, a, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestConvertKeepsOwnValues(t *testing.T) {
	v := RGB565.Convert(color.White)
	if got := RGB565.Convert(v); got != v {
		t.Errorf("Convert(own value) = %v, want %v", got, v)
	}
}
