package fbdraw

import "fmt"

// <linux/fb.h> ioctls, 0x46 is 'F'.
const (
	kFBIOGET_VSCREENINFO = 0x4600
	kFBIOGET_FSCREENINFO = 0x4602
)

// FbFixScreenInfo mirrors struct fb_fix_screeninfo: properties of the
// device that do not change with the video mode.
type FbFixScreenInfo struct {
	ID        [16]byte
	SMemStart uintptr

	// Length of the mappable frame buffer memory in bytes
	SMemLen uint32

	Type      uint32
	TypeAux   uint32
	Visual    uint32
	XPanStep  uint16
	YPanStep  uint16
	YWrapStep uint16

	// Bytes per row, the pitch
	LineLength uint32

	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	_            [2]uint16
}

// FbVarScreenInfo mirrors struct fb_var_screeninfo: the current video mode.
type FbVarScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32

	// Position of the visible area inside the virtual resolution
	XOffset, YOffset uint32

	BitsPerPixel uint32
	Grayscale    uint32

	Red, Green, Blue, Alpha FbBitField

	NonStd      uint32
	Activate    uint32
	Height      uint32
	Width       uint32
	_           uint32
	PixelClock  uint32
	LeftMargin  uint32
	RightMargin uint32
	UpperMargin uint32
	LowerMargin uint32
	HSyncLen    uint32
	VSyncLen    uint32
	Sync        uint32
	VMode       uint32
	Rotate      uint32
	ColorSpace  uint32
	_           [4]uint32
}

// FbBitField mirrors struct fb_bitfield. Offset counts from the least
// significant bit of the pixel value.
type FbBitField struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

func (bf FbBitField) channel() Channel {
	return NewChannel(uint8(bf.Length), uint8(bf.Offset))
}

// pixelFormat builds the pixel format of the current video mode.
func (vi *FbVarScreenInfo) pixelFormat() (PixelFormat, error) {
	switch {
	case vi.Grayscale != 0:
		return PixelFormat{}, fmt.Errorf("%w: grayscale or FOURCC mode %d", ErrUnsupportedFormat, vi.Grayscale)
	case vi.Red.MsbRight != 0, vi.Green.MsbRight != 0, vi.Blue.MsbRight != 0:
		return PixelFormat{}, fmt.Errorf("%w: msb_right is set", ErrUnsupportedFormat)
	case vi.Red.Length > 8, vi.Green.Length > 8, vi.Blue.Length > 8:
		return PixelFormat{}, fmt.Errorf("%w: channels wider than 8 bits", ErrUnsupportedFormat)
	case vi.Red.Offset > 31, vi.Green.Offset > 31, vi.Blue.Offset > 31:
		return PixelFormat{}, fmt.Errorf("%w: channel offset beyond 32 bits", ErrUnsupportedFormat)
	}
	return NewPixelFormat(int(vi.BitsPerPixel), vi.Red.channel(), vi.Green.channel(), vi.Blue.channel())
}

// surfaceFromScreenInfo describes the visible part of mem, the whole mapped
// frame buffer memory, as a surface.
func surfaceFromScreenInfo(mem []byte, fi *FbFixScreenInfo, vi *FbVarScreenInfo) (*Surface, error) {
	format, err := vi.pixelFormat()
	if err != nil {
		return nil, err
	}
	pitch := int(fi.LineLength)
	start := int(vi.YOffset)*pitch + int(vi.XOffset)*format.BytesPerPixel
	if start > len(mem) {
		return nil, fmt.Errorf("%w: visible area starts at byte %d of %d", ErrInvalidGeometry, start, len(mem))
	}
	return NewSurface(mem[start:], int(vi.XRes), int(vi.YRes), pitch, format)
}
