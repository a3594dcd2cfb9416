//go:build linux

package fbdraw

import (
	"os"

	"golang.org/x/sys/unix"
)

// frameBuffer is an open frame buffer device such as /dev/fb0.
type frameBuffer os.File

func openFrameBuffer(name string) (*frameBuffer, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}
	return (*frameBuffer)(f), nil
}

func (fb *frameBuffer) file() *os.File { return (*os.File)(fb) }

func (fb *frameBuffer) fixScreenInfo() (FbFixScreenInfo, error) {
	return ioctlGet[FbFixScreenInfo](fb.file(), kFBIOGET_FSCREENINFO)
}

func (fb *frameBuffer) varScreenInfo() (FbVarScreenInfo, error) {
	return ioctlGet[FbVarScreenInfo](fb.file(), kFBIOGET_VSCREENINFO)
}

// mmap maps the whole frame buffer memory, including the parts of the
// virtual resolution that are not visible.
func (fb *frameBuffer) mmap(fi *FbFixScreenInfo) ([]byte, error) {
	mem, err := unix.Mmap(int(fb.file().Fd()), 0, int(fi.SMemLen),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, os.NewSyscallError("mmap "+fb.file().Name(), err)
	}
	return mem, nil
}
