//go:build linux

package fbdraw

import "os"

// tty is an open virtual terminal. Switching it to graphics mode stops the
// kernel console from drawing text over the frame buffer.
type tty os.File

func openTTY(name string) (*tty, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}
	return (*tty)(f), nil
}

func (t *tty) file() *os.File { return (*os.File)(t) }

func (t *tty) Close() error { return t.file().Close() }

func (t *tty) setMode(mode ttyMode) error {
	return ioctl(t.file(), kKDSETMODE, uintptr(mode))
}

func (t *tty) mode() (ttyMode, error) {
	return ioctlGet[ttyMode](t.file(), kKDGETMODE)
}

// ttyMode is KD_TEXT or KD_GRAPHICS. The kernel reads and writes it as a C int.
type ttyMode int32

// <linux/kd.h> ioctls, 0x4B is 'K'.
const (
	kKDSETMODE = 0x4B3A
	kKDGETMODE = 0x4B3B

	kKD_TEXT     ttyMode = 0x00
	kKD_GRAPHICS ttyMode = 0x01
)
