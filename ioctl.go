//go:build linux

package fbdraw

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl makes an ioctl system call on dev.
func ioctl(dev *os.File, cmd, data uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, dev.Fd(), cmd, data)
	if errno != 0 {
		return os.NewSyscallError(fmt.Sprintf("ioctl %s (cmd=0x%x)", dev.Name(), cmd), errno)
	}
	return nil
}

// ioctlGet calls an ioctl that fills in a value of type V.
func ioctlGet[V any](dev *os.File, cmd uintptr) (V, error) {
	var v V
	err := ioctl(dev, cmd, uintptr(unsafe.Pointer(&v)))
	return v, err
}
