//go:build linux

package fbdraw

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Display is an acquired frame buffer device. Draw on it through the
// embedded Canvas and call Release when done.
type Display struct {
	*Canvas

	fb      *frameBuffer
	mem     []byte
	tty     terminal
	ttyMode ttyMode
}

// terminal is the part of a tty that Display switches modes on.
type terminal interface {
	mode() (ttyMode, error)
	setMode(ttyMode) error
	Close() error
}

// Acquire opens the frame buffer device, maps its memory and, unless
// WithoutGraphicsMode is given, switches the terminal to graphics mode.
func Acquire(opts ...Option) (_ *Display, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb, err := openFrameBuffer(o.device)
	if err != nil {
		return nil, err
	}
	d := &Display{fb: fb}
	defer func() {
		if err != nil {
			_ = d.release()
		}
	}()

	fi, err := fb.fixScreenInfo()
	if err != nil {
		return nil, err
	}
	vi, err := fb.varScreenInfo()
	if err != nil {
		return nil, err
	}

	d.mem, err = fb.mmap(&fi)
	if err != nil {
		return nil, err
	}
	surf, err := surfaceFromScreenInfo(d.mem, &fi, &vi)
	if err != nil {
		return nil, err
	}
	d.Canvas = New(surf)

	if o.graphicsMode {
		t, terr := openTTY(o.tty)
		if terr != nil {
			return nil, terr
		}
		if err = d.enterGraphicsMode(t); err != nil {
			return nil, err
		}
	}

	Logger().Debug("fbdraw: acquired frame buffer",
		"device", o.device,
		"width", surf.Width, "height", surf.Height,
		"pitch", surf.Pitch, "bpp", surf.Format.BytesPerPixel*8,
		"red", surf.Format.R, "green", surf.Format.G, "blue", surf.Format.B)
	return d, nil
}

// enterGraphicsMode takes ownership of t. Release only restores the mode
// after it was read successfully.
func (d *Display) enterGraphicsMode(t terminal) error {
	m, err := t.mode()
	if err != nil {
		return errors.Join(err, t.Close())
	}
	d.tty, d.ttyMode = t, m
	return t.setMode(kKD_GRAPHICS)
}

// Release restores the terminal mode found by Acquire, unmaps the frame
// buffer memory and closes the devices. The display must not be drawn on
// afterwards.
func (d *Display) Release() error {
	err := d.release()
	if err != nil {
		Logger().Warn("fbdraw: release failed", "err", err)
	}
	return err
}

func (d *Display) release() error {
	var errs []error
	if d.tty != nil {
		errs = append(errs, d.tty.setMode(d.ttyMode), d.tty.Close())
		d.tty = nil
	}
	if d.mem != nil {
		errs = append(errs, unix.Munmap(d.mem))
		d.mem = nil
	}
	if d.fb != nil {
		errs = append(errs, d.fb.file().Close())
		d.fb = nil
	}
	d.Canvas = nil
	return errors.Join(errs...)
}
