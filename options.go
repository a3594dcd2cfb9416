package fbdraw

import "os"

// Default device paths used by Acquire.
const (
	DefaultDevice = "/dev/fb0"
	DefaultTTY    = "/dev/tty"
)

// Option configures Acquire.
type Option func(*options)

type options struct {
	device       string
	tty          string
	graphicsMode bool
}

// defaultOptions honors the FRAMEBUFFER environment variable, like fbset and
// most other frame buffer programs do.
func defaultOptions() options {
	device := os.Getenv("FRAMEBUFFER")
	if device == "" {
		device = DefaultDevice
	}
	return options{
		device:       device,
		tty:          DefaultTTY,
		graphicsMode: true,
	}
}

// WithDevice sets the frame buffer device to open.
func WithDevice(name string) Option {
	return func(o *options) {
		o.device = name
	}
}

// WithTTY sets the terminal that is put into graphics mode.
func WithTTY(name string) Option {
	return func(o *options) {
		o.tty = name
	}
}

// WithoutGraphicsMode leaves the terminal alone. The kernel console may then
// draw its text and cursor over the frame buffer.
func WithoutGraphicsMode() Option {
	return func(o *options) {
		o.graphicsMode = false
	}
}
