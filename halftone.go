package halftone

import (
	"fmt"
	"math"
)

// RGB is an 8-bit-per-channel color. Alpha is not part of the model: the
// engine forces every pixel it writes to fully opaque.
type RGB struct {
	R, G, B uint8
}

// Frame is a raw RGBA pixel buffer with explicit dimensions. Pix holds
// interleaved red, green, blue, alpha samples in row-major order, so
// len(Pix) == Width*Height*4.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
}

// NewFrame allocates a zeroed frame of the given dimensions.
func NewFrame(width, height int) Frame {
	return Frame{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	pix := make([]byte, len(f.Pix))
	copy(pix, f.Pix)
	return Frame{Pix: pix, Width: f.Width, Height: f.Height}
}

// validate checks the length invariant. Dimension mismatches are programmer
// errors on the frame source side and must not reach the dispersers.
func (f Frame) validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("halftone: invalid frame dimensions %dx%d", f.Width, f.Height)
	}
	// Guard the product before comparing against it: absurd dimensions must
	// fail here, not overflow into a length that happens to match.
	if f.Width > (math.MaxInt/4)/f.Height {
		return fmt.Errorf("halftone: frame dimensions %dx%d overflow the buffer length", f.Width, f.Height)
	}
	if len(f.Pix) != f.Width*f.Height*4 {
		return fmt.Errorf("halftone: frame buffer is %d bytes, want %d for %dx%d",
			len(f.Pix), f.Width*f.Height*4, f.Width, f.Height)
	}
	return nil
}

// rgbAt reads the color at (x, y). Callers guarantee bounds.
func (f Frame) rgbAt(x, y int) RGB {
	i := (y*f.Width + x) * 4
	return RGB{f.Pix[i], f.Pix[i+1], f.Pix[i+2]}
}

// setRGB writes the color at (x, y) with alpha forced to 255.
// Callers guarantee bounds.
func (f Frame) setRGB(x, y int, c RGB) {
	i := (y*f.Width + x) * 4
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
	f.Pix[i+3] = 255
}

// clampByte rounds v to the nearest integer and saturates to [0, 255],
// matching 8-bit storage semantics.
func clampByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}
