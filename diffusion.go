package halftone

import "fmt"

// KernelEntry is one weighted neighbor offset of a diffusion kernel.
// Offsets are in block units; the disperser scales them by the block size.
type KernelEntry struct {
	DX, DY int
	Weight float64
}

// Kernel is an error-diffusion kernel: the neighbors that receive a share of
// each block's quantization error. Every offset must lie strictly in the
// not-yet-visited region of a row-major traversal (DY > 0, or DY == 0 with
// DX > 0). The weights need not sum to 1: Atkinson deliberately sums to 0.75
// and discards the rest to suppress overshoot.
type Kernel []KernelEntry

// FloydSteinberg distributes the full quantization error over four
// neighbors, weights /16.
var FloydSteinberg = Kernel{
	{DX: 1, DY: 0, Weight: 7.0 / 16},
	{DX: -1, DY: 1, Weight: 3.0 / 16},
	{DX: 0, DY: 1, Weight: 5.0 / 16},
	{DX: 1, DY: 1, Weight: 1.0 / 16},
}

// Atkinson distributes six eighths of the quantization error over six
// neighbors, discarding the remaining quarter.
var Atkinson = Kernel{
	{DX: 1, DY: 0, Weight: 1.0 / 8},
	{DX: 2, DY: 0, Weight: 1.0 / 8},
	{DX: -1, DY: 1, Weight: 1.0 / 8},
	{DX: 0, DY: 1, Weight: 1.0 / 8},
	{DX: 1, DY: 1, Weight: 1.0 / 8},
	{DX: 0, DY: 2, Weight: 1.0 / 8},
}

// Validate reports whether every kernel offset is forward-only. A backward
// offset would diffuse error into an already-quantized pixel, where it is
// silently lost; DiffusionDither rejects such kernels before touching the
// frame.
func (k Kernel) Validate() error {
	if len(k) == 0 {
		return fmt.Errorf("halftone: empty diffusion kernel")
	}
	for i, e := range k {
		if e.DY < 0 || (e.DY == 0 && e.DX <= 0) {
			return fmt.Errorf("halftone: kernel entry %d offset (%d,%d) is not forward-only", i, e.DX, e.DY)
		}
	}
	return nil
}

// DiffusionDither quantizes f against pal at the given block size, spreading
// each block's quantization error to upcoming neighbors per the kernel.
//
// Blocks are processed in strict row-major order. Because kernel offsets are
// forward-only and scale by whole blocks, every neighbor a block diffuses
// into has not yet been quantized: the error lands in the raw channel values
// and is incorporated when that neighbor's own resolution step samples them.
// A pixel may accumulate error from several earlier blocks. Channel updates
// saturate to [0, 255] at the 8-bit store; out-of-bounds neighbors are
// skipped with no redistribution.
//
// The kernel is validated first; an invalid kernel returns an error with the
// frame untouched.
func DiffusionDither(f *Frame, pal Palette, size int, k Kernel) error {
	if err := k.Validate(); err != nil {
		return err
	}
	g := newBlockGrid(f.Width, f.Height, size)
	g.eachAnchor(func(x, y int) {
		sampled := g.sample(f, x, y)
		resolved := pal.Nearest(sampled)

		errR := float64(sampled.R) - float64(resolved.R)
		errG := float64(sampled.G) - float64(resolved.G)
		errB := float64(sampled.B) - float64(resolved.B)

		for _, e := range k {
			nx := x + e.DX*size
			ny := y + e.DY*size
			if nx < 0 || nx >= f.Width || ny < 0 || ny >= f.Height {
				continue
			}
			addError(f, nx, ny, errR*e.Weight, errG*e.Weight, errB*e.Weight)
		}

		g.fill(f, x, y, resolved)
	})
	return nil
}

// addError adds a signed per-channel delta to the pixel at (x, y), saturating
// to 8-bit range. Alpha is untouched; the block fill forces it later.
func addError(f *Frame, x, y int, dr, dg, db float64) {
	i := (y*f.Width + x) * 4
	f.Pix[i] = clampByte(float64(f.Pix[i]) + dr)
	f.Pix[i+1] = clampByte(float64(f.Pix[i+1]) + dg)
	f.Pix[i+2] = clampByte(float64(f.Pix[i+2]) + db)
}
