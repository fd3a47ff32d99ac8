package halftone

import "fmt"

// Algorithm selects which disperser a pipeline runs.
type Algorithm uint8

const (
	AlgorithmOrdered        Algorithm = iota // Bayer 4x4 ordered dithering
	AlgorithmFloydSteinberg                  // Floyd-Steinberg error diffusion
	AlgorithmAtkinson                        // Atkinson error diffusion

	algorithmCount // sentinel for validation
)

var algorithmNames = [algorithmCount]string{
	"ordered", "floyd-steinberg", "atkinson",
}

// String returns the algorithm's selector name.
func (a Algorithm) String() string {
	if a < algorithmCount {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	return a < algorithmCount
}

// ParseAlgorithm maps a selector name to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("halftone: unknown algorithm %q", name)
}

// Config is one whole-record dithering configuration. The pipeline reads it
// once at the start of a frame and treats it as immutable for that pass.
type Config struct {
	Algorithm Algorithm
	Palette   Palette
	BlockSize int

	// Pre-adjustment knobs applied to the raw buffer before quantization.
	// Brightness is an offset in [-1, 1]; Contrast is a factor, 1 = neutral.
	Brightness float64
	Contrast   float64
}

// DefaultConfig returns per-pixel ordered dithering against the mono palette
// with neutral adjustments.
func DefaultConfig() Config {
	pal, _ := PaletteByName("mono")
	return Config{
		Algorithm: AlgorithmOrdered,
		Palette:   pal,
		BlockSize: 1,
		Contrast:  1,
	}
}

// Validate fails fast on configurations the dispersers cannot run: an empty
// palette, a non-positive block size, or an unknown algorithm. Nothing
// defaults silently mid-stream.
func (c Config) Validate() error {
	if !c.Algorithm.Valid() {
		return fmt.Errorf("halftone: unknown algorithm %v", c.Algorithm)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("halftone: empty palette")
	}
	if c.BlockSize < 1 {
		return fmt.Errorf("halftone: block size %d, want >= 1", c.BlockSize)
	}
	return nil
}

// Dither runs the configured disperser over f in place. The output contains
// only palette colors, fully opaque. The frame and configuration are checked
// up front; a validation failure leaves f untouched.
func Dither(f *Frame, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}
	switch cfg.Algorithm {
	case AlgorithmOrdered:
		OrderedDither(f, cfg.Palette, cfg.BlockSize)
	case AlgorithmFloydSteinberg:
		return DiffusionDither(f, cfg.Palette, cfg.BlockSize, FloydSteinberg)
	case AlgorithmAtkinson:
		return DiffusionDither(f, cfg.Palette, cfg.BlockSize, Atkinson)
	}
	return nil
}
