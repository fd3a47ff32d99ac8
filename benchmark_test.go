package halftone

import "testing"

// benchFrame builds a 640x480 deterministic multi-tone frame, roughly the
// working size of a live camera feed.
func benchFrame() Frame {
	return rampFrame(640, 480)
}

func benchDither(b *testing.B, algo Algorithm, size int) {
	pal, _ := PaletteByName("gameboy")
	cfg := Config{Algorithm: algo, Palette: pal, BlockSize: size, Contrast: 1}
	src := benchFrame()
	work := src.Clone()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		copy(work.Pix, src.Pix)
		if err := Dither(&work, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOrdered_640x480(b *testing.B)         { benchDither(b, AlgorithmOrdered, 1) }
func BenchmarkOrdered_640x480_Block4(b *testing.B)  { benchDither(b, AlgorithmOrdered, 4) }
func BenchmarkFloydSteinberg_640x480(b *testing.B)  { benchDither(b, AlgorithmFloydSteinberg, 1) }
func BenchmarkAtkinson_640x480(b *testing.B)        { benchDither(b, AlgorithmAtkinson, 1) }
func BenchmarkAtkinson_640x480_Block4(b *testing.B) { benchDither(b, AlgorithmAtkinson, 4) }

func BenchmarkAdjust_640x480(b *testing.B) {
	src := benchFrame()
	work := src.Clone()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		copy(work.Pix, src.Pix)
		Adjust(&work, 0.1, 1.2)
	}
}

func BenchmarkPaletteNearest(b *testing.B) {
	pal, _ := PaletteByName("ega")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = pal.NearestIndex(RGB{uint8(i), uint8(i >> 8), uint8(i >> 16)})
	}
}
