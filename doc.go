// Package halftone is a real-time palette-dithering engine for [Ebitengine].
//
// Halftone reduces a continuous stream of raw RGBA frames to a small fixed
// color palette using ordered (Bayer), Floyd-Steinberg, or Atkinson
// dithering, optionally at a coarsened block resolution, fast enough to run
// once per display refresh.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	pal, _ := halftone.PaletteByName("gameboy")
//	pipeline, err := halftone.NewPipeline(source, halftone.Config{
//		Algorithm: halftone.AlgorithmAtkinson,
//		Palette:   pal,
//		BlockSize: 2,
//		Contrast:  1,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	halftone.Run(pipeline, halftone.RunConfig{
//		Title: "My Feed", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Pipeline.Update] and [Pipeline.Draw] directly:
//
//	type Game struct{ p *halftone.Pipeline }
//
//	func (g *Game) Update() error              { return g.p.Update() }
//	func (g *Game) Draw(s *ebiten.Image)       { g.p.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Frame sources
//
// A [FrameSource] delivers raw frames, one per tick at most. [TapeSource]
// plays back frames recorded with [TapeRecorder]; programs with live input
// (a camera bridge, a capture library) implement the one-method interface
// themselves.
//
// # Direct use
//
// The dispersers also work on standalone buffers without a pipeline:
//
//	frame := halftone.NewFrame(320, 240)
//	// ... fill frame.Pix ...
//	err := halftone.DiffusionDither(&frame, pal, 1, halftone.FloydSteinberg)
//
// # Key features
//
// Halftone includes a catalog of built-in palettes, brightness/contrast
// pre-adjustment with tweened transitions (via [gween]), PNG snapshot
// export, JSON-scripted configuration runs for automated visual testing,
// and compressed frame tapes for deterministic playback.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package halftone
