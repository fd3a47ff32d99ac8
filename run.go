package halftone

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Run opens a window and drives the pipeline with Ebitengine's game loop:
// one Update per tick, one Draw per frame. It blocks until the window closes
// and returns any error from the loop.
//
// For full control, implement ebiten.Game yourself and call Pipeline.Update
// and Pipeline.Draw directly.
func Run(p *Pipeline, cfg RunConfig) error {
	width := cfg.Width
	height := cfg.Height
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(width, height)
	return ebiten.RunGame(&game{pipeline: p, showFPS: cfg.ShowFPS})
}

// game adapts a Pipeline to ebiten.Game.
type game struct {
	pipeline *Pipeline
	showFPS  bool
	fps      fpsOverlay
}

func (g *game) Update() error {
	return g.pipeline.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.pipeline.Draw(screen)
	if g.showFPS {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
