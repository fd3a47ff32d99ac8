package halftone

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoFrame is returned by a FrameSource when no new frame is available this
// tick. The pipeline skips the pass and keeps the last rendered output.
var ErrNoFrame = errors.New("halftone: no new frame")

// FrameSource delivers raw frames to a pipeline, one per refresh tick at
// most. The returned frame is only read during the tick it was delivered;
// sources may reuse their backing buffer between calls.
//
// Return ErrNoFrame when nothing new is available. Any other error is a
// resource error: the pipeline records it, keeps the last successful frame
// visible, and keeps ticking.
type FrameSource interface {
	NextFrame() (Frame, error)
}

// Pipeline bridges a FrameSource to the disperser selected by the current
// configuration, one pass per tick. It owns a working pixel buffer
// exclusively for the duration of each pass and presents the quantized
// result from Draw.
//
// The model is single-threaded cooperative, matching Ebitengine's game loop:
// call Update once per tick and Draw once per frame, or hand the pipeline to
// Run. Configuration changes are staged and take effect at the start of the
// next tick, as whole-record swaps; a pass never observes a torn config.
type Pipeline struct {
	// SnapshotDir is where Snapshot writes PNG files. Defaults to "snapshots".
	SnapshotDir string

	source FrameSource
	cfg    Config
	staged *Config

	work  Frame
	dirty bool

	// gen identifies the current chain of per-frame work. Staging a config,
	// or stopping, bumps it so a chain scheduled before the change is
	// abandoned before it writes to the working buffer.
	gen uint64

	stopped bool
	lastErr error

	out    *ebiten.Image
	drawOp ebiten.DrawImageOptions

	runner    *ScriptRunner
	snapQueue []string
}

// NewPipeline creates a pipeline reading from source. The configuration is
// validated up front.
func NewPipeline(source FrameSource, cfg Config) (*Pipeline, error) {
	if source == nil {
		return nil, fmt.Errorf("halftone: nil frame source")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		SnapshotDir: "snapshots",
		source:      source,
		cfg:         cfg,
	}, nil
}

// Config returns the configuration in effect for the current tick.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// SetConfig stages a new configuration. It takes effect at the start of the
// next tick and supersedes any frame chain scheduled before the change.
// Invalid configurations are rejected and the current one stays in effect.
func (p *Pipeline) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.staged = &cfg
	p.gen++
	return nil
}

// Stop halts frame processing and cancels any not-yet-started chain. The last
// rendered frame stays visible in Draw.
func (p *Pipeline) Stop() {
	p.stopped = true
	p.gen++
}

// Err returns the last resource error reported by the frame source, or nil.
func (p *Pipeline) Err() error {
	return p.lastErr
}

// Frame returns the working frame holding the most recent quantized output.
// The buffer is owned by the pipeline; treat it as read-only between ticks.
func (p *Pipeline) Frame() Frame {
	return p.work
}

// Update runs one tick: step any attached script, apply a staged config, pull
// the next raw frame, pre-adjust it, and run the selected disperser. At most
// one chain is active at a time; a chain superseded while acquiring its frame
// leaves the working buffer untouched.
func (p *Pipeline) Update() error {
	if p.stopped {
		return nil
	}
	if p.runner != nil {
		p.runner.step(p)
	}
	if p.staged != nil {
		p.cfg = *p.staged
		p.staged = nil
	}

	chain := p.gen
	src, err := p.source.NextFrame()
	if err != nil {
		if !errors.Is(err, ErrNoFrame) {
			p.lastErr = err
		}
		return nil
	}
	if err := src.validate(); err != nil {
		p.lastErr = err
		return nil
	}
	if chain != p.gen || p.stopped {
		return nil
	}

	p.copyFrame(src)
	Adjust(&p.work, p.cfg.Brightness, p.cfg.Contrast)
	if err := Dither(&p.work, p.cfg); err != nil {
		// Config was validated at swap time; a failure here means the frame
		// itself is malformed.
		p.lastErr = err
		return nil
	}
	p.lastErr = nil
	p.dirty = true
	p.flushSnapshots()
	return nil
}

// copyFrame copies src into the working buffer, resizing it if the source
// dimensions changed. The working buffer is reused across ticks.
func (p *Pipeline) copyFrame(src Frame) {
	n := src.Width * src.Height * 4
	if cap(p.work.Pix) < n {
		p.work.Pix = make([]byte, n)
	}
	p.work.Pix = p.work.Pix[:n]
	copy(p.work.Pix, src.Pix)
	p.work.Width = src.Width
	p.work.Height = src.Height
}

// Draw presents the most recent quantized frame, scaled to fit the screen
// with aspect preserved, using nearest-neighbor filtering so palette pixels
// stay crisp. Before the first completed pass it draws nothing.
func (p *Pipeline) Draw(screen *ebiten.Image) {
	if p.work.Width == 0 {
		return
	}
	if p.out == nil || p.out.Bounds().Dx() != p.work.Width || p.out.Bounds().Dy() != p.work.Height {
		if p.out != nil {
			p.out.Deallocate()
		}
		p.out = ebiten.NewImage(p.work.Width, p.work.Height)
		p.dirty = true
	}
	if p.dirty {
		p.out.WritePixels(p.work.Pix)
		p.dirty = false
	}

	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	scale := min(sw/float64(p.work.Width), sh/float64(p.work.Height))

	op := &p.drawOp
	op.GeoM.Reset()
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(sw-float64(p.work.Width)*scale)/2,
		(sh-float64(p.work.Height)*scale)/2,
	)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(p.out, op)
}
