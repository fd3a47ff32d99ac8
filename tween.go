package halftone

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AdjustTween animates a pipeline's brightness and contrast toward target
// values. Create one via TweenAdjust and call Update(dt) each tick; values
// land through SetConfig as whole-record swaps, so every pass still sees one
// immutable configuration.
//
// There is no global animation manager — callers drive Update themselves.
type AdjustTween struct {
	pipeline   *Pipeline
	brightness *gween.Tween
	contrast   *gween.Tween
	Done       bool
}

// TweenAdjust creates an AdjustTween from the pipeline's current adjustment
// values to the given targets over duration seconds.
func TweenAdjust(p *Pipeline, toBrightness, toContrast float64, duration float32, fn ease.TweenFunc) *AdjustTween {
	cfg := p.Config()
	return &AdjustTween{
		pipeline:   p,
		brightness: gween.New(float32(cfg.Brightness), float32(toBrightness), duration, fn),
		contrast:   gween.New(float32(cfg.Contrast), float32(toContrast), duration, fn),
	}
}

// Update advances both tweens by dt seconds and stages the interpolated
// values on the pipeline. Sets Done when both tweens finish.
func (t *AdjustTween) Update(dt float32) {
	if t.Done {
		return
	}

	b, bDone := t.brightness.Update(dt)
	c, cDone := t.contrast.Update(dt)

	cfg := t.pipeline.Config()
	cfg.Brightness = float64(b)
	cfg.Contrast = float64(c)
	// Endpoints come from valid configs and the adjustment knobs carry no
	// validation constraints, so the swap cannot fail.
	_ = t.pipeline.SetConfig(cfg)

	t.Done = bDone && cDone
}
