package halftone

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshInterval is how often the overlay re-renders its text. Updating
// every frame makes the readout flicker illegibly.
const fpsRefreshInterval = 500 * time.Millisecond

// fpsOverlay renders the FPS/TPS readout in the top-left corner of the
// screen. Each game carries its own overlay; the zero value is ready to use
// and renders on its first draw.
type fpsOverlay struct {
	img     *ebiten.Image
	refresh time.Time
}

// due reports whether the readout text should be re-rendered at now, and if
// so arms the next deadline. The zero value's deadline is the zero time, so
// the first call always fires.
func (o *fpsOverlay) due(now time.Time) bool {
	if now.Before(o.refresh) {
		return false
	}
	o.refresh = now.Add(fpsRefreshInterval)
	return true
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
	}
	if o.due(time.Now()) {
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(o.img, nil)
}
