package halftone

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"
)

// Snapshot queues a labeled still-image capture of the next completed pass.
// The quantized frame is written as a PNG to SnapshotDir with a timestamped
// filename. Safe to call at any point in a tick; captures flush after the
// disperser finishes, so a snapshot never observes a partially-quantized
// buffer.
func (p *Pipeline) Snapshot(label string) {
	p.snapQueue = append(p.snapQueue, label)
}

// flushSnapshots writes every queued label from the working frame. Called at
// the end of a successful pass. Failures go to stderr; they never interrupt
// the frame loop.
func (p *Pipeline) flushSnapshots() {
	if len(p.snapQueue) == 0 {
		return
	}

	if err := os.MkdirAll(p.SnapshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[halftone] snapshot: mkdir %s: %v\n", p.SnapshotDir, err)
		p.snapQueue = p.snapQueue[:0]
		return
	}

	// The working buffer is straight-alpha with every pixel fully opaque, so
	// it maps onto NRGBA directly.
	img := &image.NRGBA{
		Pix:    p.work.Pix,
		Stride: p.work.Width * 4,
		Rect:   image.Rect(0, 0, p.work.Width, p.work.Height),
	}

	stamp := time.Now().Format("20060102_150405")

	for _, label := range p.snapQueue {
		safe := sanitizeLabel(label)
		path := fmt.Sprintf("%s/%s_%s.png", p.SnapshotDir, stamp, safe)
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[halftone] snapshot: %v\n", err)
		}
	}

	p.snapQueue = p.snapQueue[:0]
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
