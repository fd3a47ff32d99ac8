package halftone

// blockGrid partitions a frame into non-overlapping square cells of edge
// length size, anchored at the top-left. Trailing partial cells at the right
// and bottom edges are included, clipped to the frame bounds. Size 1 degrades
// to per-pixel processing.
type blockGrid struct {
	width  int
	height int
	size   int
}

func newBlockGrid(width, height, size int) blockGrid {
	return blockGrid{width: width, height: height, size: size}
}

// eachAnchor visits every block anchor in row-major order: all anchors of a
// row, left to right, before any anchor of the next row. Error diffusion
// depends on this order; ordered dithering does not.
func (g blockGrid) eachAnchor(fn func(x, y int)) {
	for y := 0; y < g.height; y += g.size {
		for x := 0; x < g.width; x += g.size {
			fn(x, y)
		}
	}
}

// sample reads the block's representative pixel, its top-left anchor.
func (g blockGrid) sample(f *Frame, x, y int) RGB {
	return f.rgbAt(x, y)
}

// fill paints every pixel of the block anchored at (x, y) with c, clipped to
// the frame bounds, with alpha forced to 255.
func (g blockGrid) fill(f *Frame, x, y int, c RGB) {
	maxY := min(y+g.size, g.height)
	maxX := min(x+g.size, g.width)
	for py := y; py < maxY; py++ {
		for px := x; px < maxX; px++ {
			f.setRGB(px, py, c)
		}
	}
}
