package halftone

// Bayer4 is the 4x4 ordered-dithering threshold matrix: 16 distinct ranks in
// [0, 15], read cyclically by block coordinate modulo 4. Rank r corresponds
// to the threshold r/16 of full scale.
var Bayer4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// OrderedDither quantizes f against pal using Bayer4 at the given block size.
//
// For each block anchor, the threshold rank comes from the block's row and
// column (not raw pixel coordinates) modulo 4, so the pattern tiles seamlessly
// at every block size. Each channel independently snaps to 255 when it
// exceeds the threshold, and the resulting corner of the RGB cube resolves
// through the palette. Blocks carry no shared state, so processing order is
// irrelevant and re-running at size 1 on already-quantized output is a no-op.
func OrderedDither(f *Frame, pal Palette, size int) {
	g := newBlockGrid(f.Width, f.Height, size)
	g.eachAnchor(func(x, y int) {
		rank := Bayer4[(y/size)%4][(x/size)%4]
		c := g.sample(f, x, y)
		g.fill(f, x, y, pal.Nearest(thresholdRGB(c, rank)))
	})
}

// thresholdRGB snaps each channel to 0 or 255 against the Bayer rank. A
// channel v passes when v/256 > rank/16, which in integer form is
// v > rank*16. Mid-gray 128 therefore lands exactly on rank 8's threshold
// and does not pass it.
func thresholdRGB(c RGB, rank uint8) RGB {
	t := int(rank) * 16
	var out RGB
	if int(c.R) > t {
		out.R = 255
	}
	if int(c.G) > t {
		out.G = 255
	}
	if int(c.B) > t {
		out.B = 255
	}
	return out
}
