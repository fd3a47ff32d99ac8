package halftone

import (
	"fmt"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is an ordered, non-empty list of colors. Order matters only as a
// tie-break in nearest-color search: the first entry at minimal distance wins.
type Palette []RGB

// Nearest returns the palette color closest to c by Euclidean distance in RGB
// space. Ties resolve to the earliest-listed entry. The palette must be
// non-empty; Config.Validate guarantees this before any disperser runs.
func (p Palette) Nearest(c RGB) RGB {
	return p[p.NearestIndex(c)]
}

// NearestIndex returns the index of the nearest palette entry. Squared
// distance preserves the ordering of the Euclidean metric, so no sqrt.
func (p Palette) NearestIndex(c RGB) int {
	best := 0
	bestDist := 1 << 30
	for i, pc := range p {
		dr := int(c.R) - int(pc.R)
		dg := int(c.G) - int(pc.G)
		db := int(c.B) - int(pc.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// Contains reports whether c exactly equals some palette entry.
func (p Palette) Contains(c RGB) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// ParseHexPalette builds a palette from "#rrggbb" (or "#rgb") strings.
func ParseHexPalette(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("halftone: empty palette")
	}
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("halftone: palette entry %d: %w", i, err)
		}
		r, g, b := c.RGB255()
		p[i] = RGB{r, g, b}
	}
	return p, nil
}

// mustHexPalette is ParseHexPalette for the built-in catalog, where a bad
// literal is a programmer error.
func mustHexPalette(hexes ...string) Palette {
	p, err := ParseHexPalette(hexes)
	if err != nil {
		panic("halftone: bad builtin palette: " + err.Error())
	}
	return p
}

// builtinPalettes is the static catalog of named palettes: monochrome,
// multi-tone ramps, and a few retro-hardware sets, 2-8 colors each.
var builtinPalettes = map[string]Palette{
	"mono":    mustHexPalette("#000000", "#ffffff"),
	"gray4":   mustHexPalette("#000000", "#555555", "#aaaaaa", "#ffffff"),
	"gameboy": mustHexPalette("#0f380f", "#306230", "#8bac0f", "#9bbc0f"),
	"cga":     mustHexPalette("#000000", "#55ffff", "#ff55ff", "#ffffff"),
	"sepia":   mustHexPalette("#2b1d0e", "#71522b", "#b8915c", "#f0e0c0"),
	"zx": mustHexPalette(
		"#000000", "#0000d8", "#d80000", "#d800d8",
		"#00d800", "#00d8d8", "#d8d800", "#d8d8d8",
	),
	"ega": mustHexPalette(
		"#000000", "#0000aa", "#00aa00", "#00aaaa",
		"#aa0000", "#aa00aa", "#aa5500", "#aaaaaa",
	),
}

// PaletteByName looks up a built-in palette. The returned palette is a copy;
// callers may keep or mutate it freely.
func PaletteByName(name string) (Palette, bool) {
	p, ok := builtinPalettes[name]
	if !ok {
		return nil, false
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out, true
}

// PaletteNames returns the catalog's palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(builtinPalettes))
	for name := range builtinPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
