package viewpane

import "image/color"

// Palette is the standard xterm 256-color palette: 16 named colors (0-15),
// 216 color cube (16-231), 24 grayscale (232-255). Color codes in Pair and
// the Instruction stream index into it.
var Palette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 16-231 and 232-255 are generated in init below.
}

func init() {
	// Generate 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				Palette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		Palette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the color assumed for DefaultColor foregrounds when
// rendering off-terminal (screenshots).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the color assumed for DefaultColor backgrounds when
// rendering off-terminal (screenshots).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// nearestPaletteIndex quantizes an RGB value to the closest palette entry
// by squared distance. Truecolor SGR payloads pass through here.
func nearestPaletteIndex(r, g, b uint8) int {
	best := 0
	bestDist := int64(1) << 62
	for i, c := range Palette {
		dr := int64(c.R) - int64(r)
		dg := int64(c.G) - int64(g)
		db := int64(c.B) - int64(b)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// paletteColor resolves a color code to a concrete RGBA, substituting the
// given default for DefaultColor.
func paletteColor(code int, def color.RGBA) color.RGBA {
	if code < 0 || code >= len(Palette) {
		return def
	}
	return Palette[code]
}
