package viewpane

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Screenshot renders the full virtual buffer, not just the visible window,
// to an RGBA image using the fixed 7x13 basic font and the 256-color
// palette. The registry decodes each cell's color-pair slot.
func (p *Pad) Screenshot(registry *PairRegistry) *image.RGBA {
	face := basicfont.Face7x13
	cellWidth := 7
	cellHeight := face.Metrics().Height.Ceil()
	baseline := face.Metrics().Ascent.Ceil()

	img := image.NewRGBA(image.Rect(0, 0, p.cols*cellWidth, p.rows*cellHeight))

	// Fill background
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			img.Set(x, y, DefaultBackground)
		}
	}

	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			cell := p.cells[row][col]
			if cell.IsSpacer() {
				continue
			}

			pair := registry.PairFor(cell.Attr.Slot())
			fg := paletteColor(pair.Fg, DefaultForeground)
			bg := paletteColor(pair.Bg, DefaultBackground)

			if cell.Attr.Has(AttrReverse) {
				fg, bg = bg, fg
			}
			if cell.Attr.Has(AttrDim) {
				fg = color.RGBA{
					R: uint8(float64(fg.R) * 0.66),
					G: uint8(float64(fg.G) * 0.66),
					B: uint8(float64(fg.B) * 0.66),
					A: fg.A,
				}
			}

			x := col * cellWidth
			y := row * cellHeight

			w := cellWidth
			if isWideRune(cell.Char) {
				w = cellWidth * 2
			}
			for py := 0; py < cellHeight; py++ {
				for px := 0; px < w; px++ {
					img.Set(x+px, y+py, bg)
				}
			}

			if cell.Char == ' ' || cell.Attr.Has(AttrHidden) {
				continue
			}

			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, y+baseline),
			}
			d.DrawString(string(cell.Char))

			if cell.Attr.Has(AttrUnderline) {
				uy := y + baseline + 1
				for px := 0; px < w; px++ {
					img.Set(x+px, uy, fg)
				}
			}
		}
	}

	return img
}
