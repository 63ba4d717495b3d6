package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelPadding is the gap in pixels between the caption and the image edge
const labelPadding = 4

// Label draws a one-line caption in the bottom-left corner of dst over a dark
// translucent strip
func Label(dst draw.Image, text string, col color.Color) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := dst.Bounds()
	metrics := face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()

	strip := image.Rect(bounds.Min.X, bounds.Max.Y-lineHeight-2*labelPadding, bounds.Max.X, bounds.Max.Y)
	draw.Draw(dst, strip, image.NewUniform(color.RGBA{A: 160}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(bounds.Min.X + labelPadding),
			Y: fixed.I(bounds.Max.Y-labelPadding) - metrics.Descent,
		},
	}
	d.DrawString(text)
}

// MeasureLabel returns the caption width in pixels
func MeasureLabel(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}
