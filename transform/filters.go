package transform

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Note pads src to the width ratio of full column to receptor. Image height
// is kept, image is shifted 2 pixels right of center.
func Note(src image.Image, g Geometry) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	factor := 1.0
	if g.Width > 0 {
		factor += float64(g.Spacing) / float64(g.Width)
	}
	fullW := max(round(float64(w)*factor), 1)

	dst := imaging.New(fullW, max(h, 1), color.NRGBA{})
	return imaging.Paste(dst, src, image.Pt((fullW-w)/2+2, 0))
}

// Receptor scales src to receptor width (magic converts layout units to
// pixels) and pads it with half of spacing on both sides and hit position
// above and below.
func Receptor(src image.Image, g Geometry, magic float64, resample imaging.ResampleFilter) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	horzPad := float64(g.Spacing) * magic
	vertPad := 2 * float64(g.HitPos) * magic

	partW := float64(g.Width) * magic
	partH := 0.0
	if w > 0 {
		partH = partW * float64(h) / float64(w)
	}
	part := imaging.Resize(src, max(round(partW), 1), max(round(partH), 1), resample)

	dst := imaging.New(max(round(partW+horzPad), 1), max(round(partH+vertPad), 1), color.NRGBA{})
	return imaging.Paste(dst, part, image.Pt(round(horzPad/2), round(vertPad/2)))
}

// round rounds half to even.
func round(v float64) int {
	return int(math.RoundToEven(v))
}
