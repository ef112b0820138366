package sprite

import (
	"image"
	"image/color"
	"math"
)

// RoundedRect draws a filled w×h rectangle with rounded corners.
func RoundedRect(w, h, r int, c color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill := color.NRGBA{c.R, c.G, c.B, c.A}
	r = min(r, w/2, h/2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if outsideCorner(x, y, w, h, r) {
				continue
			}
			img.SetNRGBA(x, y, fill)
		}
	}
	return img
}

func outsideCorner(x, y, w, h, r int) bool {
	cx, cy := -1, -1
	switch {
	case x < r && y < r:
		cx, cy = r, r
	case x >= w-r && y < r:
		cx, cy = w-r-1, r
	case x < r && y >= h-r:
		cx, cy = r, h-r-1
	case x >= w-r && y >= h-r:
		cx, cy = w-r-1, h-r-1
	default:
		return false
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy > r*r
}

// Triangle draws a filled triangle pointing right, inscribed in w×h.
func Triangle(w, h int, c color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill := color.NRGBA{c.R, c.G, c.B, c.A}
	half := float64(h) / 2
	for y := 0; y < h; y++ {
		// distance from the vertical centre shrinks the row towards the tip
		d := math.Abs(float64(y) + 0.5 - half)
		span := int(float64(w) * (1 - d/half))
		for x := 0; x < span; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
	return img
}
