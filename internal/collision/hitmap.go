// Package collision converts sprites into solid/empty bitmaps and performs
// pixel-exact collision tests between them.
package collision

import (
	"image"

	"github.com/vovakirdan/skyscroll/internal/core"
)

// AlphaThreshold is the 8-bit opacity a pixel must exceed to count as solid.
const AlphaThreshold = 128

// HitMap is an immutable row-major bitmap: 1 means solid, 0 means empty.
// Build it once per distinct sprite and reuse it for every test.
type HitMap struct {
	Width  int
	Height int
	Data   []byte
}

// Rasterize samples the sprite's alpha channel.
func Rasterize(img image.Image) *HitMap {
	b := img.Bounds()
	hm := &HitMap{
		Width:  b.Dx(),
		Height: b.Dy(),
		Data:   make([]byte, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := (y - b.Min.Y) * hm.Width
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a>>8 > AlphaThreshold {
				hm.Data[row+x-b.Min.X] = 1
			}
		}
	}
	return hm
}

// Solid reports whether the local pixel (x, y) is solid.
// Coordinates outside the map are empty.
func (h *HitMap) Solid(x, y int) bool {
	if h == nil || x < 0 || y < 0 || x >= h.Width || y >= h.Height {
		return false
	}
	return h.Data[y*h.Width+x] == 1
}

// SolidCount returns the number of solid pixels.
func (h *HitMap) SolidCount() int {
	if h == nil {
		return 0
	}
	n := 0
	for _, v := range h.Data {
		if v == 1 {
			n++
		}
	}
	return n
}

// Body places a hitmap in world coordinates.
type Body struct {
	X, Y int
	Map  *HitMap
}

// Bounds returns the body's axis-aligned bounding box.
func (b Body) Bounds() core.Rect {
	if b.Map == nil {
		return core.Rect{}
	}
	return core.NewRect(b.X, b.Y, b.Map.Width, b.Map.Height)
}

// Detect reports whether two bodies share at least one solid pixel.
// Bounding boxes are compared first; the pixel scan only covers their
// overlap, so cost is proportional to the overlap area.
func Detect(a, b Body) bool {
	if a.Map == nil || b.Map == nil {
		return false
	}
	overlap := a.Bounds().Intersection(b.Bounds())
	if overlap.Empty() {
		return false
	}

	for y := overlap.Y; y < overlap.Bottom(); y++ {
		rowA := (y - a.Y) * a.Map.Width
		rowB := (y - b.Y) * b.Map.Width
		for x := overlap.X; x < overlap.Right(); x++ {
			if a.Map.Data[rowA+x-a.X] == 1 && b.Map.Data[rowB+x-b.X] == 1 {
				return true
			}
		}
	}
	return false
}
