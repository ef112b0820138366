package core

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is the 2D drawing target handed to draw hooks.
// Hosts back it with an *image.RGBA of the logical viewport size.
type Surface = draw.Image

// NewCanvas allocates a surface of the given logical size.
func NewCanvas(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// Clear fills the whole surface with a single color.
func Clear(dst Surface, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect paints a solid rectangle. Parts outside the surface are clipped.
func FillRect(dst Surface, r Rect, c color.Color) {
	if r.Empty() {
		return
	}
	rect := image.Rect(r.X, r.Y, r.Right(), r.Bottom())
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Over)
}

// Blit composites src onto dst with its top-left corner at (x, y).
func Blit(dst Surface, src image.Image, x, y int) {
	if src == nil {
		return
	}
	b := src.Bounds()
	rect := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(dst, rect, src, b.Min, draw.Over)
}
