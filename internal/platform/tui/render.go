package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlock paints the upper pixel with the foreground and the lower pixel
// with the background, giving two pixel rows per terminal row.
const halfBlock = "▀"

// Renderer downsamples a canvas to a grid of half-block cells.
type Renderer struct {
	cols, rows int
	styles     map[cellColors]lipgloss.Style
}

type cellColors struct {
	top, bottom uint32
}

// NewRenderer creates a renderer for a cols x rows cell grid.
func NewRenderer(cols, rows int) *Renderer {
	r := &Renderer{styles: make(map[cellColors]lipgloss.Style)}
	r.Resize(cols, rows)
	return r
}

// Resize changes the cell grid.
func (r *Renderer) Resize(cols, rows int) {
	r.cols = max(1, cols)
	r.rows = max(1, rows)
}

// CellToPixel maps the centre of a terminal cell to canvas coordinates.
func (r *Renderer) CellToPixel(bounds image.Rectangle, cx, cy int) image.Point {
	w, h := bounds.Dx(), bounds.Dy()
	return image.Point{
		X: bounds.Min.X + (2*cx+1)*w/(2*r.cols),
		Y: bounds.Min.Y + (2*cy+1)*h/(2*r.rows),
	}
}

// Render converts the canvas to styled rows. Adjacent cells with the same
// colours share one style run to minimize ANSI escape sequences.
func (r *Renderer) Render(img *image.RGBA) string {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixelRows := r.rows * 2

	var sb strings.Builder
	sb.Grow(r.cols * r.rows * 4)
	for cy := range r.rows {
		if cy > 0 {
			sb.WriteByte('\n')
		}
		topY := b.Min.Y + (2*cy)*h/pixelRows
		bottomY := b.Min.Y + (2*cy+1)*h/pixelRows

		cx := 0
		for cx < r.cols {
			start := r.sample(img, cx, topY, bottomY, w)
			n := 1
			for cx+n < r.cols && r.sample(img, cx+n, topY, bottomY, w) == start {
				n++
			}
			sb.WriteString(r.style(start).Render(strings.Repeat(halfBlock, n)))
			cx += n
		}
	}
	return sb.String()
}

func (r *Renderer) sample(img *image.RGBA, cx, topY, bottomY, w int) cellColors {
	x := img.Bounds().Min.X + (2*cx+1)*w/(2*r.cols)
	return cellColors{top: packRGB(img, x, topY), bottom: packRGB(img, x, bottomY)}
}

func (r *Renderer) style(c cellColors) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor(c.top))).
		Background(lipgloss.Color(hexColor(c.bottom)))
	r.styles[c] = s
	return s
}

func packRGB(img *image.RGBA, x, y int) uint32 {
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+3 : i+3]
	return uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
}

func hexColor(rgb uint32) string {
	return fmt.Sprintf("#%06x", rgb)
}
