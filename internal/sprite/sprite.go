// Package sprite builds the images game objects draw and rasterize into hit
// maps: embedded pixel masks scaled to size, and text rendered with the Go
// fonts.
package sprite

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

//go:embed assets/*.txt
var assets embed.FS

// palette maps mask characters to colors. '.' and ' ' are transparent.
var palette = map[byte]color.NRGBA{
	'K': {0x1A, 0x1A, 0x1A, 0xFF},
	'W': {0xF5, 0xF5, 0xF5, 0xFF},
	'Y': {0xFF, 0xD7, 0x00, 0xFF},
	'O': {0xFF, 0x8C, 0x00, 0xFF},
	'R': {0xE0, 0x3C, 0x31, 0xFF},
	'G': {0x2E, 0x8B, 0x57, 0xFF},
	'g': {0x3C, 0xB3, 0x71, 0xFF},
	'B': {0x46, 0x82, 0xB4, 0xFF},
	'C': {0x00, 0xFF, 0xFF, 0xFF},
	'S': {0xA9, 0xA9, 0xB0, 0xFF},
	'D': {0x55, 0x55, 0x60, 0xFF},
}

// ParseMask decodes a text mask: one row per line, one pixel per character.
// Lines starting with '#' and blank lines are skipped.
func ParseMask(data []byte) (*image.NRGBA, error) {
	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sprite: read mask: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sprite: empty mask")
	}

	width := len(rows[0])
	img := image.NewNRGBA(image.Rect(0, 0, width, len(rows)))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("sprite: mask row %d has width %d, want %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			ch := row[x]
			if ch == '.' || ch == ' ' {
				continue
			}
			c, ok := palette[ch]
			if !ok {
				return nil, fmt.Errorf("sprite: unknown mask color %q at %d,%d", ch, x, y)
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img, nil
}

// Asset returns an embedded mask by name (e.g. "bird").
func Asset(name string) (*image.NRGBA, error) {
	data, err := assets.ReadFile("assets/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("sprite: asset %s: %w", name, err)
	}
	img, err := ParseMask(data)
	if err != nil {
		return nil, fmt.Errorf("sprite: asset %s: %w", name, err)
	}
	return img, nil
}

// Load reads a sprite from disk. PNG files are decoded with near-black pixels
// keyed out; anything else is parsed as a text mask.
func Load(path string) (*image.NRGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".png") {
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("sprite: decode %s: %w", path, err)
		}
		return KeyOut(img, 50), nil
	}
	img, err := ParseMask(data)
	if err != nil {
		return nil, fmt.Errorf("sprite: %s: %w", path, err)
	}
	return img, nil
}

// Scale resizes src to w×h with nearest-neighbour sampling so mask pixels
// stay crisp and alpha stays binary.
func Scale(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// FlipH mirrors src horizontally.
func FlipH(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(b.Dx()-1-x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// KeyOut makes every pixel whose red, green and blue are all below threshold
// fully transparent.
func KeyOut(src image.Image, threshold uint8) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)
	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] < threshold && dst.Pix[i+1] < threshold && dst.Pix[i+2] < threshold {
			dst.Pix[i+3] = 0
		}
	}
	return dst
}

// Sized loads the named embedded asset and scales it to w×h.
func Sized(name string, w, h int) (*image.NRGBA, error) {
	img, err := Asset(name)
	if err != nil {
		return nil, err
	}
	return Scale(img, w, h), nil
}
