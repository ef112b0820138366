package sprite

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce sync.Once
	boldFont *opentype.Font
	fontErr  error

	facesMu sync.Mutex
	faces   = make(map[float64]font.Face)
)

// Face returns the bold Go font at the given pixel size. Faces are cached
// and must only be used from one goroutine at a time.
func Face(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		boldFont, fontErr = opentype.Parse(gobold.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("sprite: parse font: %w", fontErr)
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(boldFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("sprite: face %.0fpx: %w", size, err)
	}
	faces[size] = f
	return f, nil
}

// Text renders s onto a transparent image sized to fit it.
func Text(s string, size float64, c color.Color) (*image.NRGBA, error) {
	face, err := Face(size)
	if err != nil {
		return nil, err
	}
	m := face.Metrics()
	w := max(font.MeasureString(face, s).Ceil(), 1)
	h := max((m.Ascent + m.Descent).Ceil(), 1)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(s)
	return img, nil
}

// DrawCentered composites img onto dst centred on (cx, cy).
func DrawCentered(dst draw.Image, img image.Image, cx, cy int) {
	b := img.Bounds()
	x := cx - b.Dx()/2
	y := cy - b.Dy()/2
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(dst, r, img, b.Min, draw.Over)
}
