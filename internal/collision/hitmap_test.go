package collision

import (
	"image"
	"image/color"
	"testing"
)

// solidSprite returns a fully opaque w×h sprite.
func solidSprite(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF})
		}
	}
	return img
}

// ringSprite returns a w×h sprite that is solid only on its border.
func ringSprite(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				img.SetNRGBA(x, y, color.NRGBA{0, 0, 0, 0xFF})
			}
		}
	}
	return img
}

func TestRasterizeThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 0})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 128})
	img.SetNRGBA(2, 0, color.NRGBA{0, 0, 0, 129})
	img.SetNRGBA(3, 0, color.NRGBA{0, 0, 0, 255})

	hm := Rasterize(img)

	if hm.Width != 4 || hm.Height != 1 {
		t.Fatalf("size = %dx%d, expected 4x1", hm.Width, hm.Height)
	}
	expected := []byte{0, 0, 1, 1}
	for i, want := range expected {
		if hm.Data[i] != want {
			t.Errorf("pixel %d = %d, expected %d", i, hm.Data[i], want)
		}
	}
}

func TestRasterizeOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	img.SetNRGBA(12, 21, color.NRGBA{0, 0, 0, 0xFF})

	hm := Rasterize(img)
	if !hm.Solid(2, 1) {
		t.Error("pixel at local (2,1) should be solid")
	}
	if hm.SolidCount() != 1 {
		t.Errorf("SolidCount() = %d, expected 1", hm.SolidCount())
	}
}

func TestDetectScenarios(t *testing.T) {
	solid := Rasterize(solidSprite(40, 40))
	ring := Rasterize(ringSprite(40, 40))
	small := Rasterize(solidSprite(10, 10))

	tests := []struct {
		name     string
		a, b     Body
		expected bool
	}{
		{
			name:     "disjoint bounding boxes",
			a:        Body{X: 0, Y: 0, Map: solid},
			b:        Body{X: 50, Y: 0, Map: solid},
			expected: false,
		},
		{
			name:     "touching edges",
			a:        Body{X: 0, Y: 0, Map: solid},
			b:        Body{X: 40, Y: 0, Map: solid},
			expected: false,
		},
		{
			name:     "identical position",
			a:        Body{X: 7, Y: 9, Map: solid},
			b:        Body{X: 7, Y: 9, Map: solid},
			expected: true,
		},
		{
			name:     "one pixel overlap",
			a:        Body{X: 0, Y: 0, Map: solid},
			b:        Body{X: 39, Y: 39, Map: solid},
			expected: true,
		},
		{
			name:     "inside the empty hole of a ring",
			a:        Body{X: 0, Y: 0, Map: ring},
			b:        Body{X: 15, Y: 15, Map: small},
			expected: false,
		},
		{
			name:     "crossing the ring border",
			a:        Body{X: 0, Y: 0, Map: ring},
			b:        Body{X: 35, Y: 15, Map: small},
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        Body{X: -20, Y: -20, Map: solid},
			b:        Body{X: 10, Y: 10, Map: small},
			expected: true,
		},
		{
			name:     "nil map",
			a:        Body{X: 0, Y: 0, Map: nil},
			b:        Body{X: 0, Y: 0, Map: solid},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.a, tc.b); got != tc.expected {
				t.Errorf("Detect(a, b) = %v, expected %v", got, tc.expected)
			}
			if got := Detect(tc.b, tc.a); got != tc.expected {
				t.Errorf("Detect(b, a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDetectEmptyMapsNeverCollide(t *testing.T) {
	empty := Rasterize(image.NewNRGBA(image.Rect(0, 0, 20, 20)))
	a := Body{X: 0, Y: 0, Map: empty}
	b := Body{X: 0, Y: 0, Map: empty}
	if Detect(a, b) {
		t.Error("fully transparent sprites should never collide")
	}
}
