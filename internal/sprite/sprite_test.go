package sprite

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/skyscroll/internal/collision"
)

func TestParseMask(t *testing.T) {
	img, err := ParseMask([]byte("# demo\nK.\n.Y\n"))
	if err != nil {
		t.Fatalf("ParseMask: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if img.NRGBAAt(1, 0).A != 0 || img.NRGBAAt(0, 0).A != 0xFF {
		t.Fatal("transparency decoded wrong")
	}
	if img.NRGBAAt(1, 1) != palette['Y'] {
		t.Fatalf("color = %v", img.NRGBAAt(1, 1))
	}
}

func TestParseMaskErrors(t *testing.T) {
	tests := map[string]string{
		"empty":         "# nothing\n",
		"ragged":        "KK\nK\n",
		"unknown color": "KZ\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseMask([]byte(in)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestEmbeddedAssets(t *testing.T) {
	for _, name := range []string{"bird", "coin", "plane", "grass"} {
		img, err := Asset(name)
		if err != nil {
			t.Fatalf("Asset(%s): %v", name, err)
		}
		if collision.Rasterize(img).SolidCount() == 0 {
			t.Errorf("asset %s has no solid pixels", name)
		}
	}
	if _, err := Asset("missing"); err == nil {
		t.Fatal("expected error for missing asset")
	}
}

func TestScaleKeepsShape(t *testing.T) {
	src, err := ParseMask([]byte("K.\n.K\n"))
	if err != nil {
		t.Fatal(err)
	}
	dst := Scale(src, 40, 40)
	hm := collision.Rasterize(dst)
	if hm.Width != 40 || hm.Height != 40 {
		t.Fatalf("size = %dx%d", hm.Width, hm.Height)
	}
	if !hm.Solid(5, 5) || hm.Solid(35, 5) || !hm.Solid(35, 35) {
		t.Fatal("scaled quadrants wrong")
	}
	if hm.SolidCount() != 800 {
		t.Fatalf("SolidCount = %d, want 800", hm.SolidCount())
	}
}

func TestFlipH(t *testing.T) {
	src, _ := ParseMask([]byte("KK.\n"))
	flipped := FlipH(src)
	if flipped.NRGBAAt(0, 0).A != 0 || flipped.NRGBAAt(2, 0).A == 0 {
		t.Fatal("FlipH did not mirror")
	}
}

func TestLoadPNGKeysOutBlack(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 0xFF})
	img.SetNRGBA(1, 0, color.NRGBA{200, 200, 200, 0xFF})
	path := filepath.Join(t.TempDir(), "plane.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.NRGBAAt(0, 0).A != 0 || got.NRGBAAt(1, 0).A != 0xFF {
		t.Fatalf("key out failed: %v %v", got.NRGBAAt(0, 0), got.NRGBAAt(1, 0))
	}
}

func TestText(t *testing.T) {
	img, err := Text("GAME OVER", 24, color.White)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if img.Bounds().Dx() < 50 || img.Bounds().Dy() < 20 {
		t.Fatalf("text image too small: %v", img.Bounds())
	}
	if collision.Rasterize(img).SolidCount() == 0 {
		t.Fatal("text rendered no pixels")
	}

	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
	DrawCentered(dst, img, 100, 50)
	if collision.Rasterize(dst).SolidCount() == 0 {
		t.Fatal("DrawCentered drew nothing")
	}
}
