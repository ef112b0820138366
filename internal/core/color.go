package core

import "image/color"

// Palette is the retro theme shared by every module that paints.
var Palette = struct {
	Background    color.RGBA
	Sky           color.RGBA
	Grass         color.RGBA
	PrimaryText   color.RGBA
	HighlightText color.RGBA
	Accent1       color.RGBA
	Accent2       color.RGBA
	ButtonBg      color.RGBA
	ButtonPressed color.RGBA
	ButtonText    color.RGBA
}{
	Background:    color.RGBA{0x1A, 0x1A, 0x2E, 0xFF},
	Sky:           color.RGBA{0x24, 0x2A, 0x4E, 0xFF},
	Grass:         color.RGBA{0x2E, 0x8B, 0x57, 0xFF},
	PrimaryText:   color.RGBA{0xE0, 0xE0, 0xE0, 0xFF},
	HighlightText: color.RGBA{0xFF, 0xFF, 0x00, 0xFF},
	Accent1:       color.RGBA{0x00, 0xFF, 0xFF, 0xFF},
	Accent2:       color.RGBA{0xFF, 0x00, 0xFF, 0xFF},
	ButtonBg:      color.RGBA{0x4A, 0x4A, 0x70, 0xFF},
	ButtonPressed: color.RGBA{0x6A, 0x6A, 0x90, 0xFF},
	ButtonText:    color.RGBA{0xE0, 0xE0, 0xE0, 0xFF},
}
