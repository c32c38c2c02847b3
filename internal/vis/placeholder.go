package vis

import (
	"image"
	"image/color"
)

// materialColors is a fixed palette for placeholder material sprites, indexed
// by tile code (wrapping if the tileset carries more materials).
var materialColors = []color.RGBA{
	{200, 200, 200, 255}, // passage
	{90, 90, 90, 255},    // rigid
	{150, 100, 50, 255},  // wood
	{30, 30, 30, 255},    // bomb
	{255, 140, 0, 255},   // flames
	{120, 120, 140, 255}, // fog
	{60, 160, 60, 255},   // extra bomb
	{60, 60, 200, 255},   // incr range
	{200, 60, 200, 255},  // kick
	{240, 240, 240, 255}, // agent dummy
	{220, 50, 50, 255},   // agent 0
	{50, 50, 220, 255},   // agent 1
	{50, 180, 180, 255},  // agent 2
	{220, 180, 50, 255},  // agent 3
}

// PlaceholderAtlas builds a synthetic atlas so the cmds run without the
// simulator's resource directory: flat colored tiles for materials, a
// darkening red series for the bomb countdown, and the blank spare slot.
func PlaceholderAtlas(ts Tileset, size int) *Atlas {
	sprites := make([]*image.RGBA, 0, ts.AtlasLen())
	for i := range ts.Materials {
		fill := materialColors[i%len(materialColors)]
		sprites = append(sprites, borderedSprite(size, fill, darken(fill, 0.6)))
	}
	stages := ts.StageCount()
	for s := 0; s < stages; s++ {
		// Later stages (longer fuses) are darker; stage 1 is nearly full red.
		level := uint8(255 - 200*s/stages)
		fill := color.RGBA{level, 20, 20, 255}
		sprites = append(sprites, borderedSprite(size, fill, color.RGBA{255, 255, 255, 255}))
	}
	sprites = append(sprites, blankSprite(size))
	return &Atlas{spriteSize: size, sprites: sprites}
}

// solidSprite returns a size x size sprite filled with one color.
func solidSprite(size int, c color.RGBA) *image.RGBA {
	sp := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sp.SetRGBA(x, y, c)
		}
	}
	return sp
}

// borderedSprite returns a solid sprite with a one-pixel border.
func borderedSprite(size int, fill, border color.RGBA) *image.RGBA {
	sp := solidSprite(size, fill)
	for i := 0; i < size; i++ {
		sp.SetRGBA(i, 0, border)
		sp.SetRGBA(i, size-1, border)
		sp.SetRGBA(0, i, border)
		sp.SetRGBA(size-1, i, border)
	}
	return sp
}

// darken scales a color's channels by factor (0..1).
func darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
