package vis

import (
	"image"
	"image/draw"
)

// cellOffset returns the pixel offset of grid index i at the given sprite size.
func cellOffset(i, size int) int { return i * size }

// halfSprite returns the pixel offset of a sprite's horizontal midline.
func halfSprite(size int) int { return size / 2 }

// markerTop returns the first pixel row of the bomb-marker band: the lower
// three eighths of the sprite block.
func markerTop(size int) int { return size/2 + size/8 }

// RenderGrid expands a coded grid into a pixel image, one sprite block per
// cell. The block for grid cell (r, c) lands at pixel (c*S, r*S): rows run
// down the image, columns run across.
func RenderGrid(g *Grid, a *Atlas) *image.RGBA {
	s := a.SpriteSize()
	out := image.NewRGBA(image.Rect(0, 0, g.Cols*s, g.Rows*s))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			sp := a.Sprite(g.At(r, c))
			dst := image.Rect(cellOffset(c, s), cellOffset(r, s), cellOffset(c+1, s), cellOffset(r+1, s))
			draw.Draw(out, dst, sp, sp.Bounds().Min, draw.Src)
		}
	}
	return out
}

// OverlayBombMarkers draws a small countdown tag under every player standing
// on a live bomb: the lower band of the cell's pixel block is overwritten with
// the same band of the matching countdown sprite, leaving most of the player
// sprite visible. rendered must be the output of RenderGrid for g.
func OverlayBombMarkers(rendered *image.RGBA, g *Grid, bombs [][]int, a *Atlas, ts Tileset) {
	s := a.SpriteSize()
	top := markerTop(s)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if !ts.IsPlayer(g.At(r, c)) {
				continue
			}
			timer := bombLifeAt(bombs, r, c)
			if timer == 0 {
				continue
			}
			sp := a.Sprite(ts.BombStageIndex(timer))
			dst := image.Rect(cellOffset(c, s), cellOffset(r, s)+top, cellOffset(c+1, s), cellOffset(r+1, s))
			src := sp.Bounds().Min.Add(image.Pt(0, top))
			draw.Draw(rendered, dst, sp, src, draw.Src)
		}
	}
}
