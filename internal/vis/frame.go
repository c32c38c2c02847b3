package vis

import (
	"fmt"
	"image"
	"image/draw"
)

// StackFrame places an agent's board image directly above its dashboard
// strip, producing the per-agent frame returned to callers.
func StackFrame(board, dashboard *image.RGBA) *image.RGBA {
	return ConcatV(board, dashboard)
}

// ConcatH pastes b to the right of a. The result takes a's height.
func ConcatH(a, b *image.RGBA) *image.RGBA {
	aw, ah := a.Bounds().Dx(), a.Bounds().Dy()
	bw := b.Bounds().Dx()
	dst := image.NewRGBA(image.Rect(0, 0, aw+bw, ah))
	draw.Draw(dst, image.Rect(0, 0, aw, ah), a, a.Bounds().Min, draw.Src)
	draw.Draw(dst, image.Rect(aw, 0, aw+bw, ah), b, b.Bounds().Min, draw.Src)
	return dst
}

// ConcatV pastes b below a. The result takes a's width.
func ConcatV(a, b *image.RGBA) *image.RGBA {
	aw, ah := a.Bounds().Dx(), a.Bounds().Dy()
	bh := b.Bounds().Dy()
	dst := image.NewRGBA(image.Rect(0, 0, aw, ah+bh))
	draw.Draw(dst, image.Rect(0, 0, aw, ah), a, a.Bounds().Min, draw.Src)
	draw.Draw(dst, image.Rect(0, ah, aw, ah+bh), b, b.Bounds().Min, draw.Src)
	return dst
}

// TileFrames combines per-agent frames into one composite for inspection.
// Two frames go side by side in input order. Four frames form a 2x2 grid:
// frames 0 and 1 stacked on the left, frames 2 and 3 stacked on the right.
// Other counts are unsupported.
func TileFrames(frames []*image.RGBA) (*image.RGBA, error) {
	switch len(frames) {
	case 2:
		return ConcatH(frames[0], frames[1]), nil
	case 4:
		left := ConcatV(frames[0], frames[1])
		right := ConcatV(frames[2], frames[3])
		return ConcatH(left, right), nil
	default:
		return nil, fmt.Errorf("tiling supports 2 or 4 frames, got %d", len(frames))
	}
}
