package vis

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// ErrResourceMissing is wrapped by LoadAtlas when a named sprite file cannot
// be found. Atlas construction aborts on the first missing resource.
var ErrResourceMissing = errors.New("sprite resource missing")

// Atlas is an ordered collection of fixed-size square RGB sprites, indexed by
// tile code. It is loaded once per environment and immutable thereafter, so a
// single atlas may be shared read-only across render calls.
type Atlas struct {
	spriteSize int
	sprites    []*image.RGBA
}

// NewAtlas wraps a pre-built sprite list. Every sprite must be square and all
// must share the same edge length.
func NewAtlas(sprites []*image.RGBA) (*Atlas, error) {
	if len(sprites) == 0 {
		return nil, errors.New("atlas needs at least one sprite")
	}
	size := sprites[0].Bounds().Dx()
	for i, sp := range sprites {
		b := sp.Bounds()
		if b.Dx() != size || b.Dy() != size {
			return nil, fmt.Errorf("sprite %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), size, size)
		}
	}
	return &Atlas{spriteSize: size, sprites: sprites}, nil
}

// LoadAtlas loads <name>.png for every material and bomb-stage name in the
// tileset from dir, resizing each to spriteSize and converting to opaque RGB.
// A zero-filled spare sprite is appended as the blank slot. Same spriteSize
// always yields identical output.
func LoadAtlas(dir string, spriteSize int, ts Tileset) (*Atlas, error) {
	if spriteSize <= 0 {
		return nil, fmt.Errorf("sprite size must be positive, got %d", spriteSize)
	}
	names := make([]string, 0, ts.AtlasLen()-1)
	names = append(names, ts.Materials...)
	names = append(names, ts.BombStages...)

	sprites := make([]*image.RGBA, 0, ts.AtlasLen())
	for _, name := range names {
		sp, err := loadSprite(filepath.Join(dir, name+".png"), spriteSize)
		if err != nil {
			return nil, err
		}
		sprites = append(sprites, sp)
	}
	// Spare blank slot: the -1 sentinel renders as a black cell.
	sprites = append(sprites, blankSprite(spriteSize))

	return &Atlas{spriteSize: spriteSize, sprites: sprites}, nil
}

// loadSprite reads one PNG and scales it to size x size. Nearest-neighbor
// only: smooth resampling would blur the pixel-art edges.
func loadSprite(path string, size int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceMissing, path)
		}
		return nil, fmt.Errorf("open sprite %s: %w", path, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	forceOpaque(dst)
	return dst, nil
}

// blankSprite returns an all-black opaque sprite.
func blankSprite(size int) *image.RGBA {
	sp := image.NewRGBA(image.Rect(0, 0, size, size))
	forceOpaque(sp)
	return sp
}

// forceOpaque drops the alpha channel: the renderer deals in plain RGB.
func forceOpaque(img *image.RGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}

// SpriteSize returns the edge length of every sprite in pixels.
func (a *Atlas) SpriteSize() int { return a.spriteSize }

// Len returns the number of sprites in the atlas.
func (a *Atlas) Len() int { return len(a.sprites) }

// Sprite returns the sprite at the given atlas index. The blank sentinel -1
// resolves to the spare slot at the end of the atlas.
func (a *Atlas) Sprite(i int) *image.RGBA {
	if i < 0 {
		return a.sprites[len(a.sprites)-1]
	}
	return a.sprites[i]
}
