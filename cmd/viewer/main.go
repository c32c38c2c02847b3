// Command viewer shows a running environment's rendered frames in a window.
//
// Keys: space pauses/resumes stepping, C copies a textual dump of the last
// raw observations to the clipboard, R resets the environment.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"bomberviz/internal/vis"
)

// stepEvery is the number of ebiten ticks between environment steps.
const stepEvery = 30

type viewer struct {
	env    *vis.GraphicEnv
	agents int
	zoom   int

	composite *ebiten.Image
	width     int
	height    int

	tick     int
	paused   bool
	done     bool
	prevKeys map[ebiten.Key]bool
}

func newViewer(env *vis.GraphicEnv, agents, zoom int) (*viewer, error) {
	v := &viewer{
		env:      env,
		agents:   agents,
		zoom:     zoom,
		prevKeys: make(map[ebiten.Key]bool),
	}
	if err := v.show(env.Reset()); err != nil {
		return nil, err
	}
	return v, nil
}

// show tiles the per-agent frames into the on-screen composite.
func (v *viewer) show(frames []*image.RGBA) error {
	composite, err := vis.TileFrames(frames)
	if err != nil {
		return err
	}
	v.width = composite.Bounds().Dx()
	v.height = composite.Bounds().Dy()
	v.composite = ebiten.NewImageFromImage(composite)
	return nil
}

// keyPressed is an edge-triggered key check.
func (v *viewer) keyPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := v.prevKeys[k]
	v.prevKeys[k] = down
	return down && !was
}

func (v *viewer) Update() error {
	if v.keyPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if v.keyPressed(ebiten.KeyR) {
		v.done = false
		v.tick = 0
		return v.show(v.env.Reset())
	}
	if v.keyPressed(ebiten.KeyC) {
		if err := v.copyObservations(); err != nil {
			log.Printf("clipboard copy failed: %v", err)
		}
	}

	if v.paused || v.done {
		return nil
	}
	v.tick++
	if v.tick%stepEvery != 0 {
		return nil
	}

	frames, _, done, _ := v.env.Step(make([]int, v.agents))
	v.done = done
	return v.show(frames)
}

// copyObservations puts a plain-text report of the last raw observation list
// on the system clipboard.
func (v *viewer) copyObservations() error {
	obs, err := v.env.LastRawObservations()
	if err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "--- bomberviz raw observations ---\n")
	for i, o := range obs {
		fmt.Fprintf(&b, "agent %d: pos=(%d,%d) blast=%d ammo=%d kick=%v alive=%v\n",
			i, o.Position[0], o.Position[1], o.BlastStrength, o.Ammo, o.CanKick, o.Alive)
	}
	return clipboard.WriteAll(b.String())
}

func (v *viewer) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.zoom), float64(v.zoom))
	screen.DrawImage(v.composite, op)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width * v.zoom, v.height * v.zoom
}

func main() {
	var (
		boardSize  int
		agents     int
		spriteSize int
		resources  string
		frames     int
		zoom       int
	)
	flag.IntVar(&boardSize, "board", vis.StdBoardSize, "board edge length in tiles")
	flag.IntVar(&agents, "agents", 4, "number of agents (2 or 4)")
	flag.IntVar(&spriteSize, "sprite-size", vis.StdSpriteSize, "sprite edge length in pixels")
	flag.StringVar(&resources, "resources", "", "sprite PNG directory (empty = generated placeholders)")
	flag.IntVar(&frames, "frames", 32, "script length in steps")
	flag.IntVar(&zoom, "zoom", 4, "integer display scale")
	flag.Parse()

	ts := vis.DefaultTileset()
	var atlas *vis.Atlas
	if resources != "" {
		var err error
		atlas, err = vis.LoadAtlas(resources, spriteSize, ts)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		atlas = vis.PlaceholderAtlas(ts, spriteSize)
	}

	sim, err := vis.NewScriptedSimulator(vis.DemoScript(ts, boardSize, agents, frames))
	if err != nil {
		log.Fatal(err)
	}
	env, err := vis.NewGraphicEnv(sim, atlas, ts, boardSize)
	if err != nil {
		log.Fatal(err)
	}

	v, err := newViewer(env, agents, zoom)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("bomberviz")
	ebiten.SetWindowSize(v.width*zoom, v.height*zoom)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
