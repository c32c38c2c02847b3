// Command render steps a scripted environment headlessly and writes the
// rendered frames to disk as PNG files.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"bomberviz/internal/vis"
)

func main() {
	var (
		out        string
		frames     int
		boardSize  int
		agents     int
		spriteSize int
		resources  string
		tiled      bool
	)
	flag.StringVar(&out, "out", "frames", "output directory for PNG frames")
	flag.IntVar(&frames, "frames", 16, "number of steps to render")
	flag.IntVar(&boardSize, "board", vis.StdBoardSize, "board edge length in tiles")
	flag.IntVar(&agents, "agents", 4, "number of agents (1-4)")
	flag.IntVar(&spriteSize, "sprite-size", vis.StdSpriteSize, "sprite edge length in pixels")
	flag.StringVar(&resources, "resources", "", "sprite PNG directory (empty = generated placeholders)")
	flag.BoolVar(&tiled, "tiled", false, "write one tiled composite per step (2 or 4 agents only)")
	flag.Parse()

	ts := vis.DefaultTileset()
	env, err := buildEnv(ts, resources, spriteSize, boardSize, agents, frames)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		log.Fatal(err)
	}

	views := env.Reset()
	if err := writeStep(out, 0, views, tiled); err != nil {
		log.Fatal(err)
	}
	for step := 1; step < frames; step++ {
		var done bool
		views, _, done, _ = env.Step(make([]int, agents))
		if err := writeStep(out, step, views, tiled); err != nil {
			log.Fatal(err)
		}
		if done {
			break
		}
	}
	fmt.Printf("wrote frames to %s\n", out)
}

func buildEnv(ts vis.Tileset, resources string, spriteSize, boardSize, agents, frames int) (*vis.GraphicEnv, error) {
	var atlas *vis.Atlas
	var err error
	if resources != "" {
		atlas, err = vis.LoadAtlas(resources, spriteSize, ts)
		if err != nil {
			return nil, err
		}
	} else {
		atlas = vis.PlaceholderAtlas(ts, spriteSize)
	}
	sim, err := vis.NewScriptedSimulator(vis.DemoScript(ts, boardSize, agents, frames))
	if err != nil {
		return nil, err
	}
	return vis.NewGraphicEnv(sim, atlas, ts, boardSize)
}

func writeStep(dir string, step int, views []*image.RGBA, tiled bool) error {
	if tiled {
		composite, err := vis.TileFrames(views)
		if err != nil {
			return err
		}
		return exportPNG(filepath.Join(dir, fmt.Sprintf("step_%03d.png", step)), composite)
	}
	for i, view := range views {
		name := fmt.Sprintf("step_%03d_agent%d.png", step, i)
		if err := exportPNG(filepath.Join(dir, name), view); err != nil {
			return err
		}
	}
	return nil
}

func exportPNG(name string, img image.Image) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
