// Command serve runs a scripted environment and streams its tiled frames to a
// browser over a websocket. Open http://<addr>/ to watch.
package main

import (
	"flag"
	"image"
	"log"
	"net/http"
	"time"

	"bomberviz/internal/stream"
	"bomberviz/internal/vis"
)

func main() {
	var (
		addr       string
		boardSize  int
		agents     int
		spriteSize int
		resources  string
		frames     int
		interval   time.Duration
	)
	flag.StringVar(&addr, "addr", "localhost:8080", "listen address")
	flag.IntVar(&boardSize, "board", vis.StdBoardSize, "board edge length in tiles")
	flag.IntVar(&agents, "agents", 4, "number of agents (2 or 4)")
	flag.IntVar(&spriteSize, "sprite-size", vis.StdSpriteSize, "sprite edge length in pixels")
	flag.StringVar(&resources, "resources", "", "sprite PNG directory (empty = generated placeholders)")
	flag.IntVar(&frames, "frames", 64, "script length in steps")
	flag.DurationVar(&interval, "interval", 250*time.Millisecond, "time between environment steps")
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

	srv := stream.NewServer()
	go run(env, srv, agents, interval)

	log.Printf("serving frames on http://%s/", addr)
	log.Fatal(http.ListenAndServe(addr, srv.Handler()))
}

// run steps the environment forever, restarting the script when it ends, and
// publishes each tiled composite.
func run(env *vis.GraphicEnv, srv *stream.Server, agents int, interval time.Duration) {
	publish := func(frames []*image.RGBA) {
		composite, err := vis.TileFrames(frames)
		if err != nil {
			log.Fatal(err)
		}
		if err := srv.Publish(composite); err != nil {
			log.Printf("publish failed: %v", err)
		}
	}

	views := env.Reset()
	publish(views)
	for range time.Tick(interval) {
		views, _, done, _ := env.Step(make([]int, agents))
		publish(views)
		if done {
			views = env.Reset()
			publish(views)
		}
	}
}
