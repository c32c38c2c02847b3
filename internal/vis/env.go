package vis

import (
	"errors"
	"fmt"
	"image"
)

// ErrResetNeeded is returned when the raw-observation getter is called before
// any reset or step has produced observations.
var ErrResetNeeded = errors.New("no raw observations cached: reset the environment first")

// Simulator is the environment collaborator. It owns game rules, rewards and
// turn logic; the renderer only consumes its observations.
type Simulator interface {
	Reset() []Observation
	Step(actions []int) (obs []Observation, rewards []float64, done bool, info map[string]any)
}

// BoardConfigurer is implemented by simulators that accept board-generation
// parameters.
type BoardConfigurer interface {
	SetBoardParams(p BoardParams)
}

// BoardParams are the board-generation knobs forwarded to the simulator.
// A value of 0 or less leaves the simulator's current setting untouched.
type BoardParams struct {
	Rigid int // rigid (indestructible) tile count
	Wood  int // wood (destructible) tile count
	Items int // power-up item count
}

// Validate checks the generation constraints for the given board size and
// fails with a descriptive error before any render can happen.
func (p BoardParams) Validate(boardSize int) error {
	if p.Rigid > 0 {
		if p.Rigid%2 != 0 {
			return fmt.Errorf("rigid tile count must be even, got %d", p.Rigid)
		}
		if p.Rigid < 2 {
			return fmt.Errorf("rigid tile count must be at least 2, got %d", p.Rigid)
		}
	}
	if p.Wood > 0 {
		if p.Wood%2 != 0 {
			return fmt.Errorf("wood tile count must be even, got %d", p.Wood)
		}
		minWood := 6
		if boardSize == OneVsOneBoardSize {
			minWood = 10
		}
		if p.Wood < minWood {
			return fmt.Errorf("wood tile count must be at least %d for a %dx%d board, got %d",
				minWood, boardSize, boardSize, p.Wood)
		}
	}
	if p.Items > 0 {
		wood := p.Wood
		if wood > 0 && p.Items >= wood {
			return fmt.Errorf("item count must be below the wood tile count (%d), got %d", wood, p.Items)
		}
	}
	return nil
}

// GraphicEnv wraps a simulator and renders every observation it produces into
// a per-agent RGB frame (board stacked on dashboard). The atlas is loaded once
// at construction and shared read-only by all render calls; each call uses its
// own coded-grid buffer.
type GraphicEnv struct {
	sim       Simulator
	atlas     *Atlas
	tiles     Tileset
	boardSize int

	lastRaw []Observation // most recent raw observation list, nil before reset
}

// NewGraphicEnv builds the rendering wrapper. The atlas length must match the
// tileset's material/bomb-stage scheme.
func NewGraphicEnv(sim Simulator, atlas *Atlas, ts Tileset, boardSize int) (*GraphicEnv, error) {
	if sim == nil {
		return nil, errors.New("nil simulator")
	}
	if boardSize <= 0 {
		return nil, fmt.Errorf("board size must be positive, got %d", boardSize)
	}
	if atlas.Len() != ts.AtlasLen() {
		return nil, fmt.Errorf("atlas has %d sprites, tileset needs %d", atlas.Len(), ts.AtlasLen())
	}
	return &GraphicEnv{sim: sim, atlas: atlas, tiles: ts, boardSize: boardSize}, nil
}

// BoardSize returns the configured board edge length.
func (e *GraphicEnv) BoardSize() int { return e.boardSize }

// SpriteSize returns the atlas sprite edge length in pixels.
func (e *GraphicEnv) SpriteSize() int { return e.atlas.SpriteSize() }

// SetBoardParams validates board-generation parameters and forwards them to
// the simulator. Simulators without generation knobs reject the call.
func (e *GraphicEnv) SetBoardParams(p BoardParams) error {
	if err := p.Validate(e.boardSize); err != nil {
		return err
	}
	bc, ok := e.sim.(BoardConfigurer)
	if !ok {
		return errors.New("simulator does not accept board parameters")
	}
	bc.SetBoardParams(p)
	return nil
}

// Reset resets the simulator and returns one rendered frame per agent.
func (e *GraphicEnv) Reset() []*image.RGBA {
	obs := e.sim.Reset()
	e.lastRaw = obs
	return e.redraw(obs)
}

// Step advances the simulator and returns the rendered frames alongside the
// simulator's rewards, done flag and info map.
func (e *GraphicEnv) Step(actions []int) ([]*image.RGBA, []float64, bool, map[string]any) {
	obs, rewards, done, info := e.sim.Step(actions)
	e.lastRaw = obs
	return e.redraw(obs), rewards, done, info
}

// LastRawObservations returns the raw observation list from the most recent
// reset or step. Fails with ErrResetNeeded before the first reset.
func (e *GraphicEnv) LastRawObservations() ([]Observation, error) {
	if e.lastRaw == nil {
		return nil, ErrResetNeeded
	}
	return e.lastRaw, nil
}

// redraw renders every agent's frame: preprocess, composite, bomb markers,
// dashboard, vertical stack. Agent slot i is identified by tile code Agent0+i.
func (e *GraphicEnv) redraw(obs []Observation) []*image.RGBA {
	frames := make([]*image.RGBA, len(obs))
	for i := range obs {
		o := obs[i] // shallow copy so the injected identity never leaks back
		o.MySprite = e.tiles.SlotCode(i)

		grid := PreprocessBoard(&o, e.tiles)
		board := RenderGrid(grid, e.atlas)
		OverlayBombMarkers(board, grid, o.BombLife, e.atlas, e.tiles)
		dash := RenderDashboard(&o, e.atlas, e.tiles, e.boardSize)
		frames[i] = StackFrame(board, dash)
	}
	return frames
}
