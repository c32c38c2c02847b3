package vis

import "errors"

// ScriptedSimulator replays a pre-recorded observation script. It implements
// no game rules: Step ignores the submitted actions and advances to the next
// recorded frame, holding on the last one. Used by the cmds and tests to
// drive the rendering wrapper without a live simulator.
type ScriptedSimulator struct {
	script [][]Observation
	cursor int
	params BoardParams // accepted for API parity; scripts carry no generation
}

// NewScriptedSimulator wraps a non-empty script. Frame 0 is the reset state.
func NewScriptedSimulator(script [][]Observation) (*ScriptedSimulator, error) {
	if len(script) == 0 {
		return nil, errors.New("scripted simulator needs at least one frame")
	}
	return &ScriptedSimulator{script: script}, nil
}

// Reset rewinds to frame 0 and returns its observations.
func (s *ScriptedSimulator) Reset() []Observation {
	s.cursor = 0
	return cloneObservations(s.script[0])
}

// Step advances to the next recorded frame. done turns true once the last
// frame is reached; rewards are always zero.
func (s *ScriptedSimulator) Step(actions []int) ([]Observation, []float64, bool, map[string]any) {
	if s.cursor < len(s.script)-1 {
		s.cursor++
	}
	obs := cloneObservations(s.script[s.cursor])
	rewards := make([]float64, len(obs))
	done := s.cursor == len(s.script)-1
	info := map[string]any{"frame": s.cursor}
	return obs, rewards, done, info
}

// SetBoardParams records the parameters. Replayed scripts do not regenerate
// boards, so the values only need to survive a round trip.
func (s *ScriptedSimulator) SetBoardParams(p BoardParams) { s.params = p }

// cloneObservations deep-copies a frame so callers can never mutate the
// script through a returned observation.
func cloneObservations(obs []Observation) []Observation {
	out := make([]Observation, len(obs))
	for i, o := range obs {
		out[i] = Observation{
			Board:         cloneRows(o.Board),
			BombLife:      cloneRows(o.BombLife),
			Position:      o.Position,
			Alive:         append([]int(nil), o.Alive...),
			BlastStrength: o.BlastStrength,
			Ammo:          o.Ammo,
			CanKick:       o.CanKick,
			MySprite:      o.MySprite,
		}
	}
	return out
}

func cloneRows(rows [][]int) [][]int {
	out := make([][]int, len(rows))
	for i, row := range rows {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// DemoScript synthesises a deterministic observation script for demos and
// smoke tests: a walled board with wood scattered inside, the requested agents
// in the corners, a bomb ticking down in the center, and agent 0 standing on
// its own bomb from the second frame on. No game rules are simulated — the
// frames are just plausible board states.
func DemoScript(ts Tileset, boardSize, agents, frames int) [][]Observation {
	if agents > 4 {
		agents = 4
	}
	if agents < 1 {
		agents = 1
	}
	if frames < 1 {
		frames = 1
	}

	const (
		codePassage = 0
		codeRigid   = 1
		codeWood    = 2
	)
	corners := [4][2]int{
		{1, 1},
		{boardSize - 2, boardSize - 2},
		{1, boardSize - 2},
		{boardSize - 2, 1},
	}

	script := make([][]Observation, frames)
	for f := 0; f < frames; f++ {
		board := make([][]int, boardSize)
		bombs := make([][]int, boardSize)
		for r := 0; r < boardSize; r++ {
			board[r] = make([]int, boardSize)
			bombs[r] = make([]int, boardSize)
			for c := 0; c < boardSize; c++ {
				switch {
				case r == 0 || c == 0 || r == boardSize-1 || c == boardSize-1:
					board[r][c] = codeRigid
				case r > 1 && r < boardSize-2 && (r+c)%5 == 0:
					board[r][c] = codeWood
				default:
					board[r][c] = codePassage
				}
			}
		}

		// Center bomb counts down toward detonation, never reaching 0 here.
		center := boardSize / 2
		timer := 9 - f
		if timer < 1 {
			timer = 1
		}
		board[center][center] = 3 // bomb tile
		bombs[center][center] = timer

		// Agent 3 drops out late in the script to show the dead-agent path.
		aliveCount := agents
		if agents == 4 && frames >= 4 && f >= frames-frames/4 {
			aliveCount = 3
		}

		positions := make([][2]int, agents)
		alive := make([]int, 0, agents)
		for i := 0; i < agents; i++ {
			pos := corners[i]
			if i == 0 {
				// Agent 0 paces along the top corridor, stopping short of the
				// corner agent 2 occupies.
				pos[1] = 1 + f%(boardSize-3)
			}
			positions[i] = pos
			if i < aliveCount {
				board[pos[0]][pos[1]] = ts.SlotCode(i)
				alive = append(alive, ts.SlotCode(i))
			}
		}
		if f >= 1 && aliveCount > 0 {
			// Agent 0 is standing on a bomb it just placed.
			bombs[positions[0][0]][positions[0][1]] = timer
		}

		obs := make([]Observation, agents)
		for i := 0; i < agents; i++ {
			obs[i] = Observation{
				Board:         cloneRows(board),
				BombLife:      cloneRows(bombs),
				Position:      positions[i],
				Alive:         append([]int(nil), alive...),
				BlastStrength: 2 + f/2,
				Ammo:          1 + (f+i)%4,
				CanKick:       (f+i)%2 == 1,
			}
		}
		script[f] = obs
	}
	return script
}
