package vis

// Observation is one agent's view of the environment for a single step, as
// produced by the simulator. Observations are transient: a fresh list is
// produced on every step/reset and consumed synchronously.
type Observation struct {
	Board    [][]int // tile codes, Board[row][col]
	BombLife [][]int // countdown per cell, 0 = no bomb
	Position [2]int  // this agent's (row, col)
	Alive    []int   // tile codes of agents still alive

	BlastStrength int
	Ammo          int
	CanKick       bool

	// MySprite is the tile code representing "self" in this agent's frame.
	// The env wrapper injects it from the observation's slot index.
	MySprite int
}

// isAlive reports whether the agent's own code appears in the alive set.
func (o *Observation) isAlive() bool {
	for _, code := range o.Alive {
		if code == o.MySprite {
			return true
		}
	}
	return false
}

// BoardAndBombs extracts the [board, bombLife] pair for each agent, in slot
// order. Convenience accessor for callers that only want the numeric state.
func BoardAndBombs(obs []Observation) [][2][][]int {
	out := make([][2][][]int, len(obs))
	for i, o := range obs {
		out[i] = [2][][]int{o.Board, o.BombLife}
	}
	return out
}
