package vis

// PreprocessBoard transforms one agent's raw observation into a coded grid
// whose every cell is a valid atlas index. The input observation is not
// mutated; preprocessing the same observation twice yields identical grids.
//
// Steps, in order:
//  1. Route live-bomb cells to their countdown sprite. A cell occupied by a
//     player keeps its player code — the bomb under it is drawn later as a
//     marker overlay, not as a full tile.
//  2. Replace the generic placeholder code with the viewing agent's own code,
//     so the slot that canonically carries the placeholder stays
//     distinguishable in other agents' frames.
//  3. If the viewing agent is alive, force the cell at its own position to the
//     placeholder code. A dead agent's identity is never written back.
func PreprocessBoard(obs *Observation, ts Tileset) *Grid {
	g := gridFromRows(obs.Board)

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			timer := bombLifeAt(obs.BombLife, r, c)
			if timer != 0 && !ts.IsPlayer(g.At(r, c)) {
				g.Set(r, c, ts.BombStageIndex(timer))
			}
		}
	}

	for i, v := range g.Cells {
		if v == ts.Placeholder {
			g.Cells[i] = obs.MySprite
		}
	}

	if obs.isAlive() {
		g.Set(obs.Position[0], obs.Position[1], ts.Placeholder)
	}

	return g
}

// bombLifeAt reads the bomb timer at (row, col), treating missing rows as 0.
func bombLifeAt(bombs [][]int, row, col int) int {
	if row < 0 || row >= len(bombs) {
		return 0
	}
	if col < 0 || col >= len(bombs[row]) {
		return 0
	}
	return bombs[row][col]
}
