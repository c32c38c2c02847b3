package vis

import "image"

// RenderDashboard builds the one-row status strip drawn beneath an agent's
// board: blast strength filled from the left, ammo filled from the right, and
// the kick icon in the center column. Two status points share one sprite cell;
// odd counts render the trailing cell as a half icon. The whole strip is
// greyscaled so its icons read as gauges rather than board tiles.
func RenderDashboard(obs *Observation, a *Atlas, ts Tileset, boardSize int) *image.RGBA {
	row := NewGrid(1, boardSize)
	row.Fill(-1)

	blast := clampGauge(obs.BlastStrength, ts.StageCount(), blastLimit(boardSize))
	ammo := clampGauge(obs.Ammo, ts.StageCount(), ammoLimit(boardSize))

	for i := 0; i < (blast+1)/2; i++ {
		row.Set(0, i, ts.BlastSprite)
	}
	for i := 0; i < (ammo+1)/2; i++ {
		row.Set(0, boardSize-1-i, ts.AmmoSprite)
	}
	// Center column always wins, blanking back out when kick is absent.
	if obs.CanKick {
		row.Set(0, boardSize/2, ts.KickSprite)
	} else {
		row.Set(0, boardSize/2, -1)
	}

	img := RenderGrid(row, a)
	s := a.SpriteSize()
	w := img.Bounds().Dx()

	if blast%2 == 1 {
		last := blast / 2
		blackenColumns(img, cellOffset(last, s)+halfSprite(s), cellOffset(last+1, s))
	}
	if ammo%2 == 1 {
		// Mirrored: the ammo gauge fills leftward, so the trailing half is the
		// left half of the last filled cell counted from the right edge.
		last := ammo / 2
		blackenColumns(img, w-cellOffset(last+1, s), w-cellOffset(last, s)-halfSprite(s))
	}

	greyscale(img)
	return img
}

// blastLimit caps the blast gauge at the board width, dropping the center
// column on odd boards.
func blastLimit(boardSize int) int {
	if boardSize%2 == 1 {
		return boardSize - 1
	}
	return boardSize
}

// ammoLimit caps the ammo gauge; even boards reserve one extra column so the
// two gauges never collide.
func ammoLimit(boardSize int) int {
	if boardSize%2 == 1 {
		return boardSize - 1
	}
	return boardSize - 2
}

// clampGauge clamps a declared status value to [0, min(stages, limit)].
func clampGauge(v, stages, limit int) int {
	if v > stages {
		v = stages
	}
	if v > limit {
		v = limit
	}
	if v < 0 {
		v = 0
	}
	return v
}
