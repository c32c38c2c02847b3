package vis

// StdBoardSize is the edge length of the standard board.
const StdBoardSize = 11

// OneVsOneBoardSize is the edge length of the small two-player board.
const OneVsOneBoardSize = 8

// StdSpriteSize is the default sprite edge length in pixels.
const StdSpriteSize = 8

// Tileset describes the simulator's tile-code scheme: which integer code means
// what, and which sprite resource renders each code. The scheme is supplied by
// the simulator, so it is carried as configuration rather than hardcoded — a
// renumbering on the simulator side must not silently break the renderer.
type Tileset struct {
	// Materials lists one sprite resource name per board material, in tile-code
	// order. Materials[code] renders tile code `code`.
	Materials []string

	// BombStages lists the countdown sprites. Stage s renders a cell whose
	// bomb timer reads s, and lives at atlas index len(Materials)+s.
	BombStages []string

	// PlayerMin..PlayerMax is the inclusive tile-code range that denotes an
	// agent standing on the board (the generic placeholder included).
	PlayerMin int
	PlayerMax int

	// Placeholder is the canonical "this agent" code. Every frame renders the
	// viewing agent with this code regardless of which slot it occupies.
	Placeholder int

	// Agent0 is the tile code of the agent in observation slot 0; slot i is
	// Agent0+i.
	Agent0 int

	// Dashboard icon codes (indices into Materials).
	BlastSprite int
	AmmoSprite  int
	KickSprite  int
}

// DefaultTileset matches the standard simulator scheme: codes 0..13 are
// passage, rigid, wood, bomb, flames, fog, extra-bomb, incr-range, kick,
// agent-dummy and agents 0-3, followed by ten bomb countdown stages.
func DefaultTileset() Tileset {
	return Tileset{
		Materials: []string{
			"passage", "rigid", "wood", "bomb", "flames", "fog",
			"extra_bomb", "incr_range", "kick", "agent_dummy",
			"agent0", "agent1", "agent2", "agent3",
		},
		BombStages: []string{
			"bomb_0", "bomb_1", "bomb_2", "bomb_3", "bomb_4",
			"bomb_5", "bomb_6", "bomb_7", "bomb_8", "bomb_9",
		},
		PlayerMin:   9,
		PlayerMax:   13,
		Placeholder: 11,
		Agent0:      10,
		BlastSprite: 4,
		AmmoSprite:  3,
		KickSprite:  8,
	}
}

// MaterialCount returns the number of named board materials.
func (ts Tileset) MaterialCount() int { return len(ts.Materials) }

// StageCount returns the number of bomb countdown stages.
func (ts Tileset) StageCount() int { return len(ts.BombStages) }

// AtlasLen returns the required atlas length: one sprite per material, one per
// bomb stage, plus the spare blank slot.
func (ts Tileset) AtlasLen() int { return len(ts.Materials) + len(ts.BombStages) + 1 }

// BombStageIndex maps a bomb timer value to its countdown sprite's atlas index.
// Timers beyond the last stage clamp to it so the index stays in atlas bounds.
func (ts Tileset) BombStageIndex(stage int) int {
	if stage < 0 {
		stage = 0
	}
	if stage >= ts.StageCount() {
		stage = ts.StageCount() - 1
	}
	return ts.MaterialCount() + stage
}

// IsPlayer reports whether a tile code denotes an agent on the board.
func (ts Tileset) IsPlayer(code int) bool {
	return code >= ts.PlayerMin && code <= ts.PlayerMax
}

// SlotCode returns the tile code identifying the agent in observation slot i.
func (ts Tileset) SlotCode(i int) int { return ts.Agent0 + i }
