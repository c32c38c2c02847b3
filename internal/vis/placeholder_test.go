package vis

import "testing"

func TestPlaceholderAtlas_MatchesTileset(t *testing.T) {
	ts := DefaultTileset()
	a := PlaceholderAtlas(ts, 8)
	if a.Len() != ts.AtlasLen() {
		t.Fatalf("atlas len = %d, want %d", a.Len(), ts.AtlasLen())
	}
	if a.SpriteSize() != 8 {
		t.Fatalf("sprite size = %d, want 8", a.SpriteSize())
	}
	// Spare slot renders the blank sentinel as black.
	r, g, b, _ := a.Sprite(-1).At(4, 4).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("spare slot = (%d,%d,%d), want black", r, g, b)
	}
}

func TestPlaceholderAtlas_StagesDarkenWithFuse(t *testing.T) {
	ts := DefaultTileset()
	a := PlaceholderAtlas(ts, 8)
	r1, _, _, _ := a.Sprite(ts.BombStageIndex(1)).At(4, 4).RGBA()
	r9, _, _, _ := a.Sprite(ts.BombStageIndex(9)).At(4, 4).RGBA()
	if r9 >= r1 {
		t.Fatalf("stage 9 red %d should be darker than stage 1 red %d", r9>>8, r1>>8)
	}
}

func TestBoardAndBombs(t *testing.T) {
	ts := DefaultTileset()
	obs := DemoScript(ts, StdBoardSize, 2, 1)[0]
	pairs := BoardAndBombs(obs)
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	for i := range pairs {
		if &pairs[i][0][0][0] != &obs[i].Board[0][0] {
			t.Fatal("pairs should reference the observations' own grids")
		}
	}
}
