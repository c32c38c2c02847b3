package vis

import (
	"image"
	"testing"
)

// greyOf returns the expected greyscale level for ramp sprite i: the channel
// mean of (10*i, 0, 0).
func greyOf(i int) uint8 { return uint8(10 * i / 3) }

func dashPixel(t *testing.T, img *image.RGBA, x, y int) (uint8, uint8, uint8) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestDashboard_AllBlankWhenStatusEmpty(t *testing.T) {
	ts := DefaultTileset()
	a := rampAtlas(t, ts, 8)
	obs := &Observation{BlastStrength: 0, Ammo: 0, CanKick: false}

	img := RenderDashboard(obs, a, ts, StdBoardSize)
	b := img.Bounds()
	if b.Dx() != StdBoardSize*8 || b.Dy() != 8 {
		t.Fatalf("dashboard is %dx%d, want %dx8", b.Dx(), b.Dy(), StdBoardSize*8)
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl := dashPixel(t, img, x, y)
			if r != 0 || g != 0 || bl != 0 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want blank black", x, y, r, g, bl)
			}
		}
	}
}

func TestDashboard_BlastStrengthFiveOnEleven(t *testing.T) {
	ts := DefaultTileset()
	a := rampAtlas(t, ts, 8)
	obs := &Observation{BlastStrength: 5}
	want := greyOf(ts.BlastSprite)

	img := RenderDashboard(obs, a, ts, StdBoardSize)

	// ceil(5/2) = 3 cells from the left; cells 0 and 1 are full icons.
	for _, cell := range []int{0, 1} {
		for x := cell * 8; x < (cell+1)*8; x++ {
			r, _, _ := dashPixel(t, img, x, 4)
			if r != want {
				t.Fatalf("cell %d col %d = %d, want %d", cell, x, r, want)
			}
		}
	}
	// Cell 2 is a half icon: left half lit, right half blacked out.
	for x := 16; x < 20; x++ {
		r, _, _ := dashPixel(t, img, x, 4)
		if r != want {
			t.Fatalf("half-icon lit col %d = %d, want %d", x, r, want)
		}
	}
	for x := 20; x < 24; x++ {
		r, _, _ := dashPixel(t, img, x, 4)
		if r != 0 {
			t.Fatalf("half-icon dark col %d = %d, want 0", x, r)
		}
	}
	// Cell 3 stays blank.
	r, _, _ := dashPixel(t, img, 3*8+4, 4)
	if r != 0 {
		t.Fatalf("cell 3 = %d, want blank", r)
	}
}

func TestDashboard_AmmoFillsFromRightWithHalfIcon(t *testing.T) {
	ts := DefaultTileset()
	a := rampAtlas(t, ts, 8)
	obs := &Observation{Ammo: 3}
	want := greyOf(ts.AmmoSprite)

	img := RenderDashboard(obs, a, ts, StdBoardSize)
	w := img.Bounds().Dx()

	// ceil(3/2) = 2 cells from the right; the last column's cell is full.
	for x := w - 8; x < w; x++ {
		r, _, _ := dashPixel(t, img, x, 4)
		if r != want {
			t.Fatalf("rightmost cell col %d = %d, want %d", x, r, want)
		}
	}
	// Second cell from the right is a half icon mirrored: its left half dark.
	for x := w - 16; x < w-12; x++ {
		r, _, _ := dashPixel(t, img, x, 4)
		if r != 0 {
			t.Fatalf("mirrored half-icon dark col %d = %d, want 0", x, r)
		}
	}
	for x := w - 12; x < w-8; x++ {
		r, _, _ := dashPixel(t, img, x, 4)
		if r != want {
			t.Fatalf("mirrored half-icon lit col %d = %d, want %d", x, r, want)
		}
	}
}

func TestDashboard_KickIconCenterColumn(t *testing.T) {
	ts := DefaultTileset()
	a := rampAtlas(t, ts, 8)

	img := RenderDashboard(&Observation{CanKick: true}, a, ts, StdBoardSize)
	center := StdBoardSize / 2
	r, _, _ := dashPixel(t, img, center*8+4, 4)
	if want := greyOf(ts.KickSprite); r != want {
		t.Fatalf("center cell = %d, want kick grey %d", r, want)
	}

	img = RenderDashboard(&Observation{CanKick: false}, a, ts, StdBoardSize)
	r, _, _ = dashPixel(t, img, center*8+4, 4)
	if r != 0 {
		t.Fatalf("center cell = %d, want blank without kick", r)
	}
}

func TestDashboard_Greyscale(t *testing.T) {
	ts := DefaultTileset()
	a := rampAtlas(t, ts, 8)
	obs := &Observation{BlastStrength: 4, Ammo: 4, CanKick: true}

	img := RenderDashboard(obs, a, ts, StdBoardSize)
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl := dashPixel(t, img, x, y)
			if r != g || g != bl {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want equal channels", x, y, r, g, bl)
			}
		}
	}
}

func TestDashboard_ClampAsymmetry(t *testing.T) {
	// Odd boards cap both gauges at size-1; even boards cap blast at size and
	// ammo at size-2.
	if got := blastLimit(11); got != 10 {
		t.Fatalf("blastLimit(11) = %d, want 10", got)
	}
	if got := ammoLimit(11); got != 10 {
		t.Fatalf("ammoLimit(11) = %d, want 10", got)
	}
	if got := blastLimit(12); got != 12 {
		t.Fatalf("blastLimit(12) = %d, want 12", got)
	}
	if got := ammoLimit(12); got != 10 {
		t.Fatalf("ammoLimit(12) = %d, want 10", got)
	}
}

func TestDashboard_ClampGauge(t *testing.T) {
	cases := []struct {
		v, stages, limit, want int
	}{
		{5, 10, 10, 5},
		{99, 10, 10, 10},
		{99, 10, 8, 8},
		{-3, 10, 10, 0},
	}
	for _, c := range cases {
		if got := clampGauge(c.v, c.stages, c.limit); got != c.want {
			t.Fatalf("clampGauge(%d,%d,%d) = %d, want %d", c.v, c.stages, c.limit, got, c.want)
		}
	}
}
