package system

import (
	"glyph-roguelike/internal/component"
	"glyph-roguelike/internal/gamemap"
	"slices"
	"testing"
)

func TestVisibilityClearsDirtyAndFillsViewshed(t *testing.T) {
	w, player := newWorld(roomMap(30, 30), 10, 10)

	UpdateVisibility(w)

	vs := viewshedOf(w, player)
	if vs.Dirty {
		t.Fatal("viewshed should be clean after UpdateVisibility")
	}
	if !vs.CanSee(gamemap.Point{X: 10, Y: 10}) {
		t.Fatal("viewshed must contain the origin")
	}
	for _, p := range vs.VisibleTiles {
		if p.X < 0 || p.X >= 30 || p.Y < 0 || p.Y >= 30 {
			t.Fatalf("viewshed holds out-of-bounds cell %v", p)
		}
	}
}

func TestVisibilityRevealsAroundPlayer(t *testing.T) {
	w, _ := newWorld(roomMap(30, 30), 10, 10)
	gmap := component.FetchMap(w)

	UpdateVisibility(w)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := 10+dx, 10+dy
			if !gmap.IsRevealed(x, y) || !gmap.IsVisible(x, y) {
				t.Errorf("(%d,%d) should be revealed and visible", x, y)
			}
		}
	}
	if gmap.IsVisible(25, 25) {
		t.Error("(25,25) is beyond range 8 and should not be visible")
	}
}

func TestVisibilityFiltersOffMapCells(t *testing.T) {
	// An open map has no wall ring: FOV reaches the off-map cells, which
	// must not survive into the viewshed.
	w, player := newWorld(openMap(10, 10), 0, 0)

	UpdateVisibility(w)

	for _, p := range viewshedOf(w, player).VisibleTiles {
		if p.X < 0 || p.Y < 0 || p.X >= 10 || p.Y >= 10 {
			t.Fatalf("off-map cell %v kept in viewshed", p)
		}
	}
}

func TestVisibilityVisibleImpliesRevealed(t *testing.T) {
	w, player := newWorld(roomMap(40, 20), 5, 5)
	gmap := component.FetchMap(w)

	for _, step := range [][2]int{{0, 0}, {20, 5}, {35, 15}} {
		pos := component.Position{X: step[0] + 1, Y: step[1] + 1}
		w.Add(player, pos)
		vs := viewshedOf(w, player)
		vs.Dirty = true
		w.Add(player, vs)

		UpdateVisibility(w)

		for i := range gmap.Visible {
			if gmap.Visible[i] && !gmap.Revealed[i] {
				t.Fatalf("cell %d visible but not revealed", i)
			}
		}
	}
	// Cells seen from the first spot stay revealed but are no longer visible.
	if !gmap.IsRevealed(2, 2) || gmap.IsVisible(2, 2) {
		t.Error("(2,2) should be remembered but not currently visible")
	}
}

func TestVisibilitySkipsCleanViewsheds(t *testing.T) {
	w, player := newWorld(roomMap(30, 30), 10, 10)
	UpdateVisibility(w)

	// Poison the cache; a clean viewshed must not be recomputed.
	vs := viewshedOf(w, player)
	vs.VisibleTiles = []gamemap.Point{{X: 1, Y: 1}}
	w.Add(player, vs)

	UpdateVisibility(w)

	if got := viewshedOf(w, player).VisibleTiles; len(got) != 1 {
		t.Fatalf("clean viewshed was recomputed: %d cells", len(got))
	}
}

func TestVisibilityContinuesPastCleanEntity(t *testing.T) {
	// The player (lower ID) is clean, the monster after it is dirty; the
	// monster must still be refreshed.
	w, player := newWorld(roomMap(30, 30), 10, 10)
	vs := viewshedOf(w, player)
	vs.Dirty = false
	w.Add(player, vs)
	monster := addMonster(w, 15, 10, 8, "orc #0")

	UpdateVisibility(w)

	mvs := viewshedOf(w, monster)
	if mvs.Dirty || len(mvs.VisibleTiles) == 0 {
		t.Fatal("monster after a clean entity was not refreshed")
	}
}

func TestVisibilityTwiceIsNoop(t *testing.T) {
	w, player := newWorld(roomMap(30, 30), 10, 10)
	addMonster(w, 15, 10, 8, "orc #0")
	gmap := component.FetchMap(w)

	UpdateVisibility(w)
	first := slices.Clone(viewshedOf(w, player).VisibleTiles)
	revealed := slices.Clone(gmap.Revealed)
	visible := slices.Clone(gmap.Visible)

	UpdateVisibility(w)

	if !slices.Equal(first, viewshedOf(w, player).VisibleTiles) {
		t.Error("second pass changed the player's viewshed")
	}
	if !slices.Equal(revealed, gmap.Revealed) || !slices.Equal(visible, gmap.Visible) {
		t.Error("second pass changed the map masks")
	}
}

func TestVisibilityMonsterDoesNotTouchMasks(t *testing.T) {
	w, player := newWorld(roomMap(40, 30), 5, 5)
	vs := viewshedOf(w, player)
	vs.Dirty = false
	w.Add(player, vs)
	addMonster(w, 30, 20, 8, "snake #0")
	gmap := component.FetchMap(w)

	UpdateVisibility(w)

	if slices.Contains(gmap.Revealed, true) || slices.Contains(gmap.Visible, true) {
		t.Fatal("a monster's viewshed must not reveal map cells")
	}
}
