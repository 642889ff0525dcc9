package system

import (
	"glyph-roguelike/internal/component"
	"glyph-roguelike/internal/ecs"
	"glyph-roguelike/internal/gamemap"
)

// openMap creates a w×h map that is entirely passable floor.
func openMap(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for y := range h {
		for x := range w {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
	return gmap
}

// roomMap creates a w×h map with walls on the border ring and floor inside.
func roomMap(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
	return gmap
}

// newWorld inserts gmap and a player at (px, py) with a dirty range-8 viewshed.
func newWorld(gmap *gamemap.GameMap, px, py int) (*ecs.World, ecs.EntityID) {
	w := ecs.NewWorld()
	w.Insert(component.MapResource{GameMap: gmap})
	player := w.CreateEntity()
	w.Add(player, component.Position{X: px, Y: py})
	w.Add(player, component.TagPlayer{})
	w.Add(player, component.NewViewshed(8))
	w.Add(player, component.Name{Value: "Venturer"})
	w.Insert(component.PlayerPos{Point: gamemap.Point{X: px, Y: py}})
	return w, player
}

// addMonster adds a named monster with a dirty viewshed of the given range.
func addMonster(w *ecs.World, x, y, rng int, name string) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.TagMonster{})
	w.Add(id, component.NewViewshed(rng))
	w.Add(id, component.Name{Value: name})
	return id
}

func viewshedOf(w *ecs.World, id ecs.EntityID) component.Viewshed {
	return w.Get(id, component.CViewshed).(component.Viewshed)
}

func positionOf(w *ecs.World, id ecs.EntityID) component.Position {
	return w.Get(id, component.CPosition).(component.Position)
}

// recorder is a gamelog.Sink that keeps every message.
type recorder struct {
	msgs []string
}

func (r *recorder) Add(msg string) { r.msgs = append(r.msgs, msg) }
