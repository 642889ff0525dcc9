package game

import (
	"glyph-roguelike/internal/component"
	"glyph-roguelike/internal/ecs"
	"glyph-roguelike/internal/factory"
	"glyph-roguelike/internal/gamelog"
	"glyph-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// nullConsole discards every draw call.
type nullConsole struct{ clears int }

func (c *nullConsole) Cls() { c.clears++ }
func (c *nullConsole) Set(int, int, tcell.Color, tcell.Color, rune) {}

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

// newTestState puts a player at (px, py) on gmap and returns a paused-ready
// State whose first tick will run the systems.
func newTestState(gmap *gamemap.GameMap, px, py int) (*State, ecs.EntityID, *gamelog.Log) {
	w := ecs.NewWorld()
	w.Insert(component.MapResource{GameMap: gmap})
	player := factory.NewPlayer(w, px, py)
	w.Insert(component.PlayerPos{Point: gamemap.Point{X: px, Y: py}})
	messages := gamelog.New(0, nil)
	return NewState(w, &nullConsole{}, messages), player, messages
}

func keyEvent(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func positionOf(w *ecs.World, id ecs.EntityID) component.Position {
	return w.Get(id, component.CPosition).(component.Position)
}

func viewshedOf(w *ecs.World, id ecs.EntityID) component.Viewshed {
	return w.Get(id, component.CViewshed).(component.Viewshed)
}
