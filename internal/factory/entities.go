package factory

import (
	"fmt"
	"glyph-roguelike/assets"
	"glyph-roguelike/internal/component"
	"glyph-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// ViewRange is how far the player and monsters can see.
const ViewRange = 8

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       assets.PlayerGlyph,
		FGColor:     tcell.ColorYellow,
		BGColor:     tcell.ColorBlack,
		RenderOrder: 10,
	})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.NewViewshed(ViewRange))
	w.Add(id, component.Name{Value: assets.PlayerName})
	return id
}

// NewMonster creates a monster of the given kind at (x, y). n numbers the
// monster in its name, e.g. "goblin #3".
func NewMonster(w *ecs.World, def assets.MonsterDef, x, y, n int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     def.FG,
		BGColor:     tcell.ColorBlack,
		RenderOrder: 5,
	})
	w.Add(id, component.NewViewshed(ViewRange))
	w.Add(id, component.TagMonster{})
	w.Add(id, component.Name{Value: fmt.Sprintf("%s #%d", def.Name, n)})
	return id
}
