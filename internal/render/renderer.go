package render

import (
	"glyph-roguelike/internal/component"
	"glyph-roguelike/internal/console"
	"glyph-roguelike/internal/ecs"
	"glyph-roguelike/internal/gamemap"
	"sort"
)

// Renderer draws the game world onto a console.
type Renderer struct {
	con    console.Console
	colors TileColors
}

// NewRenderer creates a Renderer for the given console.
func NewRenderer(con console.Console) *Renderer {
	return &Renderer{con: con, colors: DefaultTileColors}
}

// DrawFrame draws the map, then every entity standing on a visible cell.
// The caller clears the console first.
func (r *Renderer) DrawFrame(w *ecs.World) {
	gmap := component.FetchMap(w)
	r.drawMap(gmap)
	r.drawEntities(w, gmap)
}

// drawMap renders visible tiles lit and revealed tiles from memory.
func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			idx := gmap.Idx(x, y)
			glyph, fg, bg, ok := r.colors.Style(gmap.Tiles[idx], gmap.Visible[idx], gmap.Revealed[idx])
			if !ok {
				continue
			}
			r.con.Set(x, y, fg, bg, glyph)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	pos  component.Position
	rend component.Renderable
}

// drawEntities renders all entities with Renderable + Position on visible
// cells, ordered by RenderOrder.
func (r *Renderer) drawEntities(w *ecs.World, gmap *gamemap.GameMap) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))

	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !gmap.IsVisible(pos.X, pos.Y) {
			continue
		}
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		entities = append(entities, renderableEntity{pos: pos, rend: rend})
	}

	// Lower order draws first, so higher orders end up on top.
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].rend.RenderOrder < entities[j].rend.RenderOrder
	})

	for _, e := range entities {
		r.con.Set(e.pos.X, e.pos.Y, e.rend.FGColor, e.rend.BGColor, e.rend.Glyph)
	}
}
