package system

import (
	"glyph-roguelike/internal/component"
	"glyph-roguelike/internal/ecs"
	"glyph-roguelike/internal/fov"
	"glyph-roguelike/internal/gamemap"
	"slices"
)

// UpdateVisibility recomputes every dirty viewshed. When the player's
// viewshed is refreshed, the map's visible mask is rebuilt from it and the
// cells are added to the revealed mask.
//
// Reads: Position, TagPlayer. Writes: Viewshed, the Map resource.
func UpdateVisibility(w *ecs.World) {
	gmap := component.FetchMap(w)

	for _, id := range w.Query(component.CViewshed, component.CPosition) {
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if !vs.Dirty {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)

		vs.Dirty = false
		// FOV reads the map into a scratch slice; the masks are written
		// only after it returns.
		tiles := fov.Compute(gamemap.Point{X: pos.X, Y: pos.Y}, vs.Range, gmap)
		vs.VisibleTiles = slices.DeleteFunc(tiles, func(p gamemap.Point) bool {
			return !gmap.InBounds(p.X, p.Y)
		})
		w.Add(id, vs)

		if w.Has(id, component.CTagPlayer) {
			gmap.ClearVisible()
			for _, p := range vs.VisibleTiles {
				gmap.See(p.X, p.Y)
			}
		}
	}
}
