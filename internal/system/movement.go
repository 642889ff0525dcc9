package system

import (
	"glyph-roguelike/internal/component"
	"glyph-roguelike/internal/ecs"
	"glyph-roguelike/internal/gamemap"
)

// MoveResult describes the outcome of a TryMovePlayer call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall in the way, or no movable player
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	}
	return "unknown"
}

// TryMovePlayer steps the player by (dx, dy) unless the target cell is a
// wall. The new position is clamped to the map, so stepping off the edge
// leaves the player where they are. A successful step marks the player's
// viewshed dirty and updates the PlayerPos resource. A blocked step changes
// nothing.
//
// Reads: TagPlayer, the Map resource. Writes: Position, Viewshed, PlayerPos.
func TryMovePlayer(w *ecs.World, dx, dy int) MoveResult {
	gmap := component.FetchMap(w)
	result := MoveBlocked

	for _, id := range w.Query(component.CTagPlayer, component.CPosition, component.CViewshed) {
		pos := w.Get(id, component.CPosition).(component.Position)
		nx, ny := pos.X+dx, pos.Y+dy
		if gmap.InBounds(nx, ny) && gmap.At(nx, ny) == gamemap.TileWall {
			continue
		}

		pos.X = min(max(nx, 0), gmap.Width-1)
		pos.Y = min(max(ny, 0), gmap.Height-1)
		w.Add(id, pos)

		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		vs.Dirty = true
		w.Add(id, vs)

		w.Insert(component.PlayerPos{Point: gamemap.Point{X: pos.X, Y: pos.Y}})
		result = MoveOK
	}
	return result
}
