package component

import (
	"glyph-roguelike/internal/ecs"
	"glyph-roguelike/internal/gamemap"
)

// Resource keys share the component key space but never attach to entities.
const (
	RMap       ecs.ComponentType = 32
	RPlayerPos ecs.ComponentType = 33
)

// MapResource wraps the level map so it can be stored as a world resource.
type MapResource struct{ *gamemap.GameMap }

func (MapResource) Type() ecs.ComponentType { return RMap }

// PlayerPos mirrors the player entity's Position for systems that only need
// to know where the player stands.
type PlayerPos struct{ gamemap.Point }

func (PlayerPos) Type() ecs.ComponentType { return RPlayerPos }

// FetchMap returns the map resource. Panics if it was never inserted.
func FetchMap(w *ecs.World) *gamemap.GameMap {
	return w.MustFetch(RMap).(MapResource).GameMap
}

// FetchPlayerPos returns the player position resource. Panics if it was
// never inserted.
func FetchPlayerPos(w *ecs.World) gamemap.Point {
	return w.MustFetch(RPlayerPos).(PlayerPos).Point
}
