package system

import (
	"fmt"
	"glyph-roguelike/internal/component"
	"glyph-roguelike/internal/ecs"
	"glyph-roguelike/internal/gamelog"
)

// ProcessMonsterAI reports every monster whose viewshed holds the player's
// cell. Monsters do not move yet; they only notice the player.
//
// Reads: TagMonster, Viewshed, Name, the PlayerPos resource.
func ProcessMonsterAI(w *ecs.World, sink gamelog.Sink) {
	playerPos := component.FetchPlayerPos(w)

	for _, id := range w.Query(component.CTagMonster, component.CViewshed) {
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if !vs.CanSee(playerPos) {
			continue
		}
		sink.Add(fmt.Sprintf("%s shouts insults", entityName(w, id)))
	}
}

// entityName returns the Name of an entity, or a generic label.
func entityName(w *ecs.World, id ecs.EntityID) string {
	c := w.Get(id, component.CName)
	if c == nil {
		return "Monster"
	}
	return c.(component.Name).Value
}
