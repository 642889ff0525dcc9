package game

import (
	"context"
	"errors"
	"glyph-roguelike/assets"
	"glyph-roguelike/internal/component"
	"glyph-roguelike/internal/ecs"
	"glyph-roguelike/internal/factory"
	"glyph-roguelike/internal/gamemap"
	"glyph-roguelike/internal/generate"
	"math/rand"
)

// ErrNoRooms is returned when the generator could not place a single room
// to start the player in.
var ErrNoRooms = errors.New("generated map has no rooms")

// NewWorld generates a level and populates a fresh world: the player stands
// at the centre of the first room and every later room gets one monster.
// The map and the player position are inserted as resources.
func NewWorld(ctx context.Context, cfg *generate.Config) (*ecs.World, ecs.EntityID, error) {
	gmap := generate.NewMap(ctx, cfg)
	if len(gmap.Rooms) == 0 {
		return nil, ecs.NilEntity, ErrNoRooms
	}

	w := ecs.NewWorld()
	w.Insert(component.MapResource{GameMap: gmap})

	px, py := gmap.Rooms[0].Center()
	player := factory.NewPlayer(w, px, py)
	w.Insert(component.PlayerPos{Point: gamemap.Point{X: px, Y: py}})

	spawnMonsters(w, gmap, cfg.Rand)
	return w, player, nil
}

// spawnMonsters places one randomly chosen monster at the centre of each
// room after the first. Monsters are numbered from #0 in room order.
func spawnMonsters(w *ecs.World, gmap *gamemap.GameMap, rng *rand.Rand) {
	for n, room := range gmap.Rooms[1:] {
		x, y := room.Center()
		factory.NewMonster(w, assets.MonsterByRoll(rng.Intn(len(assets.Monsters))), x, y, n)
	}
}
