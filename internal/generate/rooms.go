package generate

import (
	"context"
	"glyph-roguelike/internal/gamemap"
	"glyph-roguelike/internal/telemetry"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
)

// Config drives rooms-and-corridors generation for one level.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int // placement attempts; rejected rooms count too
	MinRoomSize         int
	MaxRoomSize         int
	Rand                *rand.Rand
}

// DefaultConfig returns the 80×50, 30-attempt, 6–10 tile room setup.
func DefaultConfig(rng *rand.Rand) *Config {
	return &Config{
		MapWidth:    gamemap.DefaultWidth,
		MapHeight:   gamemap.DefaultHeight,
		MaxRooms:    30,
		MinRoomSize: 6,
		MaxRoomSize: 10,
		Rand:        rng,
	}
}

// NewMap carves non-overlapping rooms into a wall-filled map and joins each
// accepted room to the previous one with an L-shaped corridor. Rooms never
// touch the outer ring, so the border stays wall.
func NewMap(ctx context.Context, cfg *Config) *gamemap.GameMap {
	_, span := telemetry.Tracer("generate").Start(ctx, "map.generate")
	defer span.End()

	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)

	for range cfg.MaxRooms {
		room, ok := proposeRoom(cfg)
		if !ok {
			continue
		}
		overlaps := false
		for _, other := range gmap.Rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(gmap, room)
		if n := len(gmap.Rooms); n > 0 {
			px, py := gmap.Rooms[n-1].Center()
			nx, ny := room.Center()
			carveCorridor(gmap, px, py, nx, ny, cfg.Rand)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}

	span.SetAttributes(
		attribute.Int("map.width", gmap.Width),
		attribute.Int("map.height", gmap.Height),
		attribute.Int("map.room_count", len(gmap.Rooms)),
	)
	return gmap
}

// proposeRoom picks a random room rectangle that lies strictly inside the
// border. Returns false when the map is too small for the size range.
func proposeRoom(cfg *Config) (gamemap.Rect, bool) {
	w := cfg.MinRoomSize + cfg.Rand.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
	h := cfg.MinRoomSize + cfg.Rand.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
	spanX := cfg.MapWidth - w - 2
	spanY := cfg.MapHeight - h - 2
	if spanX < 1 || spanY < 1 {
		return gamemap.Rect{}, false
	}
	x := 1 + cfg.Rand.Intn(spanX)
	y := 1 + cfg.Rand.Intn(spanY)
	return gamemap.NewRect(x, y, w, h), true
}

// carveRoom floors the room interior. The top and left edges stay wall, so
// adjacent rooms always keep a wall between them.
func carveRoom(gmap *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}
