package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// Walkable reports whether an entity may stand on the tile.
func (k TileKind) Walkable() bool { return k == TileFloor }

// Opaque reports whether the tile blocks line of sight.
func (k TileKind) Opaque() bool { return k == TileWall }

// Glyph returns the character the tile is drawn with.
func (k TileKind) Glyph() rune {
	if k == TileWall {
		return '#'
	}
	return '.'
}
