package gamemap

// Reference dimensions of the console the map is drawn on.
const (
	DefaultWidth  = 80
	DefaultHeight = 50
)

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle used for rooms. Corners are inclusive.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds the rectangle with top-left corner (x, y) spanning w×h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap holds the tile grid, the player's visibility masks and the room
// list for one dungeon level. All slices are row-major with length
// Width*Height.
type GameMap struct {
	Width, Height int
	Tiles         []TileKind
	Revealed      []bool
	Visible       []bool
	Rooms         []Rect
}

// New creates a GameMap filled with walls, nothing revealed.
func New(width, height int) *GameMap {
	n := width * height
	tiles := make([]TileKind, n)
	for i := range tiles {
		tiles[i] = TileWall
	}
	return &GameMap{
		Width:    width,
		Height:   height,
		Tiles:    tiles,
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
	}
}

// Idx converts (x, y) to a slice index. The caller guarantees bounds.
func (m *GameMap) Idx(x, y int) int {
	return y*m.Width + x
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile kind at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) TileKind {
	return m.Tiles[m.Idx(x, y)]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, k TileKind) {
	m.Tiles[m.Idx(x, y)] = k
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.At(x, y).Walkable()
}

// IsOpaque reports whether (x, y) blocks sight. Cells off the map do.
func (m *GameMap) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.At(x, y).Opaque()
}

// IsRevealed reports whether the player has ever seen (x, y).
func (m *GameMap) IsRevealed(x, y int) bool {
	return m.InBounds(x, y) && m.Revealed[m.Idx(x, y)]
}

// IsVisible reports whether (x, y) is in the player's current view.
func (m *GameMap) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.Visible[m.Idx(x, y)]
}

// ClearVisible forgets the current view. Revealed cells stay revealed.
func (m *GameMap) ClearVisible() {
	for i := range m.Visible {
		m.Visible[i] = false
	}
}

// See marks (x, y) as both revealed and currently visible.
func (m *GameMap) See(x, y int) {
	idx := m.Idx(x, y)
	m.Revealed[idx] = true
	m.Visible[idx] = true
}
