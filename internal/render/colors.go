package render

import (
	"glyph-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// TileColors holds the foreground colours used to draw terrain. Currently
// visible cells are lit; revealed-but-unseen cells are drawn from memory.
type TileColors struct {
	Floor  tcell.Color
	Wall   tcell.Color
	Memory tcell.Color
	BG     tcell.Color
}

// DefaultTileColors is the teal-floor, green-wall palette.
var DefaultTileColors = TileColors{
	Floor:  tcell.NewHexColor(0x00CC99),
	Wall:   tcell.ColorLime,
	Memory: tcell.ColorGray,
	BG:     tcell.ColorBlack,
}

// Style returns the glyph and colours for a tile. ok is false when the tile
// has never been seen and should stay blank.
func (c TileColors) Style(kind gamemap.TileKind, visible, revealed bool) (glyph rune, fg, bg tcell.Color, ok bool) {
	switch {
	case visible:
		fg = c.Floor
		if kind == gamemap.TileWall {
			fg = c.Wall
		}
	case revealed:
		fg = c.Memory
	default:
		return 0, 0, 0, false
	}
	return kind.Glyph(), fg, c.BG, true
}
