package assets

import "github.com/gdamore/tcell/v2"

// MonsterDef describes one kind of monster that can be spawned.
type MonsterDef struct {
	Name  string
	Glyph rune
	FG    tcell.Color
}

// Monsters is the spawn table rolled once per monster room.
var Monsters = []MonsterDef{
	{Name: "Bard", Glyph: 'B', FG: tcell.ColorCornflowerBlue},
	{Name: "goblin", Glyph: 'g', FG: tcell.ColorLightGreen},
	{Name: "orc", Glyph: 'o', FG: tcell.ColorDarkGreen},
	{Name: "snake", Glyph: 's', FG: tcell.ColorGreen},
}

// InvalidMonster is used when a roll falls outside the table.
var InvalidMonster = MonsterDef{Name: "Invalid", Glyph: '?', FG: tcell.ColorPurple}

// MonsterByRoll returns the table entry for roll, or InvalidMonster.
func MonsterByRoll(roll int) MonsterDef {
	if roll < 0 || roll >= len(Monsters) {
		return InvalidMonster
	}
	return Monsters[roll]
}

// Player appearance and naming.
const (
	PlayerName  = "Venturer"
	PlayerGlyph = '☻'
)

// WindowTitle is shown by terminals that support setting a title.
const WindowTitle = "My Rustlike"
