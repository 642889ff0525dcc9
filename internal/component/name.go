package component

import "glyph-roguelike/internal/ecs"

const CName ecs.ComponentType = 12

// Name is the label used when an entity shows up in the message log.
type Name struct {
	Value string
}

func (Name) Type() ecs.ComponentType { return CName }
