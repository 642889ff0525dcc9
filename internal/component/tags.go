package component

import "glyph-roguelike/internal/ecs"

const (
	CTagPlayer  ecs.ComponentType = 8
	CTagMonster ecs.ComponentType = 9
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagMonster marks a hostile actor.
type TagMonster struct{}

func (TagMonster) Type() ecs.ComponentType { return CTagMonster }
