package component

import (
	"glyph-roguelike/internal/ecs"
	"glyph-roguelike/internal/gamemap"
	"slices"
)

const CViewshed ecs.ComponentType = 5

// Viewshed caches the cells an entity can see. Dirty means VisibleTiles is
// stale and must be recomputed before it is trusted.
type Viewshed struct {
	VisibleTiles []gamemap.Point
	Range        int
	Dirty        bool
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }

// NewViewshed returns an empty viewshed that will be computed on the next
// visibility pass.
func NewViewshed(rng int) Viewshed {
	return Viewshed{Range: rng, Dirty: true}
}

// CanSee reports whether p is in the cached visible set.
func (v Viewshed) CanSee(p gamemap.Point) bool {
	return slices.Contains(v.VisibleTiles, p)
}
