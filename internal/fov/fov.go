// Package fov computes symmetric field of view by shadowcasting each of the
// four cardinal quadrants row by row. Slopes are kept as exact fractions, so
// if A sees B within a radius then B sees A within the same radius.
package fov

import (
	"cmp"
	"glyph-roguelike/internal/gamemap"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Opacity reports whether a cell blocks sight. Cells outside the map should
// report true.
type Opacity interface {
	IsOpaque(x, y int) bool
}

// Compute returns every cell visible from origin within radius (Euclidean,
// dx²+dy² ≤ radius²), sorted by row then column. The origin is always
// included; opaque cells bounding the lit area are included too. Compute only
// reads through opacity.
func Compute(origin gamemap.Point, radius int, opacity Opacity) []gamemap.Point {
	seen := mapset.New[gamemap.Point]()
	seen.Put(origin)

	if radius > 0 {
		for _, q := range quadrants {
			s := &scanner{origin: origin, radius: radius, quad: q, opacity: opacity, seen: seen}
			s.scan(row{depth: 1, start: slope{-1, 1}, end: slope{1, 1}})
		}
	}

	out := make([]gamemap.Point, 0, seen.Size())
	seen.Each(func(p gamemap.Point) {
		out = append(out, p)
	})
	slices.SortFunc(out, func(a, b gamemap.Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// quadrant maps (depth, col) in scan space to a world offset.
type quadrant func(o gamemap.Point, depth, col int) gamemap.Point

var quadrants = [4]quadrant{
	func(o gamemap.Point, d, c int) gamemap.Point { return gamemap.Point{X: o.X + c, Y: o.Y - d} }, // north
	func(o gamemap.Point, d, c int) gamemap.Point { return gamemap.Point{X: o.X + d, Y: o.Y + c} }, // east
	func(o gamemap.Point, d, c int) gamemap.Point { return gamemap.Point{X: o.X + c, Y: o.Y + d} }, // south
	func(o gamemap.Point, d, c int) gamemap.Point { return gamemap.Point{X: o.X - d, Y: o.Y + c} }, // west
}

// slope is the fraction num/den with den > 0.
type slope struct {
	num, den int
}

// tileSlope is the slope of the left edge of the tile at (depth, col).
func tileSlope(depth, col int) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

type row struct {
	depth      int
	start, end slope
}

// minCol rounds depth*start to the nearest column, ties up.
func (r row) minCol() int {
	return floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
}

// maxCol rounds depth*end to the nearest column, ties down.
func (r row) maxCol() int {
	return -floorDiv(-(2*r.depth*r.end.num - r.end.den), 2*r.end.den)
}

// symmetric reports whether col lies inside the row's slopes, which is the
// condition that keeps floor visibility symmetric.
func (r row) symmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

type scanner struct {
	origin  gamemap.Point
	radius  int
	quad    quadrant
	opacity Opacity
	seen    mapset.Set[gamemap.Point]
}

func (s *scanner) scan(r row) {
	if r.depth > s.radius {
		return
	}
	var prevSeen, prevWall bool
	last := r.maxCol()
	for col := r.minCol(); col <= last; col++ {
		p := s.quad(s.origin, r.depth, col)
		wall := s.opacity.IsOpaque(p.X, p.Y)

		if (wall || r.symmetric(col)) && r.depth*r.depth+col*col <= s.radius*s.radius {
			s.seen.Put(p)
		}
		if prevSeen && prevWall && !wall {
			r.start = tileSlope(r.depth, col)
		}
		if prevSeen && !prevWall && wall {
			below := r.next()
			below.end = tileSlope(r.depth, col)
			s.scan(below)
		}
		prevSeen, prevWall = true, wall
	}
	if prevSeen && !prevWall {
		s.scan(r.next())
	}
}

// floorDiv divides rounding toward negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
