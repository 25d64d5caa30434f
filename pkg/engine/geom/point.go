// Package geom provides generic integer 2D grid primitives.
// These are engine-level constructs usable by any tile-based game.
// The coordinate system is y-up: North increases Y, South decreases it.
package geom

import (
	"fmt"
	"math"
)

// Point is an integer grid coordinate.
type Point struct {
	X int
	Y int
}

// Origin is the zero point.
var Origin = Point{0, 0}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s int) Point {
	return Point{p.X * s, p.Y * s}
}

// Distance returns the straight-line distance to o.
func (p Point) Distance(o Point) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan returns the Manhattan distance to o.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Above returns the cell directly above p.
func (p Point) Above() Point {
	return Point{p.X, p.Y + 1}
}

// Below returns the cell directly below p.
func (p Point) Below() Point {
	return Point{p.X, p.Y - 1}
}

// Neighbors4 returns the four cardinally adjacent cells.
func (p Point) Neighbors4() [4]Point {
	return [4]Point{
		{p.X, p.Y + 1},
		{p.X + 1, p.Y},
		{p.X, p.Y - 1},
		{p.X - 1, p.Y},
	}
}

// String returns the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// abs returns the absolute value of an integer.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
