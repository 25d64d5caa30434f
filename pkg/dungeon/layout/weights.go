package layout

import (
	"math/rand"

	"dungeonforge/pkg/engine/geom"
)

// growthDirections is the fixed scan order of the weighted-direction tables.
// The selection scan below short-circuits on `remainder < weight`, so this
// order is part of the generator's observable behavior and must not change.
var growthDirections = []geom.Direction{
	geom.East,
	geom.NorthEast,
	geom.SouthEast,
	geom.North,
	geom.South,
	geom.NorthWest,
	geom.SouthWest,
	geom.West,
}

// growthWeights returns the direction weights for main-path growth. East
// dominates so the main path reads left to right, decaying slightly as the
// path progresses.
func growthWeights(progress float64) []float64 {
	return []float64{
		5.0 - 1.5*progress, // East
		2.0,                // NorthEast
		2.0,                // SouthEast
		1.5,                // North
		1.5,                // South
		0.75,               // NorthWest
		0.75,               // SouthWest
		0.5,                // West
	}
}

// branchWeights returns the direction weights for branch growth. West and the
// backward diagonals dominate so branches explore away from the main corridor.
func branchWeights() []float64 {
	return []float64{
		0.5, // East
		1.0, // NorthEast
		1.0, // SouthEast
		1.5, // North
		1.5, // South
		2.0, // NorthWest
		2.0, // SouthWest
		2.5, // West
	}
}

// pickDirection draws a direction proportionally to the given weights: draw a
// uniform value in [0, total), then walk the table subtracting weights until
// the remainder falls below the current entry.
func pickDirection(rng *rand.Rand, weights []float64) geom.Direction {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	remainder := rng.Float64() * total
	for i, w := range weights {
		if remainder < w {
			return growthDirections[i]
		}
		remainder -= w
	}
	return growthDirections[len(growthDirections)-1]
}
