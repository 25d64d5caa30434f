package layout

import (
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"dungeonforge/pkg/engine/geom"
)

// WallCell is a derived boundary cell. North walls cap a floor cell from
// above only and use a distinct visual variant; every other wall rolls a
// uniform variant from the general wall-tile set.
type WallCell struct {
	Pos     geom.Point
	North   bool
	Variant int
}

// DeriveWalls computes the wall set from a floor set in a single pass: every
// 4-neighbor of a floor cell that is not itself floor becomes a wall. Wall
// cells are returned in row-major order so variant rolls replay under a fixed
// seed.
func DeriveWalls(floor mapset.Set[geom.Point], wallVariants int, rng *rand.Rand) []WallCell {
	wallSet := mapset.New[geom.Point]()
	floor.Each(func(p geom.Point) {
		for _, n := range p.Neighbors4() {
			if !floor.Has(n) {
				wallSet.Put(n)
			}
		}
	})

	cells := make([]geom.Point, 0, wallSet.Size())
	wallSet.Each(func(p geom.Point) {
		cells = append(cells, p)
	})
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y > cells[j].Y
		}
		return cells[i].X < cells[j].X
	})

	walls := make([]WallCell, 0, len(cells))
	for _, p := range cells {
		w := WallCell{Pos: p}
		if floor.Has(p.Below()) && !floor.Has(p.Above()) {
			w.North = true
		} else if wallVariants > 0 {
			w.Variant = rng.Intn(wallVariants)
		}
		walls = append(walls, w)
	}
	return walls
}
