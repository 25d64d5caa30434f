package layout

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"dungeonforge/pkg/engine/geom"
)

func TestDeriveWalls_VerticalStub(t *testing.T) {
	// A two-cell vertical shaft has exactly one north wall, capping the top
	// cell from above.
	floor := mapset.New[geom.Point]()
	floor.Put(geom.Point{X: 0, Y: 0})
	floor.Put(geom.Point{X: 0, Y: 1})

	walls := DeriveWalls(floor, 4, rand.New(rand.NewSource(1)))

	if len(walls) != 6 {
		t.Errorf("got %d walls, want 6", len(walls))
	}
	northCount := 0
	for _, w := range walls {
		if w.North {
			northCount++
			if w.Pos != (geom.Point{X: 0, Y: 2}) {
				t.Errorf("north wall at %v, want {0,2}", w.Pos)
			}
		}
	}
	if northCount != 1 {
		t.Errorf("got %d north walls, want 1", northCount)
	}
}

func TestDeriveWalls_DisjointFromFloorAndAdjacent(t *testing.T) {
	params := testParams()
	rng := rand.New(rand.NewSource(3))
	l := GraphGrowth.Generate(params, rng)

	walls := DeriveWalls(l.Floor, params.WallVariants, rng)
	for _, w := range walls {
		if l.Floor.Has(w.Pos) {
			t.Errorf("wall at %v is also a floor cell", w.Pos)
		}
		touches := false
		for _, n := range w.Pos.Neighbors4() {
			if l.Floor.Has(n) {
				touches = true
				break
			}
		}
		if !touches {
			t.Errorf("wall at %v does not touch any floor cell", w.Pos)
		}
	}
}

func TestDeriveWalls_VariantRange(t *testing.T) {
	params := testParams()
	rng := rand.New(rand.NewSource(5))
	l := GraphGrowth.Generate(params, rng)

	walls := DeriveWalls(l.Floor, params.WallVariants, rng)
	for _, w := range walls {
		if w.North {
			continue
		}
		if w.Variant < 0 || w.Variant >= params.WallVariants {
			t.Errorf("wall at %v has variant %d outside [0,%d)", w.Pos, w.Variant, params.WallVariants)
		}
	}
}

func TestDeriveWalls_Deterministic(t *testing.T) {
	params := testParams()
	l := GraphGrowth.Generate(params, rand.New(rand.NewSource(9)))

	first := DeriveWalls(l.Floor, params.WallVariants, rand.New(rand.NewSource(42)))
	second := DeriveWalls(l.Floor, params.WallVariants, rand.New(rand.NewSource(42)))

	if len(first) != len(second) {
		t.Fatalf("wall counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("wall %d differs between identical seeds: %+v vs %+v", i, first[i], second[i])
		}
	}
}
