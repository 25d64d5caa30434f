// Package layout tests cover the topology invariants: start/boss rooms,
// clearance between accepted rooms, floor connectivity, and the fixed
// 3-room scenario.
package layout

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"dungeonforge/pkg/dungeon/config"
	"dungeonforge/pkg/engine/geom"
)

// testParams returns a clamped copy of the defaults.
func testParams() *config.Params {
	p := config.Defaults()
	p.Clamp()
	return p
}

// reachableFloor returns all floor cells reachable from start via 4-way
// adjacency.
func reachableFloor(l *Layout, start geom.Point) mapset.Set[geom.Point] {
	visited := mapset.New[geom.Point]()
	if !l.Floor.Has(start) {
		return visited
	}
	visited.Put(start)
	queue := []geom.Point{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range current.Neighbors4() {
			if l.Floor.Has(n) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

func TestGraphGrowth_StartAndBossInvariants(t *testing.T) {
	params := testParams()
	for seed := int64(1); seed <= 25; seed++ {
		l := GraphGrowth.Generate(params, rand.New(rand.NewSource(seed)))

		if len(l.Rooms) == 0 {
			t.Fatalf("seed %d: empty room list", seed)
		}
		starts, bosses := 0, 0
		for _, r := range l.Rooms {
			if r.Start {
				starts++
				if r.Center != geom.Origin {
					t.Errorf("seed %d: start room at %v, want origin", seed, r.Center)
				}
			}
			if r.Boss {
				bosses++
			}
		}
		if starts != 1 {
			t.Errorf("seed %d: %d start rooms, want exactly 1", seed, starts)
		}
		if bosses != 1 {
			t.Errorf("seed %d: %d boss rooms, want exactly 1", seed, bosses)
		}
		if l.StartRoom == nil || l.BossRoom == nil {
			t.Errorf("seed %d: start/boss references not tracked", seed)
		}
	}
}

func TestGraphGrowth_RoomClearance(t *testing.T) {
	// Every pair of overlap-tested rooms must satisfy the clearance
	// threshold. The boss room is excluded: its fallback placement is
	// deliberately unconditional.
	params := testParams()
	for seed := int64(1); seed <= 25; seed++ {
		l := GraphGrowth.Generate(params, rand.New(rand.NewSource(seed)))
		for i := 0; i < len(l.Rooms); i++ {
			for j := i + 1; j < len(l.Rooms); j++ {
				a, b := l.Rooms[i], l.Rooms[j]
				if a.Boss || b.Boss {
					continue
				}
				if ClearanceOverlap(a, b, params.CorridorWidth) {
					t.Errorf("seed %d: rooms at %v and %v violate clearance", seed, a.Center, b.Center)
				}
			}
		}
	}
}

func TestGraphGrowth_ConnectionsFormATree(t *testing.T) {
	params := testParams()
	for seed := int64(1); seed <= 25; seed++ {
		l := GraphGrowth.Generate(params, rand.New(rand.NewSource(seed)))
		if got, want := len(l.Connections), len(l.Rooms)-1; got != want {
			t.Errorf("seed %d: %d connections for %d rooms, want %d", seed, got, len(l.Rooms), want)
		}
	}
}

func TestGraphGrowth_FloorConnected(t *testing.T) {
	params := testParams()
	for seed := int64(1); seed <= 25; seed++ {
		l := GraphGrowth.Generate(params, rand.New(rand.NewSource(seed)))
		visited := reachableFloor(l, geom.Origin)
		for _, r := range l.Rooms {
			if !visited.Has(r.Center) {
				t.Errorf("seed %d: room at %v unreachable from origin", seed, r.Center)
			}
		}
	}
}

func TestGraphGrowth_RoomBoxesAreFloor(t *testing.T) {
	params := testParams()
	l := GraphGrowth.Generate(params, rand.New(rand.NewSource(7)))
	for _, r := range l.Rooms {
		hw, hh := r.Width/2, r.Height/2
		for y := r.Center.Y - hh; y <= r.Center.Y+hh; y++ {
			for x := r.Center.X - hw; x <= r.Center.X+hw; x++ {
				if !l.Floor.Has(geom.Point{X: x, Y: y}) {
					t.Fatalf("room cell %d,%d missing from floor set", x, y)
				}
			}
		}
	}
}

func TestGraphGrowth_ThreeRoomScenario(t *testing.T) {
	// minRooms=maxRooms=3, 6x6 rooms, width-1 corridors, no branches.
	// With maximal room sizes only diagonal growth clears the overlap
	// threshold, so individual seeds can fall short of the target count;
	// scan for a seed that reaches it and verify the full shape there.
	params := &config.Params{
		MinRooms:      3,
		MaxRooms:      3,
		MinRoomSize:   6,
		MaxRoomSize:   6,
		BossRoomSize:  6,
		CorridorWidth: 1,
		BranchChance:  0,
	}
	params.Clamp()

	verified := false
	for seed := int64(1); seed <= 100; seed++ {
		l := GraphGrowth.Generate(params, rand.New(rand.NewSource(seed)))

		// Always true regardless of placement luck:
		if l.StartRoom == nil || l.StartRoom.Center != geom.Origin {
			t.Fatalf("seed %d: no start room at origin", seed)
		}
		if l.BossRoom == nil {
			t.Fatalf("seed %d: no boss room", seed)
		}
		if len(l.Rooms) < 2 || len(l.Rooms) > 3 {
			t.Fatalf("seed %d: %d rooms, want 2 or 3", seed, len(l.Rooms))
		}

		if len(l.Rooms) != 3 || verified {
			continue
		}
		verified = true

		if got := len(l.Connections); got != 2 {
			t.Errorf("seed %d: %d connections, want 2", seed, got)
		}
		branchRooms := 0
		for _, r := range l.Rooms {
			if !r.Start && !r.Boss {
				branchRooms++
			}
		}
		if branchRooms != 1 {
			t.Errorf("seed %d: %d intermediate rooms, want 1", seed, branchRooms)
		}
		if !reachableFloor(l, geom.Origin).Has(l.BossRoom.Center) {
			t.Errorf("seed %d: boss room not reachable through carved corridors", seed)
		}
	}
	if !verified {
		t.Fatal("no seed in 1..100 produced the full 3-room layout")
	}
}

func TestPickDirection_HonorsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	// All weight on the first entry: always East.
	only := []float64{1, 0, 0, 0, 0, 0, 0, 0}
	for i := 0; i < 50; i++ {
		if dir := pickDirection(rng, only); dir != geom.East {
			t.Fatalf("draw %d: got %v, want East", i, dir)
		}
	}

	// Zero-weight directions must never be selected.
	mixed := []float64{2, 0, 3, 0, 1, 0, 0.5, 0}
	for i := 0; i < 200; i++ {
		dir := pickDirection(rng, mixed)
		for j, d := range growthDirections {
			if d == dir && mixed[j] == 0 {
				t.Fatalf("draw %d: selected zero-weight direction %v", i, dir)
			}
		}
	}
}

func TestClearanceOverlap_Threshold(t *testing.T) {
	a := &Room{Center: geom.Point{X: 0, Y: 0}, Width: 6, Height: 6}
	near := &Room{Center: geom.Point{X: 8, Y: 0}, Width: 6, Height: 6}
	far := &Room{Center: geom.Point{X: 9, Y: 0}, Width: 6, Height: 6}

	// Threshold = (6+6)/2 + 1 + 2 = 9; overlap is strict less-than.
	if !ClearanceOverlap(a, near, 1) {
		t.Error("rooms 8 apart should violate the 9-cell clearance")
	}
	if ClearanceOverlap(a, far, 1) {
		t.Error("rooms exactly 9 apart should satisfy the clearance")
	}
}
