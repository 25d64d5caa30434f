package layout

import (
	"math/rand"

	"dungeonforge/pkg/dungeon/config"
	"dungeonforge/pkg/engine/geom"
)

// Placement attempt budget per room before the growth step is skipped (or,
// for the boss room, forced).
const placementRetries = 10

// GraphGrowthGenerator grows a connected tree of rooms from a start room at
// the origin along weighted-random directions, ending in exactly one boss
// room.
type GraphGrowthGenerator struct{}

// Name returns the name of this generator.
func (g *GraphGrowthGenerator) Name() string {
	return "Graph Growth"
}

// Generate builds the full topology: main path, branches, corridors.
func (g *GraphGrowthGenerator) Generate(params *config.Params, rng *rand.Rand) *Layout {
	l := NewLayout()

	start := &Room{
		Center: geom.Origin,
		Width:  sampleSize(params, rng),
		Height: sampleSize(params, rng),
		Start:  true,
	}
	l.AddRoom(start)

	targetRooms := params.MinRooms + rng.Intn(params.MaxRooms-params.MinRooms+1)

	current := start
	for i := 1; i < targetRooms; i++ {
		isBoss := i == targetRooms-1
		progress := float64(i) / float64(targetRooms)

		placed := growRoom(l, current, params, rng, isBoss, progress)
		if placed == nil && isBoss {
			placed = forceBossRoom(l, current, params)
		}
		if placed != nil {
			current = placed
		}
		// A failed non-boss step is silently skipped; the final room count
		// may fall short of the target.
	}

	expandBranches(l, params, rng)
	l.fillRooms()
	carveCorridors(l, params, rng)

	return l
}

// growRoom attempts to place one room off the current room, retrying up to
// the placement budget. Returns the accepted room or nil.
func growRoom(l *Layout, current *Room, params *config.Params, rng *rand.Rand, isBoss bool, progress float64) *Room {
	for attempt := 0; attempt < placementRetries; attempt++ {
		dir := pickDirection(rng, growthWeights(progress))

		var distance int
		if isBoss {
			distance = params.BossRoomSize + params.CorridorWidth + 5
		} else {
			lo := params.MinRoomSize + params.CorridorWidth
			hi := params.MaxRoomSize + params.CorridorWidth
			distance = lo + rng.Intn(hi-lo+1)
		}

		candidate := newRoom(current.Center.Add(dir.Delta().Mul(distance)), params, rng, isBoss)
		if l.OverlapsAny(candidate, params.CorridorWidth) {
			continue
		}

		l.AddRoom(candidate)
		l.Connect(current, candidate)
		return candidate
	}
	return nil
}

// forceBossRoom places the boss room directly above the current room at a
// fixed larger offset, skipping the overlap test entirely. The boss room must
// always exist; a cramped layout is preferable to a missing one.
func forceBossRoom(l *Layout, current *Room, params *config.Params) *Room {
	offset := params.BossRoomSize + params.CorridorWidth + 10
	boss := &Room{
		Center: current.Center.Add(geom.Point{X: 0, Y: offset}),
		Width:  params.BossRoomSize,
		Height: params.BossRoomSize,
		Boss:   true,
	}
	l.AddRoom(boss)
	l.Connect(current, boss)
	return boss
}

// newRoom constructs a candidate room at the given position. Boss rooms use
// the fixed boss size; all others sample width and height independently.
func newRoom(center geom.Point, params *config.Params, rng *rand.Rand, isBoss bool) *Room {
	if isBoss {
		return &Room{
			Center: center,
			Width:  params.BossRoomSize,
			Height: params.BossRoomSize,
			Boss:   true,
		}
	}
	return &Room{
		Center: center,
		Width:  sampleSize(params, rng),
		Height: sampleSize(params, rng),
	}
}

func sampleSize(params *config.Params, rng *rand.Rand) int {
	return params.MinRoomSize + rng.Intn(params.MaxRoomSize-params.MinRoomSize+1)
}
