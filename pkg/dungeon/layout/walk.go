package layout

import (
	"math/rand"

	"dungeonforge/pkg/dungeon/config"
	"dungeonforge/pkg/engine/geom"
)

// RandomWalkGenerator carves the dungeon by walking corridors in random
// directions with a decaying branch probability, instead of growing a room
// graph. Rooms appear at walk dead ends; the boss room is stamped over the
// carved cell furthest from the origin.
type RandomWalkGenerator struct{}

// Name returns the name of this generator.
func (g *RandomWalkGenerator) Name() string {
	return "Random Walk"
}

// Generate carves main walks in all four cardinal directions from the origin.
func (g *RandomWalkGenerator) Generate(params *config.Params, rng *rand.Rand) *Layout {
	l := NewLayout()

	start := &Room{
		Center: geom.Origin,
		Width:  sampleSize(params, rng),
		Height: sampleSize(params, rng),
		Start:  true,
	}
	l.AddRoom(start)

	for _, dir := range geom.CardinalDirections() {
		g.walk(l, params, rng, geom.Origin, dir, params.BranchChance)
	}

	// The carved cell furthest from the origin becomes the boss room center,
	// which keeps the boss reachable by construction.
	bossCenter := geom.Origin
	best := -1.0
	for _, p := range l.SortedFloor() {
		if d := p.Distance(geom.Origin); d > best {
			best = d
			bossCenter = p
		}
	}
	l.AddRoom(&Room{
		Center: bossCenter,
		Width:  params.BossRoomSize,
		Height: params.BossRoomSize,
		Boss:   true,
	})

	l.fillRooms()
	return l
}

// walk carves a straight corridor segment, branching off with decaying
// probability at every step. Dead ends try to place a room.
func (g *RandomWalkGenerator) walk(l *Layout, params *config.Params, rng *rand.Rand, pos geom.Point, dir geom.Direction, branchChance float64) {
	lo := params.MinRoomSize + params.CorridorWidth
	hi := params.MaxRoomSize + params.CorridorWidth
	distance := lo + rng.Intn(hi-lo+1)

	delta := dir.Delta()
	for s := 0; s < distance; s++ {
		stampCorridor(l, pos, params.CorridorWidth)
		if rng.Float64() < branchChance {
			branchDir := geom.CardinalDirections()[rng.Intn(4)]
			g.walk(l, params, rng, pos, branchDir, branchChance-0.1)
		}
		pos = pos.Add(delta)
	}
	stampCorridor(l, pos, params.CorridorWidth)

	candidate := newRoom(pos, params, rng, false)
	if !l.OverlapsAny(candidate, params.CorridorWidth) {
		l.AddRoom(candidate)
	}
}
