package layout

import (
	"math/rand"

	"dungeonforge/pkg/dungeon/config"
)

// Branches grow for at most this many generations off the main path.
const branchDepth = 2

// expandBranches adds short side-branch rooms off existing rooms. The start
// and boss rooms never sprout branches. Each eligible room gets one weighted
// coin flip and, on success, a single placement attempt; there is no retry
// loop. Accepted rooms form the next depth's frontier.
func expandBranches(l *Layout, params *config.Params, rng *rand.Rand) {
	frontier := make([]*Room, 0, len(l.Rooms))
	for _, r := range l.Rooms {
		if r.Start || r.Boss {
			continue
		}
		frontier = append(frontier, r)
	}

	for depth := 0; depth < branchDepth; depth++ {
		var next []*Room
		for _, room := range frontier {
			if rng.Float64() >= params.BranchChance {
				continue
			}

			dir := pickDirection(rng, branchWeights())
			lo := params.MinRoomSize + params.CorridorWidth
			hi := params.MaxRoomSize + params.CorridorWidth
			distance := lo + rng.Intn(hi-lo+1)

			candidate := newRoom(room.Center.Add(dir.Delta().Mul(distance)), params, rng, false)
			if l.OverlapsAny(candidate, params.CorridorWidth) {
				continue
			}

			l.AddRoom(candidate)
			l.Connect(room, candidate)
			next = append(next, candidate)
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}
}
