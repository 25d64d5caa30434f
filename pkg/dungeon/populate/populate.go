// Package populate runs the decoration and entity placement passes over a
// finished layout. Every pass is an independent Bernoulli sampling of the
// floor set or room list; the passes run in a fixed order so one seeded rng
// replays the exact same dungeon.
package populate

import (
	"math"
	"math/rand"

	"dungeonforge/pkg/dungeon/config"
	"dungeonforge/pkg/dungeon/layout"
	"dungeonforge/pkg/engine/geom"
)

// Decoration is a floor-tile decoration.
type Decoration struct {
	Pos     geom.Point
	Variant int
}

// Light is a point light placement.
type Light struct {
	Pos       geom.Point
	Color     string
	Intensity float64
	Radius    float64
}

// Enemy is an enemy spawn.
type Enemy struct {
	Pos     geom.Point
	Variant int
}

// Prefab is a spaced decoration prefab placement.
type Prefab struct {
	Pos     geom.Point
	Variant int
}

// Placements holds the output of every sampling pass for one generation run.
type Placements struct {
	Decorations []Decoration
	Lights      []Light
	Enemies     []Enemy
	Chests      []geom.Point
	Prefabs     []Prefab

	PlayerSpawn geom.Point
	BossSpawn   geom.Point
}

// Sample runs all placement passes. Pass order: decorations, lights, enemies,
// chests, spaced prefabs, then the boss and player spawn points.
func Sample(l *layout.Layout, params *config.Params, rng *rand.Rand) *Placements {
	p := &Placements{}
	floorCells := l.SortedFloor()

	sampleDecorations(p, l, floorCells, params, rng)
	sampleLights(p, floorCells, params, rng)
	sampleEnemies(p, l, params, rng)
	sampleChests(p, l, params, rng)
	samplePrefabs(p, l, params, rng)

	if l.BossRoom != nil {
		p.BossSpawn = l.BossRoom.Center
	}
	if l.StartRoom != nil {
		p.PlayerSpawn = l.StartRoom.Center
	}
	return p
}

// sampleDecorations rolls a decoration per floor cell. Cells adjacent to a
// wall and cells inside the start room are never decorated.
func sampleDecorations(p *Placements, l *layout.Layout, floorCells []geom.Point, params *config.Params, rng *rand.Rand) {
	if params.DecorationVariants <= 0 {
		return
	}
	for _, cell := range floorCells {
		if l.StartRoom != nil && l.StartRoom.Contains(cell) {
			continue
		}
		if nextToWall(l, cell) {
			continue
		}
		if rng.Float64() >= params.DecorationDensity {
			continue
		}
		p.Decorations = append(p.Decorations, Decoration{
			Pos:     cell,
			Variant: rng.Intn(params.DecorationVariants),
		})
	}
}

// sampleLights rolls a point light per floor cell with intensity and radius
// drawn uniformly from their configured ranges.
func sampleLights(p *Placements, floorCells []geom.Point, params *config.Params, rng *rand.Rand) {
	if params.LightDensity <= 0 {
		return
	}
	for _, cell := range floorCells {
		if rng.Float64() >= params.LightDensity {
			continue
		}
		p.Lights = append(p.Lights, Light{
			Pos:       cell,
			Color:     params.LightColor,
			Intensity: uniform(rng, params.LightIntensityMin, params.LightIntensityMax),
			Radius:    uniform(rng, params.LightRadiusMin, params.LightRadiusMax),
		})
	}
}

// sampleEnemies rolls up to MaxEnemiesPerRoom enemies per room, skipping the
// start and boss rooms.
func sampleEnemies(p *Placements, l *layout.Layout, params *config.Params, rng *rand.Rand) {
	if params.EnemyVariants <= 0 {
		return
	}
	for _, room := range l.Rooms {
		if room.Start || room.Boss {
			continue
		}
		for slot := 0; slot < params.MaxEnemiesPerRoom; slot++ {
			if rng.Float64() >= params.EnemyChance {
				continue
			}
			p.Enemies = append(p.Enemies, Enemy{
				Pos:     room.RandomInterior(rng),
				Variant: rng.Intn(params.EnemyVariants),
			})
		}
	}
}

// sampleChests rolls at most one chest per room, skipping the start and boss
// rooms.
func sampleChests(p *Placements, l *layout.Layout, params *config.Params, rng *rand.Rand) {
	for _, room := range l.Rooms {
		if room.Start || room.Boss {
			continue
		}
		if rng.Float64() >= params.ChestChance {
			continue
		}
		p.Chests = append(p.Chests, room.RandomInterior(rng))
	}
}

// samplePrefabs places spaced decoration prefabs per room with a target count
// proportional to the room area. Every candidate is rejection-tested against
// all previously accepted placements in this pass; the quadratic scan is fine
// at these densities and room counts.
func samplePrefabs(p *Placements, l *layout.Layout, params *config.Params, rng *rand.Rand) {
	if params.PrefabVariants <= 0 {
		return
	}
	var accepted []geom.Point
	for _, room := range l.Rooms {
		if room.Start {
			continue
		}
		target := int(math.Round(float64(room.Width*room.Height) * params.PrefabDensity))
		placed := 0
		for attempt := 0; attempt < target*4 && placed < target; attempt++ {
			candidate := room.RandomInterior(rng)
			if !FarEnough(candidate, accepted, params.MinPrefabSpacing) {
				continue
			}
			accepted = append(accepted, candidate)
			p.Prefabs = append(p.Prefabs, Prefab{
				Pos:     candidate,
				Variant: rng.Intn(params.PrefabVariants),
			})
			placed++
		}
	}
}

// FarEnough reports whether candidate keeps at least minSpacing straight-line
// distance from every previously accepted position.
func FarEnough(candidate geom.Point, accepted []geom.Point, minSpacing float64) bool {
	for _, a := range accepted {
		if candidate.Distance(a) < minSpacing {
			return false
		}
	}
	return true
}

// nextToWall reports whether any 4-neighbor of the cell is not floor.
func nextToWall(l *layout.Layout, cell geom.Point) bool {
	for _, n := range cell.Neighbors4() {
		if !l.Floor.Has(n) {
			return true
		}
	}
	return false
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
