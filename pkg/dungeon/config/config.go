// Package config holds the tunable parameters for dungeon generation and
// loads them from HCL files.
package config

import (
	"fmt"
)

// Params holds every knob consumed by the generation pipeline. Callers are
// expected to Clamp before handing the struct to a generator; Validate reports
// configurations that cannot produce a usable dungeon at all.
type Params struct {
	// Topology
	MinRooms      int     `hcl:"min_rooms,optional"`
	MaxRooms      int     `hcl:"max_rooms,optional"`
	MinRoomSize   int     `hcl:"min_room_size,optional"`
	MaxRoomSize   int     `hcl:"max_room_size,optional"`
	BossRoomSize  int     `hcl:"boss_room_size,optional"`
	CorridorWidth int     `hcl:"corridor_width,optional"`
	BranchChance  float64 `hcl:"branch_chance,optional"`

	// Tiles
	WallVariants       int     `hcl:"wall_variants,optional"`
	DecorationDensity  float64 `hcl:"decoration_density,optional"`
	DecorationVariants int     `hcl:"decoration_variants,optional"`

	// Lights
	LightDensity      float64 `hcl:"light_density,optional"`
	LightColor        string  `hcl:"light_color,optional"`
	LightIntensityMin float64 `hcl:"light_intensity_min,optional"`
	LightIntensityMax float64 `hcl:"light_intensity_max,optional"`
	LightRadiusMin    float64 `hcl:"light_radius_min,optional"`
	LightRadiusMax    float64 `hcl:"light_radius_max,optional"`

	// Entities
	EnemyChance       float64 `hcl:"enemy_chance,optional"`
	MaxEnemiesPerRoom int     `hcl:"max_enemies_per_room,optional"`
	EnemyVariants     int     `hcl:"enemy_variants,optional"`
	ChestChance       float64 `hcl:"chest_chance,optional"`

	// Spaced prefab decorations
	PrefabDensity    float64 `hcl:"prefab_density,optional"`
	MinPrefabSpacing float64 `hcl:"min_prefab_spacing,optional"`
	PrefabVariants   int     `hcl:"prefab_variants,optional"`
}

// Defaults returns a Params with playable values for every field.
func Defaults() *Params {
	return &Params{
		MinRooms:      8,
		MaxRooms:      12,
		MinRoomSize:   5,
		MaxRoomSize:   9,
		BossRoomSize:  11,
		CorridorWidth: 2,
		BranchChance:  0.35,

		WallVariants:       4,
		DecorationDensity:  0.06,
		DecorationVariants: 6,

		LightDensity:      0.02,
		LightColor:        "#ffd9a0",
		LightIntensityMin: 0.6,
		LightIntensityMax: 1.2,
		LightRadiusMin:    3.0,
		LightRadiusMax:    5.5,

		EnemyChance:       0.55,
		MaxEnemiesPerRoom: 3,
		EnemyVariants:     4,
		ChestChance:       0.25,

		PrefabDensity:    0.04,
		MinPrefabSpacing: 2.5,
		PrefabVariants:   5,
	}
}

// Clamp forces every field into its sane range. Ranges with min > max are
// swapped rather than rejected.
func (p *Params) Clamp() {
	if p.MinRooms < 2 {
		p.MinRooms = 2
	}
	if p.MaxRooms < p.MinRooms {
		p.MinRooms, p.MaxRooms = p.MaxRooms, p.MinRooms
		if p.MinRooms < 2 {
			p.MinRooms = 2
		}
		if p.MaxRooms < p.MinRooms {
			p.MaxRooms = p.MinRooms
		}
	}
	if p.MinRoomSize < 3 {
		p.MinRoomSize = 3
	}
	if p.MaxRoomSize < p.MinRoomSize {
		p.MinRoomSize, p.MaxRoomSize = p.MaxRoomSize, p.MinRoomSize
		if p.MinRoomSize < 3 {
			p.MinRoomSize = 3
		}
		if p.MaxRoomSize < p.MinRoomSize {
			p.MaxRoomSize = p.MinRoomSize
		}
	}
	if p.BossRoomSize < p.MinRoomSize {
		p.BossRoomSize = p.MinRoomSize
	}
	if p.CorridorWidth < 1 {
		p.CorridorWidth = 1
	}

	p.BranchChance = clamp01(p.BranchChance)
	p.DecorationDensity = clamp01(p.DecorationDensity)
	p.LightDensity = clamp01(p.LightDensity)
	p.EnemyChance = clamp01(p.EnemyChance)
	p.ChestChance = clamp01(p.ChestChance)
	p.PrefabDensity = clamp01(p.PrefabDensity)

	if p.WallVariants < 0 {
		p.WallVariants = 0
	}
	if p.DecorationVariants < 0 {
		p.DecorationVariants = 0
	}
	if p.EnemyVariants < 0 {
		p.EnemyVariants = 0
	}
	if p.PrefabVariants < 0 {
		p.PrefabVariants = 0
	}
	if p.MaxEnemiesPerRoom < 0 {
		p.MaxEnemiesPerRoom = 0
	}
	if p.MinPrefabSpacing < 0 {
		p.MinPrefabSpacing = 0
	}

	if p.LightIntensityMax < p.LightIntensityMin {
		p.LightIntensityMin, p.LightIntensityMax = p.LightIntensityMax, p.LightIntensityMin
	}
	if p.LightRadiusMax < p.LightRadiusMin {
		p.LightRadiusMin, p.LightRadiusMax = p.LightRadiusMax, p.LightRadiusMin
	}
}

// Validate reports configurations no amount of clamping can fix.
func (p *Params) Validate() error {
	if p.MaxRooms <= 0 {
		return fmt.Errorf("config: max_rooms must be positive, got %d", p.MaxRooms)
	}
	if p.MaxRoomSize <= 0 {
		return fmt.Errorf("config: max_room_size must be positive, got %d", p.MaxRoomSize)
	}
	if p.BossRoomSize <= 0 {
		return fmt.Errorf("config: boss_room_size must be positive, got %d", p.BossRoomSize)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
