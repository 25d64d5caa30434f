package populate

import (
	"math/rand"
	"testing"

	"dungeonforge/pkg/dungeon/config"
	"dungeonforge/pkg/dungeon/layout"
	"dungeonforge/pkg/engine/geom"
)

// fillBox adds a room's full tile box to the layout floor, mirroring the
// rasterization the generators do before the placement passes run.
func fillBox(l *layout.Layout, r *layout.Room) {
	hw, hh := r.Width/2, r.Height/2
	for y := r.Center.Y - hh; y <= r.Center.Y+hh; y++ {
		for x := r.Center.X - hw; x <= r.Center.X+hw; x++ {
			l.Floor.Put(geom.Point{X: x, Y: y})
		}
	}
}

// threeRoomLayout builds a start room at the origin, one normal room, and a
// boss room, all 5x5 and far enough apart to stay disconnected.
func threeRoomLayout() (*layout.Layout, *layout.Room) {
	l := layout.NewLayout()
	start := &layout.Room{Center: geom.Origin, Width: 5, Height: 5, Start: true}
	mid := &layout.Room{Center: geom.Point{X: 20, Y: 0}, Width: 5, Height: 5}
	boss := &layout.Room{Center: geom.Point{X: 40, Y: 0}, Width: 5, Height: 5, Boss: true}
	for _, r := range []*layout.Room{start, mid, boss} {
		l.AddRoom(r)
		fillBox(l, r)
	}
	return l, mid
}

func TestSample_SpawnPoints(t *testing.T) {
	l, _ := threeRoomLayout()
	p := Sample(l, config.Defaults(), rand.New(rand.NewSource(1)))

	if p.PlayerSpawn != l.StartRoom.Center {
		t.Errorf("player spawn %v, want start room center %v", p.PlayerSpawn, l.StartRoom.Center)
	}
	if p.BossSpawn != l.BossRoom.Center {
		t.Errorf("boss spawn %v, want boss room center %v", p.BossSpawn, l.BossRoom.Center)
	}
}

func TestDecorations_SkipStartRoomAndWallCells(t *testing.T) {
	l, _ := threeRoomLayout()
	params := config.Defaults()
	params.DecorationDensity = 1
	params.DecorationVariants = 3

	p := Sample(l, params, rand.New(rand.NewSource(2)))

	// At density 1 every eligible cell decorates. In each isolated 5x5 room
	// only the 3x3 interior avoids walls, and the start room is excluded
	// entirely: 9 cells in the middle room plus 9 in the boss room.
	if len(p.Decorations) != 18 {
		t.Errorf("got %d decorations, want 18", len(p.Decorations))
	}
	for _, d := range p.Decorations {
		if l.StartRoom.Contains(d.Pos) {
			t.Errorf("decoration at %v inside the start room", d.Pos)
		}
		for _, n := range d.Pos.Neighbors4() {
			if !l.Floor.Has(n) {
				t.Errorf("decoration at %v adjacent to a wall", d.Pos)
			}
		}
		if d.Variant < 0 || d.Variant >= params.DecorationVariants {
			t.Errorf("decoration variant %d outside [0,%d)", d.Variant, params.DecorationVariants)
		}
	}
}

func TestDecorations_NoVariantsMeansNone(t *testing.T) {
	l, _ := threeRoomLayout()
	params := config.Defaults()
	params.DecorationDensity = 1
	params.DecorationVariants = 0

	p := Sample(l, params, rand.New(rand.NewSource(3)))
	if len(p.Decorations) != 0 {
		t.Errorf("got %d decorations with zero variants, want 0", len(p.Decorations))
	}
}

func TestLights_FullDensityCoversFloor(t *testing.T) {
	l, _ := threeRoomLayout()
	params := config.Defaults()
	params.LightDensity = 1

	p := Sample(l, params, rand.New(rand.NewSource(4)))

	if len(p.Lights) != l.Floor.Size() {
		t.Errorf("got %d lights at density 1, want one per floor cell (%d)", len(p.Lights), l.Floor.Size())
	}
	for _, light := range p.Lights {
		if light.Intensity < params.LightIntensityMin || light.Intensity > params.LightIntensityMax {
			t.Errorf("light intensity %v outside [%v,%v]", light.Intensity, params.LightIntensityMin, params.LightIntensityMax)
		}
		if light.Radius < params.LightRadiusMin || light.Radius > params.LightRadiusMax {
			t.Errorf("light radius %v outside [%v,%v]", light.Radius, params.LightRadiusMin, params.LightRadiusMax)
		}
		if light.Color != params.LightColor {
			t.Errorf("light color %q, want %q", light.Color, params.LightColor)
		}
	}
}

func TestEnemies_RoomSlotsAndExclusions(t *testing.T) {
	l, mid := threeRoomLayout()
	params := config.Defaults()
	params.EnemyChance = 1
	params.MaxEnemiesPerRoom = 3
	params.EnemyVariants = 2

	p := Sample(l, params, rand.New(rand.NewSource(5)))

	// One eligible room, every slot fires at certainty.
	if len(p.Enemies) != 3 {
		t.Errorf("got %d enemies, want 3", len(p.Enemies))
	}
	for _, e := range p.Enemies {
		if !mid.Contains(e.Pos) {
			t.Errorf("enemy at %v outside the eligible room", e.Pos)
		}
		if l.StartRoom.Contains(e.Pos) || l.BossRoom.Contains(e.Pos) {
			t.Errorf("enemy at %v inside a protected room", e.Pos)
		}
	}
}

func TestChests_AtMostOnePerEligibleRoom(t *testing.T) {
	l, mid := threeRoomLayout()
	params := config.Defaults()
	params.ChestChance = 1

	p := Sample(l, params, rand.New(rand.NewSource(6)))

	if len(p.Chests) != 1 {
		t.Errorf("got %d chests, want 1", len(p.Chests))
	}
	if len(p.Chests) == 1 && !mid.Contains(p.Chests[0]) {
		t.Errorf("chest at %v outside the eligible room", p.Chests[0])
	}
}

func TestPrefabs_SpacingAndStartRoomExclusion(t *testing.T) {
	l, _ := threeRoomLayout()
	params := config.Defaults()
	params.PrefabDensity = 0.2
	params.MinPrefabSpacing = 2
	params.PrefabVariants = 4

	p := Sample(l, params, rand.New(rand.NewSource(7)))

	for i := 0; i < len(p.Prefabs); i++ {
		if l.StartRoom.Contains(p.Prefabs[i].Pos) {
			t.Errorf("prefab at %v inside the start room", p.Prefabs[i].Pos)
		}
		for j := i + 1; j < len(p.Prefabs); j++ {
			if d := p.Prefabs[i].Pos.Distance(p.Prefabs[j].Pos); d < params.MinPrefabSpacing {
				t.Errorf("prefabs at %v and %v only %v apart, want >= %v",
					p.Prefabs[i].Pos, p.Prefabs[j].Pos, d, params.MinPrefabSpacing)
			}
		}
	}
}

func TestFarEnough(t *testing.T) {
	accepted := []geom.Point{{X: 1, Y: 0}}

	if FarEnough(geom.Point{X: 0, Y: 0}, accepted, 1.5) {
		t.Error("points 1 apart accepted at spacing 1.5")
	}
	if !FarEnough(geom.Point{X: 3, Y: 0}, accepted, 1.5) {
		t.Error("points 2 apart rejected at spacing 1.5")
	}
	if !FarEnough(geom.Point{X: 0, Y: 0}, nil, 10) {
		t.Error("first placement must always be accepted")
	}
}

func TestSample_DeterministicUnderSeed(t *testing.T) {
	params := config.Defaults()
	l, _ := threeRoomLayout()

	first := Sample(l, params, rand.New(rand.NewSource(99)))
	second := Sample(l, params, rand.New(rand.NewSource(99)))

	if len(first.Decorations) != len(second.Decorations) ||
		len(first.Lights) != len(second.Lights) ||
		len(first.Enemies) != len(second.Enemies) ||
		len(first.Chests) != len(second.Chests) ||
		len(first.Prefabs) != len(second.Prefabs) {
		t.Fatal("placement counts differ between identical seeds")
	}
	for i := range first.Decorations {
		if first.Decorations[i] != second.Decorations[i] {
			t.Fatalf("decoration %d differs between identical seeds", i)
		}
	}
	for i := range first.Enemies {
		if first.Enemies[i] != second.Enemies[i] {
			t.Fatalf("enemy %d differs between identical seeds", i)
		}
	}
}
