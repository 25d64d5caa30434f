// Package dungeon ties the topology generators and the placement sampler into
// a single generation pipeline behind one entry point.
package dungeon

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/zyedidia/generic/mapset"

	"dungeonforge/pkg/dungeon/config"
	"dungeonforge/pkg/dungeon/layout"
	"dungeonforge/pkg/dungeon/populate"
	"dungeonforge/pkg/engine/geom"
)

// ErrNoBossRoom reports a generation run that ended without a boss room.
// The graph-growth builder guarantees one by construction, so hitting this
// means a broken custom generator or configuration.
var ErrNoBossRoom = errors.New("dungeon: generation produced no boss room")

// GenerationResult is the full output of one GenerateDungeon call.
type GenerationResult struct {
	Rooms          []*layout.Room
	FloorCells     mapset.Set[geom.Point]
	WallCells      []layout.WallCell
	Placements     *populate.Placements
	PlayerSpawn    geom.Point
	BossRoomCenter geom.Point
}

// Generator runs the generation pipeline. The whole pipeline is synchronous
// and single-threaded; a mutex serializes overlapping calls on the same
// instance so a run never observes another run's state.
type Generator struct {
	mu        sync.Mutex
	rng       *rand.Rand
	layoutGen layout.LayoutGenerator
}

// New creates a generator seeded from the clock, using the default topology
// generator.
func New() *Generator {
	return &Generator{
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		layoutGen: layout.DefaultGenerator,
	}
}

// SetSeed reseeds the generator for reproducible dungeons. The pipeline
// consumes the sequence in a fixed order (builder, expander, carver, wall
// variants, sampler passes), so one seed always replays one dungeon.
func (g *Generator) SetSeed(seed int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rng = rand.New(rand.NewSource(seed))
}

// SetLayoutGenerator switches the topology algorithm.
func (g *Generator) SetLayoutGenerator(lg layout.LayoutGenerator) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.layoutGen = lg
}

// GenerateDungeon runs the full pipeline: topology, rasterization, placement
// sampling, then emission to the sink. All state is rebuilt from scratch;
// nothing carries over from previous runs. A nil sink generates headlessly.
func (g *Generator) GenerateDungeon(params *config.Params, sink Sink) (*GenerationResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if params == nil {
		params = config.Defaults()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	clamped := *params
	clamped.Clamp()

	if sink == nil {
		sink = NopSink{}
	}
	sink.ClearPreviousGeneration()

	l := g.layoutGen.Generate(&clamped, g.rng)
	if l.BossRoom == nil {
		return nil, ErrNoBossRoom
	}

	walls := layout.DeriveWalls(l.Floor, clamped.WallVariants, g.rng)
	placements := populate.Sample(l, &clamped, g.rng)

	emit(sink, l, walls, placements, &clamped)

	return &GenerationResult{
		Rooms:          l.Rooms,
		FloorCells:     l.Floor,
		WallCells:      walls,
		Placements:     placements,
		PlayerSpawn:    placements.PlayerSpawn,
		BossRoomCenter: l.BossRoom.Center,
	}, nil
}

// emit pushes every finalized cell and placement to the sink exactly once.
// Categories with no configured variants emit nothing rather than failing.
func emit(sink Sink, l *layout.Layout, walls []layout.WallCell, p *populate.Placements, params *config.Params) {
	for _, cell := range l.SortedFloor() {
		sink.EmitFloorCell(cell)
	}
	if params.WallVariants > 0 {
		for _, w := range walls {
			if w.North {
				sink.EmitWallCell(w.Pos, NorthWallVariant)
			} else {
				sink.EmitWallCell(w.Pos, w.Variant)
			}
		}
	}
	for _, d := range p.Decorations {
		sink.EmitDecorationCell(d.Pos, d.Variant)
	}
	for _, light := range p.Lights {
		sink.SpawnLight(light.Pos, light.Color, light.Intensity, light.Radius)
	}
	for _, e := range p.Enemies {
		sink.SpawnEnemy(e.Pos, e.Variant)
	}
	for _, c := range p.Chests {
		sink.SpawnChest(c)
	}
	for _, pf := range p.Prefabs {
		sink.SpawnDecorationPrefab(pf.Pos, pf.Variant)
	}
	sink.SpawnBoss(p.BossSpawn)
	sink.SetPlayerSpawn(p.PlayerSpawn)
}
