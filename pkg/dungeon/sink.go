package dungeon

import (
	"dungeonforge/pkg/engine/geom"
)

// NorthWallVariant is the variant index passed to EmitWallCell for walls that
// cap a floor cell from above only. General wall variants are 0..n-1.
const NorthWallVariant = -1

// TileSink receives one call per finalized grid cell. Implementations can
// include a terminal map printer, an Ebiten tilemap painter, etc.
type TileSink interface {
	EmitFloorCell(pos geom.Point)
	EmitWallCell(pos geom.Point, variant int)
	EmitDecorationCell(pos geom.Point, variant int)
}

// SpawnSink receives one call per placement decision.
type SpawnSink interface {
	SpawnLight(pos geom.Point, color string, intensity, radius float64)
	SpawnEnemy(pos geom.Point, variant int)
	SpawnChest(pos geom.Point)
	SpawnBoss(pos geom.Point)
	SpawnDecorationPrefab(pos geom.Point, variant int)
	SetPlayerSpawn(pos geom.Point)
}

// Sink is the full set of callbacks a renderer/spawner backend implements.
// ClearPreviousGeneration is always invoked before a new run begins so the
// backend can release everything from the previous one.
type Sink interface {
	TileSink
	SpawnSink
	ClearPreviousGeneration()
}

// NopSink discards every emission. Useful for headless generation where only
// the GenerationResult matters.
type NopSink struct{}

func (NopSink) EmitFloorCell(geom.Point)                          {}
func (NopSink) EmitWallCell(geom.Point, int)                      {}
func (NopSink) EmitDecorationCell(geom.Point, int)                {}
func (NopSink) SpawnLight(geom.Point, string, float64, float64)   {}
func (NopSink) SpawnEnemy(geom.Point, int)                        {}
func (NopSink) SpawnChest(geom.Point)                             {}
func (NopSink) SpawnBoss(geom.Point)                              {}
func (NopSink) SpawnDecorationPrefab(geom.Point, int)             {}
func (NopSink) SetPlayerSpawn(geom.Point)                         {}
func (NopSink) ClearPreviousGeneration()                          {}
