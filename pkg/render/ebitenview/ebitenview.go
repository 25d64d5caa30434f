// Package ebitenview renders a generated dungeon in a window using Ebiten.
// Like the TUI backend it implements the dungeon sink interfaces; press R to
// regenerate, Escape to quit.
package ebitenview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeonforge/pkg/dungeon"
	"dungeonforge/pkg/dungeon/config"
	"dungeonforge/pkg/engine/geom"
)

const (
	cellSize     = 8
	screenWidth  = 1024
	screenHeight = 768
)

var (
	colorFloor     = color.RGBA{0x3a, 0x3a, 0x44, 0xff}
	colorWall      = color.RGBA{0x17, 0x17, 0x1f, 0xff}
	colorNorthWall = color.RGBA{0x2a, 0x2a, 0x36, 0xff}
	colorDeco      = color.RGBA{0x4e, 0x6e, 0x4e, 0xff}
	colorLight     = color.RGBA{0xff, 0xd9, 0xa0, 0xff}
	colorEnemy     = color.RGBA{0xc0, 0x3a, 0x3a, 0xff}
	colorChest     = color.RGBA{0xc9, 0xa2, 0x2a, 0xff}
	colorPrefab    = color.RGBA{0x3a, 0x8a, 0x9a, 0xff}
	colorBoss      = color.RGBA{0xb0, 0x3a, 0xc0, 0xff}
	colorPlayer    = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
)

// Viewer is an interactive dungeon viewer window.
type Viewer struct {
	gen    *dungeon.Generator
	params *config.Params

	floor   map[geom.Point]bool
	walls   map[geom.Point]int
	decos   map[geom.Point]bool
	lights  map[geom.Point]bool
	enemies map[geom.Point]bool
	chests  map[geom.Point]bool
	prefabs map[geom.Point]bool

	playerSpawn geom.Point
	bossSpawn   geom.Point

	err error
}

// New creates a viewer bound to a generator and parameter set.
func New(gen *dungeon.Generator, params *config.Params) *Viewer {
	v := &Viewer{gen: gen, params: params}
	v.ClearPreviousGeneration()
	return v
}

// Run generates once and opens the window. Blocks until the window closes.
func (v *Viewer) Run() error {
	if _, err := v.gen.GenerateDungeon(v.params, v); err != nil {
		return err
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("dungeonforge")
	return ebiten.RunGame(v)
}

// ClearPreviousGeneration drops everything from the previous run.
func (v *Viewer) ClearPreviousGeneration() {
	v.floor = make(map[geom.Point]bool)
	v.walls = make(map[geom.Point]int)
	v.decos = make(map[geom.Point]bool)
	v.lights = make(map[geom.Point]bool)
	v.enemies = make(map[geom.Point]bool)
	v.chests = make(map[geom.Point]bool)
	v.prefabs = make(map[geom.Point]bool)
}

// EmitFloorCell records a walkable cell.
func (v *Viewer) EmitFloorCell(pos geom.Point) { v.floor[pos] = true }

// EmitWallCell records a wall cell with its tile variant.
func (v *Viewer) EmitWallCell(pos geom.Point, variant int) { v.walls[pos] = variant }

// EmitDecorationCell records a decorated floor cell.
func (v *Viewer) EmitDecorationCell(pos geom.Point, variant int) { v.decos[pos] = true }

// SpawnLight records a light placement.
func (v *Viewer) SpawnLight(pos geom.Point, lightColor string, intensity, radius float64) {
	v.lights[pos] = true
}

// SpawnEnemy records an enemy placement.
func (v *Viewer) SpawnEnemy(pos geom.Point, variant int) { v.enemies[pos] = true }

// SpawnChest records a chest placement.
func (v *Viewer) SpawnChest(pos geom.Point) { v.chests[pos] = true }

// SpawnBoss records the boss placement.
func (v *Viewer) SpawnBoss(pos geom.Point) { v.bossSpawn = pos }

// SpawnDecorationPrefab records a spaced prefab placement.
func (v *Viewer) SpawnDecorationPrefab(pos geom.Point, variant int) { v.prefabs[pos] = true }

// SetPlayerSpawn records the player spawn point.
func (v *Viewer) SetPlayerSpawn(pos geom.Point) { v.playerSpawn = pos }

// Update handles the regenerate/quit keys.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if _, err := v.gen.GenerateDungeon(v.params, v); err != nil {
			v.err = err
			return err
		}
	}
	return nil
}

// Draw paints every recorded cell as a filled rect, centered on the player
// spawn.
func (v *Viewer) Draw(screen *ebiten.Image) {
	offX := float32(screenWidth/2 - v.playerSpawn.X*cellSize)
	offY := float32(screenHeight/2 + v.playerSpawn.Y*cellSize)

	drawCell := func(p geom.Point, c color.Color) {
		// y-up grid to y-down screen
		x := offX + float32(p.X*cellSize)
		y := offY - float32(p.Y*cellSize)
		vector.DrawFilledRect(screen, x, y, cellSize, cellSize, c, false)
	}

	for p, variant := range v.walls {
		if variant == dungeon.NorthWallVariant {
			drawCell(p, colorNorthWall)
		} else {
			drawCell(p, colorWall)
		}
	}
	for p := range v.floor {
		drawCell(p, colorFloor)
	}
	for p := range v.decos {
		drawCell(p, colorDeco)
	}
	for p := range v.lights {
		drawCell(p, colorLight)
	}
	for p := range v.prefabs {
		drawCell(p, colorPrefab)
	}
	for p := range v.chests {
		drawCell(p, colorChest)
	}
	for p := range v.enemies {
		drawCell(p, colorEnemy)
	}
	drawCell(v.bossSpawn, colorBoss)
	drawCell(v.playerSpawn, colorPlayer)
}

// Layout reports the fixed logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
