// Package tui renders a generated dungeon as a colored ASCII map on the
// terminal. It implements the dungeon sink interfaces directly: the generator
// pushes cells and placements in, Render prints the accumulated frame.
package tui

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeonforge/pkg/dungeon"
	"dungeonforge/pkg/engine/geom"
)

// Icon constants for the map view
const (
	IconVoid      = " "
	IconFloor     = "·"
	IconWall      = "▒"
	IconNorthWall = "▔"
	IconDeco      = "∗"
	IconLight     = "☼"
	IconEnemy     = "e"
	IconChest     = "□"
	IconPrefab    = "♠"
	IconBoss      = "B"
	IconPlayer    = "@"
)

// Renderer is the terminal map renderer. It accumulates one generation's
// worth of emissions and prints them as a grid.
type Renderer struct {
	floor   map[geom.Point]bool
	walls   map[geom.Point]int
	decos   map[geom.Point]int
	lights  map[geom.Point]bool
	enemies map[geom.Point]int
	chests  map[geom.Point]bool
	prefabs map[geom.Point]int

	playerSpawn geom.Point
	bossSpawn   geom.Point
	hasSpawns   bool

	colorFloor  color.Style
	colorWall   color.Style
	colorDeco   color.Style
	colorLight  color.Style
	colorEnemy  color.Style
	colorChest  color.Style
	colorPrefab color.Style
	colorBoss   color.Style
	colorPlayer color.Style
	colorLabel  color.Style
}

// New creates an initialized TUI renderer.
func New() *Renderer {
	r := &Renderer{}
	r.colorFloor = color.Style{color.FgGray}
	r.colorWall = color.Style{color.FgDarkGray}
	r.colorDeco = color.Style{color.FgGreen}
	r.colorLight = color.Style{color.FgYellow, color.OpBold}
	r.colorEnemy = color.Style{color.FgRed}
	r.colorChest = color.Style{color.FgYellow}
	r.colorPrefab = color.Style{color.FgCyan}
	r.colorBoss = color.Style{color.FgMagenta, color.OpBold}
	r.colorPlayer = color.Style{color.FgWhite, color.OpBold}
	r.colorLabel = color.Style{color.FgBlue}
	r.ClearPreviousGeneration()
	return r
}

// ClearPreviousGeneration drops everything from the previous run.
func (r *Renderer) ClearPreviousGeneration() {
	r.floor = make(map[geom.Point]bool)
	r.walls = make(map[geom.Point]int)
	r.decos = make(map[geom.Point]int)
	r.lights = make(map[geom.Point]bool)
	r.enemies = make(map[geom.Point]int)
	r.chests = make(map[geom.Point]bool)
	r.prefabs = make(map[geom.Point]int)
	r.hasSpawns = false
}

// EmitFloorCell records a walkable cell.
func (r *Renderer) EmitFloorCell(pos geom.Point) {
	r.floor[pos] = true
}

// EmitWallCell records a wall cell with its tile variant.
func (r *Renderer) EmitWallCell(pos geom.Point, variant int) {
	r.walls[pos] = variant
}

// EmitDecorationCell records a decorated floor cell.
func (r *Renderer) EmitDecorationCell(pos geom.Point, variant int) {
	r.decos[pos] = variant
}

// SpawnLight records a light placement.
func (r *Renderer) SpawnLight(pos geom.Point, lightColor string, intensity, radius float64) {
	r.lights[pos] = true
}

// SpawnEnemy records an enemy placement.
func (r *Renderer) SpawnEnemy(pos geom.Point, variant int) {
	r.enemies[pos] = variant
}

// SpawnChest records a chest placement.
func (r *Renderer) SpawnChest(pos geom.Point) {
	r.chests[pos] = true
}

// SpawnBoss records the boss placement.
func (r *Renderer) SpawnBoss(pos geom.Point) {
	r.bossSpawn = pos
	r.hasSpawns = true
}

// SpawnDecorationPrefab records a spaced prefab placement.
func (r *Renderer) SpawnDecorationPrefab(pos geom.Point, variant int) {
	r.prefabs[pos] = variant
}

// SetPlayerSpawn records the player spawn point.
func (r *Renderer) SetPlayerSpawn(pos geom.Point) {
	r.playerSpawn = pos
}

// Render prints the accumulated dungeon. Rows print north to south so the
// y-up grid appears the right way round on screen.
func (r *Renderer) Render(w io.Writer) {
	minX, minY, maxX, maxY, ok := r.bounds()
	if !ok {
		fmt.Fprintln(w, gotext.Get("Nothing generated yet."))
		return
	}

	fmt.Fprintln(w, r.colorLabel.Sprintf("%s", gotext.Get("Generated dungeon")))
	fmt.Fprintf(w, "%s: %d×%d\n\n", gotext.Get("Map size"), maxX-minX+1, maxY-minY+1)

	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			fmt.Fprint(w, r.cellIcon(geom.Point{X: x, Y: y}))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s  %s %s\n",
		r.colorPlayer.Sprint(IconPlayer), gotext.Get("player spawn"),
		r.colorBoss.Sprint(IconBoss), gotext.Get("boss"))
}

// cellIcon picks the most interesting thing on a cell, entities first.
func (r *Renderer) cellIcon(p geom.Point) string {
	switch {
	case r.hasSpawns && p == r.playerSpawn:
		return r.colorPlayer.Sprint(IconPlayer)
	case r.hasSpawns && p == r.bossSpawn:
		return r.colorBoss.Sprint(IconBoss)
	case hasKey(r.enemies, p):
		return r.colorEnemy.Sprint(IconEnemy)
	case r.chests[p]:
		return r.colorChest.Sprint(IconChest)
	case hasKey(r.prefabs, p):
		return r.colorPrefab.Sprint(IconPrefab)
	case r.lights[p]:
		return r.colorLight.Sprint(IconLight)
	case hasKey(r.decos, p):
		return r.colorDeco.Sprint(IconDeco)
	case r.floor[p]:
		return r.colorFloor.Sprint(IconFloor)
	case hasKey(r.walls, p):
		if r.walls[p] == dungeon.NorthWallVariant {
			return r.colorWall.Sprint(IconNorthWall)
		}
		return r.colorWall.Sprint(IconWall)
	default:
		return IconVoid
	}
}

func (r *Renderer) bounds() (minX, minY, maxX, maxY int, ok bool) {
	first := true
	visit := func(p geom.Point) {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			return
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	for p := range r.floor {
		visit(p)
	}
	for p := range r.walls {
		visit(p)
	}
	return minX, minY, maxX, maxY, !first
}

func hasKey[V any](m map[geom.Point]V, p geom.Point) bool {
	_, found := m[p]
	return found
}
