// Package layout implements the dungeon topology generators: room graph
// growth with weighted directional sampling, branch expansion, corridor
// carving and floor/wall rasterization.
package layout

import (
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"dungeonforge/pkg/dungeon/config"
	"dungeonforge/pkg/engine/geom"
)

// Layout is the product of one topology generation run: the accepted room
// graph plus the carved floor-cell set. All state is rebuilt from scratch on
// every generation; floor cells are only ever added, never removed.
type Layout struct {
	Rooms       []*Room
	Connections []Connection
	Floor       mapset.Set[geom.Point]

	StartRoom *Room
	BossRoom  *Room
}

// NewLayout returns an empty layout.
func NewLayout() *Layout {
	return &Layout{
		Floor: mapset.New[geom.Point](),
	}
}

// AddRoom appends a room and tracks the start/boss references.
func (l *Layout) AddRoom(r *Room) {
	l.Rooms = append(l.Rooms, r)
	if r.Start {
		l.StartRoom = r
	}
	if r.Boss {
		l.BossRoom = r
	}
}

// Connect records an edge between two rooms.
func (l *Layout) Connect(a, b *Room) {
	l.Connections = append(l.Connections, Connection{A: a, B: b})
}

// OverlapsAny reports whether the candidate violates the clearance test
// against any accepted room.
func (l *Layout) OverlapsAny(candidate *Room, corridorWidth int) bool {
	for _, r := range l.Rooms {
		if ClearanceOverlap(r, candidate, corridorWidth) {
			return true
		}
	}
	return false
}

// RoomAt returns the first room containing p, or nil.
func (l *Layout) RoomAt(p geom.Point) *Room {
	for _, r := range l.Rooms {
		if r.Contains(p) {
			return r
		}
	}
	return nil
}

// fillRooms stamps every room's box into the floor set, inclusive of both
// extents.
func (l *Layout) fillRooms() {
	for _, r := range l.Rooms {
		hw := r.Width / 2
		hh := r.Height / 2
		for y := r.Center.Y - hh; y <= r.Center.Y+hh; y++ {
			for x := r.Center.X - hw; x <= r.Center.X+hw; x++ {
				l.Floor.Put(geom.Point{X: x, Y: y})
			}
		}
	}
}

// SortedFloor returns the floor cells in row-major order (y descending, x
// ascending). Passes that consume randomness per cell iterate this slice so a
// fixed seed replays the exact same dungeon.
func (l *Layout) SortedFloor() []geom.Point {
	cells := make([]geom.Point, 0, l.Floor.Size())
	l.Floor.Each(func(p geom.Point) {
		cells = append(cells, p)
	})
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y > cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// LayoutGenerator is the interface for dungeon topology algorithms.
type LayoutGenerator interface {
	Generate(params *config.Params, rng *rand.Rand) *Layout
	Name() string
}

// Available generators.
var (
	GraphGrowth = &GraphGrowthGenerator{}
	RandomWalk  = &RandomWalkGenerator{}
)

// DefaultGenerator is the default topology generator.
var DefaultGenerator LayoutGenerator = GraphGrowth
