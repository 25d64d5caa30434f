package layout

import (
	"math/rand"

	"dungeonforge/pkg/engine/geom"
)

// Room is an axis-aligned box of floor cells centered on Center. Rooms are
// immutable once accepted into a layout.
type Room struct {
	Center geom.Point
	Width  int
	Height int
	Start  bool
	Boss   bool
}

// Contains reports whether p falls inside the room's box, inclusive of both
// extents.
func (r *Room) Contains(p geom.Point) bool {
	dx := p.X - r.Center.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - r.Center.Y
	if dy < 0 {
		dy = -dy
	}
	return dx <= r.Width/2 && dy <= r.Height/2
}

// RandomInterior returns a uniformly random cell inside the room's box.
func (r *Room) RandomInterior(rng *rand.Rand) geom.Point {
	hw := r.Width / 2
	hh := r.Height / 2
	return geom.Point{
		X: r.Center.X + rng.Intn(2*hw+1) - hw,
		Y: r.Center.Y + rng.Intn(2*hh+1) - hh,
	}
}

// CenterBiased returns a random cell within a quarter of each dimension from
// the room center. Corridor endpoints use this jitter so corridors meet rooms
// well away from their edges.
func (r *Room) CenterBiased(rng *rand.Rand) geom.Point {
	qw := r.Width / 4
	qh := r.Height / 4
	return geom.Point{
		X: r.Center.X + rng.Intn(2*qw+1) - qw,
		Y: r.Center.Y + rng.Intn(2*qh+1) - qh,
	}
}

// ClearanceOverlap reports whether two rooms sit too close together to leave
// space for corridor carving and wall thickness. This is a circular-clearance
// approximation on the centers, deliberately more conservative than exact
// box intersection.
func ClearanceOverlap(a, b *Room, corridorWidth int) bool {
	threshold := float64(a.Width+b.Width)/2 + float64(corridorWidth+2)
	return a.Center.Distance(b.Center) < threshold
}

// Connection is an unordered pair of connected rooms. It owns neither room.
type Connection struct {
	A *Room
	B *Room
}
