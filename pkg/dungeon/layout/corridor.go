package layout

import (
	"math/rand"

	"dungeonforge/pkg/dungeon/config"
	"dungeonforge/pkg/engine/geom"
)

// carveCorridors connects every recorded edge with an L-shaped corridor
// between center-biased points of the two rooms. Must run after fillRooms so
// the room-precedence check sees the complete room list.
func carveCorridors(l *Layout, params *config.Params, rng *rand.Rand) {
	for _, c := range l.Connections {
		from := c.A.CenterBiased(rng)
		to := c.B.CenterBiased(rng)
		carvePath(l, from, to, params.CorridorWidth)
	}
}

// carvePath walks from one point to the other one cell at a time, horizontal
// segment first, stamping the corridor cross-section at every step.
func carvePath(l *Layout, from, to geom.Point, width int) {
	pos := from
	stampCorridor(l, pos, width)
	for pos.X != to.X {
		pos.X += step(to.X - pos.X)
		stampCorridor(l, pos, width)
	}
	for pos.Y != to.Y {
		pos.Y += step(to.Y - pos.Y)
		stampCorridor(l, pos, width)
	}
}

// stampCorridor adds a square cross-section of side width centered on pos,
// with the extra cell on the positive side when the width is even. Cells that
// fall inside a room are left to the room fill; rooms take precedence over
// corridor stamping.
func stampCorridor(l *Layout, pos geom.Point, width int) {
	lo := -(width - 1) / 2
	hi := width / 2
	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			cell := geom.Point{X: pos.X + dx, Y: pos.Y + dy}
			if l.RoomAt(cell) != nil {
				continue
			}
			l.Floor.Put(cell)
		}
	}
}

func step(delta int) int {
	if delta < 0 {
		return -1
	}
	return 1
}
