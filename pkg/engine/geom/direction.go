package geom

// Direction represents one of the eight compass directions.
type Direction int

// Direction constants, counter-clockwise from East.
const (
	East Direction = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

// AllDirections returns all valid directions for iteration.
func AllDirections() []Direction {
	return []Direction{East, NorthEast, North, NorthWest, West, SouthWest, South, SouthEast}
}

// CardinalDirections returns the four cardinal directions.
func CardinalDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case NorthEast:
		return "NorthEast"
	case North:
		return "North"
	case NorthWest:
		return "NorthWest"
	case West:
		return "West"
	case SouthWest:
		return "SouthWest"
	case South:
		return "South"
	case SouthEast:
		return "SouthEast"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass directions.
func (d Direction) IsValid() bool {
	return d >= East && d <= SouthEast
}

// IsDiagonal returns true for the four intercardinal directions.
func (d Direction) IsDiagonal() bool {
	switch d {
	case NorthEast, NorthWest, SouthWest, SouthEast:
		return true
	default:
		return false
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 4) % 8
}

// Delta returns the unit offset for this direction (y-up).
func (d Direction) Delta() Point {
	switch d {
	case East:
		return Point{1, 0}
	case NorthEast:
		return Point{1, 1}
	case North:
		return Point{0, 1}
	case NorthWest:
		return Point{-1, 1}
	case West:
		return Point{-1, 0}
	case SouthWest:
		return Point{-1, -1}
	case South:
		return Point{0, -1}
	case SouthEast:
		return Point{1, -1}
	default:
		return Point{}
	}
}
