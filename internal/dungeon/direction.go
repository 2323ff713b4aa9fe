package dungeon

// Direction identifies one of the four cardinal grid directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all four directions in the fixed traversal order used
// throughout generation and path search.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the grid offset for one step in this direction.
// Y grows downward, matching screen coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Opposite returns the reciprocal direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}
