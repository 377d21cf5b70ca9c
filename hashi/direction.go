package hashi

// Direction is one of the four axis-aligned unit vectors used when walking
// the board during generation and candidate derivation.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all four directions in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Vector returns the unit step of the direction. The board origin is the
// top-left corner, so Up decreases y.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}
