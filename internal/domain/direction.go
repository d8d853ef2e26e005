package domain

import "fmt"

// Direction is the heading of a single dig instruction.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Delta returns the unit (row, col) step for the direction.
// Rows grow downwards and columns grow to the right.
func (d Direction) Delta() (row, col int64) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= Right && d <= Up
}

// DirectionFromDigit maps the trailing hex digit of a color code to a direction.
func DirectionFromDigit(c byte) (Direction, bool) {
	switch c {
	case '0':
		return Right, true
	case '1':
		return Down, true
	case '2':
		return Left, true
	case '3':
		return Up, true
	default:
		return 0, false
	}
}

// DirectionFromLetter maps a U/D/L/R letter to a direction.
func DirectionFromLetter(s string) (Direction, bool) {
	switch s {
	case "U":
		return Up, true
	case "D":
		return Down, true
	case "L":
		return Left, true
	case "R":
		return Right, true
	default:
		return 0, false
	}
}
