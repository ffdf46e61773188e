package types

// Direction is a cardinal direction delivered by an input collaborator.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction into a single-cell step vector.
// Up decrements Y.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// TurnLeft returns the direction after a 90 degree counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the direction after a 90 degree clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return d.TurnLeft().TurnLeft()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// DirectionOf maps a step vector back to its Direction. Anything that is not
// a unit axis vector maps to None.
func DirectionOf(p Point) Direction {
	switch p {
	case Point{X: 0, Y: -1}:
		return Up
	case Point{X: 1, Y: 0}:
		return Right
	case Point{X: 0, Y: 1}:
		return Down
	case Point{X: -1, Y: 0}:
		return Left
	default:
		return None
	}
}
