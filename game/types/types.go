package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether c lies inside [0,Width) x [0,Height).
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Size is the number of cells in the grid.
func (g Grid) Size() int {
	if g.Width <= 0 || g.Height <= 0 {
		return 0
	}
	return g.Width * g.Height
}

// Point is a fine grid position. The creature's segments live on the fine grid.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// IsZero reports whether p is the zero vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Coarse projects p onto the coarse grid. Division floors so that positions
// left of or above the origin never collapse into cell 0.
func (p Point) Coarse(scale int) Cell {
	if scale <= 1 {
		return Cell{X: p.X, Y: p.Y}
	}
	return Cell{X: floorDiv(p.X, scale), Y: floorDiv(p.Y, scale)}
}

// Cell is a coarse grid position, used by consumables and walls.
type Cell struct {
	X, Y int
}

// Less orders cells row by row. Used to return deterministic listings.
func (c Cell) Less(o Cell) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Phase is the round phase read by menu and UI collaborators.
type Phase int

const (
	Menu Phase = iota
	Game
	Highscore
)

func (p Phase) String() string {
	switch p {
	case Menu:
		return "menu"
	case Game:
		return "game"
	case Highscore:
		return "highscore"
	default:
		return "unknown"
	}
}
