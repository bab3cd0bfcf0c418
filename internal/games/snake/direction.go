package snake

// Cell is a grid coordinate. Valid cells satisfy 0 <= X, Y < tileCount.
type Cell struct {
	X, Y int
}

// NoCell marks the absence of a position (e.g. no room left for food).
var NoCell = Cell{X: -1, Y: -1}

// Add returns the cell moved one step in direction d, without wrapping.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// The four legal headings.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether d is the exact reversal of other.
func (d Direction) IsOpposite(other Direction) bool {
	return d.DX == -other.DX && d.DY == -other.DY
}

// IsZero reports whether d is the zero vector.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
