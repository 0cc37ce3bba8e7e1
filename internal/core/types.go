package core

import "fmt"

// Size describes the dimensions of a maze grid in tiles.
type Size struct {
	W int
	H int
}

// Coord addresses a single cell by column and row, both 0-based.
type Coord struct {
	X int
	Y int
}

// Add returns the coordinate one step along d.
func (c Coord) Add(d Direction) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Step returns the coordinate n steps along d.
func (c Coord) Step(d Direction, n int) Coord {
	return Coord{X: c.X + d.DX*n, Y: c.Y + d.DY*n}
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Direction is a unit vector along one of the four cardinal axes.
type Direction struct {
	DX int
	DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Cardinals lists the four directions in the order the generator expands them.
var Cardinals = [4]Direction{Right, Down, Left, Up}

// IsCardinal reports whether d is one of Up, Down, Left or Right.
func (d Direction) IsCardinal() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}
