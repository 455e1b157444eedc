package model

import "fmt"

// Coord identifies a cell on the grid
type Coord struct {
	X, Y int
}

// NeighborOffsets are the Moore neighborhood offsets, excluding the cell itself
var NeighborOffsets = [...]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Add returns the componentwise sum of two coordinates
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
